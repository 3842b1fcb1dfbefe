// Package spin: the term-list spin-operator input model.
// An Operator is an ordered sum of monomials; each monomial carries one
// coefficient and, per mode, three non-negative exponents (a, b, c) meaning
// that mode's local factor is Sx^a·Sy^b·Sz^c (an operator product on the
// same mode, not a tensor product).

package spin

import "fmt"

// Power holds the X/Y/Z exponents of one mode inside one term.
// All-zero exponents denote the identity on that mode.
type Power struct {
	X, Y, Z int
}

// IsIdentity reports whether the mode carries no operator factor.
// Complexity: O(1).
func (p Power) IsIdentity() bool { return p.X == 0 && p.Y == 0 && p.Z == 0 }

// Term is one monomial of a spin operator: a complex coefficient and one
// Power triple per mode. len(Powers) must equal the operator's mode count.
type Term struct {
	Coeff  complex128
	Powers []Power
}

// Operator is an ordered sequence of terms over Modes spin-S modes, all
// sharing the same spin quantum number. The zero value is not usable;
// populate all three fields and Validate before use.
type Operator struct {
	Spin  Number
	Modes int
	Terms []Term
}

// NewOperator returns an empty operator over the given spin and mode count.
// Terms are appended by the caller (or via Append).
// Errors: ErrInvalidNumber, ErrModeCount.
func NewOperator(s Number, modes int) (*Operator, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if modes < 1 {
		return nil, fmt.Errorf("NewOperator(modes=%d): %w", modes, ErrModeCount)
	}

	return &Operator{Spin: s, Modes: modes}, nil
}

// Append adds one term built from a coefficient and exactly Modes power
// triples, returning the operator for chaining.
// Errors: ErrModeCount, ErrNegativePower.
func (op *Operator) Append(coeff complex128, powers ...Power) (*Operator, error) {
	if len(powers) != op.Modes {
		return nil, fmt.Errorf("Append: got %d power triples, want %d: %w",
			len(powers), op.Modes, ErrModeCount)
	}
	for _, p := range powers {
		if p.X < 0 || p.Y < 0 || p.Z < 0 {
			return nil, fmt.Errorf("Append: %w", ErrNegativePower)
		}
	}
	term := Term{Coeff: coeff, Powers: append([]Power(nil), powers...)}
	op.Terms = append(op.Terms, term)

	return op, nil
}

// Validate checks the structural invariants of the operator:
// valid spin, positive mode count, every term carrying exactly Modes
// non-negative power triples. An empty term list is structurally valid;
// whether it is mappable is the mapper's decision.
// Errors: ErrNilOperator, ErrInvalidNumber, ErrModeCount, ErrNegativePower.
// Complexity: O(terms·modes).
func (op *Operator) Validate() error {
	if op == nil {
		return ErrNilOperator
	}
	if err := op.Spin.Validate(); err != nil {
		return err
	}
	if op.Modes < 1 {
		return fmt.Errorf("Validate(modes=%d): %w", op.Modes, ErrModeCount)
	}
	for i, t := range op.Terms {
		if len(t.Powers) != op.Modes {
			return fmt.Errorf("Validate(term %d): got %d power triples, want %d: %w",
				i, len(t.Powers), op.Modes, ErrModeCount)
		}
		for _, p := range t.Powers {
			if p.X < 0 || p.Y < 0 || p.Z < 0 {
				return fmt.Errorf("Validate(term %d): %w", i, ErrNegativePower)
			}
		}
	}

	return nil
}
