// Package pauli: symbolic operator products.
// The product of two Pauli strings is again a single Pauli string times a
// phase in {±1, ±i}, so operator composition never needs matrices: it is
// computed letterwise with the phase table below.

package pauli

import "fmt"

// mulLabel multiplies two single-qubit Pauli labels, returning the product
// label and its phase:
//
//	I·P = P·I = P           (phase 1)
//	P·P = I                 (phase 1)
//	X·Y = iZ   Y·X = −iZ
//	Y·Z = iX   Z·Y = −iX
//	Z·X = iY   X·Z = −iY
//
// Complexity: O(1).
func mulLabel(a, b byte) (byte, complex128) {
	if a == 'I' {
		return b, 1
	}
	if b == 'I' {
		return a, 1
	}
	if a == b {
		return 'I', 1
	}

	// The two distinct non-identity labels multiply to the third, with
	// phase +i for cyclic order X→Y→Z→X and −i for anti-cyclic order.
	third := 'X' + 'Y' + 'Z' - rune(a) - rune(b)
	cyclic := (a == 'X' && b == 'Y') || (a == 'Y' && b == 'Z') || (a == 'Z' && b == 'X')
	if cyclic {
		return byte(third), complex(0, 1)
	}

	return byte(third), complex(0, -1)
}

// mulString multiplies two equal-length Pauli strings letterwise,
// accumulating the overall phase. Complexity: O(n).
func mulString(a, b string) (string, complex128) {
	out := make([]byte, len(a))
	phase := complex128(1)
	var ph complex128
	for q := 0; q < len(a); q++ {
		out[q], ph = mulLabel(a[q], b[q])
		phase *= ph
	}

	return string(out), phase
}

// Compose returns the operator product a·b (matrix composition, not tensor):
// every term pair multiplies stringwise with its phase, and like strings
// merge by coefficient addition. Exact cancellations are eliminated.
// Errors: ErrNilOperator, ErrLengthMismatch.
// Complexity: O(t_a·t_b·n).
func Compose(a, b *SumOp) (*SumOp, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("Compose: %w", ErrNilOperator)
	}
	if a.qubits != b.qubits {
		return nil, fmt.Errorf("Compose: %w", ErrLengthMismatch)
	}

	res := &SumOp{qubits: a.qubits, coeffs: make(map[string]complex128)}
	var (
		s     string
		phase complex128
	)
	for sa, ca := range a.coeffs {
		for sb, cb := range b.coeffs {
			s, phase = mulString(sa, sb)
			res.insert(s, ca*cb*phase)
		}
	}

	return res, nil
}

// Pow returns op composed with itself k times (op^k as an operator product).
// k must be ≥ 1; k == 1 returns a clone.
// Complexity: O(k) compositions.
func Pow(op *SumOp, k int) (*SumOp, error) {
	if op == nil {
		return nil, fmt.Errorf("Pow: %w", ErrNilOperator)
	}
	if k < 1 {
		return nil, fmt.Errorf("Pow(%d): %w", k, ErrBadExponent)
	}

	acc := op.Clone()
	var err error
	for i := 1; i < k; i++ { // repeated application, fixed order
		acc, err = Compose(acc, op)
		if err != nil {
			return nil, err
		}
	}

	return acc, nil
}
