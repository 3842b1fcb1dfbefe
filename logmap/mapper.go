// Package logmap: the Mapper facade and term composition.

package logmap

import (
	"github.com/katalvlaran/spinmap/pauli"
	"github.com/katalvlaran/spinmap/spin"
)

// Mapper converts spin operators to qubit operators via the logarithmic
// encoding. Configuration (padding value, embed location, chop tolerance)
// is fixed at construction; the per-spin encoding cache is the only
// internal state and is safe for one caller at a time (no locking).
type Mapper struct {
	padding  complex128
	location EmbedLocation
	chop     float64

	// cache memoizes encoded basis operators per spin value; it never
	// invalidates because the configuration above is immutable.
	cache map[spin.Number]*basisOps
}

// NewMapper builds a Mapper from the documented defaults plus the given
// options (padding 1, Upper location, DefaultChop when none are passed).
// Invalid option values panic inside the With* constructors, so a
// constructed Mapper is always internally consistent.
func NewMapper(opts ...Option) *Mapper {
	o := gatherOptions(opts...)

	return &Mapper{
		padding:  o.padding,
		location: o.location,
		chop:     o.chop,
		cache:    make(map[spin.Number]*basisOps),
	}
}

// Map encodes the spin operator as a weighted sum of Pauli strings.
//
// Algorithm Outline:
//  1. Validate the operator (spin value, mode count, exponent triples);
//     reject an empty term list with ErrEmptyOperator.
//  2. Encode the fundamental operators for the operator's spin (cached).
//  3. Per term: build each mode's local operator — the encoded identity
//     for an all-zero triple, otherwise Xq^a·Yq^b·Zq^c composed via
//     repeated operator products in that fixed order; tensor the locals
//     across modes in REVERSE mode order (the last mode becomes the
//     leftmost, most-significant factor); scale by the term coefficient.
//  4. Sum all term operators Pauli-string-wise and chop near-zero totals.
//
// Pure transformation: no side effects beyond the memoization cache; any
// failure aborts the whole mapping with the originating error and no
// partial result.
//
// Errors: spin.ErrNilOperator, spin.ErrInvalidNumber, spin.ErrModeCount,
// spin.ErrNegativePower, ErrEmptyOperator; pauli/cmat errors propagate.
// Complexity: O(terms·modes) algebra operations on top of one basis
// encoding per distinct spin value.
func (m *Mapper) Map(op *spin.Operator) (*pauli.SumOp, error) {
	if err := op.Validate(); err != nil {
		return nil, err
	}
	if len(op.Terms) == 0 {
		return nil, ErrEmptyOperator
	}

	basis, err := m.encode(op.Spin)
	if err != nil {
		return nil, err
	}

	var (
		total *pauli.SumOp
		reg   *pauli.SumOp
		local *pauli.SumOp
	)
	for _, term := range op.Terms {
		// Tensor per-mode locals in reverse mode order: fold from the last
		// mode down so it ends up as the leftmost factor.
		reg = nil
		for mode := op.Modes - 1; mode >= 0; mode-- {
			local, err = m.localOperator(basis, term.Powers[mode])
			if err != nil {
				return nil, err
			}
			if reg == nil {
				reg = local

				continue
			}
			reg, err = pauli.Tensor(reg, local)
			if err != nil {
				return nil, err
			}
		}

		// Scale by the term coefficient and accumulate.
		reg = reg.Scale(term.Coeff)
		if total == nil {
			total = reg

			continue
		}
		total, err = pauli.Add(total, reg)
		if err != nil {
			return nil, err
		}
	}

	return total.Chop(m.chop), nil
}

// localOperator builds one mode's operator from its exponent triple:
// the encoded identity when all exponents are zero, otherwise the ordered
// product of the powered encoded axes (X first, then Y, then Z; factors
// with zero exponent are omitted). Powers mean operator composition —
// repeated matrix products — never elementwise squaring.
// Complexity: O(a+b+c) compositions.
func (m *Mapper) localOperator(b *basisOps, p spin.Power) (*pauli.SumOp, error) {
	if p.IsIdentity() {
		return b.id, nil
	}

	var (
		acc     *pauli.SumOp
		powered *pauli.SumOp
		err     error
	)
	// Fixed X→Y→Z factor order.
	for _, factor := range []struct {
		op  *pauli.SumOp
		exp int
	}{{b.x, p.X}, {b.y, p.Y}, {b.z, p.Z}} {
		if factor.exp == 0 {
			continue // omitted factor
		}
		powered, err = pauli.Pow(factor.op, factor.exp)
		if err != nil {
			return nil, err
		}
		if acc == nil {
			acc = powered

			continue
		}
		acc, err = pauli.Compose(acc, powered)
		if err != nil {
			return nil, err
		}
	}

	return acc, nil
}
