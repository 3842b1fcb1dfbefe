// Package pauli: exact Hilbert–Schmidt decomposition.
// Any 2^n×2^n complex matrix M expands uniquely over the Pauli-string
// basis as M = Σ_P c_P·P with c_P = trace(P†·M)/2^n. Pauli strings are
// Hermitian, so P† = P and the coefficient reduces to trace(P·M)/2^n.

package pauli

import (
	"fmt"
	"math/bits"
	"math/cmplx"

	"github.com/katalvlaran/spinmap/cmat"
)

// Decompose expands the square matrix m over the n-qubit Pauli basis.
//
// Algorithm Outline:
//  1. Validate: m non-nil, square, dim = 2^n for some n ≥ 1.
//  2. For every one of the 4^n Pauli strings P (enumerated in canonical
//     I<X<Y<Z order): trace(P·M) = Σ_row P[row, col(row)]·M[col(row), row],
//     using the fact that P has exactly one nonzero entry per row.
//  3. coeff = trace(P·M)/2^n; coefficients with |coeff| < chop are treated
//     as exactly zero and dropped (a negative chop is treated as its
//     absolute value).
//
// The result reconstructs m exactly (up to chop) via (*SumOp).ToMatrix.
//
// Errors:
//   - cmat.ErrNilMatrix / cmat.ErrNonSquare — structural input defects.
//   - ErrNotPowerOfTwo — dimension is not a positive power of two.
//
// Complexity: Time O(4^n · n · 2^n), Space O(t) for t surviving terms.
func Decompose(m *cmat.CDense, chop float64) (*SumOp, error) {
	// Validate structure via cmat's canonical validator.
	if err := cmat.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("Decompose: %w", err)
	}
	dim := m.Rows()
	if dim < 2 || dim&(dim-1) != 0 {
		return nil, fmt.Errorf("Decompose(dim=%d): %w", dim, ErrNotPowerOfTwo)
	}
	n := bits.Len(uint(dim)) - 1 // dim == 2^n
	if chop < 0 {
		chop = -chop
	}

	res := &SumOp{qubits: n, coeffs: make(map[string]complex128)}

	var (
		word       uint64     // base-4 encoding of the current Pauli string
		buf        = make([]byte, n)
		row, col   int
		phase, tr  complex128
		mv         complex128
		coeff      complex128
		err        error
		totalWords = uint64(1) << (2 * n) // 4^n strings
	)
	for word = 0; word < totalWords; word++ {
		// Decode the string: qubit q takes digit (word >> 2(n−1−q)) & 3,
		// so ascending word order enumerates strings in canonical order.
		for q := 0; q < n; q++ {
			buf[q] = Labels[(word>>(2*uint(n-1-q)))&3]
		}
		s := string(buf)

		// trace(P·M): each row of P holds a single nonzero entry.
		tr = 0
		for row = 0; row < dim; row++ {
			col, phase = stringRowEntry(s, row)
			mv, err = m.At(col, row)
			if err != nil {
				return nil, fmt.Errorf("Decompose: %w", err)
			}
			tr += phase * mv
		}

		coeff = tr / complex(float64(dim), 0)
		if cmplx.Abs(coeff) < chop {
			continue // numerical noise ⇒ exactly zero
		}
		res.insert(s, coeff)
	}

	return res, nil
}
