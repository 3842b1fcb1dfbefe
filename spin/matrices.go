// Package spin: the fundamental spin matrices.
// Construction follows the standard ladder-operator formulas in the |S, m⟩
// basis with m descending from S to −S (row a ↦ m = S − a, ħ = 1):
//
//	(S₊)[a−1, a] = √(S(S+1) − m(m+1)),  m = S − a
//	Sx = (S₊ + S₋)/2,   Sy = (S₊ − S₋)/(2i),   Sz = diag(S, S−1, …, −S)
//
// S₋ is the transpose of S₊ (all ladder coefficients are real), so Sx and
// Sy are filled directly on the two off-diagonals and Sz on the diagonal.

package spin

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spinmap/cmat"
)

// ladder returns the raising coefficient √(S(S+1) − m(m+1)) that connects
// column a (state m = S−a) to row a−1 (state m+1). Complexity: O(1).
func ladder(s Number, a int) float64 {
	sf := float64(s)
	m := sf - float64(a)

	return math.Sqrt(sf*(sf+1) - m*(m+1))
}

// MatrixX returns the d×d matrix of the spin-x operator Sx.
// Stage 1 (Validate): s must be a positive half-integer.
// Stage 2 (Execute): fill both off-diagonals with the ladder coefficients
// halved; Sx is real symmetric.
// Errors: ErrInvalidNumber.
// Complexity: O(d²) (allocation dominates; d−1 entries per diagonal).
func MatrixX(s Number) (*cmat.CDense, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("MatrixX: %w", err)
	}
	d := s.Dim()
	m, err := cmat.NewCDense(d, d)
	if err != nil {
		return nil, fmt.Errorf("MatrixX: %w", err)
	}

	var half complex128
	for a := 1; a < d; a++ { // deterministic superdiagonal walk
		half = complex(ladder(s, a)/2, 0)
		_ = m.Set(a-1, a, half) // indices in range by construction
		_ = m.Set(a, a-1, half)
	}

	return m, nil
}

// MatrixY returns the d×d matrix of the spin-y operator Sy.
// Sy = (S₊ − S₋)/(2i): the superdiagonal carries −i·c/2, the subdiagonal
// +i·c/2 for ladder coefficient c; Sy is Hermitian.
// Errors: ErrInvalidNumber.
// Complexity: O(d²).
func MatrixY(s Number) (*cmat.CDense, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("MatrixY: %w", err)
	}
	d := s.Dim()
	m, err := cmat.NewCDense(d, d)
	if err != nil {
		return nil, fmt.Errorf("MatrixY: %w", err)
	}

	var half float64
	for a := 1; a < d; a++ { // deterministic superdiagonal walk
		half = ladder(s, a) / 2
		_ = m.Set(a-1, a, complex(0, -half))
		_ = m.Set(a, a-1, complex(0, +half))
	}

	return m, nil
}

// MatrixZ returns the d×d matrix of the spin-z operator Sz:
// the diagonal of m-values S, S−1, …, −S.
// Errors: ErrInvalidNumber.
// Complexity: O(d²).
func MatrixZ(s Number) (*cmat.CDense, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("MatrixZ: %w", err)
	}
	d := s.Dim()
	m, err := cmat.NewCDense(d, d)
	if err != nil {
		return nil, fmt.Errorf("MatrixZ: %w", err)
	}

	sf := float64(s)
	for a := 0; a < d; a++ { // deterministic diagonal walk
		_ = m.Set(a, a, complex(sf-float64(a), 0))
	}

	return m, nil
}
