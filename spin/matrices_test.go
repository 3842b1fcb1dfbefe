// Package spin_test contains unit tests for the fundamental spin matrices.
package spin_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/spinmap/cmat"
	"github.com/katalvlaran/spinmap/spin"
	"github.com/stretchr/testify/require"
)

// entry reads one element, failing the test on out-of-range access.
func entry(t *testing.T, m *cmat.CDense, i, j int) complex128 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// TestSpinHalfMatricesAreHalfPaulis verifies the S=1/2 matrices equal the
// Pauli matrices scaled by 1/2.
func TestSpinHalfMatricesAreHalfPaulis(t *testing.T) {
	sx, err := spin.MatrixX(0.5)
	require.NoError(t, err)
	require.Equal(t, complex128(0.5), entry(t, sx, 0, 1)) // X/2 off-diagonal
	require.Equal(t, complex128(0.5), entry(t, sx, 1, 0))
	require.Equal(t, complex128(0), entry(t, sx, 0, 0)) // zero diagonal

	sy, err := spin.MatrixY(0.5)
	require.NoError(t, err)
	require.Equal(t, complex(0, -0.5), entry(t, sy, 0, 1)) // −i/2 above
	require.Equal(t, complex(0, 0.5), entry(t, sy, 1, 0))  // +i/2 below

	sz, err := spin.MatrixZ(0.5)
	require.NoError(t, err)
	require.Equal(t, complex128(0.5), entry(t, sz, 0, 0)) // m = +1/2
	require.Equal(t, complex128(-0.5), entry(t, sz, 1, 1)) // m = −1/2
	require.Equal(t, complex128(0), entry(t, sz, 0, 1))
}

// TestSpinOneMatrices checks the 3×3 matrices against the textbook values:
// Sz = diag(1, 0, −1) and the Sx/Sy off-diagonals carry √2/2.
func TestSpinOneMatrices(t *testing.T) {
	sz, err := spin.MatrixZ(1)
	require.NoError(t, err)
	require.Equal(t, 3, sz.Rows())
	require.Equal(t, complex128(1), entry(t, sz, 0, 0))
	require.Equal(t, complex128(0), entry(t, sz, 1, 1))
	require.Equal(t, complex128(-1), entry(t, sz, 2, 2))

	half := math.Sqrt2 / 2 // the spin-1 ladder coefficient halved
	sx, err := spin.MatrixX(1)
	require.NoError(t, err)
	require.InDelta(t, half, real(entry(t, sx, 0, 1)), 1e-15)
	require.InDelta(t, half, real(entry(t, sx, 2, 1)), 1e-15)
	require.Equal(t, complex128(0), entry(t, sx, 0, 2)) // no direct Δm=2 coupling

	sy, err := spin.MatrixY(1)
	require.NoError(t, err)
	require.InDelta(t, -half, imag(entry(t, sy, 0, 1)), 1e-15) // −i·c/2 above
	require.InDelta(t, half, imag(entry(t, sy, 1, 0)), 1e-15)  // +i·c/2 below
}

// TestCommutatorAlgebra verifies [Sx, Sy] = i·Sz for several spins, the
// defining relation of the angular-momentum algebra.
func TestCommutatorAlgebra(t *testing.T) {
	for _, s := range []spin.Number{0.5, 1, 1.5, 2} {
		sx, err := spin.MatrixX(s)
		require.NoError(t, err)
		sy, err := spin.MatrixY(s)
		require.NoError(t, err)
		sz, err := spin.MatrixZ(s)
		require.NoError(t, err)

		xy, err := cmat.Mul(sx, sy)
		require.NoError(t, err)
		yx, err := cmat.Mul(sy, sx)
		require.NoError(t, err)
		comm, err := cmat.Sub(xy, yx) // Sx·Sy − Sy·Sx
		require.NoError(t, err)

		iz, err := cmat.Scale(sz, complex(0, 1)) // i·Sz
		require.NoError(t, err)
		require.True(t, cmat.AllClose(comm, iz, 1e-12), "S=%v commutator", s)
	}
}

// TestCasimirInvariant verifies Sx² + Sy² + Sz² = S(S+1)·I.
func TestCasimirInvariant(t *testing.T) {
	for _, s := range []spin.Number{0.5, 1, 2.5} {
		sx, err := spin.MatrixX(s)
		require.NoError(t, err)
		sy, err := spin.MatrixY(s)
		require.NoError(t, err)
		sz, err := spin.MatrixZ(s)
		require.NoError(t, err)

		xx, err := cmat.Mul(sx, sx)
		require.NoError(t, err)
		yy, err := cmat.Mul(sy, sy)
		require.NoError(t, err)
		zz, err := cmat.Mul(sz, sz)
		require.NoError(t, err)

		sum, err := cmat.Add(xx, yy)
		require.NoError(t, err)
		sum, err = cmat.Add(sum, zz)
		require.NoError(t, err)

		sf := float64(s)
		want, err := cmat.Identity(s.Dim(), complex(sf*(sf+1), 0))
		require.NoError(t, err)
		require.True(t, cmat.AllClose(sum, want, 1e-12), "S=%v Casimir", s)
	}
}

// TestMatricesRejectInvalidSpin ensures all three constructors validate S.
func TestMatricesRejectInvalidSpin(t *testing.T) {
	_, err := spin.MatrixX(0.3)
	require.ErrorIs(t, err, spin.ErrInvalidNumber)

	_, err = spin.MatrixY(0)
	require.ErrorIs(t, err, spin.ErrInvalidNumber)

	_, err = spin.MatrixZ(-1)
	require.ErrorIs(t, err, spin.ErrInvalidNumber)
}
