// Package pauli_test contains unit tests for symbolic operator products.
package pauli_test

import (
	"testing"

	"github.com/katalvlaran/spinmap/pauli"
	"github.com/stretchr/testify/require"
)

// single builds a unit-weight single-string operator, failing the test on error.
func single(t *testing.T, s string) *pauli.SumOp {
	t.Helper()
	op, err := pauli.Single(s, 1)
	require.NoError(t, err)

	return op
}

// TestComposePhaseTable walks the full single-qubit multiplication table
// through Compose: products of distinct non-identity labels pick up ±i,
// identical labels square to I, and I is neutral.
func TestComposePhaseTable(t *testing.T) {
	i := complex(0, 1)
	cases := []struct {
		a, b  string     // operands
		prod  string     // expected product string
		phase complex128 // expected phase
	}{
		{"X", "Y", "Z", i},  // cyclic
		{"Y", "Z", "X", i},  // cyclic
		{"Z", "X", "Y", i},  // cyclic
		{"Y", "X", "Z", -i}, // anti-cyclic
		{"Z", "Y", "X", -i}, // anti-cyclic
		{"X", "Z", "Y", -i}, // anti-cyclic
		{"X", "X", "I", 1},  // involution
		{"Y", "Y", "I", 1},  // involution
		{"Z", "Z", "I", 1},  // involution
		{"I", "Y", "Y", 1},  // left identity
		{"Z", "I", "Z", 1},  // right identity
	}
	for _, tc := range cases {
		got, err := pauli.Compose(single(t, tc.a), single(t, tc.b))
		require.NoError(t, err, "%s·%s", tc.a, tc.b)
		require.Equal(t, 1, got.Len(), "%s·%s must stay a single string", tc.a, tc.b)
		require.Equal(t, tc.phase, got.Coefficient(tc.prod), "%s·%s", tc.a, tc.b)
	}
}

// TestComposeLetterwise verifies multi-qubit products multiply phases across
// positions: (X⊗Z)·(Y⊗Z) = (iZ)⊗I = i·(Z⊗I).
func TestComposeLetterwise(t *testing.T) {
	got, err := pauli.Compose(single(t, "XZ"), single(t, "YZ"))
	require.NoError(t, err)
	require.Equal(t, 1, got.Len())
	require.Equal(t, complex(0, 1), got.Coefficient("ZI")) // phase i from the first slot
}

// TestComposeDistributes verifies Compose distributes over sums with
// cancellation: (X+Y)·(X−Y) = X² − XY + YX − Y² = −2iZ.
func TestComposeDistributes(t *testing.T) {
	x := single(t, "X")
	y := single(t, "Y")

	left, err := pauli.Add(x, y) // X + Y
	require.NoError(t, err)
	right, err := pauli.Add(x, y.Scale(-1)) // X − Y
	require.NoError(t, err)

	got, err := pauli.Compose(left, right)
	require.NoError(t, err)
	require.Equal(t, 1, got.Len())                        // I terms cancel exactly
	require.Equal(t, complex(0, -2), got.Coefficient("Z")) // −iZ − iZ
}

// TestComposeRejectsMismatch ensures Compose validates operand registers.
func TestComposeRejectsMismatch(t *testing.T) {
	_, err := pauli.Compose(single(t, "X"), single(t, "XX")) // 1 vs 2 qubits
	require.ErrorIs(t, err, pauli.ErrLengthMismatch)         // expect ErrLengthMismatch

	_, err = pauli.Compose(nil, single(t, "X"))   // nil operand
	require.ErrorIs(t, err, pauli.ErrNilOperator) // expect ErrNilOperator
}

// TestPow verifies repeated composition: X² = I, X³ = X, and the exponent guard.
func TestPow(t *testing.T) {
	x := single(t, "X")

	sq, err := pauli.Pow(x, 2) // X·X
	require.NoError(t, err)
	require.Equal(t, complex128(1), sq.Coefficient("I"))

	cube, err := pauli.Pow(x, 3) // X·X·X
	require.NoError(t, err)
	require.Equal(t, complex128(1), cube.Coefficient("X"))

	one, err := pauli.Pow(x, 1) // first power clones
	require.NoError(t, err)
	require.Equal(t, complex128(1), one.Coefficient("X"))

	_, err = pauli.Pow(x, 0)                      // exponents start at 1
	require.ErrorIs(t, err, pauli.ErrBadExponent) // expect ErrBadExponent

	_, err = pauli.Pow(nil, 2)                    // nil operand
	require.ErrorIs(t, err, pauli.ErrNilOperator) // expect ErrNilOperator
}
