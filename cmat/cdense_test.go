// SPDX-License-Identifier: MIT

// Package cmat_test contains unit tests for the CDense matrix type.
package cmat_test

import (
	"testing"

	"github.com/katalvlaran/spinmap/cmat"
	"github.com/stretchr/testify/require"
)

// TestNewCDenseInvalidDimensions ensures NewCDense rejects non-positive dimensions.
func TestNewCDenseInvalidDimensions(t *testing.T) {
	_, err := cmat.NewCDense(0, 3)             // zero rows
	require.ErrorIs(t, err, cmat.ErrBadShape)  // expect ErrBadShape

	_, err = cmat.NewCDense(3, -1)             // negative columns
	require.ErrorIs(t, err, cmat.ErrBadShape)  // expect ErrBadShape
}

// TestRowsCols verifies Rows() and Cols() report the construction shape.
func TestRowsCols(t *testing.T) {
	m, err := cmat.NewCDense(2, 5) // create a 2x5 matrix
	require.NoError(t, err)        // valid dimensions must succeed

	require.Equal(t, 2, m.Rows()) // Rows() matches construction
	require.Equal(t, 5, m.Cols()) // Cols() matches construction
}

// TestAtSetOutOfRange ensures At() and Set() reject invalid indices.
func TestAtSetOutOfRange(t *testing.T) {
	m, err := cmat.NewCDense(2, 2) // create a 2x2 matrix
	require.NoError(t, err)        // creation succeeded

	_, err = m.At(-1, 0)                        // negative row
	require.ErrorIs(t, err, cmat.ErrOutOfRange) // expect ErrOutOfRange

	_, err = m.At(0, 2)                         // column past the edge
	require.ErrorIs(t, err, cmat.ErrOutOfRange) // expect ErrOutOfRange

	err = m.Set(2, 0, 1)                        // row past the edge
	require.ErrorIs(t, err, cmat.ErrOutOfRange) // expect ErrOutOfRange

	err = m.Set(0, -1, 1)                       // negative column
	require.ErrorIs(t, err, cmat.ErrOutOfRange) // expect ErrOutOfRange
}

// TestSetThenAt validates a round trip through Set() and At().
func TestSetThenAt(t *testing.T) {
	m, err := cmat.NewCDense(2, 3) // create a 2x3 matrix
	require.NoError(t, err)        // creation succeeded

	want := complex(1.5, -2.5)       // a genuinely complex value
	require.NoError(t, m.Set(1, 2, want)) // store it

	got, err := m.At(1, 2)   // read it back
	require.NoError(t, err)  // read succeeded
	require.Equal(t, want, got) // stored and retrieved values agree
}

// TestCloneIndependence ensures Clone() is a deep copy sharing no storage.
func TestCloneIndependence(t *testing.T) {
	m, err := cmat.NewCDense(2, 2) // create a 2x2 matrix
	require.NoError(t, err)        // creation succeeded
	require.NoError(t, m.Set(0, 0, 1))

	cp := m.Clone()                      // deep copy
	require.NoError(t, cp.Set(0, 0, 9)) // mutate the copy only

	orig, err := m.At(0, 0)               // original element
	require.NoError(t, err)               // read succeeded
	require.Equal(t, complex128(1), orig) // original is untouched
}

// TestIdentityScale verifies Identity(n, scale) writes scale on the diagonal only.
func TestIdentityScale(t *testing.T) {
	id, err := cmat.Identity(3, complex(2, 0)) // 2·I on a 3x3 register
	require.NoError(t, err)                    // creation succeeded

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, errAt := id.At(i, j) // probe every entry
			require.NoError(t, errAt)
			if i == j {
				require.Equal(t, complex(2, 0), v) // diagonal carries the scale
			} else {
				require.Equal(t, complex128(0), v) // off-diagonal stays zero
			}
		}
	}

	_, err = cmat.Identity(0, 1)              // degenerate size
	require.ErrorIs(t, err, cmat.ErrBadShape) // expect ErrBadShape
}
