// Package logmap: block embedding of a small matrix into a qubit register.

package logmap

import (
	"fmt"

	"github.com/katalvlaran/spinmap/cmat"
)

// embed places a d×d matrix into a 2^numQubits-dimensional block matrix.
//
// Let full = 2^numQubits and diff = full − d:
//   - diff == 0 — the matrix already fills the register; returned unchanged.
//   - diff <  0 — the matrix cannot fit; ErrMatrixTooLarge.
//   - diff >  0 — block-diagonal assembly: the matrix occupies the corner
//     selected by the configured location, the complementary diagonal
//     carries padding·I(diff), and the cross blocks stay exactly zero, so
//     the physical and padded subspaces never mix.
//
// Pure function of the input and the mapper's frozen configuration.
// Complexity: O(full²) time and space (allocation dominates).
func (m *Mapper) embed(mat *cmat.CDense, numQubits int) (*cmat.CDense, error) {
	if err := cmat.ValidateSquare(mat); err != nil {
		return nil, fmt.Errorf("embed: %w", err)
	}

	full := 1 << numQubits
	d := mat.Rows()
	diff := full - d
	if diff == 0 {
		return mat, nil // exact fit, no padding block exists
	}
	if diff < 0 {
		return nil, fmt.Errorf("embed: %d-dim matrix into %d qubit(s): %w",
			d, numQubits, ErrMatrixTooLarge)
	}

	// Resolve block offsets from the configured location.
	var blockOff, padOff int // top-left corner of physical / padding block
	switch m.location {
	case Upper:
		blockOff, padOff = 0, d
	case Lower:
		blockOff, padOff = diff, 0
	default:
		// Unreachable when constructed via NewMapper; kept defensive.
		return nil, fmt.Errorf("embed: %w", ErrUnknownLocation)
	}

	res, err := cmat.NewCDense(full, full)
	if err != nil {
		return nil, fmt.Errorf("embed: %w", err)
	}

	// Copy the physical block in fixed i→j order.
	var (
		i, j int
		v    complex128
	)
	for i = 0; i < d; i++ {
		for j = 0; j < d; j++ {
			v, err = mat.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("embed: %w", err)
			}
			if err = res.Set(blockOff+i, blockOff+j, v); err != nil {
				return nil, fmt.Errorf("embed: %w", err)
			}
		}
	}

	// Fill the padded diagonal with the configured padding value.
	for i = 0; i < diff; i++ {
		if err = res.Set(padOff+i, padOff+i, m.padding); err != nil {
			return nil, fmt.Errorf("embed: %w", err)
		}
	}

	return res, nil
}
