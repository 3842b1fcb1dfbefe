// Package logmap: basis encoding of one spin value.

package logmap

import (
	"fmt"

	"github.com/katalvlaran/spinmap/cmat"
	"github.com/katalvlaran/spinmap/pauli"
	"github.com/katalvlaran/spinmap/spin"
)

// basisOps bundles the four encoded fundamental operators of one spin
// value. The set is derived once per spin, cached on the mapper and never
// mutated afterwards.
type basisOps struct {
	x, y, z, id *pauli.SumOp
}

// encode produces the logarithmic encoding of the fundamental operators
// for spin s: the d×d spin matrices Sx, Sy, Sz and the d×d identity are
// embedded into the minimal qubit register (n = ceil(log2(d))) and each
// embedded matrix is decomposed over the n-qubit Pauli basis with the
// configured chop.
//
// Memoized per spin value: many terms typically share one spin, and the
// mapper's configuration is immutable, so a cached encoding never goes
// stale.
//
// Errors: spin.ErrInvalidNumber; embedding/decomposition failures
// propagate unchanged.
// Complexity: first call O(4^n·n·2^n); cached calls O(1).
func (m *Mapper) encode(s spin.Number) (*basisOps, error) {
	if b, ok := m.cache[s]; ok {
		return b, nil
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	n := s.Qubits()

	// Gather the four fundamental d×d matrices in fixed X, Y, Z, I order.
	sx, err := spin.MatrixX(s)
	if err != nil {
		return nil, err
	}
	sy, err := spin.MatrixY(s)
	if err != nil {
		return nil, err
	}
	sz, err := spin.MatrixZ(s)
	if err != nil {
		return nil, err
	}
	id, err := cmat.Identity(s.Dim(), 1)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	// Embed then decompose each matrix.
	encoded := make([]*pauli.SumOp, 0, 4)
	for _, mat := range []*cmat.CDense{sx, sy, sz, id} {
		emb, embErr := m.embed(mat, n)
		if embErr != nil {
			return nil, embErr
		}
		dec, decErr := pauli.Decompose(emb, m.chop)
		if decErr != nil {
			return nil, decErr
		}
		encoded = append(encoded, dec)
	}

	b := &basisOps{x: encoded[0], y: encoded[1], z: encoded[2], id: encoded[3]}
	m.cache[s] = b

	return b, nil
}
