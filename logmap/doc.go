// Package logmap converts spin-S operators into qubit operators via the
// logarithmic encoding: each spin mode's (2S+1)-dimensional state space is
// hosted by the minimal qubit register with 2^n ≥ 2S+1, the fundamental
// spin matrices are embedded into that register with a padded block, and
// every embedded matrix is decomposed into a weighted sum of Pauli strings.
//
// 🚀 How it works:
//
//  1. Embedding — a d×d spin matrix lands in the upper-left (or lower-right)
//     block of a 2^n×2^n matrix; the leftover diagonal carries a padding
//     value and the cross blocks stay exactly zero, so the physical and
//     padded subspaces never mix.
//  2. Basis encoding — the embedded Sx, Sy, Sz and identity matrices are
//     decomposed over the n-qubit Pauli basis (memoized per spin value).
//  3. Term composition — per mode, encoded operators multiply as
//     Xq^a·Yq^b·Zq^c; modes tensor together in reverse order (the last
//     mode becomes the leftmost factor); terms scale by their coefficients
//     and sum Pauli-string-wise.
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/spinmap/logmap"
//	  "github.com/katalvlaran/spinmap/spin"
//	)
//
//	mapper := logmap.NewMapper()               // padding 1, upper block
//	op, _ := spin.NewOperator(1, 1)            // spin-1, one mode
//	op, _ = op.Append(1, spin.Power{Z: 1})     // 1.0·Sz
//
//	qubitOp, err := mapper.Map(op)             // *pauli.SumOp over 2 qubits
//
// The whole computation is pure, synchronous and single-threaded; a Mapper
// instance is meant for one caller at a time (its memoization cache is not
// synchronized).
//
// Errors are package sentinels (ErrEmptyOperator, ErrMatrixTooLarge, …)
// plus propagated spin/pauli/cmat sentinels, matched via errors.Is.
package logmap
