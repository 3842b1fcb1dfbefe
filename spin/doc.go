// Package spin models the spin side of the encoding: half-integer spin
// quantum numbers, the standard (2S+1)×(2S+1) spin matrices Sx, Sy, Sz
// built from ladder operators, and the term-list representation of a spin
// operator (per-term coefficient plus per-mode X/Y/Z exponents).
//
// 🚀 Conventions:
//
//	The matrices act in the |S, m⟩ basis with m descending from S to −S,
//	so row 0 is the highest-weight state and Sz = diag(S, S−1, …, −S).
//	Units are ħ = 1: for S = 1/2 the matrices are the Pauli matrices
//	scaled by 1/2, with eigenvalues ±1/2.
//
// ⚙️ Usage:
//
//	s := spin.Number(1)            // spin-1, three basis states
//	sx, err := spin.MatrixX(s)     // 3×3 complex matrix
//
//	op := &spin.Operator{          // 2.0·Sz on a single mode
//	  Spin:  s,
//	  Modes: 1,
//	  Terms: []spin.Term{{Coeff: 2, Powers: []spin.Power{{Z: 1}}}},
//	}
//	err = op.Validate()
//
// The package only describes operators; encoding them onto qubits lives in
// package logmap.
package spin
