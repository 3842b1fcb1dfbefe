// Package spinmap encodes higher-dimensional quantum spin operators as
// weighted sums of multi-qubit Pauli strings — the logarithmic encoding,
// from exact matrix embedding to Pauli-basis decomposition.
//
// 🚀 What is spinmap?
//
//	A pure-Go library that turns a spin-S operator (2S+1 basis states)
//	into an operator on the minimal qubit register that can host it:
//	  • cmat/   — dense complex matrices: Mul, Kron, Trace, exact kernels
//	  • pauli/  — Pauli strings, weighted Pauli sums, symbolic products,
//	              Hilbert–Schmidt decomposition with chop tolerance
//	  • spin/   — spin quantum numbers, ladder-operator matrices,
//	              the term-list spin-operator input model
//	  • logmap/ — the logarithmic mapper: block embedding, basis
//	              encoding, multi-mode tensor composition
//
// ✨ Why choose spinmap?
//
//   - Deterministic – fixed loop orders, no global state, stable output
//   - Exact bookkeeping – block isolation guaranteed, chop is the only
//     intentional approximation
//   - Pure Go – no cgo, no hidden deps
//   - Small API – one Mapper, one Map call, functional options
//
// Quick sketch (spin-1, one mode):
//
//	Sz(S=1) is 3×3; two qubits give dimension 4, so Sz is embedded into
//	the top-left block with a padding value on the leftover diagonal,
//	then decomposed over the two-qubit Pauli basis:
//
//	    diag(1, 0, −1, 1)  ──►  0.25·II − 0.25·IZ + 0.25·ZI + 0.75·ZZ
//
// Dive into the per-package docs for contracts, error sentinels and
// runnable examples.
//
//	go get github.com/katalvlaran/spinmap/logmap
package spinmap
