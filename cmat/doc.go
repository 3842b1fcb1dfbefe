// Package cmat provides dense complex-valued matrices and the exact
// linear-algebra kernels needed for operator encoding: addition,
// multiplication, scaling, the Kronecker (tensor) product and the trace.
//
// ✨ Key properties:
//   - CDense stores complex128 entries in a flat row-major slice for
//     cache friendliness; all kernels walk it in fixed, deterministic order
//   - fail-fast validation: every kernel checks shapes up front and
//     returns package sentinels (ErrNilMatrix, ErrDimensionMismatch, …)
//   - no mutation of operands: every kernel allocates a fresh result
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/spinmap/cmat"
//
//	a, _ := cmat.NewCDense(2, 2)
//	_ = a.Set(0, 1, complex(0, -1))
//	_ = a.Set(1, 0, complex(0, 1))   // Pauli Y
//
//	sq, err := cmat.Mul(a, a)        // Y·Y = I
//	tr, err := cmat.Trace(sq)        // 2
//
// All operations are pure, synchronous and single-threaded; a CDense is
// safe for concurrent reads once fully constructed.
package cmat
