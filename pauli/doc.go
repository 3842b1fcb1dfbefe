// Package pauli implements the qubit-side operator algebra: Pauli strings
// over {I, X, Y, Z}, weighted sums of Pauli strings (SumOp), symbolic
// operator products with exact phase bookkeeping, tensor composition, and
// the exact Hilbert–Schmidt decomposition of a 2^n×2^n complex matrix into
// a SumOp with a numerical chop.
//
// 🚀 What is a Pauli string?
//
//	An ordered word over the alphabet "IXYZ", one letter per qubit, naming
//	the tensor product of single-qubit Pauli matrices. Index 0 is the
//	leftmost letter and the MOST-significant tensor factor, so the string
//	"XZ" denotes X ⊗ Z. The 4^n strings of length n form an orthogonal
//	basis of the 2^n×2^n matrices under the trace inner product.
//
// ✨ Key features:
//   - SumOp — map from string to complex coefficient, deterministic
//     (sorted) iteration, exact-zero elimination
//   - Compose — operator product computed symbolically: stringwise
//     single-qubit products with the ±1/±i phase table, never via matrices
//   - Tensor — register concatenation (left operand most significant)
//   - Decompose — coefficient of P is trace(P†·M)/2^n for every string P,
//     with coefficients below the chop tolerance treated as exactly zero
//   - ToMatrix — exact reconstruction Σ coeff·(tensor of Pauli matrices)
//
// ⚙️ Usage:
//
//	x, _ := pauli.Single("X", 0.5)
//	y, _ := pauli.Single("Y", 0.5)
//	zy, _ := pauli.Compose(x, y)   // 0.25i·Z
//
// Errors are package sentinels (ErrBadLabel, ErrLengthMismatch, …) matched
// via errors.Is. All operations are pure; SumOp values are never mutated
// after creation.
package pauli
