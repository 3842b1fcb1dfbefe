// Package pauli: SumOp — a weighted sum of Pauli strings.
// The zero operator is a SumOp with no terms. Coefficients that become
// exactly zero are dropped eagerly so term counts stay meaningful.

package pauli

import (
	"fmt"
	"math/cmplx"
	"sort"

	"github.com/katalvlaran/spinmap/cmat"
)

// Labels is the single-qubit Pauli alphabet in canonical order.
// The canonical order doubles as string sort order ('I'<'X'<'Y'<'Z').
const Labels = "IXYZ"

// SumOp represents Σ coeff·(tensor of single-qubit Pauli matrices):
// a mapping from length-n Pauli string to complex coefficient.
// Index 0 of a string is the leftmost, most-significant tensor factor.
// A SumOp is immutable after creation; all operations return fresh values.
type SumOp struct {
	qubits int                   // register size n ≥ 1
	coeffs map[string]complex128 // term coefficients, no exact zeros
}

// validLabel reports whether s is a non-empty word over Labels.
func validLabel(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'I', 'X', 'Y', 'Z':
		default:
			return false
		}
	}

	return true
}

// New returns the zero operator on a register of the given size.
// Errors: ErrNoQubits if qubits < 1.
// Complexity: O(1).
func New(qubits int) (*SumOp, error) {
	if qubits < 1 {
		return nil, ErrNoQubits
	}

	return &SumOp{qubits: qubits, coeffs: make(map[string]complex128)}, nil
}

// Single returns the operator coeff·P for the Pauli string s.
// Errors: ErrBadLabel if s is empty or contains a letter outside {I,X,Y,Z}.
// Complexity: O(len(s)).
func Single(s string, coeff complex128) (*SumOp, error) {
	if !validLabel(s) {
		return nil, fmt.Errorf("Single(%q): %w", s, ErrBadLabel)
	}
	op := &SumOp{qubits: len(s), coeffs: make(map[string]complex128, 1)}
	op.insert(s, coeff)

	return op, nil
}

// Identity returns the identity operator I⊗…⊗I on the given register size.
// Errors: ErrNoQubits if qubits < 1.
// Complexity: O(qubits).
func Identity(qubits int) (*SumOp, error) {
	op, err := New(qubits)
	if err != nil {
		return nil, err
	}
	id := make([]byte, qubits)
	for i := range id {
		id[i] = 'I'
	}
	op.insert(string(id), 1)

	return op, nil
}

// insert accumulates coeff into term s, eliminating exact zeros.
// Callers guarantee len(s) == op.qubits and a valid alphabet.
func (op *SumOp) insert(s string, coeff complex128) {
	c := op.coeffs[s] + coeff
	if c == 0 {
		delete(op.coeffs, s)

		return
	}
	op.coeffs[s] = c
}

// NumQubits returns the register size the operator acts on.
// Complexity: O(1).
func (op *SumOp) NumQubits() int { return op.qubits }

// Len returns the number of stored terms (exact zeros are never stored).
// Complexity: O(1).
func (op *SumOp) Len() int { return len(op.coeffs) }

// Coefficient returns the coefficient of the Pauli string s, or zero when
// the term is absent. Complexity: O(1).
func (op *SumOp) Coefficient(s string) complex128 { return op.coeffs[s] }

// Strings returns all stored Pauli strings in sorted (canonical) order.
// The sorted order makes iteration and printing deterministic.
// Complexity: O(t·log t) for t terms.
func (op *SumOp) Strings() []string {
	out := make([]string, 0, len(op.coeffs))
	for s := range op.coeffs {
		out = append(out, s)
	}
	sort.Strings(out)

	return out
}

// Clone returns a deep copy of the operator.
// Complexity: O(t) for t terms.
func (op *SumOp) Clone() *SumOp {
	cp := &SumOp{qubits: op.qubits, coeffs: make(map[string]complex128, len(op.coeffs))}
	for s, c := range op.coeffs {
		cp.coeffs[s] = c
	}

	return cp
}

// Scale returns alpha·op as a fresh operator. Scaling by zero yields the
// zero operator. Complexity: O(t).
func (op *SumOp) Scale(alpha complex128) *SumOp {
	res := &SumOp{qubits: op.qubits, coeffs: make(map[string]complex128, len(op.coeffs))}
	if alpha == 0 {
		return res
	}
	for s, c := range op.coeffs {
		res.coeffs[s] = c * alpha
	}

	return res
}

// Chop returns a fresh operator with every coefficient whose magnitude is
// below tol removed. A negative tol is treated as its absolute value.
// This is the designed approximation of the encoding — the only place
// information is intentionally discarded. Complexity: O(t).
func (op *SumOp) Chop(tol float64) *SumOp {
	if tol < 0 {
		tol = -tol
	}
	res := &SumOp{qubits: op.qubits, coeffs: make(map[string]complex128, len(op.coeffs))}
	for s, c := range op.coeffs {
		if cmplx.Abs(c) < tol {
			continue // below tolerance ⇒ treated as exactly zero
		}
		res.coeffs[s] = c
	}

	return res
}

// Add returns a + b via Pauli-string-wise addition of coefficients.
// Errors: ErrNilOperator, ErrLengthMismatch.
// Complexity: O(t_a + t_b).
func Add(a, b *SumOp) (*SumOp, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("Add: %w", ErrNilOperator)
	}
	if a.qubits != b.qubits {
		return nil, fmt.Errorf("Add: %w", ErrLengthMismatch)
	}
	res := a.Clone()
	for s, c := range b.coeffs {
		res.insert(s, c)
	}

	return res, nil
}

// Tensor returns a ⊗ b: strings concatenate (a leftmost/most significant),
// coefficients multiply. Tensoring with a zero operator yields the zero
// operator on the combined register.
// Errors: ErrNilOperator.
// Complexity: O(t_a·t_b).
func Tensor(a, b *SumOp) (*SumOp, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("Tensor: %w", ErrNilOperator)
	}
	res := &SumOp{
		qubits: a.qubits + b.qubits,
		coeffs: make(map[string]complex128, len(a.coeffs)*len(b.coeffs)),
	}
	for sa, ca := range a.coeffs {
		for sb, cb := range b.coeffs {
			res.insert(sa+sb, ca*cb)
		}
	}

	return res, nil
}

// ToMatrix reconstructs the dense 2^n×2^n matrix Σ coeff·(tensor of Pauli
// matrices). Each Pauli string has exactly one nonzero entry per row, so
// the reconstruction accumulates 2^n entries per term instead of
// materializing full Kronecker products.
// Complexity: O(t·n·2^n) time, O(4^n) space for the result.
func (op *SumOp) ToMatrix() (*cmat.CDense, error) {
	dim := 1 << op.qubits
	res, err := cmat.NewCDense(dim, dim)
	if err != nil {
		return nil, err
	}

	var (
		row, col int
		phase    complex128
		cur      complex128
	)
	for _, s := range op.Strings() { // sorted order for determinism
		coeff := op.coeffs[s]
		for row = 0; row < dim; row++ {
			col, phase = stringRowEntry(s, row)
			cur, err = res.At(row, col)
			if err != nil {
				return nil, fmt.Errorf("ToMatrix: %w", err)
			}
			if err = res.Set(row, col, cur+coeff*phase); err != nil {
				return nil, fmt.Errorf("ToMatrix: %w", err)
			}
		}
	}

	return res, nil
}

// stringRowEntry returns, for the tensor-product matrix of Pauli string s,
// the unique nonzero column of the given row together with its value.
// Each single-qubit Pauli has one nonzero per row:
//
//	I: (b→b, 1)   X: (b→1−b, 1)   Y: (0→1, −i / 1→0, +i)   Z: (b→b, ±1)
//
// Qubit 0 owns the most-significant bit of the row index.
// Complexity: O(n).
func stringRowEntry(s string, row int) (col int, phase complex128) {
	n := len(s)
	phase = 1
	for q := 0; q < n; q++ {
		b := (row >> (n - 1 - q)) & 1 // this qubit's row bit
		switch s[q] {
		case 'I':
			col = col<<1 | b
		case 'X':
			col = col<<1 | (1 - b)
		case 'Y':
			col = col<<1 | (1 - b)
			if b == 0 {
				phase *= complex(0, -1)
			} else {
				phase *= complex(0, 1)
			}
		case 'Z':
			col = col<<1 | b
			if b == 1 {
				phase = -phase
			}
		}
	}

	return col, phase
}
