// Package pauli: sentinel error set. All operations return these sentinels
// (possibly wrapped with context via %w); callers match with errors.Is.

package pauli

import "errors"

var (
	// ErrNilOperator indicates that a nil *SumOp was passed where a value is required.
	ErrNilOperator = errors.New("pauli: nil operator")

	// ErrNoQubits indicates a requested register of fewer than one qubit.
	ErrNoQubits = errors.New("pauli: operator needs at least one qubit")

	// ErrBadLabel indicates a Pauli string containing a letter outside {I,X,Y,Z}
	// or an empty string.
	ErrBadLabel = errors.New("pauli: invalid Pauli string")

	// ErrLengthMismatch indicates operands acting on registers of different sizes
	// where equal sizes are required (Add, Compose).
	ErrLengthMismatch = errors.New("pauli: qubit count mismatch")

	// ErrNotPowerOfTwo indicates a decomposition input whose dimension is not a
	// positive power of two (a 2^n×2^n matrix is required).
	ErrNotPowerOfTwo = errors.New("pauli: matrix dimension is not a power of two")

	// ErrBadExponent indicates a non-positive exponent passed to Pow.
	ErrBadExponent = errors.New("pauli: exponent must be positive")
)
