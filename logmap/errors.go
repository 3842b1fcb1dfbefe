// Package logmap: sentinel error set.
// All mapping failures surface synchronously through these sentinels or
// through propagated spin/pauli/cmat sentinels; there is no retry and no
// partial result. The numeric chop is the only intentionally swallowed
// information and is a designed approximation, not an error.

package logmap

import "errors"

var (
	// ErrEmptyOperator is returned by Map for an operator with zero terms.
	// A sum over no terms has no well-defined register size, so the mapper
	// rejects it instead of inventing a zero operator.
	ErrEmptyOperator = errors.New("logmap: operator has no terms")

	// ErrMatrixTooLarge indicates a matrix whose native dimension exceeds the
	// requested qubit-register dimension during embedding.
	ErrMatrixTooLarge = errors.New("logmap: matrix does not fit the qubit register")

	// ErrUnknownLocation indicates an EmbedLocation value that is neither
	// Upper nor Lower. Defensive: unreachable when the mapper is built via
	// NewMapper, which validates options at construction.
	ErrUnknownLocation = errors.New("logmap: unknown embed location")
)
