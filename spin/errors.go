// Package spin: sentinel error set, matched by callers via errors.Is.

package spin

import "errors"

var (
	// ErrInvalidNumber indicates a spin quantum number that is not a positive
	// half-integer (2S must be a positive integer, exactly representable).
	ErrInvalidNumber = errors.New("spin: quantum number must be a positive half-integer")

	// ErrNilOperator indicates a nil *Operator where a value is required.
	ErrNilOperator = errors.New("spin: nil operator")

	// ErrModeCount indicates an operator whose mode count is non-positive or
	// a term whose power list does not match the operator's mode count.
	ErrModeCount = errors.New("spin: term power list does not match mode count")

	// ErrNegativePower indicates a negative X, Y or Z exponent in a term.
	ErrNegativePower = errors.New("spin: exponents must be non-negative")
)
