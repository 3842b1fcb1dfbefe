// SPDX-License-Identifier: MIT
// Package cmat: canonical validation checks.
//
// Purpose:
//   - Provide a single source of truth for nil/shape guards.
//   - Keep kernels minimal by delegating all structural checks here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap
//     uniformly with an operation tag.
//
// All checks are pure, deterministic and allocate nothing.

package cmat

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m *CDense) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
// Returns ErrNilMatrix or ErrDimensionMismatch. Complexity: O(1).
func ValidateSameShape(a, b *CDense) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.r != b.r || a.c != b.c {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
// Returns ErrNilMatrix or ErrDimensionMismatch. Complexity: O(1).
func ValidateMulCompatible(a, b *CDense) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.c != b.r {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateSquare ensures m is non-nil and square (Rows == Cols).
// Returns ErrNilMatrix or ErrNonSquare. Complexity: O(1).
func ValidateSquare(m *CDense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return ErrNonSquare
	}

	return nil
}
