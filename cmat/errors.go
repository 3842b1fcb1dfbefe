// SPDX-License-Identifier: MIT
// Package cmat: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the cmat
// package. All kernels return these sentinels (possibly wrapped with an
// operation tag via %w) and tests check them via errors.Is. Kernels never
// panic on user-triggered conditions.

package cmat

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (rows<=0 or cols<=0).
	// Constructors must validate before allocating.
	ErrBadShape = errors.New("cmat: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("cmat: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("cmat: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("cmat: matrix is not square")

	// ErrNilMatrix indicates that a nil *CDense (receiver or argument) was used.
	ErrNilMatrix = errors.New("cmat: nil matrix")
)
