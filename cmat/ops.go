// SPDX-License-Identifier: MIT
// Package cmat: linear-algebra kernels over CDense.
// Every kernel performs strict fail-fast validation, allocates a fresh
// result, never mutates its operands, and walks memory in a fixed order so
// results are bit-for-bit reproducible.

package cmat

import (
	"fmt"
	"math/cmplx"
)

// Operation name constants for unified error wrapping (no magic strings).
const (
	opAdd   = "Add"
	opSub   = "Sub"
	opMul   = "Mul"
	opScale = "Scale"
	opKron  = "Kron"
	opTrace = "Trace"
)

// cmatErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func cmatErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation and allocation.
// Complexity: O(r*c) time and space.
func addSub(a, b *CDense, sign complex128, opTag string) (*CDense, error) {
	// Validate shapes match.
	if err := ValidateSameShape(a, b); err != nil {
		return nil, cmatErrorf(opTag, err)
	}

	// Allocate result and run a single flat loop (deterministic 0..n-1).
	res, err := NewCDense(a.r, a.c)
	if err != nil {
		return nil, cmatErrorf(opTag, err)
	}
	n := a.r * a.c
	for idx := 0; idx < n; idx++ {
		res.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B into a fresh CDense.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c) time and space.
func Add(a, b *CDense) (*CDense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B into a fresh CDense.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c) time and space.
func Sub(a, b *CDense) (*CDense, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Stage 1 (Validate): inputs non-nil, inner dimensions compatible.
// Stage 2 (Execute): fixed i→k→j loop order over row-major strides,
// skipping zero A[i,k] entries.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*n*c) time, O(r*c) space.
func Mul(a, b *CDense) (*CDense, error) {
	// Validate inner dimensions.
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, cmatErrorf(opMul, err)
	}

	// Allocate result.
	res, err := NewCDense(a.r, b.c)
	if err != nil {
		return nil, cmatErrorf(opMul, err)
	}

	// Row-major multiplication into res.data:
	// a.data layout i*a.c + k, b.data layout k*b.c + j.
	var (
		i, j, k                            int
		rowOffsetA, rowOffsetB, rowOffsetR int
		av                                 complex128
	)
	for i = 0; i < a.r; i++ {
		rowOffsetA = i * a.c
		rowOffsetR = i * b.c
		for k = 0; k < a.c; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * b.c
			for j = 0; j < b.c; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Errors: ErrNilMatrix.
// Complexity: O(r*c) time and space.
func Scale(m *CDense, alpha complex128) (*CDense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, cmatErrorf(opScale, err)
	}
	res, err := NewCDense(m.r, m.c)
	if err != nil {
		return nil, cmatErrorf(opScale, err)
	}
	n := m.r * m.c
	for idx := 0; idx < n; idx++ { // flat deterministic walk
		res.data[idx] = m.data[idx] * alpha
	}

	return res, nil
}

// Kron computes the Kronecker (tensor) product C = A ⊗ B.
// The result has shape (a.r*b.r)×(a.c*b.c) with
// C[i*b.r+p, j*b.c+q] = A[i,j]·B[p,q], so A is the most-significant factor.
// Stage 1 (Validate): inputs non-nil.
// Stage 2 (Execute): fixed i→j→p→q loop order, skipping zero A[i,j] blocks.
// Errors: ErrNilMatrix.
// Complexity: O(a.r*a.c*b.r*b.c) time and space.
func Kron(a, b *CDense) (*CDense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, cmatErrorf(opKron, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, cmatErrorf(opKron, err)
	}

	res, err := NewCDense(a.r*b.r, a.c*b.c)
	if err != nil {
		return nil, cmatErrorf(opKron, err)
	}

	var (
		i, j, p, q int
		av         complex128
		baseR      int // row offset of the (i,p) block row in res
	)
	for i = 0; i < a.r; i++ {
		for j = 0; j < a.c; j++ {
			av = a.data[i*a.c+j]
			if av == 0 {
				continue // whole block is zero
			}
			for p = 0; p < b.r; p++ {
				baseR = (i*b.r+p)*res.c + j*b.c
				for q = 0; q < b.c; q++ {
					res.data[baseR+q] = av * b.data[p*b.c+q]
				}
			}
		}
	}

	return res, nil
}

// Trace returns the sum of diagonal entries of a square matrix.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n) time, O(1) space.
func Trace(m *CDense) (complex128, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, cmatErrorf(opTrace, err)
	}
	var tr complex128
	for i := 0; i < m.r; i++ { // deterministic diagonal walk
		tr += m.data[i*m.r+i]
	}

	return tr, nil
}

// AllClose reports whether a and b have the same shape and
// |a[i,j]-b[i,j]| <= eps for every entry. Nil operands or a shape mismatch
// report false. Complexity: O(r*c).
func AllClose(a, b *CDense, eps float64) bool {
	if a == nil || b == nil || a.r != b.r || a.c != b.c {
		return false
	}
	n := a.r * a.c
	for idx := 0; idx < n; idx++ {
		if cmplx.Abs(a.data[idx]-b.data[idx]) > eps {
			return false
		}
	}

	return true
}
