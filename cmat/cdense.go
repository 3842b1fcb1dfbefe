// SPDX-License-Identifier: MIT

// Package cmat: CDense is the concrete, row-major complex matrix type.
// The flat backing slice keeps entries contiguous; kernels in ops.go index
// it directly for the fast path.
package cmat

import (
	"fmt"
	"strings"
)

// CDense is a row-major matrix of complex128 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type CDense struct {
	r, c int          // number of rows and columns
	data []complex128 // flat backing storage, length == r*c
}

// NewCDense creates an r×c CDense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate the flat backing slice.
// Complexity: O(r*c) time and memory.
func NewCDense(rows, cols int) (*CDense, error) {
	// Validate dimensions before allocation.
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &CDense{r: rows, c: cols, data: make([]complex128, rows*cols)}, nil
}

// Identity returns the n×n matrix scale·I.
// Stage 1 (Validate): n > 0 via NewCDense.
// Stage 2 (Execute): write scale on the diagonal in fixed order.
// Complexity: O(n²) time and memory.
func Identity(n int, scale complex128) (*CDense, error) {
	m, err := NewCDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ { // deterministic diagonal walk
		m.data[i*n+i] = scale
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *CDense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *CDense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *CDense) indexOf(row, col int) (int, error) {
	// Validate row index.
	if row < 0 || row >= m.r {
		return 0, fmt.Errorf("CDense(%d,%d): %w", row, col, ErrOutOfRange)
	}
	// Validate column index.
	if col < 0 || col >= m.c {
		return 0, fmt.Errorf("CDense(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Returns ErrOutOfRange on invalid indices.
// Complexity: O(1).
func (m *CDense) At(row, col int) (complex128, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Returns ErrOutOfRange on invalid indices.
// Complexity: O(1).
func (m *CDense) Set(row, col int, v complex128) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the matrix, independent of the original.
// Complexity: O(r*c) time and memory.
func (m *CDense) Clone() *CDense {
	cp := make([]complex128, len(m.data))
	copy(cp, m.data)

	return &CDense{r: m.r, c: m.c, data: cp}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *CDense) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		b.WriteByte('[')
		for j = 0; j < m.c; j++ { // iterate over columns
			b.WriteString(fmt.Sprintf("%g", m.data[i*m.c+j]))
			if j < m.c-1 {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}
