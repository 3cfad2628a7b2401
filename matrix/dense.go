// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Cache-friendly row-major buffer with the index formula i*cols + j.
//   - Safety at the public surface: At/Set return errors instead of panicking.
//   - Deterministic loops (fixed row/column order).

package matrix

import (
	"fmt"
	"strings"
)

// Matrix is a two-dimensional mutable array of float64 values.
type Matrix interface {
	Rows() int
	Cols() int
	At(i, j int) (float64, error)
	Set(i, j int, v float64) error
	Clone() Matrix
}

// Dense is a row-major matrix of float64 values.
type Dense struct {
	r, c int
	data []float64 // len == r*c
}

var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix. Returns ErrInvalidDimensions unless r, c > 0.
// Complexity: O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

func (m *Dense) offset(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}
	return row*m.c + col, nil
}

// At returns the element at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	k, err := m.offset("At", row, col)
	if err != nil {
		return 0, err
	}
	return m.data[k], nil
}

// Set assigns v at (row, col).
func (m *Dense) Set(row, col int, v float64) error {
	k, err := m.offset("Set", row, col)
	if err != nil {
		return err
	}
	m.data[k] = v
	return nil
}

// Add increments the element at (row, col) by delta.
func (m *Dense) Add(row, col int, delta float64) error {
	k, err := m.offset("Add", row, col)
	if err != nil {
		return err
	}
	m.data[k] += delta
	return nil
}

// Clone returns a deep copy.
func (m *Dense) Clone() Matrix {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return &Dense{r: m.r, c: m.c, data: data}
}

// MulVec returns m·x. Returns ErrDimensionMismatch unless len(x) == Cols().
// Complexity: O(r*c).
func (m *Dense) MulVec(x []float64) ([]float64, error) {
	if len(x) != m.c {
		return nil, fmt.Errorf("Dense.MulVec: len(x)=%d, cols=%d: %w", len(x), m.c, ErrDimensionMismatch)
	}
	y := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := m.data[i*m.c : (i+1)*m.c]
		var s float64
		for j, v := range row {
			s += v * x[j]
		}
		y[i] = s
	}
	return y, nil
}

// String renders one bracketed row per line.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}
