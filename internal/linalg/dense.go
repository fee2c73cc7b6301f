// SPDX-License-Identifier: MIT

// Package linalg holds the small dense linear-system kernel used by the
// spline interpolator in package numeric.
//
// Purpose:
//   - Dense: row-major float64 storage with bounds-checked access.
//   - Factorize: Doolittle LU with partial pivoting, P·A = L·U.
//   - Solve: A·x = b via forward and backward substitution on the factors.
//
// Notes:
//   - Systems here are tiny (one row per distinct sample day), so O(n³) is
//     irrelevant.
//   - Inputs are never mutated; factorization works on a private copy.
package linalg

import (
	"errors"
	"fmt"
)

// PivotEpsilon is the magnitude below which a pivot is treated as zero.
const PivotEpsilon = 1e-12

// ZeroSum is the initial accumulator for substitution loops.
const ZeroSum = 0.0

const (
	opDense = "Dense"
	opLU    = "LU"
	opSolve = "Solve"
)

var (
	// ErrDimensionMismatch indicates a non-square A, ragged rows or len(b) != rows(A).
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrSingular indicates that no usable pivot exists for some column.
	ErrSingular = errors.New("linalg: matrix is singular")

	// ErrEmpty indicates a 0×0 system.
	ErrEmpty = errors.New("linalg: empty system")

	// ErrInvalidDimensions indicates a non-positive row or column count.
	ErrInvalidDimensions = errors.New("linalg: dimensions must be positive")

	// ErrIndexOutOfBounds indicates an At/Set outside the matrix.
	ErrIndexOutOfBounds = errors.New("linalg: index out of bounds")
)

// linalgErrorf wraps err with an operation tag, keeping errors.Is intact.
func linalgErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Dense is a row-major r×c matrix backed by one flat slice.
type Dense struct {
	r, c int
	data []float64
}

// NewDense allocates a zero-filled rows×cols matrix.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, linalgErrorf(opDense, ErrInvalidDimensions)
	}
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// FromRows copies a [][]float64 into a new Dense. Every row must have the
// same length.
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, linalgErrorf(opDense, ErrEmpty)
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != m.c {
			return nil, linalgErrorf(opDense, fmt.Errorf("%w: row %d has %d cols, want %d", ErrDimensionMismatch, i, len(row), m.c))
		}
		copy(m.data[i*m.c:(i+1)*m.c], row)
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, linalgErrorf(opDense, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrIndexOutOfBounds, row, col, m.r, m.c))
	}
	return row*m.c + col, nil
}

// At returns the element at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}
	return m.data[idx], nil
}

// Set stores v at (row, col).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v
	return nil
}
