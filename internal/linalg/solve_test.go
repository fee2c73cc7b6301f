package linalg_test

import (
	"testing"

	"github.com/agrodata/agrokit/internal/linalg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pivotFirst has a zero leading entry, so unpivoted Doolittle would divide by zero.
var pivotFirst = [][]float64{
	{0, 2, 1},
	{1, 1, 1},
	{2, 1, 3},
}

// TestSolve_Known solves a 3×3 system that needs a row swap.
func TestSolve_Known(t *testing.T) {
	b := []float64{7, 6, 13} // x = (1, 2, 3)
	x, err := linalg.Solve(pivotFirst, b)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 2, 3}, x, 1e-12)
	assert.Equal(t, 0.0, pivotFirst[0][0], "input must not be mutated")
}

// TestSolve_NotAKnotRows solves a spline moment system for unit knot
// spacing with not-a-knot end rows.
func TestSolve_NotAKnotRows(t *testing.T) {
	// h = 1: rows are [1 -2 1 0], [1 4 1 0], [0 1 4 1], [0 1 -2 1]
	a := [][]float64{
		{1, -2, 1, 0},
		{1, 4, 1, 0},
		{0, 1, 4, 1},
		{0, 1, -2, 1},
	}
	want := []float64{1, -1, 2, 0.5}
	b := make([]float64, len(a))
	for i, row := range a {
		for j, v := range row {
			b[i] += v * want[j]
		}
	}
	x, err := linalg.Solve(a, b)
	require.NoError(t, err)
	assert.InDeltaSlice(t, want, x, 1e-12)
}

// TestFactorize_PermutedLU checks the factors and P·A = L·U.
func TestFactorize_PermutedLU(t *testing.T) {
	m, err := linalg.FromRows(pivotFirst)
	require.NoError(t, err)
	f, err := linalg.Factorize(m)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 0, 1}, f.Perm)
	wantL := [][]float64{{1, 0, 0}, {0, 1, 0}, {0.5, 0.25, 1}}
	wantU := [][]float64{{2, 1, 3}, {0, 2, 1}, {0, 0, -0.75}}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			l, err := f.L.At(i, j)
			require.NoError(t, err)
			u, err := f.U.At(i, j)
			require.NoError(t, err)
			assert.InDelta(t, wantL[i][j], l, 1e-12, "L[%d][%d]", i, j)
			assert.InDelta(t, wantU[i][j], u, 1e-12, "U[%d][%d]", i, j)
		}
	}

	// row i of L·U is row Perm[i] of A
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				l, _ := f.L.At(i, k)
				u, _ := f.U.At(k, j)
				sum += l * u
			}
			assert.InDelta(t, pivotFirst[f.Perm[i]][j], sum, 1e-12)
		}
	}

	x, err := f.Solve([]float64{7, 6, 13})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 2, 3}, x, 1e-12)
}

// TestSolve_Errors covers shape and singularity failures.
func TestSolve_Errors(t *testing.T) {
	_, err := linalg.Solve(nil, nil)
	assert.ErrorIs(t, err, linalg.ErrEmpty)

	_, err = linalg.Solve([][]float64{{1, 2}, {3, 4}}, []float64{1})
	assert.ErrorIs(t, err, linalg.ErrDimensionMismatch)

	_, err = linalg.Solve([][]float64{{1, 2}, {3}}, []float64{1, 2})
	assert.ErrorIs(t, err, linalg.ErrDimensionMismatch)

	_, err = linalg.Solve([][]float64{{1, 2}}, []float64{1})
	assert.ErrorIs(t, err, linalg.ErrDimensionMismatch, "non-square")

	_, err = linalg.Solve([][]float64{{1, 2}, {2, 4}}, []float64{1, 2})
	assert.ErrorIs(t, err, linalg.ErrSingular)
}

// TestDense_Access covers construction and bounds checks.
func TestDense_Access(t *testing.T) {
	_, err := linalg.NewDense(0, 3)
	assert.ErrorIs(t, err, linalg.ErrInvalidDimensions)

	m, err := linalg.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())

	require.NoError(t, m.Set(1, 2, 4.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)

	assert.ErrorIs(t, m.Set(2, 0, 1), linalg.ErrIndexOutOfBounds)
	_, err = m.At(0, -1)
	assert.ErrorIs(t, err, linalg.ErrIndexOutOfBounds)
}
