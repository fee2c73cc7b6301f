// SPDX-License-Identifier: MIT

package linalg

// Solve returns x with A·x = b for a square row-major A.
//
// Errors:
//   - ErrEmpty, ErrDimensionMismatch, ErrSingular (wrapped with an op tag).
func Solve(a [][]float64, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, linalgErrorf(opSolve, ErrEmpty)
	}
	m, err := FromRows(a)
	if err != nil {
		return nil, linalgErrorf(opSolve, err)
	}
	f, err := Factorize(m)
	if err != nil {
		return nil, linalgErrorf(opSolve, err)
	}
	return f.Solve(b)
}
