// SPDX-License-Identifier: MIT

package linalg

import "math"

// LU holds a pivoted Doolittle factorization P·A = L·U.
//
// L is unit lower triangular and U upper triangular. Row i of L·U equals
// row Perm[i] of A.
type LU struct {
	L, U *Dense
	Perm []int
}

// Factorize computes P·A = L·U for a square Dense.
//
// Implementation:
//   - Stage 1: validate squareness; copy A; set Perm to the identity.
//   - Stage 2: for i=0..n-1, evaluate the candidate U[i,i] for every row
//     r >= i and swap the largest-magnitude row into place (partial
//     pivoting, carrying the already built part of L along).
//   - Stage 3: build row i of U and column i of L in Doolittle order.
//
// Errors:
//   - ErrDimensionMismatch if m is not square.
//   - ErrSingular if the best pivot for some column is below PivotEpsilon.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Factorize(m *Dense) (*LU, error) {
	if m.r != m.c {
		return nil, linalgErrorf(opLU, ErrDimensionMismatch)
	}
	n := m.r
	l, _ := NewDense(n, n)
	u, _ := NewDense(n, n)
	work := make([]float64, len(m.data))
	copy(work, m.data)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	var i, j, k, r, p int
	var sum, best, v float64
	for i = 0; i < n; i++ {
		// pivot search over the residual column
		p, best = i, -1
		for r = i; r < n; r++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += l.data[r*n+k] * u.data[k*n+i]
			}
			if v = math.Abs(work[r*n+i] - sum); v > best {
				p, best = r, v
			}
		}
		if best < PivotEpsilon {
			return nil, linalgErrorf(opLU, ErrSingular)
		}
		if p != i {
			for j = 0; j < n; j++ {
				work[i*n+j], work[p*n+j] = work[p*n+j], work[i*n+j]
			}
			for k = 0; k < i; k++ {
				l.data[i*n+k], l.data[p*n+k] = l.data[p*n+k], l.data[i*n+k]
			}
			perm[i], perm[p] = perm[p], perm[i]
		}

		// U[i][j] for j >= i
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += l.data[i*n+k] * u.data[k*n+j]
			}
			u.data[i*n+j] = work[i*n+j] - sum
		}

		// L[j][i] for j > i
		l.data[i*n+i] = 1
		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += l.data[j*n+k] * u.data[k*n+i]
			}
			l.data[j*n+i] = (work[j*n+i] - sum) / u.data[i*n+i]
		}
	}
	return &LU{L: l, U: u, Perm: perm}, nil
}

// Solve returns x with A·x = b using the stored factors.
// b is not modified.
func (f *LU) Solve(b []float64) ([]float64, error) {
	n := f.L.r
	if len(b) != n {
		return nil, linalgErrorf(opSolve, ErrDimensionMismatch)
	}

	var i, k int
	var sum float64

	// forward substitution: L·y = P·b
	y := make([]float64, n)
	for i = 0; i < n; i++ {
		sum = ZeroSum
		for k = 0; k < i; k++ {
			sum += f.L.data[i*n+k] * y[k]
		}
		y[i] = b[f.Perm[i]] - sum
	}

	// backward substitution: U·x = y
	x := make([]float64, n)
	for i = n - 1; i >= 0; i-- {
		sum = ZeroSum
		for k = i + 1; k < n; k++ {
			sum += f.U.data[i*n+k] * x[k]
		}
		x[i] = (y[i] - sum) / f.U.data[i*n+i]
	}
	return x, nil
}
