// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"
	"math"
	"slices"

	"github.com/agrodata/agrokit/internal/linalg"
)

// Lagrange evaluates the interpolating polynomial through (xs[i], ys[i]) at x.
//
//	P(x) = Σ_i ys[i] · Π_{j≠i} (x - xs[j]) / (xs[i] - xs[j])
//
// The result is clamped at zero. Errors: ErrLengthMismatch, ErrEmptyInput,
// ErrDuplicateX.
//
// Complexity: O(n²).
func Lagrange(xs, ys []float64, x float64) (float64, error) {
	if len(xs) != len(ys) {
		return 0, ErrLengthMismatch
	}
	if len(xs) == 0 {
		return 0, ErrEmptyInput
	}
	v, err := lagrange(xs, ys, x)
	if err != nil {
		return 0, err
	}
	return math.Max(0, v), nil
}

func lagrange(xs, ys []float64, x float64) (float64, error) {
	var sum float64
	for i := range xs {
		term := ys[i]
		for j := range xs {
			if i == j {
				continue
			}
			d := xs[i] - xs[j]
			if d == 0 {
				return 0, fmt.Errorf("%w: x=%v", ErrDuplicateX, xs[i])
			}
			term *= (x - xs[j]) / d
		}
		sum += term
	}
	return sum, nil
}

// Cubic estimates y at x with a cubic spline through the samples.
//
// Steps:
//  1. Fewer than 3 raw points → ErrTooFewPoints.
//  2. Drop NaN pairs; average ys sharing the same x; sort by x.
//  3. Fewer than 3 distinct x → piecewise-linear interpolation, holding the
//     end values outside the sample range.
//  4. Otherwise fit a not-a-knot cubic spline (with exactly 3 distinct x it
//     is the interpolating parabola) and evaluate it, extrapolating with
//     the first/last segment polynomial.
//  5. Clamp at zero.
func Cubic(xs, ys []float64, x float64) (float64, error) {
	if len(xs) != len(ys) {
		return 0, ErrLengthMismatch
	}
	if len(xs) < 3 {
		return 0, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(xs))
	}
	ux, uy := dedupe(xs, ys)
	if len(ux) == 0 {
		return 0, ErrEmptyInput
	}

	var v float64
	switch len(ux) {
	case 1, 2:
		v = linear(ux, uy, x)
	case 3:
		var err error
		if v, err = lagrange(ux, uy, x); err != nil {
			return 0, err
		}
	default:
		m, err := splineMoments(ux, uy)
		if err != nil {
			return 0, err
		}
		v = evalSpline(ux, uy, m, x)
	}
	return math.Max(0, v), nil
}

// dedupe averages ys per distinct x and returns both sorted by x.
func dedupe(xs, ys []float64) ([]float64, []float64) {
	sum := make(map[float64]float64, len(xs))
	count := make(map[float64]int, len(xs))
	for i, x := range xs {
		y := ys[i]
		if math.IsNaN(x) || math.IsNaN(y) {
			continue
		}
		sum[x] += y
		count[x]++
	}
	ux := make([]float64, 0, len(sum))
	for x := range sum {
		ux = append(ux, x)
	}
	slices.Sort(ux)
	uy := make([]float64, len(ux))
	for i, x := range ux {
		uy[i] = sum[x] / float64(count[x])
	}
	return ux, uy
}

// linear interpolates on sorted distinct xs, flat outside the range.
func linear(xs, ys []float64, x float64) float64 {
	n := len(xs)
	if x <= xs[0] {
		return ys[0]
	}
	if x >= xs[n-1] {
		return ys[n-1]
	}
	i := 0
	for xs[i+1] < x {
		i++
	}
	t := (x - xs[i]) / (xs[i+1] - xs[i])
	return ys[i] + t*(ys[i+1]-ys[i])
}

// splineMoments solves for the second derivatives M of a not-a-knot cubic
// spline through n >= 4 sorted distinct points.
//
//	row 0:    h1·M0 − (h0+h1)·M1 + h0·M2 = 0              (S''' continuous at x1)
//	row i:    h(i-1)·M(i-1) + 2(h(i-1)+h(i))·M(i) + h(i)·M(i+1)
//	          = 6·(Δ(i) − Δ(i-1)),  Δ(i) = (y(i+1)−y(i))/h(i)
//	row n-1:  h(n-2)·M(n-3) − (h(n-3)+h(n-2))·M(n-2) + h(n-3)·M(n-1) = 0
func splineMoments(xs, ys []float64) ([]float64, error) {
	n := len(xs)
	h := make([]float64, n-1)
	d := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		h[i] = xs[i+1] - xs[i]
		d[i] = (ys[i+1] - ys[i]) / h[i]
	}

	a := make([][]float64, n)
	for i := range a {
		a[i] = make([]float64, n)
	}
	rhs := make([]float64, n)

	a[0][0], a[0][1], a[0][2] = h[1], -(h[0] + h[1]), h[0]
	for i := 1; i < n-1; i++ {
		a[i][i-1] = h[i-1]
		a[i][i] = 2 * (h[i-1] + h[i])
		a[i][i+1] = h[i]
		rhs[i] = 6 * (d[i] - d[i-1])
	}
	a[n-1][n-3], a[n-1][n-2], a[n-1][n-1] = h[n-2], -(h[n-3] + h[n-2]), h[n-3]

	m, err := linalg.Solve(a, rhs)
	if err != nil {
		return nil, fmt.Errorf("numeric: spline fit: %w", err)
	}
	return m, nil
}

// evalSpline evaluates the segment polynomial covering x; x outside the
// range uses the first or last segment.
func evalSpline(xs, ys, m []float64, x float64) float64 {
	n := len(xs)
	i := 0
	switch {
	case x <= xs[0]:
		i = 0
	case x >= xs[n-1]:
		i = n - 2
	default:
		for xs[i+1] < x {
			i++
		}
	}
	h := xs[i+1] - xs[i]
	l, r := xs[i+1]-x, x-xs[i]
	return m[i]*l*l*l/(6*h) + m[i+1]*r*r*r/(6*h) +
		(ys[i]/h-m[i]*h/6)*l + (ys[i+1]/h-m[i+1]*h/6)*r
}
