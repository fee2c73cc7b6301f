// SPDX-License-Identifier: MIT

package numeric

import "fmt"

// LinearTrend fits y = m·x + b by ordinary least squares.
//
//	m = Σ(x−x̄)(y−ȳ) / Σ(x−x̄)²,  b = ȳ − m·x̄
//
// Errors: ErrLengthMismatch; ErrUndefinedTrend for fewer than 2 points or
// zero x-variance.
func LinearTrend(xs, ys []float64) (Trend, error) {
	if len(xs) != len(ys) {
		return Trend{}, ErrLengthMismatch
	}
	n := len(xs)
	if n < 2 {
		return Trend{}, fmt.Errorf("%w: %d point(s)", ErrUndefinedTrend, n)
	}

	var mx, my float64
	for i := range xs {
		mx += xs[i]
		my += ys[i]
	}
	mx /= float64(n)
	my /= float64(n)

	var num, den float64
	for i := range xs {
		dx := xs[i] - mx
		num += dx * (ys[i] - my)
		den += dx * dx
	}
	if den == 0 {
		return Trend{}, fmt.Errorf("%w: zero x-variance", ErrUndefinedTrend)
	}
	slope := num / den
	return Trend{Slope: slope, Intercept: my - slope*mx}, nil
}
