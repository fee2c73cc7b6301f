// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"
	"math"
)

// Bisection finds a root of f inside [a, b].
//
// Algorithm:
//  1. Require f(a)·f(b) <= 0, else ErrNoSignChange.
//     An endpoint with f == 0 is returned directly.
//  2. While (b-a)/2 > Tolerance and iterations < MaxIterations:
//     c = (a+b)/2; if f(c) == 0 return c;
//     keep the half whose endpoints still differ in sign.
//  3. Return the midpoint of the final bracket.
//
// a > b is accepted and swapped. Deterministic for identical inputs.
//
// Complexity: O(min(MaxIterations, log2((b-a)/Tolerance))) evaluations of f.
func Bisection(f func(float64) float64, a, b float64, opts ...Option) (float64, error) {
	cfg, err := gatherOptions(opts)
	if err != nil {
		return 0, err
	}
	if a > b {
		a, b = b, a
	}

	fa, fb := f(a), f(b)
	prod := fa * fb
	if math.IsNaN(prod) || prod > 0 {
		return 0, fmt.Errorf("%w: f(%v)=%v, f(%v)=%v", ErrNoSignChange, a, fa, b, fb)
	}
	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}

	for i := 0; (b-a)/2 > cfg.Tolerance && i < cfg.MaxIterations; i++ {
		c := (a + b) / 2
		fc := f(c)
		if fc == 0 {
			return c, nil
		}
		if fa*fc < 0 {
			b = c
		} else {
			a, fa = c, fc
		}
	}
	return (a + b) / 2, nil
}
