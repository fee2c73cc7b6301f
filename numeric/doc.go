// Package numeric provides the numerical methods behind production
// forecasts and break-even analysis.
//
// 🚜 What is in here?
//
//	• Bisection       : bracketed root finding with an iteration cap
//	• Lagrange        : global polynomial interpolation, O(n²)
//	• Cubic           : not-a-knot cubic spline with duplicate-day averaging
//	• LinearTrend     : ordinary least squares slope / intercept
//	• BreakEven       : quantity where revenue meets cost (via Bisection)
//	• ProjectProduction: multi-horizon kg estimates (via Cubic / Lagrange)
//
// ⚙️ Usage:
//
//	q, err := numeric.BreakEven(50, 10, 100) // ≈ 0.5556 kg
//	if errors.Is(err, numeric.ErrUnreachable) {
//	    // price never covers variable cost inside the bracket
//	}
//
//	proj, err := numeric.ProjectProduction(history, []float64{30, 60, 90, 120})
//
// Known limitations:
//
//   - Lagrange oscillates for many points and extrapolates poorly far from
//     the samples (Runge's phenomenon). That is the nature of the method.
//   - Interpolated production is clamped at zero: negative kilograms are
//     meaningless.
//
// Every "no answer" condition is an error value (ErrNoSignChange,
// ErrUndefinedTrend, ErrTooFewPoints, ...); no function panics or returns a
// fabricated number.
package numeric
