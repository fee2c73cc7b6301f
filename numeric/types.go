// SPDX-License-Identifier: MIT

package numeric

import (
	"errors"
	"fmt"
	"math"
)

// Defaults for Bisection and BreakEven.
const (
	DefaultTolerance     = 0.01
	DefaultMaxIterations = 100
	DefaultBracketLo     = 0.0
	DefaultBracketHi     = 10000.0

	// ProjectionPlaces is the rounding precision of ProjectProduction.
	ProjectionPlaces = 2
)

// Sentinel errors.
var (
	// ErrNoSignChange indicates f(a)·f(b) > 0: no root is bracketed.
	ErrNoSignChange = errors.New("numeric: no sign change in bracket")

	// ErrUnreachable indicates that no break-even quantity exists in the bracket.
	ErrUnreachable = errors.New("numeric: break-even unreachable")

	// ErrLengthMismatch indicates len(xs) != len(ys).
	ErrLengthMismatch = errors.New("numeric: xs and ys differ in length")

	// ErrEmptyInput indicates no usable sample points.
	ErrEmptyInput = errors.New("numeric: no sample points")

	// ErrDuplicateX indicates repeated x in Lagrange input (zero denominator).
	ErrDuplicateX = errors.New("numeric: duplicate x coordinate")

	// ErrTooFewPoints indicates fewer than 3 raw points for Cubic.
	ErrTooFewPoints = errors.New("numeric: cubic interpolation needs at least 3 points")

	// ErrUndefinedTrend indicates < 2 points or zero x-variance.
	ErrUndefinedTrend = errors.New("numeric: linear trend undefined")

	// ErrInsufficientHistory indicates < 2 observations for a projection.
	ErrInsufficientHistory = errors.New("numeric: projection needs at least 2 observations")

	// ErrBadOption indicates an invalid Option value.
	ErrBadOption = errors.New("numeric: invalid option")
)

// Options configures Bisection and BreakEven.
//
//   - Tolerance    : stop when the bracket half-width is <= Tolerance (> 0).
//   - MaxIterations: hard cap on halvings (> 0); replaces a timeout.
//   - BracketLo/Hi : search interval used by BreakEven (Lo < Hi).
type Options struct {
	Tolerance     float64
	MaxIterations int
	BracketLo     float64
	BracketHi     float64

	err error
}

// Option is a functional option for Options.
// Invalid values are recorded and surfaced as ErrBadOption.
type Option func(*Options)

// DefaultOptions returns tolerance 0.01, 100 iterations, bracket [0, 10000].
func DefaultOptions() Options {
	return Options{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		BracketLo:     DefaultBracketLo,
		BracketHi:     DefaultBracketHi,
	}
}

// WithTolerance sets the stopping half-width.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if !(tol > 0) || math.IsInf(tol, 0) {
			o.err = fmt.Errorf("%w: tolerance %v", ErrBadOption, tol)
			return
		}
		o.Tolerance = tol
	}
}

// WithMaxIterations sets the iteration cap.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: max iterations %d", ErrBadOption, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithBracket sets the BreakEven search interval.
func WithBracket(lo, hi float64) Option {
	return func(o *Options) {
		if !(lo < hi) {
			o.err = fmt.Errorf("%w: bracket [%v, %v]", ErrBadOption, lo, hi)
			return
		}
		o.BracketLo, o.BracketHi = lo, hi
	}
}

func gatherOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg, cfg.err
}

// Trend is a fitted line y = Slope·x + Intercept.
type Trend struct {
	Slope     float64
	Intercept float64
}

// At evaluates the trend line at x.
func (t Trend) At(x float64) float64 { return t.Slope*x + t.Intercept }

// Projection is one production estimate.
type Projection struct {
	Day float64
	Kg  float64
}

// Round rounds v to the given decimal places, ties to even (0.125 -> 0.12),
// matching the reporting layer's rounding of stored figures.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.RoundToEven(v*p) / p
}
