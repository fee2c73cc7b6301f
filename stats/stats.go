// Package stats computes the descriptive statistics shown on the reports
// page: yield summaries, the fertiliser/yield correlation and its
// regression line.
//
// Variance and standard deviation are sample statistics (n − 1 divisor).
package stats

import (
	"errors"
	"fmt"
	"math"

	"github.com/agrodata/agrokit/algorithms"
	"github.com/agrodata/agrokit/numeric"
)

var (
	// ErrEmpty indicates an empty input series.
	ErrEmpty = errors.New("stats: empty series")

	// ErrUndefined indicates a statistic that does not exist for the input
	// (fewer than 2 points, zero variance, mismatched lengths).
	ErrUndefined = errors.New("stats: statistic undefined for input")
)

// Summary describes a series of values.
// StdDev and Variance are NaN for a single value.
type Summary struct {
	Count    int
	Mean     float64
	Median   float64
	StdDev   float64
	Variance float64
	Min      float64
	Max      float64
}

// Regression is a least-squares line with its coefficient of determination.
type Regression struct {
	numeric.Trend
	R        float64
	RSquared float64
}

func identity(v float64) float64 { return v }

// Describe summarises values. The input is not modified.
func Describe(values []float64) (Summary, error) {
	n := len(values)
	if n == 0 {
		return Summary{}, ErrEmpty
	}
	sorted := algorithms.MergeSort(values, identity)

	var sum float64
	for _, v := range sorted {
		sum += v
	}
	mean := sum / float64(n)

	median := sorted[n/2]
	if n%2 == 0 {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}

	variance := math.NaN()
	if n > 1 {
		var ss float64
		for _, v := range sorted {
			d := v - mean
			ss += d * d
		}
		variance = ss / float64(n-1)
	}

	return Summary{
		Count:    n,
		Mean:     mean,
		Median:   median,
		StdDev:   math.Sqrt(variance),
		Variance: variance,
		Min:      sorted[0],
		Max:      sorted[n-1],
	}, nil
}

// Pearson returns the correlation coefficient of xs and ys.
func Pearson(xs, ys []float64) (float64, error) {
	if len(xs) != len(ys) || len(xs) < 2 {
		return 0, fmt.Errorf("%w: need two equal-length series of at least 2 points", ErrUndefined)
	}
	var mx, my float64
	for i := range xs {
		mx += xs[i]
		my += ys[i]
	}
	mx /= float64(len(xs))
	my /= float64(len(ys))

	var sxy, sxx, syy float64
	for i := range xs {
		dx, dy := xs[i]-mx, ys[i]-my
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}
	if sxx == 0 || syy == 0 {
		return 0, fmt.Errorf("%w: zero variance", ErrUndefined)
	}
	return sxy / math.Sqrt(sxx*syy), nil
}

// Regress fits ys against xs and reports r and r².
// A constant ys series gives a flat line with r = 0.
func Regress(xs, ys []float64) (Regression, error) {
	tr, err := numeric.LinearTrend(xs, ys)
	if err != nil {
		return Regression{}, fmt.Errorf("%w: %w", ErrUndefined, err)
	}
	r, err := Pearson(xs, ys)
	if err != nil {
		r = 0
	}
	return Regression{Trend: tr, R: r, RSquared: r * r}, nil
}
