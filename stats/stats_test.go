package stats_test

import (
	"math"
	"testing"

	"github.com/agrodata/agrokit/numeric"
	"github.com/agrodata/agrokit/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDescribe_OddAndEven covers both median branches and sample variance.
func TestDescribe_OddAndEven(t *testing.T) {
	in := []float64{4, 1, 3, 2, 5}
	s, err := stats.Describe(in)
	require.NoError(t, err)
	assert.Equal(t, 5, s.Count)
	assert.InDelta(t, 3.0, s.Mean, 1e-12)
	assert.InDelta(t, 3.0, s.Median, 1e-12)
	assert.InDelta(t, 2.5, s.Variance, 1e-12)
	assert.InDelta(t, math.Sqrt(2.5), s.StdDev, 1e-12)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 5.0, s.Max)
	assert.Equal(t, []float64{4, 1, 3, 2, 5}, in, "input untouched")

	s, err = stats.Describe([]float64{10, 2, 8, 4})
	require.NoError(t, err)
	assert.InDelta(t, 6.0, s.Median, 1e-12)
}

// TestDescribe_Degenerate covers empty and single-value inputs.
func TestDescribe_Degenerate(t *testing.T) {
	_, err := stats.Describe(nil)
	assert.ErrorIs(t, err, stats.ErrEmpty)

	s, err := stats.Describe([]float64{7})
	require.NoError(t, err)
	assert.Equal(t, 7.0, s.Median)
	assert.True(t, math.IsNaN(s.Variance))
	assert.True(t, math.IsNaN(s.StdDev))
}

// TestPearson checks perfect, inverse and undefined correlations.
func TestPearson(t *testing.T) {
	r, err := stats.Pearson([]float64{1, 2, 3}, []float64{2, 4, 6})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, r, 1e-12)

	r, err = stats.Pearson([]float64{1, 2, 3}, []float64{3, 2, 1})
	require.NoError(t, err)
	assert.InDelta(t, -1.0, r, 1e-12)

	_, err = stats.Pearson([]float64{1, 1, 1}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, stats.ErrUndefined)
	_, err = stats.Pearson([]float64{1}, []float64{1})
	assert.ErrorIs(t, err, stats.ErrUndefined)
}

// TestRegress combines the OLS line with r².
func TestRegress(t *testing.T) {
	reg, err := stats.Regress([]float64{1, 2, 3}, []float64{0.5, 2.5, 3})
	require.NoError(t, err)
	assert.InDelta(t, 1.25, reg.Slope, 1e-12)
	assert.InDelta(t, -0.5, reg.Intercept, 1e-12)
	// r = 2.5 / sqrt(2 · 3.5)
	assert.InDelta(t, 6.25/7.0, reg.RSquared, 1e-12)

	reg, err = stats.Regress([]float64{1, 2, 3}, []float64{5, 5, 5})
	require.NoError(t, err)
	assert.Zero(t, reg.Slope)
	assert.Zero(t, reg.RSquared)

	_, err = stats.Regress([]float64{2, 2}, []float64{1, 3})
	assert.ErrorIs(t, err, stats.ErrUndefined)
	assert.ErrorIs(t, err, numeric.ErrUndefinedTrend)
}
