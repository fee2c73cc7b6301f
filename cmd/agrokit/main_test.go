package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestParseDate(t *testing.T) {
	_, err := parseDate("2024-02-30")
	assert.Error(t, err, "impossible date")

	d, err := parseDate("2024-06-20")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, 6, int(d.Month()))
	assert.Equal(t, 20, d.Day())
}

func TestDateRange_OpenSides(t *testing.T) {
	lo, hi, err := dateRange("", "2024-03-01")
	require.NoError(t, err)
	assert.True(t, lo.IsZero())
	assert.Equal(t, 2024, hi.Year())

	lo, hi, err = dateRange("2024-03-01", "")
	require.NoError(t, err)
	assert.Equal(t, 2024, lo.Year())
	assert.Equal(t, 9999, hi.Year())
}
