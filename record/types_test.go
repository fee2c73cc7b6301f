package record_test

import (
	"testing"
	"time"

	"github.com/agrodata/agrokit/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYieldPerHectare(t *testing.T) {
	y, err := record.YieldPerHectare(5400, 2.5)
	require.NoError(t, err)
	assert.InDelta(t, 2160.0, y, 1e-9)

	_, err = record.YieldPerHectare(100, 0)
	assert.ErrorIs(t, err, record.ErrZeroArea, "zero area must fail")
	_, err = record.YieldPerHectare(100, -1)
	assert.ErrorIs(t, err, record.ErrZeroArea, "negative area must fail")
}

func TestPlanting_InFieldAndDays(t *testing.T) {
	sown := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	p := record.Planting{ID: 1, SownOn: sown, Status: record.StatusGrowing}

	assert.True(t, p.InField())
	assert.Equal(t, 10, p.DaysElapsed(sown.AddDate(0, 0, 10)))
	assert.Equal(t, 0, p.DaysElapsed(sown.AddDate(0, 0, -3)), "future sowing clamps to zero")

	p.Status = record.StatusHarvested
	assert.False(t, p.InField())
}

func TestKeyExtractors(t *testing.T) {
	sown := time.Unix(1700000000, 0)
	p := record.Planting{ID: 9, SownOn: sown, AreaHa: 1.5}
	assert.Equal(t, 9, record.PlantingID(p))
	assert.Equal(t, int64(1700000000), record.PlantingSown(p))
	assert.Equal(t, 42.0, record.PlotYieldValue(record.PlotYield{Yield: 42}))
	assert.Equal(t, 1500.0, record.CropYieldValue(record.CropYield{Yield: 1500}))
}

func TestPlotAndCropYields(t *testing.T) {
	plantings := []record.Planting{
		{ID: 1, Crop: "maize", Plot: "north", AreaHa: 2},
		{ID: 2, Crop: "bean", Plot: "north", AreaHa: 1},
		{ID: 3, Crop: "maize", Plot: "east", AreaHa: 4},
		{ID: 4, Crop: "oat", Plot: "west", AreaHa: 0},   // no area
		{ID: 5, Crop: "rice", Plot: "south", AreaHa: 3}, // no harvest
	}
	harvests := []record.Harvest{
		{ID: 10, PlantingID: 1, Kg: 6000},
		{ID: 11, PlantingID: 1, Kg: 2000},
		{ID: 12, PlantingID: 2, Kg: 1500},
		{ID: 13, PlantingID: 3, Kg: 8000},
		{ID: 14, PlantingID: 4, Kg: 100},
	}

	plots, err := record.PlotYields(plantings, harvests)
	require.NoError(t, err)
	// north: (8000/2 + 1500/1) / 2, east: 8000/4
	assert.Equal(t, []record.PlotYield{
		{Plot: "east", Yield: 2000, Plantings: 1},
		{Plot: "north", Yield: 2750, Plantings: 2},
	}, plots)

	crops, err := record.CropYields(plantings, harvests)
	require.NoError(t, err)
	// maize: mean of 6000/2, 2000/2, 8000/4 per harvest
	assert.Equal(t, []record.CropYield{
		{Crop: "maize", Yield: 2000},
		{Crop: "bean", Yield: 1500},
	}, crops)

	assert.Equal(t, map[int]struct{}{1: {}, 2: {}, 3: {}, 4: {}}, record.HarvestedIDs(harvests))
}
