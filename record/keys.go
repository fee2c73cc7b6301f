package record

// Key extractors for the generic search and sort routines in package
// algorithms. time.Time is not cmp.Ordered, so date keys are exposed as
// Unix seconds.

// PlantingID returns the planting identifier.
func PlantingID(p Planting) int { return p.ID }

// PlantingSown returns the sowing date as Unix seconds.
func PlantingSown(p Planting) int64 { return p.SownOn.Unix() }

// PlotYieldValue returns the plot yield in kg/ha.
func PlotYieldValue(y PlotYield) float64 { return y.Yield }

// CropYieldValue returns the crop yield in kg/ha.
func CropYieldValue(y CropYield) float64 { return y.Yield }
