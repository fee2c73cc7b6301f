package record

import (
	"errors"
	"time"
)

// ErrZeroArea is returned when a yield is requested for a non-positive area.
var ErrZeroArea = errors.New("record: sown area must be positive")

// Planting status values as stored by the farm-data layer.
const (
	StatusSown      = "sembrado"
	StatusGrowing   = "crecimiento"
	StatusHarvested = "cosechado"
)

// Planting is one sowing of a crop on a plot.
type Planting struct {
	ID            int       `yaml:"id"`
	Crop          string    `yaml:"crop"`
	Plot          string    `yaml:"plot"`
	SownOn        time.Time `yaml:"sown_on"`
	AreaHa        float64   `yaml:"area_ha"`
	Status        string    `yaml:"status"`
	DaysToHarvest int       `yaml:"days_to_harvest"` // crop's estimated cycle length
}

// InField reports whether the planting is still waiting to be harvested.
func (p Planting) InField() bool {
	return p.Status == StatusSown || p.Status == StatusGrowing
}

// DaysElapsed returns whole days between sowing and now (never negative).
func (p Planting) DaysElapsed(now time.Time) int {
	d := int(now.Sub(p.SownOn).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}

// Harvest is one harvest event of a planting.
type Harvest struct {
	ID          int       `yaml:"id"`
	PlantingID  int       `yaml:"planting_id"`
	HarvestedOn time.Time `yaml:"harvested_on"`
	Kg          float64   `yaml:"kg"`
	PricePerKg  float64   `yaml:"price_per_kg"`
}

// PlotYield is the average yield of a plot across its harvested plantings.
type PlotYield struct {
	Plot      string  `yaml:"plot"`
	Yield     float64 `yaml:"yield"` // kg/ha
	Plantings int     `yaml:"plantings"`
}

// CropYield is the average yield of a crop.
type CropYield struct {
	Crop  string  `yaml:"crop"`
	Yield float64 `yaml:"yield"` // kg/ha
}

// Observation is a (day since sowing, kilograms) sample used for projections.
type Observation struct {
	Day float64 `yaml:"day"`
	Kg  float64 `yaml:"kg"`
}

// YieldPerHectare divides harvested kilograms by sown hectares.
func YieldPerHectare(kg, areaHa float64) (float64, error) {
	if areaHa <= 0 {
		return 0, ErrZeroArea
	}
	return kg / areaHa, nil
}
