// Package dataset decodes the farm snapshot consumed by the agrokit CLI.
//
// A snapshot is a single YAML document holding what the farm-data layer
// would otherwise return from its queries:
//
//	plantings:
//	  - {id: 1, crop: maiz, plot: A1, sown_on: 2024-03-01, area_ha: 2, status: crecimiento, days_to_harvest: 120}
//	plot_yields:
//	  - {plot: A1, yield: 5400, plantings: 3}
//	costs: {fixed: 50, variable: 10, price: 100}
//
// plot_yields and crop_yields are optional; without them the tables are
// derived from plantings and harvests.
package dataset

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/agrodata/agrokit/record"
)

// ErrInvalid wraps every validation failure reported by Load.
var ErrInvalid = errors.New("dataset: invalid snapshot")

// Costs are the per-unit economics used for break-even analysis.
type Costs struct {
	Fixed    float64 `yaml:"fixed"`
	Variable float64 `yaml:"variable"` // per kg
	Price    float64 `yaml:"price"`    // per kg
}

// Sample pairs an input dose with the yield it produced.
type Sample struct {
	Fertiliser float64 `yaml:"fertiliser"` // kg/ha
	Yield      float64 `yaml:"yield"`      // kg/ha
}

// Dataset is a decoded snapshot.
type Dataset struct {
	Plantings    []record.Planting    `yaml:"plantings"`
	Harvests     []record.Harvest     `yaml:"harvests"`
	PlotYields   []record.PlotYield   `yaml:"plot_yields"`
	CropYields   []record.CropYield   `yaml:"crop_yields"`
	Observations []record.Observation `yaml:"observations"`
	Samples      []Sample             `yaml:"samples"`
	Costs        Costs                `yaml:"costs"`
}

// Load reads and validates a snapshot file.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a snapshot.
func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// Validate rejects duplicate planting IDs, dangling harvest references and
// negative areas or cycle lengths.
func (d *Dataset) Validate() error {
	ids := make(map[int]struct{}, len(d.Plantings))
	for _, p := range d.Plantings {
		if _, dup := ids[p.ID]; dup {
			return fmt.Errorf("%w: duplicate planting id %d", ErrInvalid, p.ID)
		}
		ids[p.ID] = struct{}{}
		if p.AreaHa < 0 {
			return fmt.Errorf("%w: planting %d has negative area", ErrInvalid, p.ID)
		}
		if p.DaysToHarvest < 0 {
			return fmt.Errorf("%w: planting %d has negative cycle length", ErrInvalid, p.ID)
		}
	}
	for _, h := range d.Harvests {
		if _, ok := ids[h.PlantingID]; !ok {
			return fmt.Errorf("%w: harvest %d references unknown planting %d", ErrInvalid, h.ID, h.PlantingID)
		}
	}
	return nil
}

// SampleSeries splits Samples into fertiliser and yield columns.
func (d *Dataset) SampleSeries() (fertiliser, yield []float64) {
	fertiliser = make([]float64, len(d.Samples))
	yield = make([]float64, len(d.Samples))
	for i, s := range d.Samples {
		fertiliser[i], yield[i] = s.Fertiliser, s.Yield
	}
	return fertiliser, yield
}

// PlotYieldTable returns the snapshot's plot_yields, or derives them from
// plantings and harvests when the snapshot carries none.
func (d *Dataset) PlotYieldTable() ([]record.PlotYield, error) {
	if len(d.PlotYields) > 0 {
		return d.PlotYields, nil
	}
	return record.PlotYields(d.Plantings, d.Harvests)
}

// CropYieldTable returns the snapshot's crop_yields, or derives them from
// plantings and harvests when the snapshot carries none.
func (d *Dataset) CropYieldTable() ([]record.CropYield, error) {
	if len(d.CropYields) > 0 {
		return d.CropYields, nil
	}
	return record.CropYields(d.Plantings, d.Harvests)
}
