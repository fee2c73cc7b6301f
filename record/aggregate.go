package record

import (
	"cmp"
	"errors"
	"slices"
)

// HarvestedIDs returns the set of planting ids that have at least one harvest.
func HarvestedIDs(harvests []Harvest) map[int]struct{} {
	ids := make(map[int]struct{}, len(harvests))
	for _, h := range harvests {
		ids[h.PlantingID] = struct{}{}
	}
	return ids
}

// harvestTotals sums harvested kilograms per planting id.
func harvestTotals(harvests []Harvest) map[int]float64 {
	kg := make(map[int]float64, len(harvests))
	for _, h := range harvests {
		kg[h.PlantingID] += h.Kg
	}
	return kg
}

// PlotYields averages per-planting yield (total harvested kg over sown
// hectares) for each plot, sorted by plot name. Plantings without a harvest
// or without a positive area do not contribute.
func PlotYields(plantings []Planting, harvests []Harvest) ([]PlotYield, error) {
	totals := harvestTotals(harvests)
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, p := range plantings {
		kg, ok := totals[p.ID]
		if !ok {
			continue
		}
		y, err := YieldPerHectare(kg, p.AreaHa)
		if errors.Is(err, ErrZeroArea) {
			continue
		}
		if err != nil {
			return nil, err
		}
		sums[p.Plot] += y
		counts[p.Plot]++
	}

	out := make([]PlotYield, 0, len(sums))
	for plot, sum := range sums {
		out = append(out, PlotYield{Plot: plot, Yield: sum / float64(counts[plot]), Plantings: counts[plot]})
	}
	slices.SortFunc(out, func(a, b PlotYield) int { return cmp.Compare(a.Plot, b.Plot) })
	return out, nil
}

// CropYields averages kg/ha over every harvest of each crop. Crops appear in
// the order their first planting appears.
func CropYields(plantings []Planting, harvests []Harvest) ([]CropYield, error) {
	byID := make(map[int]Planting, len(plantings))
	for _, p := range plantings {
		byID[p.ID] = p
	}
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, h := range harvests {
		p, ok := byID[h.PlantingID]
		if !ok {
			continue
		}
		y, err := YieldPerHectare(h.Kg, p.AreaHa)
		if errors.Is(err, ErrZeroArea) {
			continue
		}
		if err != nil {
			return nil, err
		}
		sums[p.Crop] += y
		counts[p.Crop]++
	}

	out := make([]CropYield, 0, len(sums))
	seen := make(map[string]bool, len(sums))
	for _, p := range plantings {
		if n := counts[p.Crop]; n > 0 && !seen[p.Crop] {
			seen[p.Crop] = true
			out = append(out, CropYield{Crop: p.Crop, Yield: sums[p.Crop] / float64(n)})
		}
	}
	return out, nil
}
