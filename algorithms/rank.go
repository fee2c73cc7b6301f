package algorithms

import (
	"cmp"
	"time"

	"github.com/agrodata/agrokit/record"
)

// RankTopK sorts items descending by key with QuickSort and returns at most
// k of them. k <= 0 selects DefaultTopK. Empty input yields an empty slice.
func RankTopK[T any, K cmp.Ordered](items []T, key func(T) K, k int) []T {
	if len(items) == 0 {
		return []T{}
	}
	if k <= 0 {
		k = DefaultTopK
	}
	ranked := QuickSort(items, key, false)
	if k < len(ranked) {
		ranked = ranked[:k]
	}
	return ranked
}

// RankPlots returns the most productive plots by yield.
func RankPlots(plots []record.PlotYield, k int) []record.PlotYield {
	return RankTopK(plots, record.PlotYieldValue, k)
}

// RankCrops returns the highest-yielding crops.
func RankCrops(crops []record.CropYield, k int) []record.CropYield {
	return RankTopK(crops, record.CropYieldValue, k)
}

// RangeBy returns the items whose key lies in [lo, hi], ascending by key.
// It merge-sorts, then scans and stops at the first key above hi.
func RangeBy[T any, K cmp.Ordered](items []T, key func(T) K, lo, hi K) []T {
	out := []T{}
	if hi < lo {
		return out
	}
	for _, it := range MergeSort(items, key) {
		k := key(it)
		if k > hi {
			break
		}
		if k >= lo {
			out = append(out, it)
		}
	}
	return out
}

// PlantingsSownBetween returns plantings sown in [from, to], oldest first.
func PlantingsSownBetween(plantings []record.Planting, from, to time.Time) []record.Planting {
	return RangeBy(plantings, record.PlantingSown, from.Unix(), to.Unix())
}
