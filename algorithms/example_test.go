package algorithms_test

import (
	"fmt"

	"github.com/agrodata/agrokit/algorithms"
	"github.com/agrodata/agrokit/record"
)

// ExampleRankPlots ranks plots by yield.
func ExampleRankPlots() {
	plots := []record.PlotYield{
		{Plot: "north", Yield: 3100},
		{Plot: "river", Yield: 4200},
		{Plot: "hill", Yield: 1900},
	}
	for i, p := range algorithms.RankPlots(plots, 2) {
		fmt.Printf("%d. %s %.0f\n", i+1, p.Plot, p.Yield)
	}
	// Output:
	// 1. river 4200
	// 2. north 3100
}

// ExampleBinarySearch looks up a planting id in a sorted slice.
func ExampleBinarySearch() {
	sorted := []record.Planting{{ID: 2}, {ID: 5}, {ID: 9}, {ID: 14}, {ID: 20}}
	res := algorithms.BinarySearch(sorted, 14, record.PlantingID)
	fmt.Println(res.Found, res.Index, res.Comparisons)
	// Output:
	// true 3 2
}
