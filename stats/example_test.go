package stats_test

import (
	"fmt"

	"github.com/agrodata/agrokit/stats"
)

func ExampleDescribe() {
	s, err := stats.Describe([]float64{5400, 1800, 4200})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("n=%d mean=%.0f median=%.0f std=%.2f\n", s.Count, s.Mean, s.Median, s.StdDev)
	// Output:
	// n=3 mean=3800 median=4200 std=1833.03
}
