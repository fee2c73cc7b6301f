package algorithms

import "time"

// DefaultTopK is the ranking length used when RankTopK is given k <= 0.
const DefaultTopK = 5

// SearchResult describes one search run.
//
// Index is -1 when Found is false. Comparisons is only counted by
// BinarySearch (number of midpoints examined). Elapsed is measured with the monotonic
// clock and is diagnostic only.
type SearchResult struct {
	Found       bool
	Index       int
	Elapsed     time.Duration
	Comparisons int
}

// Comparison reports a linear and a binary search for the same target.
//
// Speedup = Linear.Elapsed / Binary.Elapsed, or 0 when the binary run took
// no measurable time.
type Comparison struct {
	Linear  SearchResult
	Binary  SearchResult
	Speedup float64
}
