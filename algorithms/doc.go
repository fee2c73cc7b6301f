// Package algorithms implements the search and sort routines used to rank
// plots, look up plantings and compare algorithm cost on live data.
//
// It provides free-function, generic implementations of:
//
//   - Search
//     – LinearSearch  (no ordering assumption, O(n))
//     – BinarySearch  (input must be sorted ascending by key, O(log n))
//     – CompareSearch (runs both and reports the speed-up)
//
//   - Sort
//     – QuickSort (middle pivot, three-way partition, O(n²) worst case)
//     – MergeSort (stable, O(n log n) guaranteed)
//
//   - Derived
//     – RankTopK (descending QuickSort, first k)
//     – RangeBy  (MergeSort, then scan an inclusive key range)
//
// Every routine reads its ordering field through a key extractor so the
// same code serves plantings, harvests and plot yields:
//
//	top := algorithms.RankTopK(plots, record.PlotYieldValue, 5)
//
// Inputs are never mutated; sorts return fresh slices.
//
// The fixed middle pivot and the missing sortedness check in BinarySearch
// are deliberate: callers compare algorithm behaviour on real data and the
// measured numbers must reflect the textbook algorithms.
package algorithms
