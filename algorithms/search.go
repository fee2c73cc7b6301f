package algorithms

import (
	"cmp"
	"time"
)

// LinearSearch scans items in order and returns the first index whose key
// equals target.
//
// Complexity: O(n) time, O(1) space.
func LinearSearch[T any, K comparable](items []T, target K, key func(T) K) SearchResult {
	start := time.Now()
	for i, it := range items {
		if key(it) == target {
			return SearchResult{Found: true, Index: i, Elapsed: time.Since(start)}
		}
	}
	return SearchResult{Index: -1, Elapsed: time.Since(start)}
}

// BinarySearch halves [lo, hi] until key(sorted[mid]) == target.
//
// Precondition: sorted is ordered ascending by key. This is NOT checked and
// the input is never re-sorted; an unsorted slice produces an unspecified
// result. Use IsSortedBy to validate when in doubt.
//
// Complexity: O(log n) time, O(1) space.
func BinarySearch[T any, K cmp.Ordered](sorted []T, target K, key func(T) K) SearchResult {
	start := time.Now()
	lo, hi := 0, len(sorted)-1
	steps := 0
	for lo <= hi {
		steps++
		mid := lo + (hi-lo)/2
		v := key(sorted[mid])
		switch {
		case v == target:
			return SearchResult{Found: true, Index: mid, Elapsed: time.Since(start), Comparisons: steps}
		case v < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return SearchResult{Index: -1, Elapsed: time.Since(start), Comparisons: steps}
}

// IsSortedBy reports whether items are ascending by key.
func IsSortedBy[T any, K cmp.Ordered](items []T, key func(T) K) bool {
	for i := 1; i < len(items); i++ {
		if key(items[i]) < key(items[i-1]) {
			return false
		}
	}
	return true
}

// CompareSearch runs LinearSearch on items as given and BinarySearch on a
// copy sorted by key with MergeSort. items is not modified.
func CompareSearch[T any, K cmp.Ordered](items []T, target K, key func(T) K) Comparison {
	lin := LinearSearch(items, target, key)
	bin := BinarySearch(MergeSort(items, key), target, key)

	var speedup float64
	if bin.Elapsed > 0 {
		speedup = float64(lin.Elapsed) / float64(bin.Elapsed)
	}
	return Comparison{Linear: lin, Binary: bin, Speedup: speedup}
}
