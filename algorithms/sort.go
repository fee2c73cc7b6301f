package algorithms

import "cmp"

// QuickSort returns a new slice ordered by key, ascending or descending.
//
// Algorithm:
//  1. pivot = key of the middle element (index n/2).
//  2. Partition into less / equal / greater by strict comparison,
//     preserving input order inside each bucket.
//  3. Recurse on less and greater; concatenate (reversed for descending).
//
// The equal bucket is never subdivided, so equal keys keep their relative
// order. This is incidental, not a stability guarantee: use MergeSort when
// stability matters.
//
// Complexity: O(n log n) average, O(n²) worst case when the middle element
// is repeatedly an extreme. O(n) extra space per level.
func QuickSort[T any, K cmp.Ordered](items []T, key func(T) K, ascending bool) []T {
	if len(items) <= 1 {
		return append([]T(nil), items...)
	}
	pivot := key(items[len(items)/2])
	var less, equal, greater []T
	for _, it := range items {
		switch k := key(it); {
		case k < pivot:
			less = append(less, it)
		case k > pivot:
			greater = append(greater, it)
		default:
			equal = append(equal, it)
		}
	}

	out := make([]T, 0, len(items))
	if ascending {
		out = append(out, QuickSort(less, key, ascending)...)
		out = append(out, equal...)
		return append(out, QuickSort(greater, key, ascending)...)
	}
	out = append(out, QuickSort(greater, key, ascending)...)
	out = append(out, equal...)
	return append(out, QuickSort(less, key, ascending)...)
}

// MergeSort returns a new slice sorted ascending by key. It is stable: on
// equal keys the element from the left half is emitted first.
//
// Complexity: O(n log n) time, O(n) extra space.
func MergeSort[T any, K cmp.Ordered](items []T, key func(T) K) []T {
	if len(items) <= 1 {
		return append([]T(nil), items...)
	}
	mid := len(items) / 2
	left := MergeSort(items[:mid], key)
	right := MergeSort(items[mid:], key)
	return merge(left, right, key)
}

// merge combines two ascending slices; ties take from left.
func merge[T any, K cmp.Ordered](left, right []T, key func(T) K) []T {
	out := make([]T, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if key(left[i]) <= key(right[j]) {
			out = append(out, left[i])
			i++
		} else {
			out = append(out, right[j])
			j++
		}
	}
	out = append(out, left[i:]...)
	return append(out, right[j:]...)
}
