// Package pqueue implements a binary min-heap of alerts ordered by integer
// priority, where a smaller number is more urgent (1 = highest urgency).
//
// The heap is a dense zero-indexed slice: the children of index i live at
// 2i+1 and 2i+2, and every parent's priority is <= both children's.
//
// Operations:
//
//   - Push:     append, then sift up while the parent is strictly greater. O(log n)
//   - PopMin:   take the root, move the last entry up, sift down preferring
//     the left child on equal priority. O(log n)
//   - Snapshot: sorted copy for "top K" displays; the heap is untouched. O(n log n)
//
// HarvestAlerts builds a queue from plantings still in the field, grading
// each by the days left before its estimated harvest.
package pqueue
