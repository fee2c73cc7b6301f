// Package linkedlist provides a singly linked list of records keyed by an
// identifier, used to hold a farm's planting history for one request.
//
// Insertion prepends, so traversal yields the most recently inserted record
// first. Lookup and removal scan head-to-tail and act on the first record
// whose identifier matches; duplicates are permitted.
//
// Complexity:
//
//   - Insert: O(1)
//   - Find, Remove, Slice, All: O(n)
//
// Example:
//
//	l := linkedlist.New(record.PlantingID)
//	l.Insert(record.Planting{ID: 1, Crop: "maize"})
//	l.Insert(record.Planting{ID: 2, Crop: "bean"})
//	p, ok := l.Find(1)   // maize, true
//	l.Remove(2)          // true
//	all := l.Slice()     // [maize]
//
// A List is not safe for concurrent use.
package linkedlist
