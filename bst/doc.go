// Package bst implements an unbalanced binary search tree of labelled
// numeric scores, used to organise crops by yield (kg/ha).
//
// Ordering:
//
//	Every score in a node's left subtree is strictly less than the node's
//	score; every score in its right subtree is greater or equal. Ties route
//	right, so equal scores appear in insertion order during an in-order walk.
//
// No rebalancing is performed. The shape depends on insertion order and
// sorted input degrades to a linked chain (height n).
//
// Lookup is a tolerance-window descent: FindByScore returns the first node on
// the search path whose score is within tolerance of the target. It is not a
// nearest-neighbour query; a closer node off the path is never considered.
//
// Complexity:
//
//   - Insert, FindByScore: O(h), h = tree height (O(n) worst case)
//   - InOrder, Entries:    O(n)
package bst
