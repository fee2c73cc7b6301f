package bst

import "errors"

// DefaultYieldTolerance is the lookup window the dashboard uses for
// kg/ha yields. It is never applied implicitly; callers pass it.
const DefaultYieldTolerance = 100.0

var (
	// ErrNotFound indicates that no node on the search path lies within tolerance.
	ErrNotFound = errors.New("bst: no score within tolerance")

	// ErrBadTolerance indicates a negative or NaN tolerance.
	ErrBadTolerance = errors.New("bst: tolerance must be a non-negative number")
)

// Entry is a (label, score) pair stored in the tree.
type Entry struct {
	Label string
	Score float64
}

// node exclusively owns its subtrees.
type node struct {
	entry       Entry
	left, right *node
}
