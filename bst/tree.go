package bst

import (
	"iter"
	"math"

	"github.com/agrodata/agrokit/record"
)

// Tree is a score-ordered binary search tree. The zero value is an empty tree.
type Tree struct {
	root *node
	size int
}

// New returns an empty Tree.
func New() *Tree { return &Tree{} }

// FromCropYields builds a tree keyed by crop yield, inserting in slice order.
func FromCropYields(crops []record.CropYield) *Tree {
	t := New()
	for _, c := range crops {
		t.Insert(c.Crop, c.Yield)
	}
	return t
}

// Insert places a new leaf for (label, score). Ties route right.
// The descent is iterative so degenerate chains do not grow the stack.
func (t *Tree) Insert(label string, score float64) {
	leaf := &node{entry: Entry{Label: label, Score: score}}
	t.size++
	if t.root == nil {
		t.root = leaf
		return
	}
	cur := t.root
	for {
		if score < cur.entry.Score {
			if cur.left == nil {
				cur.left = leaf
				return
			}
			cur = cur.left
		} else {
			if cur.right == nil {
				cur.right = leaf
				return
			}
			cur = cur.right
		}
	}
}

// FindByScore descends from the root and returns the first entry whose score
// satisfies |score - target| <= tolerance. Outside the window it moves left
// when target < score and right otherwise.
//
// The window is closed: a score exactly tolerance away matches, and
// tolerance 0 finds exact scores. The legacy dashboard used an open window
// (strictly less than 100 kg/ha), so a boundary score that used to miss now
// matches.
//
// Errors:
//   - ErrBadTolerance if tolerance < 0 or NaN.
//   - ErrNotFound if a missing child is reached first.
func (t *Tree) FindByScore(target, tolerance float64) (Entry, error) {
	if tolerance < 0 || math.IsNaN(tolerance) {
		return Entry{}, ErrBadTolerance
	}
	for cur := t.root; cur != nil; {
		if math.Abs(cur.entry.Score-target) <= tolerance {
			return cur.entry, nil
		}
		if target < cur.entry.Score {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	return Entry{}, ErrNotFound
}

// InOrder returns a lazy ascending-score sequence of (label, score) pairs.
// Each call starts a fresh walk. An explicit stack replaces recursion.
func (t *Tree) InOrder() iter.Seq2[string, float64] {
	return func(yield func(string, float64) bool) {
		var stack []*node
		cur := t.root
		for cur != nil || len(stack) > 0 {
			for cur != nil {
				stack = append(stack, cur)
				cur = cur.left
			}
			cur = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(cur.entry.Label, cur.entry.Score) {
				return
			}
			cur = cur.right
		}
	}
}

// Entries collects InOrder into a slice.
func (t *Tree) Entries() []Entry {
	out := make([]Entry, 0, t.size)
	for label, score := range t.InOrder() {
		out = append(out, Entry{Label: label, Score: score})
	}
	return out
}

// Len returns the number of entries.
func (t *Tree) Len() int { return t.size }

// Height returns the number of nodes on the longest root-to-leaf path
// (0 for an empty tree).
func (t *Tree) Height() int {
	if t.root == nil {
		return 0
	}
	// level-order walk; avoids recursion on chains
	level := []*node{t.root}
	h := 0
	for len(level) > 0 {
		h++
		var next []*node
		for _, n := range level {
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}
		level = next
	}
	return h
}
