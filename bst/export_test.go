package bst

// CheckOrdering walks the tree and reports whether every node respects the
// left-strictly-less, right-greater-or-equal ordering against all ancestors.
func CheckOrdering(t *Tree) bool {
	type frame struct {
		n      *node
		lo, hi float64 // lo inclusive, hi exclusive
		hasLo  bool
		hasHi  bool
	}
	if t.root == nil {
		return true
	}
	stack := []frame{{n: t.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		s := f.n.entry.Score
		if f.hasLo && s < f.lo {
			return false
		}
		if f.hasHi && s >= f.hi {
			return false
		}
		if f.n.left != nil {
			stack = append(stack, frame{n: f.n.left, lo: f.lo, hasLo: f.hasLo, hi: s, hasHi: true})
		}
		if f.n.right != nil {
			stack = append(stack, frame{n: f.n.right, lo: s, hasLo: true, hi: f.hi, hasHi: f.hasHi})
		}
	}
	return true
}
