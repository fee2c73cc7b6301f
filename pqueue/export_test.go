package pqueue

// HeapOrdered reports whether every parent's priority is <= its children's.
func HeapOrdered(q *Queue) bool {
	for i := range q.heap {
		for _, c := range []int{2*i + 1, 2*i + 2} {
			if c < len(q.heap) && q.heap[i].Priority > q.heap[c].Priority {
				return false
			}
		}
	}
	return true
}

// RawPriorities exposes the internal array order.
func RawPriorities(q *Queue) []int {
	out := make([]int, len(q.heap))
	for i, e := range q.heap {
		out[i] = e.Priority
	}
	return out
}
