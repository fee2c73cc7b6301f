package pqueue

import (
	"cmp"
	"slices"
)

// Queue is a min-heap of alerts. The zero value is an empty queue.
// A Queue is not safe for concurrent use.
type Queue struct {
	heap []entry
	seq  uint64
}

// New returns an empty Queue.
func New() *Queue { return &Queue{} }

// Push adds an alert and restores the heap ordering by sifting it up.
func (q *Queue) Push(priority int, message string, plantingID int) {
	q.heap = append(q.heap, entry{
		Alert: Alert{Priority: priority, Message: message, PlantingID: plantingID},
		seq:   q.seq,
	})
	q.seq++
	q.up(len(q.heap) - 1)
}

// PopMin removes and returns the alert with the smallest priority value.
func (q *Queue) PopMin() (Alert, error) {
	n := len(q.heap)
	if n == 0 {
		return Alert{}, ErrEmptyQueue
	}
	top := q.heap[0].Alert
	last := n - 1
	q.heap[0] = q.heap[last]
	q.heap[last] = entry{}
	q.heap = q.heap[:last]
	if last > 0 {
		q.down(0)
	}
	return top, nil
}

// Snapshot returns every alert sorted ascending by priority, equal
// priorities in push order. The heap is not modified.
func (q *Queue) Snapshot() []Alert {
	tmp := slices.Clone(q.heap)
	slices.SortFunc(tmp, func(a, b entry) int {
		if c := cmp.Compare(a.Priority, b.Priority); c != 0 {
			return c
		}
		return cmp.Compare(a.seq, b.seq)
	})
	out := make([]Alert, len(tmp))
	for i, e := range tmp {
		out[i] = e.Alert
	}
	return out
}

// Top returns at most k alerts from Snapshot. k <= 0 yields an empty slice.
func (q *Queue) Top(k int) []Alert {
	if k <= 0 {
		return []Alert{}
	}
	s := q.Snapshot()
	if k < len(s) {
		s = s[:k]
	}
	return s
}

// IsEmpty reports whether the queue holds no alerts.
func (q *Queue) IsEmpty() bool { return len(q.heap) == 0 }

// Len returns the number of queued alerts.
func (q *Queue) Len() int { return len(q.heap) }

// up swaps i with its parent while the parent's priority is strictly greater.
func (q *Queue) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if q.heap[parent].Priority <= q.heap[i].Priority {
			return
		}
		q.heap[parent], q.heap[i] = q.heap[i], q.heap[parent]
		i = parent
	}
}

// down swaps i with its smaller child until both children are >= i.
// On equal child priorities the left child wins.
func (q *Queue) down(i int) {
	n := len(q.heap)
	for {
		smallest := i
		left, right := 2*i+1, 2*i+2
		if left < n && q.heap[left].Priority < q.heap[smallest].Priority {
			smallest = left
		}
		if right < n && q.heap[right].Priority < q.heap[smallest].Priority {
			smallest = right
		}
		if smallest == i {
			return
		}
		q.heap[i], q.heap[smallest] = q.heap[smallest], q.heap[i]
		i = smallest
	}
}
