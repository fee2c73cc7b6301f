package pqueue

import "errors"

// Alert priorities.
const (
	PriorityUrgent = 1
	PriorityMedium = 2
	PriorityLow    = 3
)

// ErrEmptyQueue is returned by PopMin on an empty queue.
var ErrEmptyQueue = errors.New("pqueue: queue is empty")

// Alert is one heap entry.
type Alert struct {
	Priority   int
	Message    string
	PlantingID int
}

// entry pairs an alert with its push sequence so Snapshot can order ties
// deterministically.
type entry struct {
	Alert
	seq uint64
}
