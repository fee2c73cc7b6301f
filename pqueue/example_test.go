package pqueue_test

import (
	"fmt"

	"github.com/agrodata/agrokit/pqueue"
)

// ExampleQueue dispatches alerts most urgent first.
func ExampleQueue() {
	q := pqueue.New()
	q.Push(pqueue.PriorityLow, "check irrigation", 4)
	q.Push(pqueue.PriorityUrgent, "maize ready", 1)
	q.Push(pqueue.PriorityMedium, "bean approaching harvest", 2)

	for !q.IsEmpty() {
		a, _ := q.PopMin()
		fmt.Println(a.Priority, a.Message)
	}
	// Output:
	// 1 maize ready
	// 2 bean approaching harvest
	// 3 check irrigation
}
