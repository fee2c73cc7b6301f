package pqueue_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/agrodata/agrokit/pqueue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func priorities(as []pqueue.Alert) []int {
	out := make([]int, len(as))
	for i, a := range as {
		out[i] = a.Priority
	}
	return out
}

// TestQueue_PopEmpty checks the empty-queue condition.
func TestQueue_PopEmpty(t *testing.T) {
	q := pqueue.New()
	assert.True(t, q.IsEmpty())
	_, err := q.PopMin()
	assert.ErrorIs(t, err, pqueue.ErrEmptyQueue)
	assert.Empty(t, q.Snapshot())
}

// TestQueue_SnapshotScenario pushes [3,1,2,1] and expects [1,1,2,3].
func TestQueue_SnapshotScenario(t *testing.T) {
	q := pqueue.New()
	q.Push(3, "low", 10)
	q.Push(1, "first urgent", 11)
	q.Push(2, "medium", 12)
	q.Push(1, "second urgent", 13)

	snap := q.Snapshot()
	assert.Equal(t, []int{1, 1, 2, 3}, priorities(snap))
	assert.Equal(t, "first urgent", snap[0].Message, "ties keep push order")
	assert.Equal(t, "second urgent", snap[1].Message)
	assert.Equal(t, 4, q.Len(), "snapshot must not drain the heap")
	assert.True(t, pqueue.HeapOrdered(q))
}

// TestQueue_SnapshotDoesNotMutate compares the internal array before and after.
func TestQueue_SnapshotDoesNotMutate(t *testing.T) {
	q := pqueue.New()
	for _, p := range []int{5, 4, 3, 2, 1} {
		q.Push(p, "", p)
	}
	before := pqueue.RawPriorities(q)
	_ = q.Snapshot()
	assert.Equal(t, before, pqueue.RawPriorities(q))
}

// TestQueue_SiftUpLayout checks the array after pushes that bubble to the root.
func TestQueue_SiftUpLayout(t *testing.T) {
	q := pqueue.New()
	for _, p := range []int{3, 1, 2, 1} {
		q.Push(p, "", 0)
	}
	// push 3 -> [3]; push 1 -> [1 3]; push 2 -> [1 3 2]; push 1 -> parent 3 swaps, parent 1 stays.
	assert.Equal(t, []int{1, 1, 2, 3}, pqueue.RawPriorities(q))
}

// TestQueue_PopOrder drains a queue and expects non-decreasing priorities.
func TestQueue_PopOrder(t *testing.T) {
	q := pqueue.New()
	for _, p := range []int{4, 2, 9, 1, 7, 3, 3, 8} {
		q.Push(p, "", p)
	}
	var got []int
	for !q.IsEmpty() {
		a, err := q.PopMin()
		require.NoError(t, err)
		got = append(got, a.Priority)
	}
	assert.Equal(t, []int{1, 2, 3, 3, 4, 7, 8, 9}, got)
}

// TestQueue_Top limits the snapshot.
func TestQueue_Top(t *testing.T) {
	q := pqueue.New()
	for _, p := range []int{2, 1, 3} {
		q.Push(p, "", p)
	}
	assert.Equal(t, []int{1, 2}, priorities(q.Top(2)))
	assert.Len(t, q.Top(10), 3)
	assert.Empty(t, q.Top(0))
}

// TestQueue_RandomOperations interleaves pushes and pops against a sorted model.
func TestQueue_RandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	q := pqueue.New()
	var model []int
	for i := 0; i < 2000; i++ {
		if rng.Intn(3) > 0 || len(model) == 0 {
			p := rng.Intn(10)
			q.Push(p, "", i)
			model = append(model, p)
		} else {
			a, err := q.PopMin()
			require.NoError(t, err)
			lowest := slices.Min(model)
			require.Equal(t, lowest, a.Priority, "PopMin must return the global minimum")
			model = slices.Delete(model, slices.Index(model, lowest), slices.Index(model, lowest)+1)
		}
		require.True(t, pqueue.HeapOrdered(q), "heap invariant broken at step %d", i)
		require.Equal(t, len(model), q.Len())
	}
}
