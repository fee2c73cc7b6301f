package linkedlist

import "iter"

// node owns one value and the rest of the chain. No back-references.
type node[T any] struct {
	value T
	next  *node[T]
}

// List is a singly linked list whose elements are identified by a key of
// type K extracted from each value.
type List[T any, K comparable] struct {
	head *node[T]
	size int
	id   func(T) K
}

// New returns an empty List that identifies elements with id.
func New[T any, K comparable](id func(T) K) *List[T, K] {
	return &List[T, K]{id: id}
}

// Insert prepends v. The new value becomes the first in traversal order.
func (l *List[T, K]) Insert(v T) {
	l.head = &node[T]{value: v, next: l.head}
	l.size++
}

// Find returns the first value whose identifier equals id.
func (l *List[T, K]) Find(id K) (T, bool) {
	for n := l.head; n != nil; n = n.next {
		if l.id(n.value) == id {
			return n.value, true
		}
	}
	var zero T
	return zero, false
}

// Remove unlinks the first value whose identifier equals id and reports
// whether a value was removed. The list is unchanged when nothing matches.
func (l *List[T, K]) Remove(id K) bool {
	if l.head == nil {
		return false
	}
	if l.id(l.head.value) == id {
		l.head = l.head.next
		l.size--
		return true
	}
	for prev := l.head; prev.next != nil; prev = prev.next {
		if l.id(prev.next.value) == id {
			prev.next = prev.next.next
			l.size--
			return true
		}
	}
	return false
}

// Slice returns the values in head-to-tail order. The list is not modified.
func (l *List[T, K]) Slice() []T {
	out := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}

// All returns a lazy head-to-tail iterator over the values.
// Mutating the list while iterating is not supported.
func (l *List[T, K]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Len returns the number of values in the list.
func (l *List[T, K]) Len() int { return l.size }
