package containerx

import (
	"cmp"
	"fmt"
)

// Entry pairs a value with its priority.
type Entry[T any, P cmp.Ordered] struct {
	Value    T `json:"value" yaml:"value"`
	Priority P `json:"priority" yaml:"priority"`
}

// PriorityQueue keeps its elements in non-decreasing priority order.
//
// Ordering is stable: elements of equal priority leave in the order they were
// enqueued. Enqueue does the ordering work in O(n) so Peek and Dequeue stay O(1).
// The zero value is an empty queue ready to use. A PriorityQueue must not be
// copied after first use: its nodes point back at the queue that owns them.
//
// PriorityQueue is not safe for concurrent use; see LockedPriorityQueue.
type PriorityQueue[T any, P cmp.Ordered] struct {
	head  *PriorityNode[T, P]
	count int
}

// NewPriorityQueue creates an empty priority queue.
func NewPriorityQueue[T any, P cmp.Ordered]() *PriorityQueue[T, P] {
	return &PriorityQueue[T, P]{}
}

// Enqueue inserts value after every element whose priority is <= priority.
//
// Panics with ErrInvalidPriority if priority is NaN.
func (pq *PriorityQueue[T, P]) Enqueue(value T, priority P) {
	mustOrder(priority)
	n := &PriorityNode[T, P]{value: value, priority: priority, queue: pq}

	if pq.head == nil || priority < pq.head.priority {
		n.next = pq.head
		pq.head = n
		pq.count++
		return
	}

	prev := pq.head
	for prev.next != nil && prev.next.priority <= priority {
		prev = prev.next
	}
	n.next = prev.next
	prev.next = n
	pq.count++
}

// Dequeue removes and returns the lowest-priority, earliest-enqueued value.
// ok is false when the queue is empty.
func (pq *PriorityQueue[T, P]) Dequeue() (value T, ok bool) {
	if pq.head == nil {
		return value, false
	}
	n := pq.head
	pq.head = n.next
	n.detach()
	pq.count--
	return n.value, true
}

// Peek returns the value Dequeue would return, without removing it.
func (pq *PriorityQueue[T, P]) Peek() (value T, ok bool) {
	if pq.head == nil {
		return value, false
	}
	return pq.head.value, true
}

// PeekPriority returns the priority of the head element.
func (pq *PriorityQueue[T, P]) PeekPriority() (priority P, ok bool) {
	if pq.head == nil {
		return priority, false
	}
	return pq.head.priority, true
}

// Remove unlinks n from the queue and reports whether it was found.
//
// Combined with Enqueue this is how callers re-sort an element after
// PriorityNode.SetPriority. Nodes that are nil, already removed, or owned by
// another queue are rejected.
func (pq *PriorityQueue[T, P]) Remove(n *PriorityNode[T, P]) bool {
	if n == nil || n.queue != pq || pq.head == nil {
		return false
	}

	if pq.head == n {
		pq.head = n.next
		n.detach()
		pq.count--
		return true
	}

	prev := pq.head
	for prev.next != nil && prev.next != n {
		prev = prev.next
	}
	if prev.next == nil {
		// Dropped by an earlier Clear.
		n.detach()
		return false
	}
	prev.next = n.next
	n.detach()
	pq.count--
	return true
}

// Clear drops every element.
func (pq *PriorityQueue[T, P]) Clear() {
	pq.head = nil
	pq.count = 0
}

// IsEmpty reports whether the queue holds no elements.
func (pq *PriorityQueue[T, P]) IsEmpty() bool {
	return pq.count == 0
}

// Size returns the number of elements.
func (pq *PriorityQueue[T, P]) Size() int {
	return pq.count
}

// ToSlice returns the values in chain order: ascending priority, ties by
// insertion order. The queue is not modified.
func (pq *PriorityQueue[T, P]) ToSlice() []T {
	out := make([]T, 0, pq.count)
	for n := pq.head; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}

// Entries is ToSlice with the priorities attached.
func (pq *PriorityQueue[T, P]) Entries() []Entry[T, P] {
	out := make([]Entry[T, P], 0, pq.count)
	for n := pq.head; n != nil; n = n.next {
		out = append(out, Entry[T, P]{Value: n.value, Priority: n.priority})
	}
	return out
}

// Front returns the head node, or nil if the queue is empty.
func (pq *PriorityQueue[T, P]) Front() *PriorityNode[T, P] {
	return pq.head
}

func (pq *PriorityQueue[T, P]) String() string {
	return fmt.Sprint(pq.ToSlice())
}

func (n *PriorityNode[T, P]) detach() {
	n.next = nil
	n.queue = nil
}
