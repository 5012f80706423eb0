package containerx

import "fmt"

// Queue is a FIFO container built on a singly-linked chain.
//
// head owns the chain; tail only points at the last node so Enqueue never walks.
// The zero value is an empty queue ready to use.
type Queue[T any] struct {
	head  *Node[T]
	tail  *Node[T]
	count int
}

// NewQueue creates an empty queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Enqueue appends value at the back of the queue.
func (q *Queue[T]) Enqueue(value T) {
	n := &Node[T]{value: value}
	if q.tail == nil {
		q.head = n
		q.tail = n
	} else {
		q.tail.next = n
		q.tail = n
	}
	q.count++
}

// Dequeue removes and returns the front value.
// ok is false when the queue is empty.
func (q *Queue[T]) Dequeue() (value T, ok bool) {
	if q.head == nil {
		return value, false
	}
	n := q.head
	q.head = n.next
	n.next = nil
	if q.head == nil {
		q.tail = nil
	}
	q.count--
	return n.value, true
}

// Peek returns the front value without removing it.
func (q *Queue[T]) Peek() (value T, ok bool) {
	if q.head == nil {
		return value, false
	}
	return q.head.value, true
}

// Clear drops every element.
func (q *Queue[T]) Clear() {
	q.head = nil
	q.tail = nil
	q.count = 0
}

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool {
	return q.count == 0
}

// Size returns the number of elements.
func (q *Queue[T]) Size() int {
	return q.count
}

// ToSlice returns the elements front to back. The queue is not modified.
func (q *Queue[T]) ToSlice() []T {
	out := make([]T, 0, q.count)
	for n := q.head; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}

// Front returns the head node, or nil if the queue is empty.
func (q *Queue[T]) Front() *Node[T] {
	return q.head
}

func (q *Queue[T]) String() string {
	return fmt.Sprint(q.ToSlice())
}
