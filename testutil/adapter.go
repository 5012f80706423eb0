package testutil

import (
	"cmp"

	"github.com/comalice/containerx"
)

// ContainerAdapter provides a common interface over Stack, Queue and PriorityQueue.
// This allows running the same property checks against all three containers.
type ContainerAdapter[T any] interface {
	Name() string
	Put(value T)
	Take() (T, bool)
	Peek() (T, bool)
	Clear()
	IsEmpty() bool
	Size() int
	ToSlice() []T
}

// StackAdapter wraps a Stack
type StackAdapter[T any] struct {
	s *containerx.Stack[T]
}

// NewStackAdapter creates a new adapter around an empty stack
func NewStackAdapter[T any]() *StackAdapter[T] {
	return &StackAdapter[T]{s: containerx.NewStack[T]()}
}

func (a *StackAdapter[T]) Name() string { return "stack" }
func (a *StackAdapter[T]) Put(value T) { a.s.Push(value) }
func (a *StackAdapter[T]) Take() (T, bool) { return a.s.Pop() }
func (a *StackAdapter[T]) Peek() (T, bool) { return a.s.Peek() }
func (a *StackAdapter[T]) Clear() { a.s.Clear() }
func (a *StackAdapter[T]) IsEmpty() bool { return a.s.IsEmpty() }
func (a *StackAdapter[T]) Size() int { return a.s.Size() }
func (a *StackAdapter[T]) ToSlice() []T { return a.s.ToSlice() }
func (a *StackAdapter[T]) Unwrap() *containerx.Stack[T] { return a.s }

// QueueAdapter wraps a Queue
type QueueAdapter[T any] struct {
	q *containerx.Queue[T]
}

// NewQueueAdapter creates a new adapter around an empty queue
func NewQueueAdapter[T any]() *QueueAdapter[T] {
	return &QueueAdapter[T]{q: containerx.NewQueue[T]()}
}

func (a *QueueAdapter[T]) Name() string { return "queue" }
func (a *QueueAdapter[T]) Put(value T) { a.q.Enqueue(value) }
func (a *QueueAdapter[T]) Take() (T, bool) { return a.q.Dequeue() }
func (a *QueueAdapter[T]) Peek() (T, bool) { return a.q.Peek() }
func (a *QueueAdapter[T]) Clear() { a.q.Clear() }
func (a *QueueAdapter[T]) IsEmpty() bool { return a.q.IsEmpty() }
func (a *QueueAdapter[T]) Size() int { return a.q.Size() }
func (a *QueueAdapter[T]) ToSlice() []T { return a.q.ToSlice() }
func (a *QueueAdapter[T]) Unwrap() *containerx.Queue[T] { return a.q }

// PriorityQueueAdapter wraps a PriorityQueue.
// Put derives each element's priority from the value itself.
type PriorityQueueAdapter[T any, P cmp.Ordered] struct {
	pq       *containerx.PriorityQueue[T, P]
	priority func(T) P
}

// NewPriorityQueueAdapter creates a new adapter around an empty priority queue
func NewPriorityQueueAdapter[T any, P cmp.Ordered](priority func(T) P) *PriorityQueueAdapter[T, P] {
	return &PriorityQueueAdapter[T, P]{
		pq:       containerx.NewPriorityQueue[T, P](),
		priority: priority,
	}
}

func (a *PriorityQueueAdapter[T, P]) Name() string { return "priority-queue" }
func (a *PriorityQueueAdapter[T, P]) Put(value T) { a.pq.Enqueue(value, a.priority(value)) }
func (a *PriorityQueueAdapter[T, P]) Take() (T, bool) { return a.pq.Dequeue() }
func (a *PriorityQueueAdapter[T, P]) Peek() (T, bool) { return a.pq.Peek() }
func (a *PriorityQueueAdapter[T, P]) Clear() { a.pq.Clear() }
func (a *PriorityQueueAdapter[T, P]) IsEmpty() bool { return a.pq.IsEmpty() }
func (a *PriorityQueueAdapter[T, P]) Size() int { return a.pq.Size() }
func (a *PriorityQueueAdapter[T, P]) ToSlice() []T { return a.pq.ToSlice() }
func (a *PriorityQueueAdapter[T, P]) Unwrap() *containerx.PriorityQueue[T, P] {
	return a.pq
}

// Drain takes every element out of c in removal order.
func Drain[T any](c ContainerAdapter[T]) []T {
	out := make([]T, 0, c.Size())
	for {
		v, ok := c.Take()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// Reversed returns a reversed copy of in.
func Reversed[T any](in []T) []T {
	out := make([]T, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}
