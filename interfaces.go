package containerx

import "cmp"

// LIFO is the behaviour shared by Stack and LockedStack.
type LIFO[T any] interface {
	Push(value T)
	Pop() (T, bool)
	Peek() (T, bool)
	Clear()
	IsEmpty() bool
	Size() int
	ToSlice() []T
}

// FIFO is the behaviour shared by Queue and LockedQueue.
type FIFO[T any] interface {
	Enqueue(value T)
	Dequeue() (T, bool)
	Peek() (T, bool)
	Clear()
	IsEmpty() bool
	Size() int
	ToSlice() []T
}

// PriorityFIFO is the behaviour shared by PriorityQueue and LockedPriorityQueue.
type PriorityFIFO[T any, P cmp.Ordered] interface {
	Enqueue(value T, priority P)
	Dequeue() (T, bool)
	Peek() (T, bool)
	Clear()
	IsEmpty() bool
	Size() int
	ToSlice() []T
}

var (
	_ LIFO[int]                     = (*Stack[int])(nil)
	_ LIFO[int]                     = (*LockedStack[int])(nil)
	_ FIFO[int]                     = (*Queue[int])(nil)
	_ FIFO[int]                     = (*LockedQueue[int])(nil)
	_ PriorityFIFO[int, int]        = (*PriorityQueue[int, int])(nil)
	_ PriorityFIFO[int, int]        = (*LockedPriorityQueue[int, int])(nil)
	_ PriorityFIFO[string, float64] = (*PriorityQueue[string, float64])(nil)
)
