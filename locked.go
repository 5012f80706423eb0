package containerx

import (
	"cmp"
	"sync"
)

// LockedStack guards a Stack with a RWMutex.
// Use Do for compound operations that must not interleave with other callers.
type LockedStack[T any] struct {
	mu sync.RWMutex
	s  Stack[T]
}

// NewLockedStack creates an empty lock-guarded stack.
func NewLockedStack[T any]() *LockedStack[T] {
	return &LockedStack[T]{}
}

func (l *LockedStack[T]) Push(value T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.s.Push(value)
}

func (l *LockedStack[T]) Pop() (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.s.Pop()
}

func (l *LockedStack[T]) Peek() (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.s.Peek()
}

func (l *LockedStack[T]) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.s.Clear()
}

func (l *LockedStack[T]) IsEmpty() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.s.IsEmpty()
}

func (l *LockedStack[T]) Size() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.s.Size()
}

// ToSlice returns a snapshot copy taken under the read lock.
func (l *LockedStack[T]) ToSlice() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.s.ToSlice()
}

// Do runs fn with exclusive access to the underlying stack.
// fn must not retain the pointer after returning.
func (l *LockedStack[T]) Do(fn func(s *Stack[T])) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(&l.s)
}

// LockedQueue guards a Queue with a RWMutex.
type LockedQueue[T any] struct {
	mu sync.RWMutex
	q  Queue[T]
}

// NewLockedQueue creates an empty lock-guarded queue.
func NewLockedQueue[T any]() *LockedQueue[T] {
	return &LockedQueue[T]{}
}

func (l *LockedQueue[T]) Enqueue(value T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.q.Enqueue(value)
}

func (l *LockedQueue[T]) Dequeue() (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.q.Dequeue()
}

func (l *LockedQueue[T]) Peek() (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.q.Peek()
}

func (l *LockedQueue[T]) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.q.Clear()
}

func (l *LockedQueue[T]) IsEmpty() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.q.IsEmpty()
}

func (l *LockedQueue[T]) Size() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.q.Size()
}

func (l *LockedQueue[T]) ToSlice() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.q.ToSlice()
}

// Do runs fn with exclusive access to the underlying queue.
func (l *LockedQueue[T]) Do(fn func(q *Queue[T])) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(&l.q)
}

// LockedPriorityQueue guards a PriorityQueue with a RWMutex.
//
// Nodes are not exposed; re-prioritising an element goes through Do.
type LockedPriorityQueue[T any, P cmp.Ordered] struct {
	mu sync.RWMutex
	pq PriorityQueue[T, P]
}

// NewLockedPriorityQueue creates an empty lock-guarded priority queue.
func NewLockedPriorityQueue[T any, P cmp.Ordered]() *LockedPriorityQueue[T, P] {
	return &LockedPriorityQueue[T, P]{}
}

func (l *LockedPriorityQueue[T, P]) Enqueue(value T, priority P) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pq.Enqueue(value, priority)
}

func (l *LockedPriorityQueue[T, P]) Dequeue() (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pq.Dequeue()
}

func (l *LockedPriorityQueue[T, P]) Peek() (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.pq.Peek()
}

func (l *LockedPriorityQueue[T, P]) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pq.Clear()
}

func (l *LockedPriorityQueue[T, P]) IsEmpty() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.pq.IsEmpty()
}

func (l *LockedPriorityQueue[T, P]) Size() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.pq.Size()
}

func (l *LockedPriorityQueue[T, P]) ToSlice() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.pq.ToSlice()
}

func (l *LockedPriorityQueue[T, P]) Entries() []Entry[T, P] {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.pq.Entries()
}

// Do runs fn with exclusive access to the underlying priority queue.
func (l *LockedPriorityQueue[T, P]) Do(fn func(pq *PriorityQueue[T, P])) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(&l.pq)
}
