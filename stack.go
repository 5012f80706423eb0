package containerx

import "fmt"

// Stack is a LIFO container built on a singly-linked chain.
// The zero value is an empty stack ready to use.
//
// Stack is not safe for concurrent use; see LockedStack.
type Stack[T any] struct {
	top   *Node[T]
	count int
}

// NewStack creates an empty stack.
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push places value on top of the stack.
func (s *Stack[T]) Push(value T) {
	s.top = &Node[T]{value: value, next: s.top}
	s.count++
}

// Pop removes and returns the top value.
// ok is false when the stack is empty.
func (s *Stack[T]) Pop() (value T, ok bool) {
	if s.top == nil {
		return value, false
	}
	n := s.top
	s.top = n.next
	n.next = nil
	s.count--
	return n.value, true
}

// Peek returns the top value without removing it.
func (s *Stack[T]) Peek() (value T, ok bool) {
	if s.top == nil {
		return value, false
	}
	return s.top.value, true
}

// Clear drops every element.
func (s *Stack[T]) Clear() {
	s.top = nil
	s.count = 0
}

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool {
	return s.count == 0
}

// Size returns the number of elements.
func (s *Stack[T]) Size() int {
	return s.count
}

// ToSlice returns the elements top-first. The stack is not modified.
func (s *Stack[T]) ToSlice() []T {
	out := make([]T, 0, s.count)
	for n := s.top; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}

// Top returns the top node, or nil if the stack is empty.
func (s *Stack[T]) Top() *Node[T] {
	return s.top
}

func (s *Stack[T]) String() string {
	return fmt.Sprint(s.ToSlice())
}
