package containerx

import (
	"cmp"
	"fmt"
)

// Node is a single cell of a Stack or Queue chain.
//
// Nodes are created by the owning container on insert and unlinked on removal.
// Callers only ever see nodes through Top/Front and walk them with Next.
type Node[T any] struct {
	value T
	next  *Node[T]
}

// Value returns the payload stored in the node.
func (n *Node[T]) Value() T {
	return n.value
}

// Next returns the following node in the chain, or nil at the end.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// PriorityNode is a cell of a PriorityQueue chain.
type PriorityNode[T any, P cmp.Ordered] struct {
	value    T
	priority P
	next     *PriorityNode[T, P]
	queue    *PriorityQueue[T, P] // nil once detached
}

// Value returns the payload stored in the node.
func (n *PriorityNode[T, P]) Value() T {
	return n.value
}

// Next returns the following node in the chain, or nil at the end.
func (n *PriorityNode[T, P]) Next() *PriorityNode[T, P] {
	return n.next
}

// Priority returns the stored priority.
func (n *PriorityNode[T, P]) Priority() P {
	return n.priority
}

// SetPriority overwrites the stored priority.
//
// The node is NOT moved to its new sorted position. The owning queue's order
// holds again only after the caller removes the node and enqueues it anew:
//
//	q.Remove(n)
//	q.Enqueue(n.Value(), newPriority)
//
// Panics with ErrInvalidPriority if p is NaN.
func (n *PriorityNode[T, P]) SetPriority(p P) {
	mustOrder(p)
	n.priority = p
}

// mustOrder panics if p cannot be compared, which only happens for NaN.
func mustOrder[P cmp.Ordered](p P) {
	if p != p {
		panic(fmt.Errorf("%w: NaN", ErrInvalidPriority))
	}
}
