// Package containerx provides generic, node-based linear containers:
// a LIFO Stack, a FIFO Queue and a stable PriorityQueue.
//
// All three keep their elements in a singly-linked chain owned by the
// container. Removing from an empty container is not an error: Pop, Dequeue
// and Peek return the zero value and false.
//
// # Ordering
//
//   - Stack: last pushed, first popped.
//   - Queue: first enqueued, first dequeued. Enqueue and Dequeue are O(1).
//   - PriorityQueue: lowest priority first; equal priorities leave in
//     enqueue order. Enqueue is O(n), Peek and Dequeue are O(1).
//
// # Concurrency
//
// The containers do no locking. Wrap them in LockedStack, LockedQueue or
// LockedPriorityQueue, or hand them to a single owning goroutine (see the
// realtime package), when more than one goroutine needs access.
//
// Example:
//
//	pq := containerx.NewPriorityQueue[string, int]()
//	pq.Enqueue("Shelly", 3)
//	pq.Enqueue("Tommy", 2)
//	pq.Enqueue("Joe", 2)
//	v, _ := pq.Dequeue() // "Tommy"
package containerx
