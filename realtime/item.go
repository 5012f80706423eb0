package realtime

import "context"

// Item is a submitted value plus its ordering metadata.
type Item[T any] struct {
	Value    T
	Priority int    // lower is dispatched first
	Seq      uint64 // submission order, breaks priority ties
}

// Handler consumes dispatched items on the dispatcher goroutine.
type Handler[T any] func(ctx context.Context, item Item[T]) error

// Dispatch ordering guarantees:
// 1. Items are dispatched in ascending Priority
// 2. Equal priorities are dispatched in submission order (Seq)
// 3. Items left over from a previous tick keep their place ahead of later
//    submissions of the same priority
