// Package realtime provides a tick-based dispatcher that owns a containerx.PriorityQueue.
//
// The containers in containerx do no locking. Dispatcher gives concurrent
// producers a safe way to feed one: Submit only appends to a mutex-guarded
// pending batch, and the queue itself is touched by a single goroutine.
//
// On every tick the dispatcher:
//   - Moves the pending batch into the queue in submission order
//   - Dequeues up to MaxPerTick items (all of them when 0)
//   - Calls the Handler for each, recovering panics
//
// # Example Usage
//
//	d := realtime.NewDispatcher(func(ctx context.Context, it realtime.Item[string]) error {
//		fmt.Println(it.Value)
//		return nil
//	}, realtime.Config{TickRate: 10 * time.Millisecond})
//	d.Start(ctx)
//	d.Submit("urgent", 0)
//	d.Submit("later", 5)
//
// # Event Ordering Guarantees
//
// Items are ordered deterministically using:
//  1. Priority (lower priority value dispatched first)
//  2. Sequence number (FIFO for same priority)
//
// The second rule falls out of the queue's stable insert; no sort step and no
// explicit tie-break comparison is needed.
//
// # Testing
//
// Step runs a single tick synchronously on a stopped dispatcher, which makes
// dispatch order reproducible without sleeping on a ticker.
package realtime
