package realtime

import (
	"context"
)

// processTick processes one complete tick
func (d *Dispatcher[T]) processTick(ctx context.Context) {
	// Phase 1: Collect submissions atomically
	items := d.collectPending()

	// Phase 2: Merge into the owned queue; submission order is the tie-break
	d.enqueueAll(items)

	// Phase 3: Hand the head of the queue to the handler
	d.dispatch(ctx)

	d.batchMu.Lock()
	d.tickNum++
	d.batchMu.Unlock()
}

// collectPending atomically retrieves and clears the pending batch.
// The batch is counted as queued before batchMu is released so Backlog never dips.
func (d *Dispatcher[T]) collectPending() []Item[T] {
	d.batchMu.Lock()
	defer d.batchMu.Unlock()

	items := d.pending
	d.pending = make([]Item[T], 0, d.cfg.MaxPending)
	d.queued.Add(int64(len(items)))
	return items
}

func (d *Dispatcher[T]) enqueueAll(items []Item[T]) {
	for _, item := range items {
		d.queue.Enqueue(item, item.Priority)
	}
}

// dispatch drains up to MaxPerTick items, stopping early if ctx is done.
func (d *Dispatcher[T]) dispatch(ctx context.Context) {
	limit := d.cfg.MaxPerTick
	for n := 0; limit == 0 || n < limit; n++ {
		if ctx.Err() != nil {
			return
		}
		item, ok := d.queue.Dequeue()
		if !ok {
			return
		}
		d.queued.Add(-1)
		d.handle(ctx, item)
	}
}

// handle runs the handler with panic recovery so one bad item cannot stop the loop.
func (d *Dispatcher[T]) handle(ctx context.Context, item Item[T]) {
	defer func() {
		if r := recover(); r != nil {
			d.panics.Add(1)
			d.logger.Printf("realtime: handler panic on item seq=%d priority=%d: %v", item.Seq, item.Priority, r)
		}
	}()

	if err := d.handler(ctx, item); err != nil {
		d.failed.Add(1)
		d.logger.Printf("realtime: handler failed on item seq=%d priority=%d: %v", item.Seq, item.Priority, err)
		return
	}
	d.dispatched.Add(1)
}
