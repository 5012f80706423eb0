package production

import (
	"context"

	"github.com/comalice/containerx/realtime"
)

// PublishedItem bundles a dispatched item with the dispatcher it came from.
type PublishedItem[T any] struct {
	Item   realtime.Item[T]
	Source string
}

// ChannelPublisher is a stdlib-only realtime.Handler that forwards items to a Go channel.
type ChannelPublisher[T any] struct {
	ch       chan<- PublishedItem[T]
	source   string
	blocking bool
}

// NewChannelPublisher creates a non-blocking publisher: items are dropped on backpressure.
func NewChannelPublisher[T any](source string, ch chan<- PublishedItem[T]) *ChannelPublisher[T] {
	return &ChannelPublisher[T]{ch: ch, source: source}
}

// NewBlockingChannelPublisher creates a publisher that waits for the receiver or ctx.
func NewBlockingChannelPublisher[T any](source string, ch chan<- PublishedItem[T]) *ChannelPublisher[T] {
	return &ChannelPublisher[T]{ch: ch, source: source, blocking: true}
}

// Publish matches realtime.Handler.
func (p *ChannelPublisher[T]) Publish(ctx context.Context, item realtime.Item[T]) error {
	msg := PublishedItem[T]{Item: item, Source: p.source}
	if p.blocking {
		select {
		case p.ch <- msg:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	select {
	case p.ch <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil // Non-blocking drop
	}
}

// Close closes the channel. Call it only after Dispatcher.Stop has returned;
// a Publish that races with Close panics on the closed channel.
func (p *ChannelPublisher[T]) Close() error {
	close(p.ch)
	return nil
}
