package production

import (
	"errors"
	"fmt"
	"time"

	"github.com/comalice/containerx"
)

// Kind names the container a snapshot was taken from.
type Kind string

const (
	KindStack         Kind = "stack"
	KindQueue         Kind = "queue"
	KindPriorityQueue Kind = "priority_queue"
)

var (
	ErrKindMismatch = errors.New("snapshot kind mismatch")
	ErrInvalidID    = errors.New("invalid container id")
)

// Snapshot is the serializable form of a container's contents.
// Entries are stored in removal order; Priority is zero for stacks and queues.
type Snapshot[T any] struct {
	ContainerID string                         `json:"container_id" yaml:"container_id"`
	Kind        Kind                           `json:"kind" yaml:"kind"`
	Entries     []containerx.Entry[T, float64] `json:"entries" yaml:"entries"`
	Timestamp   time.Time                      `json:"timestamp" yaml:"timestamp"`
}

// SnapshotStack captures s top-first.
func SnapshotStack[T any](id string, s *containerx.Stack[T]) Snapshot[T] {
	return Snapshot[T]{
		ContainerID: id,
		Kind:        KindStack,
		Entries:     unprioritised(s.ToSlice()),
		Timestamp:   time.Now(),
	}
}

// SnapshotQueue captures q front to back.
func SnapshotQueue[T any](id string, q *containerx.Queue[T]) Snapshot[T] {
	return Snapshot[T]{
		ContainerID: id,
		Kind:        KindQueue,
		Entries:     unprioritised(q.ToSlice()),
		Timestamp:   time.Now(),
	}
}

// SnapshotPriorityQueue captures pq in chain order with priorities.
func SnapshotPriorityQueue[T any](id string, pq *containerx.PriorityQueue[T, float64]) Snapshot[T] {
	return Snapshot[T]{
		ContainerID: id,
		Kind:        KindPriorityQueue,
		Entries:     pq.Entries(),
		Timestamp:   time.Now(),
	}
}

// RestoreStack rebuilds a stack whose Pop order matches the snapshot.
func RestoreStack[T any](snap Snapshot[T]) (*containerx.Stack[T], error) {
	if err := snap.expect(KindStack); err != nil {
		return nil, err
	}
	s := containerx.NewStack[T]()
	for i := len(snap.Entries) - 1; i >= 0; i-- {
		s.Push(snap.Entries[i].Value)
	}
	return s, nil
}

// RestoreQueue rebuilds a queue whose Dequeue order matches the snapshot.
func RestoreQueue[T any](snap Snapshot[T]) (*containerx.Queue[T], error) {
	if err := snap.expect(KindQueue); err != nil {
		return nil, err
	}
	q := containerx.NewQueue[T]()
	for _, e := range snap.Entries {
		q.Enqueue(e.Value)
	}
	return q, nil
}

// RestorePriorityQueue rebuilds a priority queue. Entries are re-enqueued in
// stored order, so ties keep their original relative order.
func RestorePriorityQueue[T any](snap Snapshot[T]) (*containerx.PriorityQueue[T, float64], error) {
	if err := snap.expect(KindPriorityQueue); err != nil {
		return nil, err
	}
	pq := containerx.NewPriorityQueue[T, float64]()
	for _, e := range snap.Entries {
		if e.Priority != e.Priority {
			return nil, fmt.Errorf("entry %v: %w", e.Value, containerx.ErrInvalidPriority)
		}
		pq.Enqueue(e.Value, e.Priority)
	}
	return pq, nil
}

func (s Snapshot[T]) expect(kind Kind) error {
	if s.Kind != kind {
		return fmt.Errorf("%w: have %q, want %q", ErrKindMismatch, s.Kind, kind)
	}
	return nil
}

func unprioritised[T any](values []T) []containerx.Entry[T, float64] {
	out := make([]containerx.Entry[T, float64], len(values))
	for i, v := range values {
		out[i] = containerx.Entry[T, float64]{Value: v}
	}
	return out
}
