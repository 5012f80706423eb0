package realtime

import (
	"context"
	"errors"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/comalice/containerx"
)

var (
	ErrBacklogFull    = errors.New("dispatcher backlog full")
	ErrAlreadyStarted = errors.New("dispatcher already started")
	ErrNotStarted     = errors.New("dispatcher not started")
)

// Config configures the dispatcher
type Config struct {
	TickRate   time.Duration // Fixed tick rate (default: 16.67ms, 60 FPS)
	MaxPending int           // Submissions buffered between ticks (default: 1000)
	MaxPerTick int           // Items handled per tick, 0 or less drains the queue
}

// Option configures optional Dispatcher behaviour.
type Option func(*settings)

type settings struct {
	logger *log.Logger
}

// WithLogger routes handler failures and recovered panics to l.
func WithLogger(l *log.Logger) Option {
	return func(s *settings) {
		s.logger = l
	}
}

// Stats is a point-in-time view of dispatcher counters.
type Stats struct {
	Ticks      uint64
	Dispatched uint64
	Failed     uint64
	Panics     uint64
}

// Dispatcher feeds submitted items to a Handler in priority order, one batch per tick.
//
// The PriorityQueue is owned by the dispatcher goroutine (or by the caller of
// Step when the dispatcher is not running); Submit only touches the pending
// batch under batchMu.
type Dispatcher[T any] struct {
	handler Handler[T]
	cfg     Config
	logger  *log.Logger

	queue  containerx.PriorityQueue[Item[T], int]
	queued atomic.Int64

	// Submission batching
	pending []Item[T]
	batchMu sync.Mutex
	seq     uint64
	tickNum uint64

	dispatched atomic.Uint64
	failed     atomic.Uint64
	panics     atomic.Uint64

	// Control
	runMu   sync.Mutex
	running bool
	cancel  context.CancelFunc
	stopped chan struct{}
}

// NewDispatcher creates a stopped dispatcher that hands items to handler.
// Non-positive TickRate and MaxPending fall back to their defaults.
func NewDispatcher[T any](handler func(ctx context.Context, item Item[T]) error, cfg Config, opts ...Option) *Dispatcher[T] {
	if cfg.MaxPending <= 0 {
		cfg.MaxPending = 1000
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 16667 * time.Microsecond
	}
	if cfg.MaxPerTick < 0 {
		cfg.MaxPerTick = 0
	}

	s := settings{logger: log.Default()}
	for _, opt := range opts {
		opt(&s)
	}

	return &Dispatcher[T]{
		handler: handler,
		cfg:     cfg,
		logger:  s.logger,
		pending: make([]Item[T], 0, cfg.MaxPending),
	}
}

// Start begins tick-based dispatching until ctx is done or Stop is called.
func (d *Dispatcher[T]) Start(ctx context.Context) error {
	d.runMu.Lock()
	defer d.runMu.Unlock()
	if d.running {
		return ErrAlreadyStarted
	}

	tickCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	d.stopped = make(chan struct{})
	d.running = true

	go d.tickLoop(tickCtx, d.stopped)
	return nil
}

// Stop halts the tick loop and waits for the in-flight tick to finish.
// Items still queued stay queued and are dispatched if the dispatcher is restarted.
func (d *Dispatcher[T]) Stop() error {
	d.runMu.Lock()
	defer d.runMu.Unlock()
	if !d.running {
		return ErrNotStarted
	}
	d.cancel()
	<-d.stopped
	d.running = false
	return nil
}

// Step runs exactly one tick on the calling goroutine.
// It is meant for deterministic tests and replays; it fails while the tick loop is running.
func (d *Dispatcher[T]) Step(ctx context.Context) error {
	d.runMu.Lock()
	defer d.runMu.Unlock()
	if d.running {
		return ErrAlreadyStarted
	}
	d.processTick(ctx)
	return nil
}

func (d *Dispatcher[T]) tickLoop(ctx context.Context, stopped chan struct{}) {
	defer close(stopped)

	ticker := time.NewTicker(d.cfg.TickRate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.processTick(ctx)
		}
	}
}

// Submit queues value for the next tick (thread-safe)
func (d *Dispatcher[T]) Submit(value T, priority int) error {
	d.batchMu.Lock()
	defer d.batchMu.Unlock()

	if len(d.pending) >= d.cfg.MaxPending {
		return ErrBacklogFull
	}

	d.pending = append(d.pending, Item[T]{
		Value:    value,
		Priority: priority,
		Seq:      d.seq,
	})
	d.seq++
	return nil
}

// SubmitDefault queues value with priority 0
func (d *Dispatcher[T]) SubmitDefault(value T) error {
	return d.Submit(value, 0)
}

// Backlog returns the number of items submitted but not yet dispatched.
func (d *Dispatcher[T]) Backlog() int {
	d.batchMu.Lock()
	n := len(d.pending)
	d.batchMu.Unlock()
	return n + int(d.queued.Load())
}

// TickNumber returns the number of completed ticks
func (d *Dispatcher[T]) TickNumber() uint64 {
	d.batchMu.Lock()
	defer d.batchMu.Unlock()
	return d.tickNum
}

// Stats returns the current counters.
func (d *Dispatcher[T]) Stats() Stats {
	return Stats{
		Ticks:      d.TickNumber(),
		Dispatched: d.dispatched.Load(),
		Failed:     d.failed.Load(),
		Panics:     d.panics.Load(),
	}
}
