package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/comalice/containerx"
	"github.com/comalice/containerx/internal/production"
	"github.com/comalice/containerx/realtime"
	"github.com/prometheus/client_golang/prometheus"
)

type snapshotStore interface {
	Save(ctx context.Context, snapshot production.Snapshot[string]) error
	Load(ctx context.Context, containerID string) (production.Snapshot[string], error)
}

func main() {
	dir := flag.String("dir", os.TempDir(), "directory for snapshot files")
	format := flag.String("format", "json", "snapshot format: json or yaml")
	ticks := flag.Int("ticks", 3, "dispatcher ticks to run")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	visualizer := &production.DefaultVisualizer{}

	// Stack
	s := containerx.NewStack[int]()
	for _, v := range []int{23, 8, 0, 44, 11} {
		s.Push(v)
	}
	fmt.Println("Stack:", s.ToSlice())
	fmt.Println("DOT:\n" + visualizer.ExportDOT(production.StackChain("stack", s)))

	// Queue
	q := containerx.NewQueue[int]()
	for i := 1; i <= 5; i++ {
		q.Enqueue(i)
	}
	front, _ := q.Dequeue()
	next, _ := q.Peek()
	fmt.Printf("Queue: dequeued %d, next %d, remaining %v\n", front, next, q.ToSlice())

	// Priority queue, persisted and restored
	pq := containerx.NewPriorityQueue[string, float64]()
	pq.Enqueue("Shelly", 3)
	pq.Enqueue("Tommy", 2)
	pq.Enqueue("Andy", 5)
	pq.Enqueue("Joe", 2)
	pq.Enqueue("Jane", 6)
	fmt.Println("PriorityQueue:", pq.ToSlice())
	fmt.Println("DOT:\n" + visualizer.ExportDOT(production.PriorityQueueChain("people", pq)))

	store, err := newStore(*format, *dir)
	if err != nil {
		log.Fatalf("snapshot store: %v", err)
	}
	if err := store.Save(ctx, production.SnapshotPriorityQueue("people", pq)); err != nil {
		log.Fatalf("save snapshot: %v", err)
	}
	snap, err := store.Load(ctx, "people")
	if err != nil {
		log.Fatalf("load snapshot: %v", err)
	}
	restored, err := production.RestorePriorityQueue(snap)
	if err != nil {
		log.Fatalf("restore: %v", err)
	}
	log.Printf("restored %d entries from %s (%s)", restored.Size(), *dir, *format)

	// Dispatcher fed from the restored queue
	published := make(chan production.PublishedItem[string], 100)
	publisher := production.NewChannelPublisher("people", published)
	d := realtime.NewDispatcher(publisher.Publish, realtime.Config{
		TickRate:   100 * time.Millisecond,
		MaxPerTick: 2,
	})

	metrics := production.NewSizeCollector("containerx")
	reg := prometheus.NewRegistry()
	reg.MustRegister(metrics)
	if err := metrics.Register("people", production.KindBacklog, production.SizerFunc(d.Backlog)); err != nil {
		log.Fatalf("register metrics: %v", err)
	}

	for _, e := range restored.Entries() {
		if err := d.Submit(e.Value, dispatchPriority(e.Priority)); err != nil {
			log.Printf("submit %s: %v", e.Value, err)
		}
	}
	if err := d.Start(ctx); err != nil {
		log.Fatalf("start dispatcher: %v", err)
	}
	defer d.Stop()

	for tick := 1; tick <= *ticks; tick++ {
		select {
		case <-ctx.Done():
			fmt.Println("\nShutting down gracefully...")
			return
		case <-time.After(110 * time.Millisecond):
		}
		fmt.Printf("\n--- Tick %d ---\n", tick)
		for drained := false; !drained; {
			select {
			case msg := <-published:
				fmt.Printf("Dispatched: %s (priority %d, seq %d)\n", msg.Item.Value, msg.Item.Priority, msg.Item.Seq)
			default:
				drained = true
			}
		}
		reportBacklog(reg)
	}
	fmt.Println("Demo complete.")
}

// dispatchPriority rounds a container priority to the dispatcher's int scale.
// The demo priorities are whole numbers, so the restored order is kept.
func dispatchPriority(p float64) int {
	return int(math.Round(p))
}

func newStore(format, dir string) (snapshotStore, error) {
	switch format {
	case "json":
		p, err := production.NewJSONPersister[string](dir)
		if err != nil {
			return nil, err
		}
		return p, nil
	case "yaml":
		p, err := production.NewYAMLPersister[string](dir)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

func reportBacklog(reg *prometheus.Registry) {
	families, err := reg.Gather()
	if err != nil {
		log.Printf("gather metrics: %v", err)
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			fmt.Printf("%s %v\n", mf.GetName(), m.GetGauge().GetValue())
		}
	}
}
