// Package benchmarks provides memory footprint benchmarks.
package benchmarks

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/comalice/containerx"
)

func bytesPer(n int, fill func()) uint64 {
	var before runtime.MemStats
	runtime.ReadMemStats(&before)
	fill()
	runtime.GC()
	var after runtime.MemStats
	runtime.ReadMemStats(&after)
	return (after.TotalAlloc - before.TotalAlloc) / uint64(n)
}

func BenchmarkMemoryPerNode(b *testing.B) {
	for _, n := range []int{100, 10000} {
		b.Run(fmt.Sprintf("stack/n=%d", n), func(b *testing.B) {
			var s *containerx.Stack[int]
			per := bytesPer(n, func() {
				s = containerx.NewStack[int]()
				for i := 0; i < n; i++ {
					s.Push(i)
				}
			})
			runtime.KeepAlive(s)
			b.ReportMetric(float64(per), "B/node")
		})
		b.Run(fmt.Sprintf("priority/n=%d", n), func(b *testing.B) {
			var pq *containerx.PriorityQueue[int, int]
			per := bytesPer(n, func() {
				pq = containerx.NewPriorityQueue[int, int]()
				for i := 0; i < n; i++ {
					pq.Enqueue(i, -i)
				}
			})
			runtime.KeepAlive(pq)
			b.ReportMetric(float64(per), "B/node")
		})
	}
}

// TestClearReleasesChain checks a cleared chain becomes collectable.
func TestClearReleasesChain(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping memory test in short mode")
	}
	const n = 200000

	q := containerx.NewQueue[[64]byte]()
	for i := 0; i < n; i++ {
		q.Enqueue([64]byte{})
	}
	runtime.GC()
	var full runtime.MemStats
	runtime.ReadMemStats(&full)

	q.Clear()
	runtime.GC()
	var cleared runtime.MemStats
	runtime.ReadMemStats(&cleared)

	if cleared.HeapAlloc >= full.HeapAlloc {
		t.Errorf("heap did not shrink after Clear: %d -> %d", full.HeapAlloc, cleared.HeapAlloc)
	}
	runtime.KeepAlive(q)
}
