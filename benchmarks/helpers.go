// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"fmt"
	"math/rand"

	"github.com/comalice/containerx"
	"github.com/comalice/containerx/internal/production"
	"gopkg.in/yaml.v3"
)

// Pattern is the order in which priorities are generated.
type Pattern string

const (
	Ascending  Pattern = "ascending"  // every insert walks to the end
	Descending Pattern = "descending" // every insert becomes the head
	Equal      Pattern = "equal"      // worst case for the stable tie-break
	Random     Pattern = "random"
)

// GenPriorities returns n priorities following pattern. Random is seeded for repeatability.
func GenPriorities(n int, pattern Pattern) []int {
	if n < 0 {
		n = 0
	}
	out := make([]int, n)
	rng := rand.New(rand.NewSource(1))
	for i := range out {
		switch pattern {
		case Ascending:
			out[i] = i
		case Descending:
			out[i] = n - i
		case Equal:
			out[i] = 0
		default:
			out[i] = rng.Intn(n + 1)
		}
	}
	return out
}

// FilledPriorityQueue builds a queue of n elements with the given pattern.
func FilledPriorityQueue(n int, pattern Pattern) *containerx.PriorityQueue[int, int] {
	pq := containerx.NewPriorityQueue[int, int]()
	for i, p := range GenPriorities(n, pattern) {
		pq.Enqueue(i, p)
	}
	return pq
}

// GenSnapshotYAML generates YAML bytes for a priority queue snapshot of n entries.
func GenSnapshotYAML(n int) []byte {
	pq := containerx.NewPriorityQueue[string, float64]()
	for i, p := range GenPriorities(n, Random) {
		pq.Enqueue(fmt.Sprintf("item-%d", i), float64(p))
	}
	data, err := yaml.Marshal(production.SnapshotPriorityQueue("bench", pq))
	if err != nil {
		panic(err)
	}
	return data
}
