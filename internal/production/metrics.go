package production

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// KindBacklog labels dispatcher backlogs registered with a SizeCollector.
const KindBacklog Kind = "backlog"

var ErrDuplicateContainer = errors.New("container already registered")

// Sizer is anything that can report an element count.
//
// Size is called from the scrape goroutine, so register Locked* handles or a
// realtime.Dispatcher backlog, never a bare container that is mutated elsewhere.
type Sizer interface {
	Size() int
}

// SizerFunc adapts a function such as Dispatcher.Backlog to Sizer.
type SizerFunc func() int

func (f SizerFunc) Size() int { return f() }

type sized struct {
	kind  Kind
	sizer Sizer
}

// SizeCollector is a prometheus.Collector exporting one gauge per registered container.
type SizeCollector struct {
	desc *prometheus.Desc

	mu         sync.RWMutex
	containers map[string]sized
}

// NewSizeCollector creates a collector for <namespace>_size{container,kind}.
func NewSizeCollector(namespace string) *SizeCollector {
	return &SizeCollector{
		desc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "size"),
			"Number of elements held by a container.",
			[]string{"container", "kind"},
			nil,
		),
		containers: make(map[string]sized),
	}
}

// Register adds a container under name.
func (c *SizeCollector) Register(name string, kind Kind, s Sizer) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.containers[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateContainer, name)
	}
	c.containers[name] = sized{kind: kind, sizer: s}
	return nil
}

// Unregister removes name; unknown names are ignored.
func (c *SizeCollector) Unregister(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.containers, name)
}

func (c *SizeCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

func (c *SizeCollector) Collect(ch chan<- prometheus.Metric) {
	c.mu.RLock()
	names := make([]string, 0, len(c.containers))
	for name := range c.containers {
		names = append(names, name)
	}
	snapshot := make(map[string]sized, len(c.containers))
	for k, v := range c.containers {
		snapshot[k] = v
	}
	c.mu.RUnlock()

	sort.Strings(names)
	for _, name := range names {
		s := snapshot[name]
		ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, float64(s.sizer.Size()), name, string(s.kind))
	}
}
