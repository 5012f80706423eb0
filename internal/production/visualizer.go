package production

import (
	"bytes"
	"cmp"
	"fmt"
	"strconv"

	"github.com/comalice/containerx"
)

// Chain is the renderable view of a container's node chain.
type Chain struct {
	Name   string
	Kind   Kind
	Labels []string // node labels in chain order
	Tail   bool     // draw a tail pointer at the last node
}

// DefaultVisualizer is the stdlib-only chain renderer.
type DefaultVisualizer struct{}

// ExportDOT generates Graphviz DOT source for the chain.
func (v *DefaultVisualizer) ExportDOT(c Chain) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %s {\n", strconv.Quote(c.Name))
	buf.WriteString(`  rankdir=LR;
  node [shape=box, fontsize=10, style=rounded];
  edge [fontsize=9];
  "end" [shape=point];
`)

	entry := "head"
	if c.Kind == KindStack {
		entry = "top"
	}
	fmt.Fprintf(&buf, "  %q [shape=plaintext];\n", entry)

	for i, label := range c.Labels {
		fmt.Fprintf(&buf, "  \"n%d\" [label=%s];\n", i, strconv.Quote(label))
	}

	if len(c.Labels) == 0 {
		fmt.Fprintf(&buf, "  %q -> \"end\";\n", entry)
		buf.WriteString("}\n")
		return buf.String()
	}

	fmt.Fprintf(&buf, "  %q -> \"n0\";\n", entry)
	for i := 1; i < len(c.Labels); i++ {
		fmt.Fprintf(&buf, "  \"n%d\" -> \"n%d\" [label=\"next\"];\n", i-1, i)
	}
	last := len(c.Labels) - 1
	fmt.Fprintf(&buf, "  \"n%d\" -> \"end\";\n", last)

	if c.Tail {
		buf.WriteString("  \"tail\" [shape=plaintext];\n")
		fmt.Fprintf(&buf, "  \"tail\" -> \"n%d\" [style=dashed];\n", last)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// StackChain builds the chain view of s, top first.
func StackChain[T any](name string, s *containerx.Stack[T]) Chain {
	var labels []string
	for n := s.Top(); n != nil; n = n.Next() {
		labels = append(labels, fmt.Sprint(n.Value()))
	}
	return Chain{Name: name, Kind: KindStack, Labels: labels}
}

// QueueChain builds the chain view of q, head first, with a tail pointer.
func QueueChain[T any](name string, q *containerx.Queue[T]) Chain {
	var labels []string
	for n := q.Front(); n != nil; n = n.Next() {
		labels = append(labels, fmt.Sprint(n.Value()))
	}
	return Chain{Name: name, Kind: KindQueue, Labels: labels, Tail: true}
}

// PriorityQueueChain builds the chain view of pq with "value (p=priority)" labels.
func PriorityQueueChain[T any, P cmp.Ordered](name string, pq *containerx.PriorityQueue[T, P]) Chain {
	var labels []string
	for n := pq.Front(); n != nil; n = n.Next() {
		labels = append(labels, fmt.Sprintf("%v (p=%v)", n.Value(), n.Priority()))
	}
	return Chain{Name: name, Kind: KindPriorityQueue, Labels: labels}
}
