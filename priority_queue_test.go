package containerx

import (
	"errors"
	"math"
	"math/rand"
	"reflect"
	"testing"
)

// checkPriorityQueue verifies count bookkeeping, ownership and sorted order.
func checkPriorityQueue[T any, P int | float64](t *testing.T, pq *PriorityQueue[T, P]) {
	t.Helper()
	n := 0
	for node := pq.head; node != nil; node = node.next {
		n++
		if node.queue != pq {
			t.Fatalf("node %d is not owned by the queue", n)
		}
		if node.next != nil && node.priority > node.next.priority {
			t.Fatalf("order broken at node %d: %v > %v", n, node.priority, node.next.priority)
		}
	}
	if n != pq.count {
		t.Fatalf("chain has %d nodes, count=%d", n, pq.count)
	}
}

func TestPriorityQueueEmpty(t *testing.T) {
	pq := NewPriorityQueue[string, int]()
	if !pq.IsEmpty() || pq.Size() != 0 {
		t.Errorf("got IsEmpty=%v Size=%d", pq.IsEmpty(), pq.Size())
	}
	if v, ok := pq.Dequeue(); ok || v != "" {
		t.Errorf("Dequeue on empty: got (%q, %v)", v, ok)
	}
	if _, ok := pq.Peek(); ok {
		t.Error("Peek on empty should report no value")
	}
	if _, ok := pq.PeekPriority(); ok {
		t.Error("PeekPriority on empty should report no value")
	}
	if got := pq.ToSlice(); got == nil || len(got) != 0 {
		t.Errorf("ToSlice on empty: got %#v", got)
	}
}

func TestPriorityQueueSingleItem(t *testing.T) {
	pq := NewPriorityQueue[string, int]()
	pq.Enqueue("Shelly", 1)
	if pq.IsEmpty() || pq.Size() != 1 {
		t.Fatalf("got IsEmpty=%v Size=%d", pq.IsEmpty(), pq.Size())
	}
	if got := pq.ToSlice(); !reflect.DeepEqual(got, []string{"Shelly"}) {
		t.Errorf("ToSlice: got %v", got)
	}
	if v, _ := pq.Peek(); v != "Shelly" {
		t.Errorf("Peek: got %q", v)
	}
	if pq.Size() != 1 {
		t.Error("Peek changed Size")
	}
	if v, ok := pq.Dequeue(); !ok || v != "Shelly" {
		t.Errorf("Dequeue: got (%q, %v)", v, ok)
	}
	if !pq.IsEmpty() || pq.Size() != 0 {
		t.Errorf("after Dequeue: IsEmpty=%v Size=%d", pq.IsEmpty(), pq.Size())
	}
	if _, ok := pq.Peek(); ok {
		t.Error("Peek after draining should report no value")
	}
	if _, ok := pq.Dequeue(); ok {
		t.Error("Dequeue after draining should report no value")
	}
	checkPriorityQueue(t, pq)
}

func TestPriorityQueueMultipleItems(t *testing.T) {
	pq := NewPriorityQueue[string, int]()
	pq.Enqueue("Shelly", 3)
	pq.Enqueue("Tommy", 2)
	pq.Enqueue("Andy", 5)
	pq.Enqueue("Joe", 2)
	pq.Enqueue("Jane", 6)
	checkPriorityQueue(t, pq)

	want := []string{"Tommy", "Joe", "Shelly", "Andy", "Jane"}
	if got := pq.ToSlice(); !reflect.DeepEqual(got, want) {
		t.Fatalf("ToSlice: got %v want %v", got, want)
	}
	if pq.Size() != 5 {
		t.Errorf("got Size=%d want 5", pq.Size())
	}
	if v, _ := pq.Peek(); v != "Tommy" {
		t.Errorf("Peek: got %q want Tommy", v)
	}
	if p, _ := pq.PeekPriority(); p != 2 {
		t.Errorf("PeekPriority: got %d want 2", p)
	}
	if v, _ := pq.Dequeue(); v != "Tommy" {
		t.Errorf("Dequeue: got %q want Tommy", v)
	}
	if pq.Size() != 4 {
		t.Errorf("got Size=%d want 4", pq.Size())
	}
	if v, _ := pq.Peek(); v != "Joe" {
		t.Errorf("Peek: got %q want Joe", v)
	}
	if v, _ := pq.Dequeue(); v != "Joe" {
		t.Errorf("Dequeue: got %q want Joe", v)
	}
	if pq.Size() != 3 {
		t.Errorf("got Size=%d want 3", pq.Size())
	}
	checkPriorityQueue(t, pq)

	pq.Clear()
	if !pq.IsEmpty() || pq.Size() != 0 || len(pq.ToSlice()) != 0 {
		t.Errorf("after Clear: IsEmpty=%v Size=%d ToSlice=%v", pq.IsEmpty(), pq.Size(), pq.ToSlice())
	}
}

func TestPriorityQueuePlacement(t *testing.T) {
	tests := []struct {
		name     string
		enqueue  []Entry[string, int]
		wantVals []string
	}{
		{
			name:     "new minimum becomes head",
			enqueue:  []Entry[string, int]{{"b", 2}, {"a", 1}},
			wantVals: []string{"a", "b"},
		},
		{
			name:     "new maximum goes to the end",
			enqueue:  []Entry[string, int]{{"a", 1}, {"b", 2}},
			wantVals: []string{"a", "b"},
		},
		{
			name:     "equal to head goes after head",
			enqueue:  []Entry[string, int]{{"first", 1}, {"second", 1}},
			wantVals: []string{"first", "second"},
		},
		{
			name:     "middle insert after equal run",
			enqueue:  []Entry[string, int]{{"a", 1}, {"c", 3}, {"b1", 2}, {"b2", 2}, {"b3", 2}},
			wantVals: []string{"a", "b1", "b2", "b3", "c"},
		},
		{
			name:     "negative priorities",
			enqueue:  []Entry[string, int]{{"zero", 0}, {"neg", -5}, {"pos", 5}},
			wantVals: []string{"neg", "zero", "pos"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pq := NewPriorityQueue[string, int]()
			for _, e := range tt.enqueue {
				pq.Enqueue(e.Value, e.Priority)
			}
			checkPriorityQueue(t, pq)
			if got := pq.ToSlice(); !reflect.DeepEqual(got, tt.wantVals) {
				t.Errorf("got %v want %v", got, tt.wantVals)
			}
		})
	}
}

func TestPriorityQueueStableRandom(t *testing.T) {
	type item struct {
		prio int
		seq  int
	}
	rng := rand.New(rand.NewSource(42))
	pq := NewPriorityQueue[item, int]()
	for i := 0; i < 500; i++ {
		p := rng.Intn(10)
		pq.Enqueue(item{prio: p, seq: i}, p)
	}
	checkPriorityQueue(t, pq)

	prev, ok := pq.Dequeue()
	if !ok {
		t.Fatal("queue unexpectedly empty")
	}
	for !pq.IsEmpty() {
		cur, _ := pq.Dequeue()
		if cur.prio < prev.prio {
			t.Fatalf("priority decreased: %v after %v", cur, prev)
		}
		if cur.prio == prev.prio && cur.seq < prev.seq {
			t.Fatalf("tie broken against insertion order: %v after %v", cur, prev)
		}
		prev = cur
	}
}

func TestPriorityQueueEntries(t *testing.T) {
	pq := NewPriorityQueue[string, float64]()
	pq.Enqueue("b", 2.5)
	pq.Enqueue("a", 0.5)
	want := []Entry[string, float64]{{"a", 0.5}, {"b", 2.5}}
	if got := pq.Entries(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestPriorityQueueNaNPanics(t *testing.T) {
	pq := NewPriorityQueue[string, float64]()
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrInvalidPriority) {
			t.Fatalf("expected ErrInvalidPriority panic, got %v", r)
		}
		if pq.Size() != 0 {
			t.Errorf("NaN enqueue changed Size to %d", pq.Size())
		}
	}()
	pq.Enqueue("x", math.NaN())
}

func TestPriorityQueueInfinities(t *testing.T) {
	pq := NewPriorityQueue[string, float64]()
	pq.Enqueue("mid", 0)
	pq.Enqueue("hi", math.Inf(1))
	pq.Enqueue("lo", math.Inf(-1))
	if got := pq.ToSlice(); !reflect.DeepEqual(got, []string{"lo", "mid", "hi"}) {
		t.Errorf("got %v", got)
	}
}

func TestSetPriorityDoesNotReorder(t *testing.T) {
	pq := NewPriorityQueue[string, int]()
	pq.Enqueue("a", 1)
	pq.Enqueue("b", 2)
	pq.Enqueue("c", 3)

	pq.Front().SetPriority(10)
	if got := pq.ToSlice(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("SetPriority moved the node: got %v", got)
	}
	if p := pq.Front().Priority(); p != 10 {
		t.Errorf("got Priority=%d want 10", p)
	}
	if v, _ := pq.Dequeue(); v != "a" {
		t.Errorf("Dequeue still serves the head: got %q", v)
	}
}

func TestSetPriorityNaNPanics(t *testing.T) {
	pq := NewPriorityQueue[string, float64]()
	pq.Enqueue("a", 1)
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic")
		}
		if p := pq.Front().Priority(); p != 1 {
			t.Errorf("priority changed to %v", p)
		}
	}()
	pq.Front().SetPriority(math.NaN())
}

func TestRemoveAndReenqueue(t *testing.T) {
	pq := NewPriorityQueue[string, int]()
	pq.Enqueue("a", 1)
	pq.Enqueue("b", 2)
	pq.Enqueue("c", 3)

	n := pq.Front()
	n.SetPriority(10)
	if !pq.Remove(n) {
		t.Fatal("Remove of owned head failed")
	}
	pq.Enqueue(n.Value(), n.Priority())
	checkPriorityQueue(t, pq)
	if got := pq.ToSlice(); !reflect.DeepEqual(got, []string{"b", "c", "a"}) {
		t.Errorf("got %v", got)
	}
}

func TestRemove(t *testing.T) {
	build := func() *PriorityQueue[string, int] {
		pq := NewPriorityQueue[string, int]()
		pq.Enqueue("a", 1)
		pq.Enqueue("b", 2)
		pq.Enqueue("c", 3)
		return pq
	}
	nth := func(pq *PriorityQueue[string, int], i int) *PriorityNode[string, int] {
		n := pq.Front()
		for ; i > 0; i-- {
			n = n.Next()
		}
		return n
	}

	tests := []struct {
		name string
		idx  int
		want []string
	}{
		{"head", 0, []string{"b", "c"}},
		{"middle", 1, []string{"a", "c"}},
		{"tail", 2, []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pq := build()
			n := nth(pq, tt.idx)
			if !pq.Remove(n) {
				t.Fatal("Remove returned false")
			}
			if n.Next() != nil {
				t.Error("removed node still links into the chain")
			}
			checkPriorityQueue(t, pq)
			if got := pq.ToSlice(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v want %v", got, tt.want)
			}
			if pq.Remove(n) {
				t.Error("second Remove of the same node succeeded")
			}
		})
	}
}

func TestRemoveRejectsForeignAndStale(t *testing.T) {
	pq := NewPriorityQueue[string, int]()
	other := NewPriorityQueue[string, int]()
	pq.Enqueue("a", 1)
	other.Enqueue("x", 1)

	if pq.Remove(nil) {
		t.Error("Remove(nil) succeeded")
	}
	if pq.Remove(other.Front()) {
		t.Error("Remove of a foreign node succeeded")
	}
	if other.Size() != 1 || pq.Size() != 1 {
		t.Errorf("sizes changed: pq=%d other=%d", pq.Size(), other.Size())
	}

	stale := pq.Front()
	pq.Clear()
	pq.Enqueue("b", 1)
	if pq.Remove(stale) {
		t.Error("Remove of a node dropped by Clear succeeded")
	}
	if pq.Size() != 1 {
		t.Errorf("got Size=%d want 1", pq.Size())
	}
	checkPriorityQueue(t, pq)

	dequeued := pq.Front()
	pq.Dequeue()
	if pq.Remove(dequeued) {
		t.Error("Remove of a dequeued node succeeded")
	}
}

func TestPriorityQueueString(t *testing.T) {
	pq := NewPriorityQueue[string, int]()
	pq.Enqueue("b", 2)
	pq.Enqueue("a", 1)
	if got := pq.String(); got != "[a b]" {
		t.Errorf("got %q", got)
	}
}
