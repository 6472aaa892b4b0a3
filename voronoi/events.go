package voronoi

import (
	"container/heap"
	"math"
)

type eventKind uint8

const (
	eventSite eventKind = iota
	eventVertex
)

// event is a Site or Vertex event. Events are never deleted once pushed;
// invalidated events are marked inactive and skipped lazily when popped,
// which avoids a decrease-key operation and keeps event indices (and the
// arc-id -> event map) stable.
//
// site holds different things depending on kind: for a Site event it is the
// new site's id; for a Vertex event it is the site id the collapsing arc
// carried when the event was created (used to relocate the arc later,
// exactly as the source's Event.site field is overloaded).
type event struct {
	kind   eventKind
	y      float64
	site   int
	active bool

	seq   int64
	index int // maintained by container/heap
}

// eventQueue is a priority structure keyed by round(y) as an integer, so
// ties at the same scan line group together; ties are broken by insertion
// order, giving deterministic, reproducible sweep ordering.
type eventQueue struct {
	items []*event
	seq   int64
}

func roundY(y float64) int64 {
	return int64(math.Round(y))
}

func (q *eventQueue) push(e *event) {
	e.seq = q.seq
	q.seq++
	heap.Push(q, e)
}

func (q *eventQueue) pop() *event {
	return heap.Pop(q).(*event)
}

// heap.Interface implementation.

func (q *eventQueue) Len() int { return len(q.items) }

func (q *eventQueue) Less(i, j int) bool {
	yi, yj := roundY(q.items[i].y), roundY(q.items[j].y)
	if yi != yj {
		return yi < yj
	}
	return q.items[i].seq < q.items[j].seq
}

func (q *eventQueue) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.items[i].index = i
	q.items[j].index = j
}

func (q *eventQueue) Push(x interface{}) {
	e := x.(*event)
	e.index = len(q.items)
	q.items = append(q.items, e)
}

func (q *eventQueue) Pop() interface{} {
	old := q.items
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	q.items = old[:n-1]
	return e
}
