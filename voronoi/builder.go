package voronoi

import (
	"math"
	"sort"

	"github.com/vorocell/vorocell/geom"
	"github.com/vorocell/vorocell/internal/debug"
)

// breakpointCoincidenceEpsSqr is the squared-distance tolerance used to
// decide that two breakpoints have converged to the same point (i.e. that
// a vertex event's arc has actually been found again on the beachline).
const breakpointCoincidenceEpsSqr = 1e-3

// Builder owns the beachline, event queue, and output segment buffer for a
// single Fortune sweep run. Construct one with NewBuilder; Build runs one
// to completion and returns its output as a Diagram.
type Builder struct {
	siteLoc map[int]geom.Point

	bl        beachline
	nextArcID int

	queue     eventQueue
	arcEvents map[int]*event // arc id -> its pending vertex event

	segments []Segment
	vertices []geom.Point

	sweepY float64
}

// NewBuilder constructs a Builder over sites, which the caller must have
// already sorted by ascending y with dense ids [0, N). Each site is given
// an initial Site event.
func NewBuilder(sites []Site) *Builder {
	b := &Builder{
		siteLoc:   make(map[int]geom.Point, len(sites)),
		arcEvents: make(map[int]*event),
	}
	for _, s := range sites {
		b.siteLoc[s.ID] = s.Location
		b.queue.push(&event{kind: eventSite, y: s.Location.Y, site: s.ID, active: true})
	}
	return b
}

// Step services exactly one effective event (a Site event or an active
// Vertex event), returning true. It returns false once the queue is
// exhausted. Stale vertex events (relocation failure, boundary arcs) are
// skipped internally rather than counted as a step.
func (b *Builder) Step() bool {
	for {
		if b.queue.Len() == 0 {
			return false
		}
		ev := b.queue.pop()
		if !ev.active {
			continue
		}
		b.sweepY = ev.y

		if ev.kind == eventSite {
			b.handleSiteEvent(ev)
			return true
		}
		if b.handleVertexEvent(ev) {
			return true
		}
	}
}

// Run calls Step until it returns false.
func (b *Builder) Run() {
	for b.Step() {
	}
}

// Segments returns every Voronoi half-edge discovered so far. Some may be
// unfinished — those extending to infinity at the diagram's convex hull.
func (b *Builder) Segments() []Segment {
	return b.segments
}

// Vertices returns every Voronoi vertex emitted so far.
func (b *Builder) Vertices() []geom.Point {
	return b.vertices
}

func (b *Builder) newArc(site int, location geom.Point) *arc {
	a := &arc{id: b.nextArcID, site: site, location: location, s1: noSegment, s2: noSegment}
	b.nextArcID++
	return a
}

func (b *Builder) createSegment(left, right *arc, start geom.Point) int {
	idx := len(b.segments)
	b.segments = append(b.segments, Segment{A: start, Site1: left.site, Site2: right.site})
	left.s2 = idx
	right.s1 = idx
	return idx
}

func (b *Builder) clearVertexEvent(a *arc) {
	if ev, ok := b.arcEvents[a.id]; ok {
		ev.active = false
		delete(b.arcEvents, a.id)
	}
}

// checkVertexEvent (re)computes whether arc is converging to a circle
// event, clearing any stale event first. It enqueues a new Vertex event
// when the arc has neighbors on both sides, those neighbors carry distinct
// sites, and the resulting circle's lowest point has not already passed.
func (b *Builder) checkVertexEvent(a *arc) bool {
	b.clearVertexEvent(a)

	if a.prev == nil || a.next == nil {
		return false
	}
	if a.prev.site == a.next.site {
		return false
	}

	cc := circumcircle(a.prev.location, a.location, a.next.location)
	lp := lowestPoint(cc)
	if math.IsNaN(lp.Y) {
		// a.prev, a, a.next are (near-)collinear; circumcircle has no
		// solution. Tolerated per the degenerate-geometry contract.
		return false
	}
	if lp.Y < b.sweepY {
		return false
	}

	debug.Logf("voronoi", "vertex event queued for arc %d at y=%.4f", a.id, lp.Y)

	ev := &event{kind: eventVertex, y: lp.Y, site: a.site, active: true}
	b.queue.push(ev)
	b.arcEvents[a.id] = ev
	return true
}

func (b *Builder) handleSiteEvent(ev *event) {
	site := ev.site
	location := b.siteLoc[site]

	debug.Phase("voronoi", "site event")
	debug.Logf("voronoi", "site event %d at %v", site, location)

	if b.bl.empty() {
		b.bl.setSingle(b.newArc(site, location))
		return
	}

	above := b.bl.findArcAbove(location)
	intersection := parabolaIntersect(above.location, location)

	b.clearVertexEvent(above)

	left := b.newArc(above.site, above.location)
	left.s1 = above.s1

	mid := b.newArc(site, location)

	right := b.newArc(above.site, above.location)
	right.s2 = above.s2

	b.bl.insertAfter(above, right)
	b.bl.insertAfter(above, mid)
	b.bl.insertAfter(above, left)
	b.bl.erase(above)

	b.createSegment(left, mid, intersection)
	b.createSegment(mid, right, intersection)

	b.checkVertexEvent(left)
	b.checkVertexEvent(right)
}

// locateCollapsingArc re-finds the arc a stale Vertex event refers to: an
// arc carrying the event's site whose left and right breakpoints have
// converged to (nearly) the same point, and which has neighbors on both
// sides (boundary arcs can never host a valid circle event).
func (b *Builder) locateCollapsingArc(site int) *arc {
	if b.bl.head == nil {
		return nil
	}
	for a := b.bl.head.next; a != nil && a.next != nil; a = a.next {
		if a.site != site {
			continue
		}
		bp1 := breakpoint(a.prev.location, a.location, b.sweepY)
		bp2 := breakpoint(a.location, a.next.location, b.sweepY)
		if bp1.DistSqr(bp2) < breakpointCoincidenceEpsSqr {
			return a
		}
	}
	return nil
}

func (b *Builder) handleVertexEvent(ev *event) bool {
	target := b.locateCollapsingArc(ev.site)
	if target == nil {
		return false
	}

	prev, next := target.prev, target.next
	if prev.prev == nil || next.next == nil {
		return false
	}

	cc := circumcircle(prev.location, target.location, next.location)
	origin := cc.origin
	b.vertices = append(b.vertices, origin)

	debug.Phase("voronoi", "vertex event")
	debug.Logf("voronoi", "vertex event collapses arc %d at %v", target.id, origin)

	b.createSegment(prev, next, origin)

	if target.s1 != noSegment {
		b.segments[target.s1].finish(origin)
	}
	if target.s2 != noSegment {
		b.segments[target.s2].finish(origin)
	}

	b.clearVertexEvent(target)
	b.bl.erase(target)

	b.checkVertexEvent(prev)
	b.checkVertexEvent(next)

	return true
}

// Build runs a complete Fortune sweep over points, sorting a copy by
// ascending y and assigning dense ids [0, N) in that order (per the
// builder's pre-sorted-input contract). The returned Diagram's segment and
// cell site ids refer to this sorted order, not the caller's original
// indices.
func Build(points []geom.Point) (*Diagram, error) {
	if len(points) == 0 {
		return &Diagram{}, nil
	}

	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return points[order[i]].Y < points[order[j]].Y
	})

	sortedPts := make([]geom.Point, len(points))
	sites := make([]Site, len(points))
	for id, origIdx := range order {
		sortedPts[id] = points[origIdx]
		sites[id] = Site{ID: id, Location: points[origIdx]}
	}

	b := NewBuilder(sites)
	b.Run()

	return &Diagram{
		sites:    sortedPts,
		segments: b.segments,
		vertices: b.vertices,
	}, nil
}
