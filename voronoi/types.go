// Package voronoi builds a planar Voronoi diagram from a set of 2D sites
// using Fortune's sweep-line algorithm, then stitches the resulting edges
// into closed cell polygons.
package voronoi

import "github.com/vorocell/vorocell/geom"

// Site is an input point with a stable, dense integer id assigned by its
// position after ascending-y sort.
type Site struct {
	ID       int
	Location geom.Point
}

// Segment is a Voronoi edge under construction. It is created with only A
// known; B is assigned exactly once, when the segment is finished.
type Segment struct {
	A, B     geom.Point
	Finished bool
	Site1    int
	Site2    int
}

func (s *Segment) finish(b geom.Point) {
	s.B = b
	s.Finished = true
}

// noSegment marks an arc side with no bordering segment yet.
const noSegment = -1

// arc is one beachline node: a continuous piece of the beachline
// contributed by a single site. Arcs live only inside the Builder and are
// destroyed as the sweep proceeds; their identity (id) is stable across
// insertion and removal of unrelated arcs, which is what lets pending
// vertex events keep referring to "this arc" safely.
type arc struct {
	id       int
	site     int
	location geom.Point
	s1, s2   int // segment indices bordering this arc on the left/right, or noSegment

	prev, next *arc
}
