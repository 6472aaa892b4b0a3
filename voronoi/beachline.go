package voronoi

import "github.com/vorocell/vorocell/geom"

// beachline is an ordered doubly-linked sequence of arcs, sorted by the
// x-coordinate of their footprint at the current sweep-line y. It supports
// insertion and removal in O(1) given a known position, and linear-scan
// lookup of the arc above a given point (beachline size is typically
// O(sqrt(N)), so the scan is acceptable in practice).
//
// Nodes are addressed by pointer rather than by index, so references held
// by pending events remain valid across insertions and removals of other
// arcs, the same stable pointer identity a Prev/Next doubly-linked list
// gives any structure whose elements are mutated while referenced
// elsewhere.
type beachline struct {
	head *arc
}

func (b *beachline) empty() bool {
	return b.head == nil
}

// setSingle installs a as the only arc on the beachline.
func (b *beachline) setSingle(a *arc) {
	a.prev, a.next = nil, nil
	b.head = a
}

// insertAfter splices node immediately after at.
func (b *beachline) insertAfter(at, node *arc) {
	node.prev = at
	node.next = at.next
	if at.next != nil {
		at.next.prev = node
	}
	at.next = node
}

// erase removes a from the beachline.
func (b *beachline) erase(a *arc) {
	if a.prev != nil {
		a.prev.next = a.next
	} else {
		b.head = a.next
	}
	if a.next != nil {
		a.next.prev = a.prev
	}
	a.prev, a.next = nil, nil
}

// findArcAbove scans left-to-right and returns the first arc whose right
// breakpoint with its neighbor has x > p.x; if none qualifies, it returns
// the last arc. Returns nil only when the beachline is empty.
func (b *beachline) findArcAbove(p geom.Point) *arc {
	if b.head == nil {
		return nil
	}
	a := b.head
	for a.next != nil {
		bp := breakpoint(a.location, a.next.location, p.Y)
		if p.X < bp.X {
			return a
		}
		a = a.next
	}
	return a
}
