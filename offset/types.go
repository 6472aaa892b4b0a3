package offset

import "github.com/vorocell/vorocell/geom"

// node is one vertex in the offset algorithm's working list: a circular
// doubly-linked ring so that splicing in self-intersections and excising a
// flipped sub-loop are both O(1) once the position is known. Two distinct
// nodes can carry the same name — that happens when a single self-
// intersection point is spliced into the ring from both of the segments
// that produced it.
type node struct {
	name int
	p    geom.Point
	next *node
	prev *node
}

// insertAfter splices m into the ring immediately after n.
func (n *node) insertAfter(m *node) {
	m.prev = n
	m.next = n.next
	n.next.prev = m
	n.next = m
}

// ring builds a new circular list from pts, returning its head.
func ring(pts []geom.Point) *node {
	var head, tail *node
	for i, p := range pts {
		n := &node{name: i, p: p}
		if head == nil {
			head = n
			n.next = n
			n.prev = n
		} else {
			tail.insertAfter(n)
		}
		tail = n
	}
	return head
}

// collect walks the ring starting at head and returns its nodes in order.
// It assumes the ring has not been mutated since head was obtained.
func collect(head *node) []*node {
	if head == nil {
		return nil
	}
	nodes := []*node{head}
	for cur := head.next; cur != head; cur = cur.next {
		nodes = append(nodes, cur)
	}
	return nodes
}
