package offset

import (
	"sort"

	"github.com/vorocell/vorocell/geom"
	"github.com/vorocell/vorocell/internal/debug"
	"github.com/vorocell/vorocell/polygon"
)

// intersectionHit is a self-intersection discovered between two extruded
// edges, recorded under the ring name of each edge's starting vertex so it
// can be spliced in from both sides.
type intersectionHit struct {
	name int
	p    geom.Point
}

// Offset displaces every edge of p by amount along its clockwise-rotated
// unit normal, splices in the resulting self-intersections, and keeps only
// the sub-loops whose winding matches p's own. Positive amount inflates a
// counterclockwise polygon and shrinks a clockwise one; negative amount
// does the opposite. The result may have more or fewer vertices than p, or
// be empty if the offset collapses it entirely.
func Offset(p polygon.Polygon, amount float64) polygon.Polygon {
	if len(p) < 3 {
		return nil
	}

	originalWinding := polygon.Winding(p)
	debug.Phase("offset", "extrude")
	head := extrude(p, amount)
	debug.Phase("offset", "splice")
	splice(head)

	debug.Phase("offset", "decompose")
	survivor := decompose(head, originalWinding)
	if survivor == nil {
		return nil
	}
	return emit(survivor)
}

// extrude builds the 2*len(p)-vertex working ring: for each edge
// (v, next) it pushes v+d and next+d, where d is amount along the edge's
// clockwise-rotated unit normal. Consecutive edges no longer share a
// vertex; each original corner becomes either a gap or a crossing, which
// the later splice/decompose passes resolve.
func extrude(p polygon.Polygon, amount float64) *node {
	n := len(p)
	pts := make([]geom.Point, 0, 2*n)
	for i := 0; i < n; i++ {
		v := p[i]
		next := p[(i+1)%n]
		normal := next.Sub(v).RotateCW().Normalize()
		d := normal.Scale(amount)
		pts = append(pts, v.Add(d), next.Add(d))
	}
	return ring(pts)
}

// splice finds every pair of non-adjacent extruded edges that intersect
// (touching endpoints count, as segmentIntersect's parameter range is
// inclusive) and inserts one new named vertex per intersection into the
// ring immediately after each of the two edges' starting vertices, ordered
// by projection onto that vertex's outgoing edge.
func splice(head *node) {
	nodes := collect(head)
	n := len(nodes)

	groups := make(map[int][]intersectionHit)
	nextName := n
	for i := 0; i < n; i++ {
		a1, a2 := nodes[i], nodes[(i+1)%n]
		for j := i + 1; j < n; j++ {
			b1, b2 := nodes[j], nodes[(j+1)%n]
			if b1 == a2 || a1 == b2 {
				continue
			}
			p, ok := segmentIntersect(a1.p, a2.p, b1.p, b2.p)
			if !ok {
				continue
			}
			hit := intersectionHit{name: nextName, p: p}
			nextName++
			groups[a1.name] = append(groups[a1.name], hit)
			groups[b1.name] = append(groups[b1.name], hit)
			debug.Logf("offset", "intersection %d between edges starting at %d and %d", hit.name, a1.name, b1.name)
		}
	}

	for _, v := range nodes {
		hits, ok := groups[v.name]
		if !ok {
			continue
		}
		out := v.next
		sort.Slice(hits, func(i, j int) bool {
			di := hits[i].p.Sub(v.p).Dot(out.p.Sub(v.p))
			dj := hits[j].p.Sub(v.p).Dot(out.p.Sub(v.p))
			return di < dj
		})
		cursor := v
		for _, hit := range hits {
			nd := &node{name: hit.name, p: hit.p}
			cursor.insertAfter(nd)
			cursor = nd
		}
	}
}

// decompose walks the spliced ring, recognizing a closed sub-loop whenever
// a vertex name reappears within the current run. A sub-loop whose winding
// disagrees with originalWinding is excised from the ring in place; one
// that agrees is left untouched. It returns a node known to survive to the
// end of the walk, suitable as the start of final emission.
func decompose(head *node, originalWinding int) *node {
	total := len(collect(head))
	if total == 0 {
		return nil
	}
	maxSteps := 2 * total

	visited := make(map[int]int)
	var run []*node
	cur := head

	for steps := 0; steps < maxSteps; {
		if pos, ok := visited[cur.name]; ok {
			loop := run[pos:]
			if polygon.Winding(loopPolygon(loop)) != originalWinding {
				excise(loop, cur)
				debug.Logf("offset", "excised %d-vertex flipped sub-loop", len(loop))
			}
			visited = make(map[int]int)
			run = nil
			continue
		}
		visited[cur.name] = len(run)
		run = append(run, cur)
		cur = cur.next
		steps++
	}

	return cur
}

func loopPolygon(nodes []*node) polygon.Polygon {
	poly := make(polygon.Polygon, len(nodes))
	for i, n := range nodes {
		poly[i] = n.p
	}
	return poly
}

// excise removes the ring segment [loop[0], cur) by relinking loop[0]'s
// predecessor directly to cur.
func excise(loop []*node, cur *node) {
	if len(loop) == 0 {
		return
	}
	before := loop[0].prev
	before.next = cur
	cur.prev = before
}

// emit walks the ring once from start and returns its vertices in order.
func emit(start *node) polygon.Polygon {
	var poly polygon.Polygon
	for cur := start; ; {
		poly = append(poly, cur.p)
		cur = cur.next
		if cur == start {
			break
		}
	}
	return poly
}
