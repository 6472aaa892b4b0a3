// Package polygon provides winding-direction and point-containment
// predicates shared by the Voronoi cell assembler and the offset algorithm.
package polygon

import "github.com/vorocell/vorocell/geom"

// Polygon is an ordered sequence of vertices forming a closed loop; the
// edge from the last vertex back to the first is implicit.
type Polygon []geom.Point

// Winding returns +1 if p is wound counterclockwise, -1 if clockwise, and
// 0 for a degenerate polygon with fewer than 3 vertices.
//
// Uses the shoelace form Σ(xᵢ·yᵢ₊₁ − xᵢ₊₁·yᵢ); this is the convention the
// offset algorithm's loop-keep decision depends on, resolving the
// discrepancy between the two winding formulas the source carried.
func Winding(p Polygon) int {
	if len(p) < 3 {
		return 0
	}
	sum := 0.0
	n := len(p)
	for i := 0; i < n; i++ {
		a := p[i]
		b := p[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	if sum > 0 {
		return 1
	}
	return -1
}

// Reverse returns a copy of p with vertex order reversed.
func Reverse(p Polygon) Polygon {
	out := make(Polygon, len(p))
	n := len(p)
	for i, v := range p {
		out[n-1-i] = v
	}
	return out
}

// Contains reports whether pt lies strictly inside p, using the standard
// ray-casting test. Boundary membership is unspecified, matching the
// reference behavior.
func Contains(p Polygon, pt geom.Point) bool {
	inside := false
	n := len(p)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := p[i], p[j]
		if (vi.Y > pt.Y) != (vj.Y > pt.Y) &&
			pt.X < (vj.X-vi.X)*(pt.Y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
	}
	return inside
}
