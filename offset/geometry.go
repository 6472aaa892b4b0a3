package offset

import "github.com/vorocell/vorocell/geom"

// segmentIntersect finds the interior crossing of segments (p1,q1) and
// (p2,q2), if any, using the standard parametric line test: r = q1-p1,
// s = q2-p2, rxs = cross(r,s); parallel and collinear segments (rxs == 0)
// are reported as non-intersecting. The crossing itself must lie within
// both segments' parameter range [0,1], inclusive of the endpoints.
func segmentIntersect(p1, q1, p2, q2 geom.Point) (geom.Point, bool) {
	r := q1.Sub(p1)
	s := q2.Sub(p2)
	rxs := r.Cross(s)
	if rxs == 0 {
		return geom.Point{}, false
	}

	qmp := p2.Sub(p1)
	t := qmp.Cross(s) / rxs
	u := qmp.Cross(r) / rxs
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return geom.Point{}, false
	}
	return p1.Add(r.Scale(t)), true
}
