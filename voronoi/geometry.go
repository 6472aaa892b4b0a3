package voronoi

import (
	"math"

	"github.com/vorocell/vorocell/geom"
)

// circle is a circumscribing circle: center and radius.
type circle struct {
	origin geom.Point
	radius float64
}

// circumcircle solves for the circle through three points.
// https://ics.uci.edu/~eppstein/junkyard/circumcenter.html
//
// Produces NaN coordinates when a, b, c are collinear (the denominator
// vanishes); callers must filter before trusting the result.
// checkVertexEvent checks for NaN; handleVertexEvent does not.
func circumcircle(a, b, c geom.Point) circle {
	d := (a.X-c.X)*(b.Y-c.Y) - (b.X-c.X)*(a.Y-c.Y)

	x := (((a.X-c.X)*(a.X+c.X)+(a.Y-c.Y)*(a.Y+c.Y))/2*(b.Y-c.Y) -
		((b.X-c.X)*(b.X+c.X)+(b.Y-c.Y)*(b.Y+c.Y))/2*(a.Y-c.Y)) / d

	y := (((b.X-c.X)*(b.X+c.X)+(b.Y-c.Y)*(b.Y+c.Y))/2*(a.X-c.X) -
		((a.X-c.X)*(a.X+c.X)+(a.Y-c.Y)*(a.Y+c.Y))/2*(b.X-c.X)) / d

	r := math.Hypot(a.X-x, a.Y-y)

	return circle{origin: geom.Point{X: x, Y: y}, radius: r}
}

// lowestPoint returns the point of c with the largest y — "lowest" because
// y grows downward in this coordinate system.
func lowestPoint(c circle) geom.Point {
	return geom.Point{X: c.origin.X, Y: c.origin.Y + c.radius}
}

// breakpoint returns the intersection point of the parabolas with foci p1,
// p2 and directrix y = l at which p1's arc lies to the left and p2's arc to
// the right. When y1 == y2 the quadratic degenerates to a linear equation
// whose root is the vertical bisector x = (x1+x2)/2.
func breakpoint(p1, p2 geom.Point, l float64) geom.Point {
	x1, y1 := p1.X, p1.Y
	x2, y2 := p2.X, p2.Y

	d1 := 1.0 / (2.0 * (y1 - l))
	d2 := 1.0 / (2.0 * (y2 - l))
	a := d1 - d2
	b := 2.0 * (x2*d2 - x1*d1)
	c := (y1*y1+x1*x1-l*l)*d1 - (y2*y2+x2*x2-l*l)*d2
	delta := b*b - 4.0*a*c
	var x float64
	if a == 0 {
		x = -c / b
	} else {
		x = (-b - math.Sqrt(delta)) / (2.0 * a)
	}
	y := (x*x - 2*p1.X*x + p1.X*p1.X + p1.Y*p1.Y - l*l) / (2*p1.Y - 2*l)

	return geom.Point{X: x, Y: y}
}

// parabolaIntersect returns the point on the arc under siteAbove directly
// above newSite.X — where the newly inserted arc attaches to the beachline.
func parabolaIntersect(siteAbove, newSite geom.Point) geom.Point {
	if newSite.Y == siteAbove.Y {
		return siteAbove
	}

	x := newSite.X
	y := newSite.Y
	x0 := siteAbove.X
	y0 := siteAbove.Y

	return geom.Point{X: x, Y: (y0+y)*0.5 - (x-x0)*(x-x0)/(2*(y-y0))}
}
