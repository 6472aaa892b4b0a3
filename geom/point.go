// Package geom provides the 2D point and vector primitives shared by the
// Voronoi builder and the polygon offset algorithm: addition, subtraction,
// scaling, dot and cross products, squared distance, and approximate
// equality within an epsilon.
package geom

import "math"

// Point64Tolerance is a point-equality distance threshold to pass to Equal:
// 1e-3, i.e. 1mm in diagram units. rectclip uses it to drop duplicate
// vertices; the sweep and the cell assembler use their own tolerances.
const Point64Tolerance = 1e-3

// Point is a point (or, when used as a displacement, a vector) in the plane.
type Point struct {
	X, Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the z-component of the 3D cross product of p and q.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// DistSqr returns the squared Euclidean distance between p and q.
func (p Point) DistSqr(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// Len returns the Euclidean length of p treated as a vector.
func (p Point) Len() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Normalize returns p scaled to unit length. The zero vector is returned
// unchanged rather than dividing by zero.
func (p Point) Normalize() Point {
	l := p.Len()
	if l == 0 {
		return p
	}
	return Point{p.X / l, p.Y / l}
}

// RotateCW returns p rotated 90 degrees clockwise.
func (p Point) RotateCW() Point {
	return Point{p.Y, -p.X}
}

// Equal reports whether p and q are within eps of each other (squared
// distance compared against eps*eps, per the sweep's point_eq contract).
func Equal(p, q Point, eps float64) bool {
	return p.DistSqr(q) < eps*eps
}

// Rect is an axis-aligned bounding rectangle.
type Rect struct {
	Min, Max Point
}

// Contains reports whether pt lies within r, inclusive of its boundary.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.Min.X && pt.X <= r.Max.X && pt.Y >= r.Min.Y && pt.Y <= r.Max.Y
}

// Degenerate reports whether r has zero or negative width or height.
func (r Rect) Degenerate() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}
