// Package rectclip clips cell and offset polygons against an axis-aligned
// viewport rectangle, using the Sutherland-Hodgman, edge-at-a-time
// strategy: one half-plane pass per side of the rectangle.
package rectclip

import "github.com/vorocell/vorocell/geom"

// Clip clips p against rect using the Sutherland-Hodgman algorithm,
// successively trimming against the left, top, right, and bottom edges. It
// returns nil if p lies entirely outside rect or rect is degenerate.
func Clip(p []geom.Point, rect geom.Rect) []geom.Point {
	if rect.Degenerate() || len(p) == 0 {
		return nil
	}

	allInside := true
	for _, v := range p {
		if !rect.Contains(v) {
			allInside = false
			break
		}
	}
	if allInside {
		out := make([]geom.Point, len(p))
		copy(out, p)
		return out
	}

	clipped := p
	clipped = clipEdge(clipped, func(pt geom.Point) bool { return pt.X >= rect.Min.X }, func(a, b geom.Point) geom.Point {
		return intersectVertical(a, b, rect.Min.X)
	})
	if len(clipped) == 0 {
		return nil
	}
	clipped = clipEdge(clipped, func(pt geom.Point) bool { return pt.Y >= rect.Min.Y }, func(a, b geom.Point) geom.Point {
		return intersectHorizontal(a, b, rect.Min.Y)
	})
	if len(clipped) == 0 {
		return nil
	}
	clipped = clipEdge(clipped, func(pt geom.Point) bool { return pt.X <= rect.Max.X }, func(a, b geom.Point) geom.Point {
		return intersectVertical(a, b, rect.Max.X)
	})
	if len(clipped) == 0 {
		return nil
	}
	clipped = clipEdge(clipped, func(pt geom.Point) bool { return pt.Y <= rect.Max.Y }, func(a, b geom.Point) geom.Point {
		return intersectHorizontal(a, b, rect.Max.Y)
	})
	return dedupe(clipped)
}

// clipEdge runs one Sutherland-Hodgman pass against a single half-plane,
// described by inside (membership test) and cross (edge/boundary
// intersection).
func clipEdge(path []geom.Point, inside func(geom.Point) bool, cross func(a, b geom.Point) geom.Point) []geom.Point {
	if len(path) == 0 {
		return nil
	}

	var out []geom.Point
	n := len(path)
	for i := 0; i < n; i++ {
		curr := path[i]
		prev := path[(i+n-1)%n]

		currIn := inside(curr)
		prevIn := inside(prev)

		switch {
		case currIn && !prevIn:
			out = append(out, cross(prev, curr), curr)
		case currIn && prevIn:
			out = append(out, curr)
		case !currIn && prevIn:
			out = append(out, cross(prev, curr))
		}
	}
	return out
}

func intersectVertical(p1, p2 geom.Point, x float64) geom.Point {
	if p1.X == p2.X {
		return geom.Point{X: x, Y: p1.Y}
	}
	t := (x - p1.X) / (p2.X - p1.X)
	return geom.Point{X: x, Y: p1.Y + t*(p2.Y-p1.Y)}
}

func intersectHorizontal(p1, p2 geom.Point, y float64) geom.Point {
	if p1.Y == p2.Y {
		return geom.Point{X: p1.X, Y: y}
	}
	t := (y - p1.Y) / (p2.Y - p1.Y)
	return geom.Point{X: p1.X + t*(p2.X-p1.X), Y: y}
}

// dedupe drops consecutive duplicate vertices, including a closing
// duplicate of the first vertex left over from clipping a closed loop.
func dedupe(path []geom.Point) []geom.Point {
	if len(path) <= 1 {
		return path
	}
	out := []geom.Point{path[0]}
	for _, v := range path[1:] {
		if !geom.Equal(v, out[len(out)-1], geom.Point64Tolerance) {
			out = append(out, v)
		}
	}
	if len(out) > 2 && geom.Equal(out[0], out[len(out)-1], geom.Point64Tolerance) {
		out = out[:len(out)-1]
	}
	return out
}
