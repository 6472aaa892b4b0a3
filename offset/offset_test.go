package offset_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vorocell/vorocell/geom"
	"github.com/vorocell/vorocell/offset"
	"github.com/vorocell/vorocell/polygon"
)

func shoelaceArea(p polygon.Polygon) float64 {
	sum := 0.0
	n := len(p)
	for i := 0; i < n; i++ {
		a := p[i]
		b := p[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return math.Abs(sum) / 2
}

func boundingBox(p polygon.Polygon) geom.Rect {
	r := geom.Rect{Min: p[0], Max: p[0]}
	for _, v := range p[1:] {
		r.Min.X = math.Min(r.Min.X, v.X)
		r.Min.Y = math.Min(r.Min.Y, v.Y)
		r.Max.X = math.Max(r.Max.X, v.X)
		r.Max.Y = math.Max(r.Max.Y, v.Y)
	}
	return r
}

// TestOffset_UnitSquareInward shrinks a clockwise unit square inward by
// 0.25 on every side, collapsing it to the 0.5x0.5 square centered on the
// original center. The clean result depends on the four extruded edges'
// adjacent pairs genuinely crossing (an inward offset) rather than merely
// gapping (an outward one), which only happens for this clockwise vertex
// order.
func TestOffset_UnitSquareInward(t *testing.T) {
	square := polygon.Polygon{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}}
	require.Equal(t, -1, polygon.Winding(square), "vertex order must be clockwise for this case")

	result := offset.Offset(square, 0.25)
	require.Len(t, result, 4, "a clean inward offset collapses the chamfer spurs, leaving the four crossing points")
	require.Equal(t, polygon.Winding(square), polygon.Winding(result), "offset preserves the input winding")

	box := boundingBox(result)
	require.InDelta(t, 0.25, box.Min.X, 1e-6)
	require.InDelta(t, 0.25, box.Min.Y, 1e-6)
	require.InDelta(t, 0.75, box.Max.X, 1e-6)
	require.InDelta(t, 0.75, box.Max.Y, 1e-6)
	require.InDelta(t, 0.25, shoelaceArea(result), 1e-6, "a 0.5x0.5 square has area 0.25")
}

// TestOffset_HeptagonOutward checks that pushing a convex, counterclockwise
// heptagon outward strictly increases every vertex's distance from the
// polygon's center, and that winding is preserved. An outward offset
// produces no genuine edge crossings on a convex input (adjacent displaced
// edges merely gap, not cross), so the full 14-vertex chamfered ring
// survives decomposition intact.
func TestOffset_HeptagonOutward(t *testing.T) {
	const n = 7
	const radius = 250.0
	center := geom.Point{X: 400, Y: 400}

	var heptagon polygon.Polygon
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / n
		heptagon = append(heptagon, geom.Point{
			X: center.X + radius*math.Cos(theta),
			Y: center.Y + radius*math.Sin(theta),
		})
	}
	require.Equal(t, 1, polygon.Winding(heptagon), "vertices listed counterclockwise")

	result := offset.Offset(heptagon, 75)
	require.Len(t, result, 2*n, "a convex outward offset keeps every extruded and chamfer vertex")
	require.Equal(t, 1, polygon.Winding(result))

	for _, v := range result {
		d := math.Hypot(v.X-center.X, v.Y-center.Y)
		require.Greater(t, d, radius, "every outward-displaced vertex must be farther from center than the original radius")
		require.LessOrEqual(t, d, radius+75+1e-6, "no vertex can overshoot the full normal displacement")
	}
}

// TestOffset_ZeroAmountIsCongruent checks that offsetting by zero leaves
// the original vertex set intact (possibly with harmless duplicate points
// at former corners, where adjacent edges now touch exactly rather than
// gap or cross).
func TestOffset_ZeroAmountIsCongruent(t *testing.T) {
	square := polygon.Polygon{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	result := offset.Offset(square, 0)
	require.NotEmpty(t, result)

	for _, v := range result {
		matched := false
		for _, orig := range square {
			if geom.Equal(v, orig, 1e-6) {
				matched = true
				break
			}
		}
		require.True(t, matched, "vertex %v of a zero offset must coincide with an original vertex", v)
	}
}

func TestOffset_DegenerateInputReturnsNil(t *testing.T) {
	require.Nil(t, offset.Offset(polygon.Polygon{{X: 0, Y: 0}, {X: 1, Y: 1}}, 1))
	require.Nil(t, offset.Offset(nil, 1))
}
