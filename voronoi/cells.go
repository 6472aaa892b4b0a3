package voronoi

import (
	"sort"

	"github.com/vorocell/vorocell/geom"
	"github.com/vorocell/vorocell/internal/debug"
	"github.com/vorocell/vorocell/polygon"
)

// stitchEps is the distance tolerance used when matching segment endpoints
// during cell stitching.
const stitchEps = 0.1

// Cell is a fully-enclosed Voronoi cell: the site it belongs to and its
// boundary polygon, wound counterclockwise.
type Cell struct {
	Site    int
	Polygon polygon.Polygon
}

// AssembleCells groups the builder's finished segments by the two sites
// they separate and stitches each group into a closed polygon. Sites whose
// segments don't close into a single loop — those on the diagram's
// unbounded boundary — are omitted.
func AssembleCells(segments []Segment) []Cell {
	buckets := make(map[int][]Segment)
	for _, s := range segments {
		if !s.Finished {
			continue
		}
		buckets[s.Site1] = append(buckets[s.Site1], s)
		buckets[s.Site2] = append(buckets[s.Site2], s)
	}

	ids := make([]int, 0, len(buckets))
	for id := range buckets {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var cells []Cell
	for _, site := range ids {
		segs := buckets[site]
		if len(segs) <= 2 {
			continue
		}

		poly, ok := stitch(segs)
		if !ok {
			debug.Logf("voronoi", "site %d did not close into a single loop, omitted", site)
			continue
		}

		if polygon.Winding(poly) < 0 {
			poly = polygon.Reverse(poly)
		}

		cells = append(cells, Cell{Site: site, Polygon: poly})
	}

	return cells
}

// stitch consumes a bucket of segments belonging to one site into a single
// closed loop of vertices, in order. It reports false if the segments
// don't all chain into exactly one loop.
func stitch(segs []Segment) (polygon.Polygon, bool) {
	remaining := make([]Segment, len(segs))
	copy(remaining, segs)
	n := len(remaining)

	seed := remaining[0]
	remaining = remaining[1:]
	current := seed.B

	poly := make(polygon.Polygon, 0, n)
	poly = append(poly, current)

	for i := 0; i < n-1; i++ {
		idx, next, found := findAdjoining(remaining, current)
		if !found {
			return nil, false
		}
		remaining = append(remaining[:idx], remaining[idx+1:]...)
		current = next
		poly = append(poly, current)
	}

	if len(remaining) != 0 {
		return nil, false
	}
	if !geom.Equal(current, seed.A, stitchEps) {
		return nil, false
	}
	return poly, true
}

// findAdjoining scans segs for one whose A or B endpoint matches current
// within stitchEps, returning its other endpoint.
func findAdjoining(segs []Segment, current geom.Point) (idx int, other geom.Point, found bool) {
	for i, s := range segs {
		if geom.Equal(s.A, current, stitchEps) {
			return i, s.B, true
		}
		if geom.Equal(s.B, current, stitchEps) {
			return i, s.A, true
		}
	}
	return 0, geom.Point{}, false
}
