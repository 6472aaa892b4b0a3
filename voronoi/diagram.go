package voronoi

import "github.com/vorocell/vorocell/geom"

// Diagram is the output of a completed Fortune sweep: the full set of
// discovered segments and vertices, plus lazily-assembled closed cell
// polygons.
type Diagram struct {
	sites    []geom.Point
	segments []Segment
	vertices []geom.Point

	cells      []Cell
	cellsBuilt bool
}

// Sites returns the diagram's sites, indexed by the dense id Build()
// assigned them.
func (d *Diagram) Sites() []geom.Point {
	return d.sites
}

// Segments returns every Voronoi half-edge discovered, finished or not.
func (d *Diagram) Segments() []Segment {
	return d.segments
}

// Vertices returns every Voronoi vertex emitted during the sweep.
func (d *Diagram) Vertices() []geom.Point {
	return d.vertices
}

// Cells extracts and caches the closed cell polygons; see AssembleCells.
func (d *Diagram) Cells() []Cell {
	if !d.cellsBuilt {
		d.cells = AssembleCells(d.segments)
		d.cellsBuilt = true
	}
	return d.cells
}
