// Package adjacency builds the neighbor graph over a Voronoi diagram's
// bounded cells: one node per site with a closed cell, one undirected edge
// per finished segment the two cells share.
package adjacency

import (
	"fmt"

	"github.com/katalvlaran/lvlath/bfs"
	"github.com/katalvlaran/lvlath/core"

	"github.com/vorocell/vorocell/voronoi"
)

// Graph wraps an undirected, unweighted core.Graph keyed by a site's
// "site-<id>" vertex name.
type Graph struct {
	g       *core.Graph
	bounded map[int]bool
}

func vertexID(site int) string {
	return fmt.Sprintf("site-%d", site)
}

// Build constructs the adjacency graph of a diagram's bounded cells. Sites
// without a closed cell (the diagram's unbounded boundary) never appear as
// nodes, and a segment touching one is ignored.
func Build(segments []voronoi.Segment, cells []voronoi.Cell) *Graph {
	bounded := make(map[int]bool, len(cells))
	for _, c := range cells {
		bounded[c.Site] = true
	}

	g := core.NewGraph(core.WithDirected(false))
	for site := range bounded {
		_ = g.AddVertex(vertexID(site))
	}

	seen := make(map[[2]int]bool)
	for _, s := range segments {
		if !s.Finished || !bounded[s.Site1] || !bounded[s.Site2] {
			continue
		}
		a, b := s.Site1, s.Site2
		if a > b {
			a, b = b, a
		}
		key := [2]int{a, b}
		if seen[key] {
			continue
		}
		seen[key] = true
		_, _ = g.AddEdge(vertexID(a), vertexID(b), 0)
	}

	return &Graph{g: g, bounded: bounded}
}

// Neighbors returns the sites whose bounded cells directly border site.
func (a *Graph) Neighbors(site int) ([]int, error) {
	edges, err := a.g.Neighbors(vertexID(site))
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, len(edges))
	for _, e := range edges {
		other := e.To
		if other == vertexID(site) {
			other = e.From
		}
		var id int
		if _, err := fmt.Sscanf(other, "site-%d", &id); err != nil {
			continue
		}
		out = append(out, id)
	}
	return out, nil
}

// ReachableFrom returns every site reachable from site by crossing shared
// cell borders, in BFS visit order, via the bfs package.
func (a *Graph) ReachableFrom(site int) ([]int, error) {
	res, err := bfs.BFS(a.g, vertexID(site))
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, len(res.Order))
	for _, v := range res.Order {
		var id int
		if _, err := fmt.Sscanf(v, "site-%d", &id); err != nil {
			continue
		}
		out = append(out, id)
	}
	return out, nil
}
