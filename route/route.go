// Package route implements shortest-path search over an occupancy grid.
package route

import (
	"fmt"

	"gridpath/grid"
)

// Fixed neighbor iteration order: up, down, left, right, then upper-left,
// upper-right, lower-left, lower-right. Every traversal uses these tables,
// which pins tie-breaking between equally short paths.
var (
	offsets4 = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	offsets8 = [8][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}, {-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
)

// FindPath computes the shortest walkable route from start to goal on g,
// applying any number of functional Options.
//
// Validation, in order:
//  1. g must be non-nil (ErrNilGrid).
//  2. Options must be valid (ErrOptionViolation).
//  3. start and goal must be in bounds (ErrInvalidCoordinate).
//  4. start and goal must be walkable under the grid's marker policy
//     (ErrBlockedEndpoint).
//
// start == goal returns a single-cell path immediately, no search performed.
// An exhausted frontier yields ErrNoPath.
//
// Uniform costs run BFS; a diagonal penalty under Conn8 runs Dijkstra.
// Under Conn4 every step costs the same, so BFS serves both models.
func FindPath(g *grid.Grid, start, goal grid.Coordinate, opts ...Option) (*Path, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	for _, c := range [2]grid.Coordinate{start, goal} {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("%w: (%d,%d) on %dx%d grid", ErrInvalidCoordinate, c.X, c.Y, g.Width(), g.Height())
		}
	}
	for _, c := range [2]grid.Coordinate{start, goal} {
		if !g.Walkable(c) {
			return nil, fmt.Errorf("%w: (%d,%d) is %s", ErrBlockedEndpoint, c.X, c.Y, g.Kind(c))
		}
	}

	if start == goal {
		return &Path{Cells: []grid.Coordinate{start}, TotalCost: 0}, nil
	}

	if o.Model == CostUniform || o.Adjacency == Conn4 {
		return bfsSearch(g, start, goal, o)
	}
	return dijkstraSearch(g, start, goal, o)
}

// neighborOffsets returns the offset table for the configured adjacency.
func (o *Options) neighborOffsets() [][2]int {
	if o.Adjacency == Conn8 {
		return offsets8[:]
	}
	return offsets4[:]
}

// stepCost prices a move by offset under the configured cost model.
func (o *Options) stepCost(dx, dy int) Cost {
	if o.Model == CostDiagonal && dx != 0 && dy != 0 {
		return o.Diagonal
	}
	return CostUnit
}

// reconstruct walks the parent slice from goal back to start and reverses.
// prev is indexed row-major; -1 marks the root. The result length equals the
// number of cells on the route, both endpoints included.
func reconstruct(g *grid.Grid, prev []int, goal grid.Coordinate) []grid.Coordinate {
	var cells []grid.Coordinate
	for idx := g.Index(goal); idx >= 0; idx = prev[idx] {
		cells = append(cells, g.Coordinate(idx))
	}
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}
	return cells
}
