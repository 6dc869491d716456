package grid

import (
	"fmt"
)

// Grid is a dense rectangular occupancy field. It is immutable once built:
// searches share it read-only and never mutate it.
type Grid struct {
	width, height int
	cells         [][]CellKind
	markers       map[Coordinate]struct{}
	policy        MarkerPolicy
}

// Build rasterizes entities into a Grid under the documented priority rule.
// Dimensions are (maxY+1)×(maxX+1) over all entities, enlarged to any
// minimum bound from WithMinBound.
//
// Returns ErrNegativeCoordinate if any entity coordinate is negative, and
// ErrEmptyGrid when the resulting dimensions would be 0×0.
//
// Build is a pure function of its input: identical entity collections yield
// identical grids on every call. Complexity: O(N + W×H) time, O(W×H) memory.
func Build(entities []Entity, opts ...Option) (*Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w, h := o.MinWidth, o.MinHeight
	for _, e := range entities {
		if e.Coord.X < 0 || e.Coord.Y < 0 {
			return nil, fmt.Errorf("%w: got (%d,%d)", ErrNegativeCoordinate, e.Coord.X, e.Coord.Y)
		}
		if e.Coord.X+1 > w {
			w = e.Coord.X + 1
		}
		if e.Coord.Y+1 > h {
			h = e.Coord.Y + 1
		}
	}
	if w == 0 || h == 0 {
		return nil, ErrEmptyGrid
	}

	cells := make([][]CellKind, h)
	for y := range cells {
		cells[y] = make([]CellKind, w)
	}
	markers := make(map[Coordinate]struct{})

	for _, e := range entities {
		c := e.Coord
		switch {
		case e.ConstructionSite:
			cells[c.Y][c.X] = ConstructionSite
		case e.Category == CategoryResidential || e.Category == CategoryCommercial:
			// Construction sites win over structural obstructions.
			if cells[c.Y][c.X] != ConstructionSite {
				cells[c.Y][c.X] = Obstruction
			}
		}
		if e.Category == CategoryHome || e.Category == CategoryDestination {
			markers[c] = struct{}{}
		}
	}

	return &Grid{
		width:   w,
		height:  h,
		cells:   cells,
		markers: markers,
		policy:  o.Markers,
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Kind returns the occupancy classification of c. Out-of-bounds coordinates
// report Empty; callers gate on InBounds first.
func (g *Grid) Kind(c Coordinate) CellKind {
	if !g.InBounds(c) {
		return Empty
	}
	return g.cells[c.Y][c.X]
}

// Marker reports whether c is tagged Home or Destination in the catalog.
func (g *Grid) Marker(c Coordinate) bool {
	_, ok := g.markers[c]
	return ok
}

// Walkable reports whether movement may enter c. Blocking cells are not
// walkable, except marker cells under the MarkersTraversable policy.
// Complexity: O(1).
func (g *Grid) Walkable(c Coordinate) bool {
	if !g.InBounds(c) {
		return false
	}
	if !g.cells[c.Y][c.X].Blocking() {
		return true
	}
	return g.policy == MarkersTraversable && g.Marker(c)
}

// Index maps c to its row-major index: Y*Width + X.
func (g *Grid) Index(c Coordinate) int {
	return c.Y*g.width + c.X
}

// Coordinate converts a row-major index back to a Coordinate.
func (g *Grid) Coordinate(idx int) Coordinate {
	return Coordinate{X: idx % g.width, Y: idx / g.width}
}
