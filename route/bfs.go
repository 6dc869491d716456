package route

import (
	"gridpath/grid"
)

// walker encapsulates mutable BFS state for a single search call.
// It is allocated per call and discarded on return.
type walker struct {
	g       *grid.Grid
	opts    Options
	queue   []int
	visited []bool
	prev    []int
}

// bfsSearch runs breadth-first search from start to goal. BFS explores the
// grid in increasing step-count layers, so the first dequeue of the goal is
// a minimum-hop route; ties resolve by the fixed neighbor order alone.
//
// Time: O(V+E). Memory: O(V) for the visited flags and parent slice.
func bfsSearch(g *grid.Grid, start, goal grid.Coordinate, o Options) (*Path, error) {
	total := g.Width() * g.Height()
	w := &walker{
		g:       g,
		opts:    o,
		queue:   make([]int, 0, total),
		visited: make([]bool, total),
		prev:    make([]int, total),
	}
	for i := range w.prev {
		w.prev[i] = -1
	}

	w.visited[g.Index(start)] = true
	w.queue = append(w.queue, g.Index(start))

	if !w.loop(g.Index(goal)) {
		return nil, ErrNoPath
	}
	cells := reconstruct(g, w.prev, goal)

	return &Path{
		Cells:     cells,
		TotalCost: Cost(len(cells)-1) * CostUnit,
	}, nil
}

// loop processes the frontier in FIFO order until the goal is dequeued or
// the frontier empties. Reports whether the goal was reached.
func (w *walker) loop(goal int) bool {
	offsets := w.opts.neighborOffsets()
	for qi := 0; qi < len(w.queue); qi++ {
		u := w.queue[qi]
		if u == goal {
			return true
		}
		uc := w.g.Coordinate(u)
		for _, d := range offsets {
			nc := grid.Coordinate{X: uc.X + d[0], Y: uc.Y + d[1]}
			if !w.g.InBounds(nc) || !w.g.Walkable(nc) {
				continue
			}
			vi := w.g.Index(nc)
			if w.visited[vi] {
				continue
			}
			w.visited[vi] = true
			w.prev[vi] = u
			w.queue = append(w.queue, vi)
		}
	}
	return false
}
