package route_test

import (
	"errors"
	"reflect"
	"testing"

	"gridpath/grid"
	"gridpath/route"
)

// mustGrid builds a grid from character rows:
// '.' empty, '#' obstruction, 'C' construction site,
// 'H' Home marker, 'D' Destination marker.
func mustGrid(t testing.TB, rows []string, opts ...grid.Option) *grid.Grid {
	t.Helper()
	var entities []grid.Entity
	for y, row := range rows {
		for x, ch := range row {
			c := grid.Coordinate{X: x, Y: y}
			switch ch {
			case '#':
				entities = append(entities, grid.Entity{Coord: c, Category: grid.CategoryResidential})
			case 'C':
				entities = append(entities, grid.Entity{Coord: c, ConstructionSite: true})
			case 'H':
				entities = append(entities, grid.Entity{Coord: c, Category: grid.CategoryHome})
			case 'D':
				entities = append(entities, grid.Entity{Coord: c, Category: grid.CategoryDestination})
			}
		}
	}
	opts = append(opts, grid.WithMinBound(len(rows[0]), len(rows)))
	g, err := grid.Build(entities, opts...)
	if err != nil {
		t.Fatalf("mustGrid: %v", err)
	}
	return g
}

// assertValidPath checks the structural Path invariants: endpoints, adjacency
// of consecutive cells under the given model, walkability, and no repeats.
func assertValidPath(t *testing.T, g *grid.Grid, p *route.Path, start, goal grid.Coordinate, adj route.Adjacency) {
	t.Helper()
	if p.Len() == 0 {
		t.Fatal("empty path")
	}
	if p.Start() != start || p.Goal() != goal {
		t.Fatalf("endpoints = %v..%v; want %v..%v", p.Start(), p.Goal(), start, goal)
	}
	seen := make(map[grid.Coordinate]bool, p.Len())
	for i, c := range p.Cells {
		if seen[c] {
			t.Fatalf("coordinate %v repeats", c)
		}
		seen[c] = true
		if !g.Walkable(c) {
			t.Fatalf("path passes blocked cell %v", c)
		}
		if i == 0 {
			continue
		}
		dx, dy := abs(c.X-p.Cells[i-1].X), abs(c.Y-p.Cells[i-1].Y)
		diagonal := dx == 1 && dy == 1
		orthogonal := dx+dy == 1
		if !orthogonal && !(diagonal && adj == route.Conn8) {
			t.Fatalf("cells %v and %v are not adjacent", p.Cells[i-1], c)
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

//----------------------------------------------------------------------------//
// Validation
//----------------------------------------------------------------------------//

func TestFindPath_NilGrid(t *testing.T) {
	_, err := route.FindPath(nil, grid.Coordinate{}, grid.Coordinate{})
	if !errors.Is(err, route.ErrNilGrid) {
		t.Fatalf("error = %v; want ErrNilGrid", err)
	}
}

func TestFindPath_OutOfBounds(t *testing.T) {
	g := mustGrid(t, []string{"...", "...", "..."})
	cases := []struct {
		name        string
		start, goal grid.Coordinate
	}{
		{"StartOutside", grid.Coordinate{X: 3, Y: 0}, grid.Coordinate{X: 0, Y: 0}},
		{"GoalOutside", grid.Coordinate{X: 0, Y: 0}, grid.Coordinate{X: 0, Y: 7}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := route.FindPath(g, tc.start, tc.goal)
			if !errors.Is(err, route.ErrInvalidCoordinate) {
				t.Errorf("error = %v; want ErrInvalidCoordinate", err)
			}
		})
	}
}

// TestFindPath_BlockedGoal: a goal on an obstruction is BlockedEndpoint,
// never NoPath (no search runs at all).
func TestFindPath_BlockedGoal(t *testing.T) {
	g := mustGrid(t, []string{
		"...",
		".#.",
		"...",
	})
	_, err := route.FindPath(g, grid.Coordinate{X: 0, Y: 0}, grid.Coordinate{X: 1, Y: 1})
	if !errors.Is(err, route.ErrBlockedEndpoint) {
		t.Fatalf("error = %v; want ErrBlockedEndpoint", err)
	}
	if errors.Is(err, route.ErrNoPath) {
		t.Fatal("blocked goal must not report ErrNoPath")
	}
}

func TestFindPath_BlockedStart(t *testing.T) {
	g := mustGrid(t, []string{
		"C..",
		"...",
	})
	_, err := route.FindPath(g, grid.Coordinate{X: 0, Y: 0}, grid.Coordinate{X: 2, Y: 1})
	if !errors.Is(err, route.ErrBlockedEndpoint) {
		t.Fatalf("error = %v; want ErrBlockedEndpoint", err)
	}
}

func TestFindPath_OptionViolation(t *testing.T) {
	g := mustGrid(t, []string{"..", ".."})
	cases := []struct {
		name string
		opt  route.Option
	}{
		{"DiagonalTooCheap", route.WithDiagonalCost(route.CostUnit)},
		{"DiagonalTooDear", route.WithDiagonalCost(2 * route.CostUnit)},
		{"UnknownAdjacency", route.WithAdjacency(route.Adjacency(3))},
		{"UnknownCostModel", route.WithCostModel(route.CostModel(9))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := route.FindPath(g, grid.Coordinate{}, grid.Coordinate{X: 1, Y: 1}, tc.opt)
			if !errors.Is(err, route.ErrOptionViolation) {
				t.Errorf("error = %v; want ErrOptionViolation", err)
			}
		})
	}
}

// TestFindPath_StartEqualsGoal returns a single-cell path with no search.
func TestFindPath_StartEqualsGoal(t *testing.T) {
	g := mustGrid(t, []string{"...", "...", "..."})
	at := grid.Coordinate{X: 1, Y: 1}
	p, err := route.FindPath(g, at, at)
	if err != nil {
		t.Fatalf("FindPath error: %v", err)
	}
	if p.Len() != 1 || p.Steps() != 0 || p.TotalCost != 0 {
		t.Fatalf("path = %+v; want single zero-cost cell", p)
	}
	if p.Start() != at || p.Goal() != at {
		t.Fatalf("endpoints = %v..%v; want %v..%v", p.Start(), p.Goal(), at, at)
	}
}

//----------------------------------------------------------------------------//
// BFS correctness
//----------------------------------------------------------------------------//

// TestFindPath_WallDetour: a three-cell wall crosses the straight line
// between start and goal, so the shortest 4-directional route detours one
// row around it: 7 cells in total.
func TestFindPath_WallDetour(t *testing.T) {
	g := mustGrid(t, []string{
		".....",
		".....",
		".###.",
		".....",
		".....",
	})
	start := grid.Coordinate{X: 0, Y: 2}
	goal := grid.Coordinate{X: 4, Y: 2}

	p, err := route.FindPath(g, start, goal)
	if err != nil {
		t.Fatalf("FindPath error: %v", err)
	}
	assertValidPath(t, g, p, start, goal, route.Conn4)
	if p.Len() != 7 {
		t.Fatalf("Len = %d; want 7", p.Len())
	}
	if p.TotalCost != 6*route.CostUnit {
		t.Fatalf("TotalCost = %d; want %d", p.TotalCost, 6*route.CostUnit)
	}
	// The detour passes row 1 or row 3 to clear the wall.
	detoured := false
	for _, c := range p.Cells {
		if c.Y == 1 || c.Y == 3 {
			detoured = true
		}
	}
	if !detoured {
		t.Fatalf("path %v never leaves row 2", p.Cells)
	}
}

// TestFindPath_Enclosed: a goal sealed by obstructions yields ErrNoPath,
// an ordinary result rather than a fault.
func TestFindPath_Enclosed(t *testing.T) {
	g := mustGrid(t, []string{
		".....",
		".###.",
		".#.#.",
		".###.",
		".....",
	})
	_, err := route.FindPath(g, grid.Coordinate{X: 0, Y: 0}, grid.Coordinate{X: 2, Y: 2})
	if !errors.Is(err, route.ErrNoPath) {
		t.Fatalf("error = %v; want ErrNoPath", err)
	}

	// Diagonals do not help: the ring has no gap.
	_, err = route.FindPath(g, grid.Coordinate{X: 0, Y: 0}, grid.Coordinate{X: 2, Y: 2},
		route.WithAdjacency(route.Conn8))
	if !errors.Is(err, route.ErrNoPath) {
		t.Fatalf("Conn8 error = %v; want ErrNoPath", err)
	}
}

// bruteForceHops computes minimum hop counts between walkable cells by
// Floyd-Warshall, independent of the search engine under test.
func bruteForceHops(g *grid.Grid, adj route.Adjacency) [][]int {
	offsets := [][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	if adj == route.Conn8 {
		offsets = append(offsets, [][2]int{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}...)
	}
	n := g.Width() * g.Height()
	const inf = 1 << 20
	dist := make([][]int, n)
	for i := range dist {
		dist[i] = make([]int, n)
		for j := range dist[i] {
			dist[i][j] = inf
		}
		dist[i][i] = 0
	}
	for i := 0; i < n; i++ {
		c := g.Coordinate(i)
		if !g.Walkable(c) {
			continue
		}
		for _, d := range offsets {
			nc := grid.Coordinate{X: c.X + d[0], Y: c.Y + d[1]}
			if g.InBounds(nc) && g.Walkable(nc) {
				dist[i][g.Index(nc)] = 1
			}
		}
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if dist[i][k]+dist[k][j] < dist[i][j] {
					dist[i][j] = dist[i][k] + dist[k][j]
				}
			}
		}
	}
	return dist
}

// TestFindPath_MatchesBruteForce compares BFS step counts against
// Floyd-Warshall hop counts on a small enumerable grid, both adjacencies.
func TestFindPath_MatchesBruteForce(t *testing.T) {
	g := mustGrid(t, []string{
		"......",
		".##...",
		"...#..",
		".#.#..",
		".#....",
		"......",
	})
	for _, adj := range []route.Adjacency{route.Conn4, route.Conn8} {
		hops := bruteForceHops(g, adj)
		for si := 0; si < g.Width()*g.Height(); si++ {
			start := g.Coordinate(si)
			if !g.Walkable(start) {
				continue
			}
			for gi := 0; gi < g.Width()*g.Height(); gi++ {
				goal := g.Coordinate(gi)
				if !g.Walkable(goal) {
					continue
				}
				p, err := route.FindPath(g, start, goal, route.WithAdjacency(adj))
				if hops[si][gi] >= 1<<20 {
					if !errors.Is(err, route.ErrNoPath) {
						t.Fatalf("adj=%v %v->%v: error = %v; want ErrNoPath", adj, start, goal, err)
					}
					continue
				}
				if err != nil {
					t.Fatalf("adj=%v %v->%v: FindPath error: %v", adj, start, goal, err)
				}
				if p.Steps() != hops[si][gi] {
					t.Fatalf("adj=%v %v->%v: steps = %d; brute force = %d", adj, start, goal, p.Steps(), hops[si][gi])
				}
			}
		}
	}
}

//----------------------------------------------------------------------------//
// Dijkstra and cost models
//----------------------------------------------------------------------------//

// TestFindPath_DiagonalShortcut: on an open field the weighted diagonal
// route is cheaper than the orthogonal walk but dearer per step.
func TestFindPath_DiagonalShortcut(t *testing.T) {
	g := mustGrid(t, []string{
		".....",
		".....",
		".....",
		".....",
		".....",
	})
	start := grid.Coordinate{X: 0, Y: 0}
	goal := grid.Coordinate{X: 4, Y: 4}

	diag, err := route.FindPath(g, start, goal,
		route.WithAdjacency(route.Conn8),
		route.WithCostModel(route.CostDiagonal))
	if err != nil {
		t.Fatalf("diagonal FindPath error: %v", err)
	}
	assertValidPath(t, g, diag, start, goal, route.Conn8)
	if diag.Len() != 5 {
		t.Fatalf("diagonal Len = %d; want 5", diag.Len())
	}
	if diag.TotalCost != 4*route.DefaultDiagonalCost {
		t.Fatalf("diagonal TotalCost = %d; want %d", diag.TotalCost, 4*route.DefaultDiagonalCost)
	}

	// The weighted total stays below the 4-directional step budget.
	orth, err := route.FindPath(g, start, goal)
	if err != nil {
		t.Fatalf("orthogonal FindPath error: %v", err)
	}
	if diag.TotalCost > route.Cost(orth.Steps())*route.CostUnit {
		t.Fatalf("diagonal cost %d exceeds orthogonal budget %d", diag.TotalCost, orth.Steps()*1000)
	}
}

// TestFindPath_Conn4ModelsAgree: under 4-directional adjacency every step
// costs the same, so both cost models yield identical routes.
func TestFindPath_Conn4ModelsAgree(t *testing.T) {
	g := mustGrid(t, []string{
		"....",
		".#..",
		".#..",
		"....",
	})
	start := grid.Coordinate{X: 0, Y: 3}
	goal := grid.Coordinate{X: 3, Y: 0}

	uniform, err := route.FindPath(g, start, goal, route.WithCostModel(route.CostUniform))
	if err != nil {
		t.Fatalf("uniform FindPath error: %v", err)
	}
	weighted, err := route.FindPath(g, start, goal, route.WithCostModel(route.CostDiagonal))
	if err != nil {
		t.Fatalf("weighted FindPath error: %v", err)
	}
	if !reflect.DeepEqual(uniform, weighted) {
		t.Fatalf("paths differ:\n%v\nvs\n%v", uniform, weighted)
	}
}

// TestFindPath_WeightedObstacles: a custom diagonal price still yields the
// minimum-cost route around a wall.
func TestFindPath_WeightedObstacles(t *testing.T) {
	g := mustGrid(t, []string{
		"....",
		"##..",
		"....",
		"....",
	})
	start := grid.Coordinate{X: 0, Y: 0}
	goal := grid.Coordinate{X: 0, Y: 3}

	p, err := route.FindPath(g, start, goal,
		route.WithAdjacency(route.Conn8),
		route.WithCostModel(route.CostDiagonal),
		route.WithDiagonalCost(1500))
	if err != nil {
		t.Fatalf("FindPath error: %v", err)
	}
	assertValidPath(t, g, p, start, goal, route.Conn8)
	// Around the wall end at x=2: one straight step and three diagonals.
	if want := route.Cost(3*1500 + 1*1000); p.TotalCost != want {
		t.Fatalf("TotalCost = %d; want %d", p.TotalCost, want)
	}
}

//----------------------------------------------------------------------------//
// Marker exemption
//----------------------------------------------------------------------------//

// TestFindPath_MarkerEndpoint: a Destination marker sharing its cell with a
// construction site is a legal goal under the default policy, and a blocked
// one under MarkersBlocking.
func TestFindPath_MarkerEndpoint(t *testing.T) {
	rows := []string{
		"H..",
		"...",
		"..D",
	}
	goalCell := grid.Coordinate{X: 2, Y: 2}
	construction := grid.Entity{Coord: goalCell, ConstructionSite: true}

	build := func(policy grid.MarkerPolicy) *grid.Grid {
		entities := []grid.Entity{
			{Coord: grid.Coordinate{X: 0, Y: 0}, Category: grid.CategoryHome},
			{Coord: goalCell, Category: grid.CategoryDestination},
			construction,
		}
		g, err := grid.Build(entities, grid.WithMinBound(len(rows[0]), len(rows)), grid.WithMarkerPolicy(policy))
		if err != nil {
			t.Fatalf("Build: %v", err)
		}
		return g
	}

	p, err := route.FindPath(build(grid.MarkersTraversable), grid.Coordinate{X: 0, Y: 0}, goalCell)
	if err != nil {
		t.Fatalf("FindPath error: %v", err)
	}
	if p.Goal() != goalCell {
		t.Fatalf("Goal = %v; want %v", p.Goal(), goalCell)
	}

	_, err = route.FindPath(build(grid.MarkersBlocking), grid.Coordinate{X: 0, Y: 0}, goalCell)
	if !errors.Is(err, route.ErrBlockedEndpoint) {
		t.Fatalf("MarkersBlocking error = %v; want ErrBlockedEndpoint", err)
	}
}

//----------------------------------------------------------------------------//
// Determinism
//----------------------------------------------------------------------------//

// TestFindPath_Deterministic runs each configuration repeatedly and demands
// identical path sequences every time.
func TestFindPath_Deterministic(t *testing.T) {
	g := mustGrid(t, []string{
		"......",
		".#.#..",
		".#.#..",
		"...#..",
		".###..",
		"......",
	})
	start := grid.Coordinate{X: 0, Y: 0}
	goal := grid.Coordinate{X: 5, Y: 5}

	configs := map[string][]route.Option{
		"BFS4":      {route.WithAdjacency(route.Conn4)},
		"BFS8":      {route.WithAdjacency(route.Conn8)},
		"Dijkstra8": {route.WithAdjacency(route.Conn8), route.WithCostModel(route.CostDiagonal)},
	}
	for name, opts := range configs {
		t.Run(name, func(t *testing.T) {
			first, err := route.FindPath(g, start, goal, opts...)
			if err != nil {
				t.Fatalf("FindPath error: %v", err)
			}
			for i := 0; i < 5; i++ {
				again, err := route.FindPath(g, start, goal, opts...)
				if err != nil {
					t.Fatalf("run %d: FindPath error: %v", i, err)
				}
				if !reflect.DeepEqual(first, again) {
					t.Fatalf("run %d differs:\n%v\nvs\n%v", i, first.Cells, again.Cells)
				}
			}
		})
	}
}
