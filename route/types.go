// Package route defines tunable options, sentinel errors, and the Path
// record for grid shortest-path search.
package route

import (
	"errors"
	"fmt"

	"gridpath/grid"
)

// Sentinel errors for search execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("route: grid is nil")

	// ErrInvalidCoordinate is returned when start or goal is out of bounds.
	ErrInvalidCoordinate = errors.New("route: coordinate out of grid bounds")

	// ErrBlockedEndpoint is returned when start or goal resolves to a
	// blocking cell. Detected before search begins; no partial work is done.
	ErrBlockedEndpoint = errors.New("route: endpoint resolves to a blocking cell")

	// ErrNoPath indicates the frontier was exhausted without reaching the
	// goal. An ordinary result, not a fault.
	ErrNoPath = errors.New("route: no path between start and goal")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("route: invalid option supplied")
)

// Adjacency selects the neighbor model: orthogonal only (Conn4) or
// including diagonals (Conn8).
type Adjacency int

const (
	// Conn4 uses 4-directional adjacency: up, down, left, right.
	Conn4 Adjacency = iota
	// Conn8 adds the four diagonals: upper-left, upper-right, lower-left,
	// lower-right, iterated after the orthogonal four.
	Conn8
)

// CostModel selects how a movement step is priced.
type CostModel int

const (
	// CostUniform prices every step at CostUnit.
	CostUniform CostModel = iota
	// CostDiagonal prices orthogonal steps at CostUnit and diagonal steps
	// at Options.Diagonal, which must lie strictly between CostUnit and
	// 2×CostUnit.
	CostDiagonal
)

// Cost is a fixed-point step cost. One orthogonal step costs CostUnit;
// fractional penalties are expressed in thousandths. Integer ordering keeps
// the priority queue exact — no floating-point comparisons anywhere.
type Cost int64

const (
	// CostUnit is the fixed-point cost of one orthogonal step.
	CostUnit Cost = 1000
	// DefaultDiagonalCost approximates √2 in CostUnit thousandths.
	DefaultDiagonalCost Cost = 1414
)

// Options holds parameters customizing a search.
type Options struct {
	// Adjacency chooses 4- or 8-directional neighbors.
	Adjacency Adjacency
	// Model chooses uniform or diagonal-weighted step pricing.
	Model CostModel
	// Diagonal is the fixed-point cost of one diagonal step under
	// CostDiagonal. Must satisfy CostUnit < Diagonal < 2×CostUnit.
	Diagonal Cost

	// internal error recorded during option parsing
	err error
}

// Option configures FindPath via functional arguments. An invalid Option is
// recorded internally and surfaced as ErrOptionViolation when FindPath runs.
type Option func(*Options)

// DefaultOptions returns Options with sane defaults:
// Conn4 adjacency, uniform cost, DefaultDiagonalCost for the diagonal.
func DefaultOptions() Options {
	return Options{
		Adjacency: Conn4,
		Model:     CostUniform,
		Diagonal:  DefaultDiagonalCost,
		err:       nil,
	}
}

// WithAdjacency selects the neighbor model.
func WithAdjacency(a Adjacency) Option {
	return func(o *Options) {
		if a != Conn4 && a != Conn8 {
			o.err = fmt.Errorf("%w: unknown adjacency %d", ErrOptionViolation, a)
			return
		}
		o.Adjacency = a
	}
}

// WithCostModel selects uniform or diagonal-weighted pricing.
func WithCostModel(m CostModel) Option {
	return func(o *Options) {
		if m != CostUniform && m != CostDiagonal {
			o.err = fmt.Errorf("%w: unknown cost model %d", ErrOptionViolation, m)
			return
		}
		o.Model = m
	}
}

// WithDiagonalCost sets the fixed-point diagonal step cost.
// d must lie strictly between CostUnit and 2×CostUnit, so that a diagonal
// is dearer than one orthogonal step but cheaper than two.
func WithDiagonalCost(d Cost) Option {
	return func(o *Options) {
		if d <= CostUnit || d >= 2*CostUnit {
			o.err = fmt.Errorf("%w: diagonal cost %d outside (%d, %d)", ErrOptionViolation, d, CostUnit, 2*CostUnit)
			return
		}
		o.Diagonal = d
	}
}

// Path is the ordered route from start to goal: first element is the start,
// last is the goal, every consecutive pair is adjacent under the search's
// adjacency model, and no coordinate repeats.
type Path struct {
	// Cells holds the route coordinates in walking order.
	Cells []grid.Coordinate
	// TotalCost is the fixed-point cost of the route under the cost model
	// the search ran with.
	TotalCost Cost
}

// Len returns the number of cells on the route, endpoints included.
func (p *Path) Len() int { return len(p.Cells) }

// Steps returns the number of moves (Len-1); 0 for a single-cell route.
func (p *Path) Steps() int {
	if len(p.Cells) == 0 {
		return 0
	}
	return len(p.Cells) - 1
}

// Start returns the first cell of the route.
func (p *Path) Start() grid.Coordinate { return p.Cells[0] }

// Goal returns the last cell of the route.
func (p *Path) Goal() grid.Coordinate { return p.Cells[len(p.Cells)-1] }
