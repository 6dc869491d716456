// Package grid defines core types, options, and sentinel errors
// for occupancy-grid construction.
package grid

import (
	"errors"
)

// Sentinel errors for grid construction.
var (
	// ErrNegativeCoordinate indicates an entity with a negative X or Y.
	ErrNegativeCoordinate = errors.New("grid: entity coordinate must be non-negative")
	// ErrEmptyGrid indicates that no entities and no minimum bound were supplied.
	ErrEmptyGrid = errors.New("grid: resulting grid must have at least one row and one column")
)

// Coordinate addresses a single cell. X grows rightward, Y grows downward;
// the total order used throughout the module is row-major (Y, then X).
type Coordinate struct {
	X, Y int
}

// Less reports whether c precedes o in row-major (Y, X) order.
func (c Coordinate) Less(o Coordinate) bool {
	if c.Y != o.Y {
		return c.Y < o.Y
	}
	return c.X < o.X
}

// Category classifies a catalog entity. The set is closed: anything a
// catalog cannot name maps to CategoryOther, never to a silent zero.
type Category int

//go:generate go tool stringer -type=Category -trimprefix=Category -output=category_string.go

const (
	// CategoryOther covers entities with no structural or marker meaning.
	CategoryOther Category = iota
	// CategoryResidential marks a residential structure (blocks movement).
	CategoryResidential
	// CategoryCommercial marks a commercial structure (blocks movement).
	CategoryCommercial
	// CategoryHome marks the route origin.
	CategoryHome
	// CategoryDestination marks the route target.
	CategoryDestination
)

// CellKind is the occupancy classification of one grid cell.
type CellKind int

//go:generate go tool stringer -type=CellKind -output=cellkind_string.go

const (
	// Empty cells are walkable.
	Empty CellKind = iota
	// Obstruction cells hold a residential or commercial structure.
	Obstruction
	// ConstructionSite cells are blocked regardless of co-located structures.
	ConstructionSite
)

// Blocking reports whether k forbids movement through a cell.
func (k CellKind) Blocking() bool {
	return k == Obstruction || k == ConstructionSite
}

// Entity is one point record from an entity catalog. Multiple entities may
// share a coordinate; Build resolves collisions via the priority rule.
type Entity struct {
	Coord            Coordinate
	Category         Category
	ConstructionSite bool
}

// MarkerPolicy selects how Home/Destination markers interact with blocking
// cells. The observed source variants disagree on this point, so the policy
// is configuration rather than a hard-coded rule.
type MarkerPolicy int

const (
	// MarkersTraversable exempts marker coordinates from blocking (default).
	MarkersTraversable MarkerPolicy = iota
	// MarkersBlocking gives marker coordinates no exemption.
	MarkersBlocking
)

// Options contains tunable parameters for grid construction.
type Options struct {
	// MinWidth and MinHeight force minimum grid dimensions. The grid always
	// covers every entity; these only ever enlarge it.
	MinWidth, MinHeight int
	// Markers selects the Home/Destination walkability policy.
	Markers MarkerPolicy
}

// Option configures Build via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with default settings:
// no minimum bound, MarkersTraversable.
func DefaultOptions() Options {
	return Options{
		MinWidth:  0,
		MinHeight: 0,
		Markers:   MarkersTraversable,
	}
}

// WithMinBound forces the grid to span at least w columns and h rows.
// Non-positive values leave the corresponding dimension unconstrained.
func WithMinBound(w, h int) Option {
	return func(o *Options) {
		if w > 0 {
			o.MinWidth = w
		}
		if h > 0 {
			o.MinHeight = h
		}
	}
}

// WithMarkerPolicy selects the Home/Destination walkability policy.
func WithMarkerPolicy(p MarkerPolicy) Option {
	return func(o *Options) {
		o.Markers = p
	}
}
