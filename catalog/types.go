// Package catalog defines the Catalog type and sentinel errors for
// entity loading.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"gridpath/grid"
)

// Sentinel errors for catalog operations.
var (
	// ErrMissingEntity indicates a requested marker category has no entity.
	ErrMissingEntity = errors.New("catalog: required entity not found")
	// ErrMissingColumn indicates a required column is absent from a table.
	ErrMissingColumn = errors.New("catalog: required column not found")
	// ErrBadRecord indicates a malformed table or scenario row.
	ErrBadRecord = errors.New("catalog: malformed record")
)

// Catalog is an immutable snapshot of loaded entities.
type Catalog struct {
	entities []grid.Entity
	minW     int
	minH     int
}

// New wraps an in-memory entity slice in a Catalog. The slice is copied so
// later caller mutation cannot leak into the snapshot.
func New(entities []grid.Entity) *Catalog {
	cp := make([]grid.Entity, len(entities))
	copy(cp, entities)
	return &Catalog{entities: cp}
}

// Entities returns the loaded entities. The returned slice is shared;
// callers must not mutate it.
func (c *Catalog) Entities() []grid.Entity { return c.entities }

// MinBound returns the minimum grid dimensions the source declared,
// or zeros when it declared none.
func (c *Catalog) MinBound() (w, h int) { return c.minW, c.minH }

// Locate returns the coordinate of the first entity with the given
// category, in row-major (Y, X) order for determinism.
// Returns ErrMissingEntity when no entity matches.
func (c *Catalog) Locate(cat grid.Category) (grid.Coordinate, error) {
	var best grid.Coordinate
	found := false
	for _, e := range c.entities {
		if e.Category != cat {
			continue
		}
		if !found || e.Coord.Less(best) {
			best = e.Coord
			found = true
		}
	}
	if !found {
		return grid.Coordinate{}, fmt.Errorf("%w: %s", ErrMissingEntity, cat)
	}
	return best, nil
}

// Summary counts entities per category, the catalog's structure statistics.
// CategoryOther rows are included; callers may drop them when reporting.
func (c *Catalog) Summary() map[grid.Category]int {
	counts := make(map[grid.Category]int)
	for _, e := range c.entities {
		counts[e.Category]++
	}
	return counts
}

// ParseCategory classifies a free-form structure name. Matching is
// case-insensitive and keyword-based, mirroring the name vocabulary of the
// source tables (MyHome, BandalgomCoffee, Apartment, Building, ...).
func ParseCategory(name string) grid.Category {
	n := strings.ToLower(strings.TrimSpace(name))
	switch {
	case strings.Contains(n, "coffee") || strings.Contains(n, "cafe") || strings.Contains(n, "destination"):
		return grid.CategoryDestination
	case strings.Contains(n, "home") || strings.Contains(n, "house"):
		return grid.CategoryHome
	case strings.Contains(n, "apartment") || strings.Contains(n, "residential"):
		return grid.CategoryResidential
	case strings.Contains(n, "building") || strings.Contains(n, "office") || strings.Contains(n, "commercial"):
		return grid.CategoryCommercial
	default:
		return grid.CategoryOther
	}
}
