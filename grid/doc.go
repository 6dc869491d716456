// Package grid rasterizes a sparse collection of spatially tagged entities
// into a dense occupancy grid suitable for shortest-path search.
//
// What:
//
//   - Entity: a point record with coordinate, category, and a construction flag.
//   - Build: folds entities into an immutable Grid of CellKind values under a
//     fixed priority rule (construction site > structural obstruction > empty).
//   - Grid: dense rectangular array of CellKind plus the Home/Destination
//     marker set, with bounds and walkability helpers.
//
// Why:
//
//   - City maps: classify each cell once, then answer many route queries.
//   - Deterministic pipelines: identical entity sets always yield identical
//     grids, regardless of input order or call count.
//
// Priority rule (highest wins per coordinate):
//
//  1. Any entity with ConstructionSite=true forces the cell to ConstructionSite.
//  2. Else any Residential or Commercial entity makes the cell Obstruction.
//  3. Else the cell is Empty.
//
// Marker policy:
//
//   - MarkersTraversable (default): cells tagged Home or Destination are
//     walkable even when an obstruction or construction entity shares the
//     coordinate. Classification still records the blocking kind; only
//     walkability is exempted.
//   - MarkersBlocking: markers receive no exemption.
//
// Complexity:
//
//   - Build: O(N + W×H) time, O(W×H) memory (N = number of entities).
//   - InBounds, Kind, Walkable: O(1).
//
// Errors:
//
//   - ErrNegativeCoordinate: an entity carries a negative coordinate.
//   - ErrEmptyGrid: no entities and no minimum bound, so dimensions are 0×0.
package grid
