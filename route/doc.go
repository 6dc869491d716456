// Package route computes shortest walkable paths between two coordinates on
// an occupancy grid, under a configurable adjacency and cost model.
//
// What:
//
//   - FindPath: one engine covering every observed search variant as
//     configuration — 4- or 8-directional adjacency, uniform or
//     diagonal-weighted step costs — instead of near-duplicate code paths.
//   - Path: the ordered result (start first, goal last, consecutive cells
//     adjacent, no repeats) with derived metadata.
//
// Algorithm selection:
//
//   - Uniform cost model, or 4-directional adjacency (where all edge costs
//     coincide): breadth-first search. Minimum step count by layer order.
//   - 8-directional adjacency with a diagonal penalty: Dijkstra with a
//     lazy-decrease-key binary heap. Minimum total fixed-point cost.
//
// Determinism:
//
//   - Neighbor iteration order is fixed: up, down, left, right, then
//     upper-left, upper-right, lower-left, lower-right.
//   - Costs are fixed-point integers (CostUnit per orthogonal step); the
//     heap breaks cost ties by row-major cell index. Two invocations with
//     identical inputs produce identical path sequences.
//
// Complexity:
//
//   - BFS:      O(V + E) time, O(V) memory.
//   - Dijkstra: O((V + E) log V) time, O(V + E) memory.
//
// Errors:
//
//   - ErrNilGrid: nil grid supplied.
//   - ErrInvalidCoordinate: start or goal lies outside the grid.
//   - ErrBlockedEndpoint: start or goal resolves to a blocking cell, checked
//     before any search state is allocated.
//   - ErrNoPath: the frontier was exhausted without reaching the goal. This
//     is an ordinary outcome, not a fault; distinguish it with errors.Is.
//   - ErrOptionViolation: an invalid Option was supplied.
//
// The engine is fully synchronous. A search call exclusively owns its
// frontier, visited set, and parent map, and discards them on return; the
// grid is read-only throughout and may be shared across calls.
package route
