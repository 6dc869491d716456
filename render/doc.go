// Package render draws an occupancy grid, and optionally a computed route,
// into a PNG picture.
//
// Visual vocabulary, kept from the project's original map drawings:
//
//   - white background with a light-gray cell lattice,
//   - brown squares for structural obstructions,
//   - gray squares for construction sites,
//   - green squares for Home/Destination markers,
//   - a red polyline tracing the route through cell centers,
//   - optional axis labels along the top and left margins.
//
// The origin is the top-left cell; Y grows downward, matching the grid's
// coordinate system.
package render
