// Package gridpath locates the shortest walkable route between two named
// points of interest on a 2-D occupancy field derived from a sparse
// collection of spatially tagged entities.
//
// The pipeline, package by package:
//
//	catalog/ — loads entity records (three-table CSV layout or a YAML
//	           scenario), classifies structure names, locates the Home and
//	           Destination markers
//	grid/    — rasterizes entities into a dense occupancy grid under a
//	           deterministic priority rule (construction site > structural
//	           obstruction > empty)
//	route/   — one search engine, parameterized by adjacency (4- or
//	           8-directional) and cost model (uniform BFS or fixed-point
//	           diagonal-weighted Dijkstra)
//	render/  — draws the grid and route into a PNG picture
//	export/  — writes the route and catalog summary as CSV
//
// cmd/gridpath ties the stages into a command-line tool.
//
// Everything is synchronous and deterministic: identical inputs produce
// byte-identical grids, routes, and files on every run.
package gridpath
