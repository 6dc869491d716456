// Package export writes computed results to tabular form for downstream
// consumers.
//
//   - WritePath: the route as step,x,y rows, one row per visited cell.
//   - WriteSummary: per-category entity counts as category,count rows,
//     ordered by descending count (ties by name) for stable output.
package export
