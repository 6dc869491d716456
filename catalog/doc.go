// Package catalog supplies the entity collection the grid builder consumes.
//
// What:
//
//   - LoadDir: reads the three-file tabular layout (map, struct, category
//     tables), normalizes column names, joins category codes to names, and
//     folds the construction flag in.
//   - LoadScenario: reads a single YAML document describing entities and an
//     optional minimum grid bound.
//   - Catalog: the loaded collection — entity access, marker lookup
//     (Locate), minimum-bound hint, and a per-category summary.
//   - ParseCategory: keyword classifier from free-form structure names to
//     the closed Category enum. Unknown names land on CategoryOther
//     explicitly, never on a silent fallthrough.
//
// Errors:
//
//   - ErrMissingEntity: a requested marker (Home, Destination) is absent.
//     Fatal to the calling workflow; the caller chooses corrective action.
//   - ErrMissingColumn: a required column is absent after normalization.
//   - ErrBadRecord: a row fails to parse (non-integer coordinate, short row).
package catalog
