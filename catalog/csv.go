package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gridpath/grid"
)

// File names of the three-table layout LoadDir expects.
const (
	mapFile      = "area_map.csv"
	structFile   = "area_struct.csv"
	categoryFile = "area_category.csv"
)

// LoadDir reads the three-table catalog layout from dir:
//
//   - area_category.csv: category code → structure name.
//   - area_struct.csv:   x, y, category code per structure.
//   - area_map.csv:      x, y, construction flag per surveyed coordinate.
//
// Header names are trimmed and lower-cased before lookup, so the loader
// tolerates the spacing and casing drift seen in real exports. Rows join on
// (x, y); a coordinate present only in the map table still yields an entity
// (CategoryOther) so its construction flag is not lost.
func LoadDir(dir string) (*Catalog, error) {
	names, err := loadCategoryNames(filepath.Join(dir, categoryFile))
	if err != nil {
		return nil, err
	}
	structs, err := loadStructs(filepath.Join(dir, structFile), names)
	if err != nil {
		return nil, err
	}
	construction, err := loadConstruction(filepath.Join(dir, mapFile))
	if err != nil {
		return nil, err
	}

	entities := make([]grid.Entity, 0, len(structs)+len(construction))
	seen := make(map[grid.Coordinate]bool, len(structs))
	for _, e := range structs {
		e.ConstructionSite = construction[e.Coord]
		entities = append(entities, e)
		seen[e.Coord] = true
	}
	for c, flag := range construction {
		if !flag || seen[c] {
			continue
		}
		entities = append(entities, grid.Entity{Coord: c, Category: grid.CategoryOther, ConstructionSite: true})
	}
	sortEntities(entities)

	return &Catalog{entities: entities}, nil
}

// table is one parsed CSV file: normalized header → column position,
// plus the data rows.
type table struct {
	cols map[string]int
	rows [][]string
	name string
}

// readTable parses a CSV file and normalizes its header.
func readTable(path string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	return parseTable(f, filepath.Base(path))
}

func parseTable(r io.Reader, name string) (*table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrBadRecord, name, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s: empty table", ErrBadRecord, name)
	}
	cols := make(map[string]int, len(records[0]))
	for i, h := range records[0] {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}

	return &table{cols: cols, rows: records[1:], name: name}, nil
}

// cell returns the trimmed value of column col in row, or ErrMissingColumn /
// ErrBadRecord when the table does not carry it.
func (t *table) cell(row []string, col string) (string, error) {
	i, ok := t.cols[col]
	if !ok {
		return "", fmt.Errorf("%w: %s: %q", ErrMissingColumn, t.name, col)
	}
	if i >= len(row) {
		return "", fmt.Errorf("%w: %s: short row %v", ErrBadRecord, t.name, row)
	}
	return strings.TrimSpace(row[i]), nil
}

// intCell parses column col of row as an integer.
func (t *table) intCell(row []string, col string) (int, error) {
	s, err := t.cell(row, col)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: column %q: %v", ErrBadRecord, t.name, col, err)
	}
	return n, nil
}

// loadCategoryNames reads the category-code → structure-name table.
func loadCategoryNames(path string) (map[int]string, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}
	names := make(map[int]string, len(t.rows))
	for _, row := range t.rows {
		code, err := t.intCell(row, "category")
		if err != nil {
			return nil, err
		}
		name, err := t.cell(row, "struct")
		if err != nil {
			return nil, err
		}
		names[code] = name
	}
	return names, nil
}

// loadStructs reads the structure table and resolves category codes through
// the name map. Code 0 and unknown codes classify as CategoryOther.
func loadStructs(path string, names map[int]string) ([]grid.Entity, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}
	entities := make([]grid.Entity, 0, len(t.rows))
	for _, row := range t.rows {
		x, err := t.intCell(row, "x")
		if err != nil {
			return nil, err
		}
		y, err := t.intCell(row, "y")
		if err != nil {
			return nil, err
		}
		code, err := t.intCell(row, "category")
		if err != nil {
			return nil, err
		}
		entities = append(entities, grid.Entity{
			Coord:    grid.Coordinate{X: x, Y: y},
			Category: ParseCategory(names[code]),
		})
	}
	return entities, nil
}

// loadConstruction reads the map table's construction flags.
func loadConstruction(path string) (map[grid.Coordinate]bool, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}
	flags := make(map[grid.Coordinate]bool, len(t.rows))
	for _, row := range t.rows {
		x, err := t.intCell(row, "x")
		if err != nil {
			return nil, err
		}
		y, err := t.intCell(row, "y")
		if err != nil {
			return nil, err
		}
		flag, err := t.intCell(row, "constructionsite")
		if err != nil {
			return nil, err
		}
		flags[grid.Coordinate{X: x, Y: y}] = flag != 0
	}
	return flags, nil
}

// sortEntities orders entities row-major so load output is deterministic
// regardless of source row order.
func sortEntities(entities []grid.Entity) {
	sort.Slice(entities, func(i, j int) bool {
		return entities[i].Coord.Less(entities[j].Coord)
	})
}
