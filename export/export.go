// Package export writes routes and catalog summaries as CSV.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"

	"gridpath/grid"
	"gridpath/route"
)

// ErrNilPath is returned when a nil path is passed to WritePath.
var ErrNilPath = errors.New("export: path is nil")

// WritePath writes p as CSV with a step,x,y header. Steps count from 1,
// matching the row numbering of the project's historical path exports.
func WritePath(w io.Writer, p *route.Path) error {
	if p == nil {
		return ErrNilPath
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"step", "x", "y"}); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}
	for i, c := range p.Cells {
		rec := []string{strconv.Itoa(i + 1), strconv.Itoa(c.X), strconv.Itoa(c.Y)}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("export: write step %d: %w", i+1, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteSummary writes per-category counts as CSV with a category,count
// header, ordered by descending count and then category name.
func WriteSummary(w io.Writer, counts map[grid.Category]int) error {
	type row struct {
		name  string
		count int
	}
	rows := make([]row, 0, len(counts))
	for cat, n := range counts {
		rows = append(rows, row{name: cat.String(), count: n})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].count != rows[j].count {
			return rows[i].count > rows[j].count
		}
		return rows[i].name < rows[j].name
	})

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"category", "count"}); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write([]string{r.name, strconv.Itoa(r.count)}); err != nil {
			return fmt.Errorf("export: write %s: %w", r.name, err)
		}
	}
	cw.Flush()

	return cw.Error()
}
