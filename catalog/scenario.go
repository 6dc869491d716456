package catalog

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"gridpath/grid"
)

// scenarioDoc is the YAML scenario schema:
//
//	width: 7        # optional minimum grid bound
//	height: 7
//	entities:
//	  - x: 2
//	    y: 1
//	    category: building
//	    construction: true
type scenarioDoc struct {
	Width    int              `yaml:"width"`
	Height   int              `yaml:"height"`
	Entities []scenarioEntity `yaml:"entities"`
}

type scenarioEntity struct {
	X            int    `yaml:"x"`
	Y            int    `yaml:"y"`
	Category     string `yaml:"category"`
	Construction bool   `yaml:"construction"`
}

// LoadScenario reads a YAML scenario document from r. Category names pass
// through ParseCategory; negative coordinates are rejected here rather than
// deferred to the grid builder, so the error names the offending record.
func LoadScenario(r io.Reader) (*Catalog, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("catalog: read scenario: %w", err)
	}
	var doc scenarioDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRecord, err)
	}

	entities := make([]grid.Entity, 0, len(doc.Entities))
	for i, se := range doc.Entities {
		if se.X < 0 || se.Y < 0 {
			return nil, fmt.Errorf("%w: entity %d at (%d,%d) has a negative coordinate", ErrBadRecord, i, se.X, se.Y)
		}
		entities = append(entities, grid.Entity{
			Coord:            grid.Coordinate{X: se.X, Y: se.Y},
			Category:         ParseCategory(se.Category),
			ConstructionSite: se.Construction,
		})
	}
	sortEntities(entities)

	return &Catalog{
		entities: entities,
		minW:     doc.Width,
		minH:     doc.Height,
	}, nil
}
