// Command gridpath runs the full routing pipeline: load an entity catalog,
// rasterize it into an occupancy grid, search Home → Destination, and write
// the route as CSV and/or PNG.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"gridpath/catalog"
	"gridpath/export"
	"gridpath/grid"
	"gridpath/render"
	"gridpath/route"
)

var (
	version = "--- set from makefile ---"

	help        = flag.Bool("help", false, "show help message")
	showVersion = flag.Bool("version", false, "show command version")
	dataDir     = flag.String("data", "", "directory holding the area CSV tables")
	scenario    = flag.String("scenario", "", "YAML scenario file (alternative to -data)")
	conn        = flag.Int("conn", 4, "adjacency model: 4 or 8 directions")
	diagonal    = flag.Int64("diagonal", int64(route.DefaultDiagonalCost), "fixed-point diagonal step cost (orthogonal step = 1000)")
	outCSV      = flag.String("out", "route.csv", "route CSV output path (empty to skip)")
	outPNG      = flag.String("img", "", "map PNG output path (empty to skip)")
	outSummary  = flag.String("summary", "", "category summary CSV output path (empty to skip)")
)

func init() {
	flag.Parse()
}

func main() {
	if *help {
		flag.Usage()
		return
	}

	if *showVersion {
		fmt.Println(version)
		return
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	if err := run(logger); err != nil {
		logger.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	// ----------------------------------------------------------------------------
	// Catalog

	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	logger.Info("catalog loaded", "entities", len(cat.Entities()))

	home, err := cat.Locate(grid.CategoryHome)
	if err != nil {
		return fmt.Errorf("locating start: %w", err)
	}
	dest, err := cat.Locate(grid.CategoryDestination)
	if err != nil {
		return fmt.Errorf("locating goal: %w", err)
	}

	// ----------------------------------------------------------------------------
	// Grid and search

	minW, minH := cat.MinBound()
	g, err := grid.Build(cat.Entities(), grid.WithMinBound(minW, minH))
	if err != nil {
		return fmt.Errorf("building grid: %w", err)
	}
	logger.Info("grid built", "width", g.Width(), "height", g.Height())

	opts, err := searchOptions()
	if err != nil {
		return err
	}
	p, err := route.FindPath(g, home, dest, opts...)
	if errors.Is(err, route.ErrNoPath) {
		// An ordinary outcome: report it and leave the outputs unwritten.
		logger.Warn("no route exists", "start", home, "goal", dest)
		return err
	}
	if err != nil {
		return fmt.Errorf("searching: %w", err)
	}
	logger.Info("route found",
		"start", home, "goal", dest,
		"cells", p.Len(), "steps", p.Steps(), "cost", int64(p.TotalCost))

	// ----------------------------------------------------------------------------
	// Outputs

	if *outCSV != "" {
		if err := writeFile(*outCSV, func(f *os.File) error {
			return export.WritePath(f, p)
		}); err != nil {
			return err
		}
		logger.Info("route csv written", "path", *outCSV)
	}
	if *outSummary != "" {
		if err := writeFile(*outSummary, func(f *os.File) error {
			return export.WriteSummary(f, cat.Summary())
		}); err != nil {
			return err
		}
		logger.Info("summary csv written", "path", *outSummary)
	}
	if *outPNG != "" {
		if err := writeFile(*outPNG, func(f *os.File) error {
			return render.WritePNG(f, g, p)
		}); err != nil {
			return err
		}
		logger.Info("map png written", "path", *outPNG)
	}

	return nil
}

func loadCatalog() (*catalog.Catalog, error) {
	switch {
	case *dataDir != "" && *scenario != "":
		return nil, fmt.Errorf("-data and -scenario are mutually exclusive")
	case *dataDir != "":
		return catalog.LoadDir(*dataDir)
	case *scenario != "":
		f, err := os.Open(*scenario)
		if err != nil {
			return nil, fmt.Errorf("opening scenario: %w", err)
		}
		defer f.Close()
		return catalog.LoadScenario(f)
	default:
		return nil, fmt.Errorf("one of -data or -scenario is required")
	}
}

func searchOptions() ([]route.Option, error) {
	switch *conn {
	case 4:
		return []route.Option{route.WithAdjacency(route.Conn4)}, nil
	case 8:
		return []route.Option{
			route.WithAdjacency(route.Conn8),
			route.WithCostModel(route.CostDiagonal),
			route.WithDiagonalCost(route.Cost(*diagonal)),
		}, nil
	default:
		return nil, fmt.Errorf("-conn must be 4 or 8, got %d", *conn)
	}
}

func writeFile(path string, fn func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := fn(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return f.Close()
}
