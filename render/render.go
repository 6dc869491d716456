// Package render rasterizes grids and routes into PNG images.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"gridpath/grid"
	"gridpath/route"
)

// ErrNilGrid is returned when a nil grid is passed to Render or WritePNG.
var ErrNilGrid = errors.New("render: grid is nil")

// Palette, matching the original map drawings.
var (
	colBackground   = color.RGBA{255, 255, 255, 255}
	colLattice      = color.RGBA{211, 211, 211, 255}
	colObstruction  = color.RGBA{139, 69, 19, 255}
	colConstruction = color.RGBA{128, 128, 128, 255}
	colMarker       = color.RGBA{0, 128, 0, 255}
	colRoute        = color.RGBA{220, 20, 60, 255}
	colLabel        = color.RGBA{64, 64, 64, 255}
)

// Options contains tunable rendering parameters.
type Options struct {
	// CellSize is the edge length of one cell in pixels.
	CellSize int
	// Labels draws coordinate indices along the top and left margins.
	Labels bool
}

// Option configures rendering via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with default settings:
// 24-pixel cells, labels on.
func DefaultOptions() Options {
	return Options{CellSize: 24, Labels: true}
}

// WithCellSize sets the cell edge length in pixels. Values below 4 are
// clamped to 4 so cell interiors stay visible.
func WithCellSize(px int) Option {
	return func(o *Options) {
		if px < 4 {
			px = 4
		}
		o.CellSize = px
	}
}

// WithLabels toggles the coordinate labels.
func WithLabels(on bool) Option {
	return func(o *Options) { o.Labels = on }
}

// Render draws g, and p when non-nil, into a fresh RGBA image.
func Render(g *grid.Grid, p *route.Path, opts ...Option) (*image.RGBA, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cs := o.CellSize
	margin := 0
	if o.Labels {
		margin = cs
	}
	w := margin + g.Width()*cs + 1
	h := margin + g.Height()*cs + 1
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fill(img, img.Bounds(), colBackground)

	drawCells(img, g, margin, cs)
	drawLattice(img, g, margin, cs)
	if p != nil {
		drawRoute(img, p, margin, cs)
	}
	if o.Labels {
		drawLabels(img, g, margin, cs)
	}

	return img, nil
}

// WritePNG renders g and p, then PNG-encodes the picture into w.
func WritePNG(w io.Writer, g *grid.Grid, p *route.Path, opts ...Option) error {
	img, err := Render(g, p, opts...)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// cellRect returns the pixel rectangle of cell c, inset by one pixel so the
// lattice stays visible around filled cells.
func cellRect(c grid.Coordinate, margin, cs int) image.Rectangle {
	x0 := margin + c.X*cs
	y0 := margin + c.Y*cs
	return image.Rect(x0+1, y0+1, x0+cs, y0+cs)
}

func fill(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

// drawCells fills every non-empty cell with its kind color; marker cells
// take the marker color regardless of kind, mirroring how the original
// drawings put the home and cafe glyphs on top.
func drawCells(img *image.RGBA, g *grid.Grid, margin, cs int) {
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := grid.Coordinate{X: x, Y: y}
			var col color.RGBA
			switch {
			case g.Marker(c):
				col = colMarker
			case g.Kind(c) == grid.Obstruction:
				col = colObstruction
			case g.Kind(c) == grid.ConstructionSite:
				col = colConstruction
			default:
				continue
			}
			fill(img, cellRect(c, margin, cs), col)
		}
	}
}

func drawLattice(img *image.RGBA, g *grid.Grid, margin, cs int) {
	w, h := g.Width()*cs, g.Height()*cs
	for i := 0; i <= g.Width(); i++ {
		vline(img, margin+i*cs, margin, margin+h, colLattice)
	}
	for i := 0; i <= g.Height(); i++ {
		hline(img, margin, margin+w, margin+i*cs, colLattice)
	}
}

func vline(img *image.RGBA, x, y0, y1 int, c color.RGBA) {
	for y := y0; y <= y1; y++ {
		img.SetRGBA(x, y, c)
	}
}

func hline(img *image.RGBA, x0, x1, y int, c color.RGBA) {
	for x := x0; x <= x1; x++ {
		img.SetRGBA(x, y, c)
	}
}

// drawRoute traces the path as a polyline through cell centers.
func drawRoute(img *image.RGBA, p *route.Path, margin, cs int) {
	center := func(c grid.Coordinate) (int, int) {
		return margin + c.X*cs + cs/2, margin + c.Y*cs + cs/2
	}
	for i := 1; i < len(p.Cells); i++ {
		x0, y0 := center(p.Cells[i-1])
		x1, y1 := center(p.Cells[i])
		line(img, x0, y0, x1, y1, colRoute)
	}
}

// line draws a 1-pixel segment with the integer Bresenham walk. Route
// segments are axis-aligned or exactly diagonal, both of which Bresenham
// renders without gaps.
func line(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	dx, sx := abs(x1-x0), 1
	if x0 > x1 {
		sx = -1
	}
	dy, sy := -abs(y1-y0), 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		img.SetRGBA(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// drawLabels writes column indices along the top margin and row indices
// along the left margin with the basicfont face.
func drawLabels(img *image.RGBA, g *grid.Grid, margin, cs int) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(colLabel),
		Face: basicfont.Face7x13,
	}
	for x := 0; x < g.Width(); x++ {
		s := strconv.Itoa(x)
		d.Dot = fixed.P(margin+x*cs+cs/2-d.MeasureString(s).Ceil()/2, margin-4)
		d.DrawString(s)
	}
	for y := 0; y < g.Height(); y++ {
		s := strconv.Itoa(y)
		d.Dot = fixed.P(margin-4-d.MeasureString(s).Ceil(), margin+y*cs+cs/2+4)
		d.DrawString(s)
	}
}
