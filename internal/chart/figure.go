package chart

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Figure is a single canvas holding one or more plots in one row.
type Figure struct {
	// Name is the file stem used when the figure is exported.
	Name string

	// Title describes the figure as a whole.
	Title string

	// Width and Height are the canvas size.
	Width  vg.Length
	Height vg.Length

	subplots []*subplot
}

// NewFigure creates a figure of the given size from left to right plots.
func NewFigure(name, title string, width, height vg.Length, plots ...*plot.Plot) *Figure {
	subplots := make([]*subplot, len(plots))
	for i, p := range plots {
		subplots[i] = &subplot{Plot: p}
	}
	return newFigure(name, title, width, height, subplots...)
}

func newFigure(name, title string, width, height vg.Length, subplots ...*subplot) *Figure {
	return &Figure{
		Name:     name,
		Title:    title,
		Width:    width,
		Height:   height,
		subplots: subplots,
	}
}

// Subplots returns the number of plots in the figure.
func (f *Figure) Subplots() int {
	return len(f.subplots)
}

// Plot returns the i-th plot, counting from the left.
func (f *Figure) Plot(i int) *plot.Plot {
	return f.subplots[i].Plot
}

// Scaled returns a copy of the figure with its canvas size multiplied by s.
// Fonts and line widths keep their absolute size.
func (f *Figure) Scaled(s float64) *Figure {
	if s <= 0 || s == 1 {
		return f
	}
	c := *f
	c.Width = vg.Length(float64(f.Width) * s)
	c.Height = vg.Length(float64(f.Height) * s)
	return &c
}

// WriterTo draws the figure on a canvas of the given format
// ("png", "svg", "pdf", ...) and returns it ready to be written.
func (f *Figure) WriterTo(format string) (io.WriterTo, error) {
	if len(f.subplots) == 0 {
		return nil, ErrNoSubplots
	}

	c, err := draw.NewFormattedCanvas(f.Width, f.Height, strings.ToLower(format))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	f.draw(draw.New(c))
	return c, nil
}

// Save writes the figure to path. The format is taken from the file extension.
func (f *Figure) Save(path string) (err error) {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	wt, err := f.WriterTo(format)
	if err != nil {
		return err
	}

	file, err := os.Create(path) //nolint:gosec // output path is chosen by the user
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = wt.WriteTo(file)
	return err
}

// draw lays the plots out in one row and draws them.
func (f *Figure) draw(dc draw.Canvas) {
	dc.SetColor(color.White)
	dc.Fill(dc.Rectangle.Path())

	tiles := draw.Tiles{
		Rows:      1,
		Cols:      len(f.subplots),
		PadTop:    vg.Points(6),
		PadBottom: vg.Points(6),
		PadLeft:   vg.Points(6),
		PadRight:  vg.Points(12),
		PadX:      vg.Points(24),
	}

	plots := make([]*plot.Plot, len(f.subplots))
	for i, sp := range f.subplots {
		plots[i] = sp.Plot
	}

	canvases := plot.Align([][]*plot.Plot{plots}, tiles, dc)
	for i, p := range plots {
		p.Draw(canvases[0][i])
	}
}
