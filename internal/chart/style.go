package chart

import (
	"image/color"

	"github.com/nao1215/optcompare/internal/model"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Palette colors, named after their CSS equivalents.
var (
	LightBlue  = color.RGBA{R: 173, G: 216, B: 230, A: 255}
	LightCoral = color.RGBA{R: 240, G: 128, B: 128, A: 255}
	Blue       = color.RGBA{B: 255, A: 255}
	Red        = color.RGBA{R: 255, A: 255}

	// lightGrid is a grid line at 30% opacity.
	lightGrid = color.NRGBA{R: 176, G: 176, B: 176, A: 77}
)

// barColors maps each system to its bar fill.
var barColors = map[model.System]color.Color{
	model.SystemCOMPASS:    LightBlue,
	model.SystemPostgreSQL: LightCoral,
}

// lineStyles maps each system to its line color and point glyph.
// Glyph shape differs per system so the series stay distinguishable
// without color.
var lineStyles = map[model.System]struct {
	Color color.Color
	Shape draw.GlyphDrawer
}{
	model.SystemCOMPASS:    {Color: Blue, Shape: draw.CircleGlyph{}},
	model.SystemPostgreSQL: {Color: Red, Shape: draw.SquareGlyph{}},
}

// Figure sizes in inches, matching the reference layouts.
const (
	wideFigureWidth   = 15 * vg.Inch
	narrowFigureWidth = 10 * vg.Inch
	figureHeight      = 6 * vg.Inch
)

// Bar widths as a fraction of the distance between categories.
const (
	singleBarFraction  = 0.8
	groupedBarFraction = 0.35
)

// subplot is a plot together with the decorations and markers placed on it.
type subplot struct {
	*plot.Plot

	// grid is nil when the plot has no grid.
	grid *plotter.Grid

	// legend lists the legend entries in the order they were added.
	legend []string

	// markers holds the point series of each system on line plots.
	markers map[model.System]*plotter.Scatter
}

// newSubplot creates a plot with a title and a Y axis label.
func newSubplot(title, yLabel string) *subplot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(13)
	p.Title.Padding = vg.Points(8)
	p.Y.Label.Text = yLabel
	p.Legend.Top = true
	p.Legend.Padding = vg.Millimeter
	return &subplot{Plot: p, markers: make(map[model.System]*plotter.Scatter)}
}

// addGrid draws a light grid behind the data.
func (sp *subplot) addGrid() {
	grid := plotter.NewGrid()
	grid.Vertical.Color = lightGrid
	grid.Horizontal.Color = lightGrid
	sp.Add(grid)
	sp.grid = grid
}

// addLegend adds a legend entry drawn with the given thumbnails.
func (sp *subplot) addLegend(name string, thumbs ...plot.Thumbnailer) {
	sp.Legend.Add(name, thumbs...)
	sp.legend = append(sp.legend, name)
}

// categoryAxis labels X positions 0..n-1 and pads half a category on
// each side so bars centred on the ends are not clipped.
func categoryAxis(p *plot.Plot, names ...string) {
	p.NominalX(names...)
	p.X.Min = -0.5
	p.X.Max = float64(len(names)) - 0.5
}

// bucketNames returns the axis labels for the buckets, e.g. "4-9 Joins".
func bucketNames() []string {
	buckets := model.Buckets()
	names := make([]string, len(buckets))
	for i, b := range buckets {
		names[i] = b.Label()
	}
	return names
}

// barWidth converts a category fraction into an absolute bar width for a
// plot that occupies plotWidth and shows n categories.
func barWidth(plotWidth vg.Length, n int, fraction float64) vg.Length {
	return vg.Length(float64(plotWidth) / float64(n+1) * fraction)
}

// groupedBars adds one bar series per system, offset around each category.
func groupedBars(sp *subplot, width vg.Length, values map[model.System]plotter.Values) error {
	systems := model.Systems()
	for i, s := range systems {
		bc, err := plotter.NewBarChart(values[s], width)
		if err != nil {
			return err
		}
		bc.Color = barColors[s]
		bc.LineStyle.Width = 0
		bc.Offset = width * (vg.Length(i) - vg.Length(len(systems)-1)/2)
		sp.Add(bc)
		sp.addLegend(s.String(), bc)
	}
	return nil
}

// centredLabels returns labels drawn centred above each point.
func centredLabels(xys plotter.XYs, labels []string) (*plotter.Labels, error) {
	l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return nil, err
	}
	for i := range l.TextStyle {
		l.TextStyle[i].XAlign = text.XCenter
		l.TextStyle[i].YAlign = text.YBottom
	}
	l.Offset = vg.Point{Y: vg.Points(2)}
	return l, nil
}
