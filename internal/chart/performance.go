package chart

import (
	"fmt"
	"math"

	"github.com/nao1215/optcompare/internal/model"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PerformanceMetricsName is the export file stem of the performance figure.
const PerformanceMetricsName = "performance_metrics"

// Axis margins around the data, so end markers are drawn whole.
const (
	logMarginBelow = 0.8
	logMarginAbove = 1.25
	linearMargin   = 0.05
)

// PerformanceMetrics builds the performance comparison: cardinality on a
// logarithmic axis on the left, execution time on the right.
func PerformanceMetrics(ds *model.Dataset) (*Figure, error) {
	cardinality, err := cardinalityPlot(ds)
	if err != nil {
		return nil, fmt.Errorf("cardinality plot: %w", err)
	}

	execTime, err := executionTimePlot(ds)
	if err != nil {
		return nil, fmt.Errorf("execution time plot: %w", err)
	}

	return newFigure(
		PerformanceMetricsName,
		"Performance metrics",
		wideFigureWidth, figureHeight,
		cardinality, execTime,
	), nil
}

// cardinalityPlot draws cardinality per bucket on a log axis. Values that
// are not positive have no place on it and are left out, breaking the line.
func cardinalityPlot(ds *model.Dataset) (*subplot, error) {
	p, lo, hi, err := metricPlot(
		"Comparación de Cardinalidad",
		"Cardinalidad (log scale)",
		ds,
		func(m model.Metrics) float64 { return m.Cardinality },
		true,
	)
	if err != nil {
		return nil, err
	}

	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Min, p.Y.Max = logRange(lo, hi)
	return p, nil
}

func executionTimePlot(ds *model.Dataset) (*subplot, error) {
	p, lo, hi, err := metricPlot(
		"Comparación de Tiempos de Ejecución",
		"Tiempo de Ejecución (ms)",
		ds,
		func(m model.Metrics) float64 { return m.ExecutionTimeMS },
		false,
	)
	if err != nil {
		return nil, err
	}

	p.Y.Min, p.Y.Max = linearRange(lo, hi)
	return p, nil
}

// metricPlot draws one line with point markers per system across the
// buckets and returns the range of the values drawn. With positiveOnly,
// values <= 0 are skipped. lo > hi when nothing was drawn.
func metricPlot(title, yLabel string, ds *model.Dataset, metric func(model.Metrics) float64, positiveOnly bool) (*subplot, float64, float64, error) {
	p := newSubplot(title, yLabel)
	p.Legend.Left = true
	p.addGrid()

	lo, hi := math.Inf(1), math.Inf(-1)
	buckets := model.Buckets()
	for _, s := range model.Systems() {
		style := lineStyles[s]

		var points plotter.XYs
		var runs []plotter.XYs
		var run plotter.XYs
		for i, b := range buckets {
			y := metric(ds.PerformanceMetrics[b][s])
			if positiveOnly && y <= 0 {
				if len(run) > 0 {
					runs = append(runs, run)
					run = nil
				}
				continue
			}
			xy := plotter.XY{X: float64(i), Y: y}
			points = append(points, xy)
			run = append(run, xy)
			lo, hi = math.Min(lo, y), math.Max(hi, y)
		}
		if len(run) > 0 {
			runs = append(runs, run)
		}

		legendLine := &plotter.Line{LineStyle: plotter.DefaultLineStyle}
		legendLine.Color = style.Color
		legendLine.Width = vg.Points(1.5)

		for _, r := range runs {
			if len(r) < 2 {
				continue
			}
			line, err := plotter.NewLine(r)
			if err != nil {
				return nil, 0, 0, err
			}
			line.LineStyle = legendLine.LineStyle
			p.Add(line)
		}

		markers, err := plotter.NewScatter(points)
		if err != nil {
			return nil, 0, 0, err
		}
		markers.Color = style.Color
		markers.Shape = style.Shape
		markers.Radius = vg.Points(4)
		p.Add(markers)
		p.markers[s] = markers

		p.addLegend(s.String(), legendLine, markers)
	}

	names := make([]string, len(buckets))
	for i, b := range buckets {
		names[i] = b.String()
	}
	p.NominalX(names...)
	p.X.Min = -0.2
	p.X.Max = float64(len(buckets)-1) + 0.2

	return p, lo, hi, nil
}

// logRange pads [lo, hi] for a log axis and widens it to the enclosing
// powers of ten, so at least one labelled tick lies below the data and
// one above. An empty range falls back to [1, 10].
func logRange(lo, hi float64) (float64, float64) {
	if lo > hi {
		return 1, 10
	}
	below := math.Pow10(int(math.Floor(math.Log10(lo))))
	above := math.Pow10(int(math.Ceil(math.Log10(hi))))
	return math.Min(lo*logMarginBelow, below), math.Max(hi*logMarginAbove, above)
}

// linearRange pads [lo, hi] by a fraction of its span. A flat range is
// padded by a fraction of its value instead.
func linearRange(lo, hi float64) (float64, float64) {
	if lo > hi {
		return 0, 1
	}
	span := hi - lo
	if span == 0 {
		span = math.Abs(hi)
	}
	if span == 0 {
		span = 1
	}
	return lo - span*linearMargin, hi + span*linearMargin
}
