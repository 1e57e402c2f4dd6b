package chart

import (
	"fmt"

	"github.com/nao1215/optcompare/internal/model"
	"gonum.org/v1/plot/plotter"
)

// WinningQueriesName is the export file stem of the winning queries figure.
const WinningQueriesName = "winning_queries"

// WinningQueries builds the winning queries comparison: total wins per
// system on the left, wins per join bucket on the right.
func WinningQueries(ds *model.Dataset) (*Figure, error) {
	totals, err := totalWinsPlot(ds)
	if err != nil {
		return nil, fmt.Errorf("total wins plot: %w", err)
	}

	byBucket, err := bucketWinsPlot(ds)
	if err != nil {
		return nil, fmt.Errorf("bucket wins plot: %w", err)
	}

	return newFigure(
		WinningQueriesName,
		"Winning queries",
		wideFigureWidth, figureHeight,
		totals, byBucket,
	), nil
}

// WinLabel formats a bar label as the count over its share of the workload,
// e.g. "63\n(55.8%)".
func WinLabel(count, total int) string {
	return fmt.Sprintf("%d\n(%.1f%%)", count, model.Percentage(count, total))
}

// TotalLabel formats the bucket size annotation, e.g. "Total: 37".
func TotalLabel(total int) string {
	return fmt.Sprintf("Total: %d", total)
}

func totalWinsPlot(ds *model.Dataset) (*subplot, error) {
	p := newSubplot("Total de Queries Ganadas", "Número de Queries")

	systems := model.Systems()
	names := make([]string, len(systems))
	xys := make(plotter.XYs, len(systems))
	labels := make([]string, len(systems))
	width := barWidth(wideFigureWidth/2, len(systems), singleBarFraction)

	maxWins := 0
	for i, s := range systems {
		wins := ds.WinningQueries[s]
		maxWins = max(maxWins, wins)

		bc, err := plotter.NewBarChart(plotter.Values{float64(wins)}, width)
		if err != nil {
			return nil, err
		}
		bc.Color = barColors[s]
		bc.LineStyle.Width = 0
		bc.XMin = float64(i)
		p.Add(bc)

		names[i] = s.String()
		xys[i].X = float64(i)
		xys[i].Y = float64(wins)
		labels[i] = WinLabel(wins, ds.TotalQueries)
	}

	l, err := centredLabels(xys, labels)
	if err != nil {
		return nil, err
	}
	p.Add(l)

	categoryAxis(p.Plot, names...)
	p.Y.Min = 0
	p.Y.Max = float64(maxWins) * 1.2

	return p, nil
}

func bucketWinsPlot(ds *model.Dataset) (*subplot, error) {
	p := newSubplot("Winning Queries por Número de Joins", "")

	buckets := model.Buckets()
	values := make(map[model.System]plotter.Values, len(model.Systems()))
	for _, s := range model.Systems() {
		values[s] = make(plotter.Values, len(buckets))
	}

	xys := make(plotter.XYs, len(buckets))
	labels := make([]string, len(buckets))
	top := 0
	for i, b := range buckets {
		highest := 0
		for _, s := range model.Systems() {
			wins, _ := ds.BucketWinsFor(b, s)
			values[s][i] = float64(wins)
			highest = max(highest, wins)
		}
		xys[i].X = float64(i)
		xys[i].Y = float64(highest + 1)
		labels[i] = TotalLabel(ds.JoinDistribution[b].Total)
		top = max(top, highest+1)
	}

	width := barWidth(wideFigureWidth/2, len(buckets), groupedBarFraction)
	if err := groupedBars(p, width, values); err != nil {
		return nil, err
	}

	l, err := centredLabels(xys, labels)
	if err != nil {
		return nil, err
	}
	l.Offset.Y = 0
	p.Add(l)

	categoryAxis(p.Plot, bucketNames()...)
	p.Y.Min = 0
	p.Y.Max = float64(top) * 1.15

	return p, nil
}
