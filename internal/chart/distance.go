package chart

import (
	"fmt"

	"github.com/nao1215/optcompare/internal/model"
	"gonum.org/v1/plot/plotter"
)

// L1DistancesName is the export file stem of the L1 distance figure.
const L1DistancesName = "l1_distances"

// L1Distances builds the grouped bar chart of normalized L1 distance per bucket.
func L1Distances(ds *model.Dataset) (*Figure, error) {
	p := newSubplot("Comparación de Distancias L1", "Distancia L1 Normalizada")
	p.addGrid()

	buckets := model.Buckets()
	values := make(map[model.System]plotter.Values, len(model.Systems()))
	top := 0.0
	for _, s := range model.Systems() {
		v := make(plotter.Values, len(buckets))
		for i, b := range buckets {
			v[i] = ds.L1Distances[b][s]
			top = max(top, v[i])
		}
		values[s] = v
	}

	width := barWidth(narrowFigureWidth, len(buckets), groupedBarFraction)
	if err := groupedBars(p, width, values); err != nil {
		return nil, fmt.Errorf("l1 distance bars: %w", err)
	}

	categoryAxis(p.Plot, bucketNames()...)
	p.Y.Min = 0
	p.Y.Max = top * 1.15

	return newFigure(
		L1DistancesName,
		"L1 distances",
		narrowFigureWidth, figureHeight,
		p,
	), nil
}
