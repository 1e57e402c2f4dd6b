package generator

import (
	"fmt"

	"github.com/nao1215/optcompare/internal/chart"
	"github.com/nao1215/optcompare/internal/model"
	"github.com/nao1215/optcompare/internal/report"
)

// Generator renders figures and the summary report of a Dataset.
type Generator struct {
	dataset *model.Dataset
}

// New creates a Generator for the dataset.
// The Generator takes ownership of ds; callers must not modify it afterwards.
func New(ds *model.Dataset) *Generator {
	return &Generator{dataset: ds}
}

// Dataset returns the dataset being rendered.
func (g *Generator) Dataset() *model.Dataset {
	return g.dataset
}

// RenderWinningQueriesComparison builds the two panel winning queries figure.
func (g *Generator) RenderWinningQueriesComparison() (*chart.Figure, error) {
	fig, err := chart.WinningQueries(g.dataset)
	if err != nil {
		return nil, fmt.Errorf("failed to render winning queries: %w", err)
	}
	return fig, nil
}

// RenderPerformanceMetrics builds the cardinality and execution time figure.
func (g *Generator) RenderPerformanceMetrics() (*chart.Figure, error) {
	fig, err := chart.PerformanceMetrics(g.dataset)
	if err != nil {
		return nil, fmt.Errorf("failed to render performance metrics: %w", err)
	}
	return fig, nil
}

// RenderL1Distances builds the L1 distance figure.
func (g *Generator) RenderL1Distances() (*chart.Figure, error) {
	fig, err := chart.L1Distances(g.dataset)
	if err != nil {
		return nil, fmt.Errorf("failed to render L1 distances: %w", err)
	}
	return fig, nil
}

// RenderAll builds every figure in display order.
func (g *Generator) RenderAll() ([]*chart.Figure, error) {
	renderers := []func() (*chart.Figure, error){
		g.RenderWinningQueriesComparison,
		g.RenderPerformanceMetrics,
		g.RenderL1Distances,
	}

	figures := make([]*chart.Figure, 0, len(renderers))
	for _, render := range renderers {
		fig, err := render()
		if err != nil {
			return nil, err
		}
		figures = append(figures, fig)
	}
	return figures, nil
}

// GenerateSummaryReport returns the fixed-layout text report.
func (g *Generator) GenerateSummaryReport() string {
	return report.GenerateSummary(g.dataset)
}
