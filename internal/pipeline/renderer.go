package pipeline

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/nao1215/optcompare/internal/chart"
	"github.com/nao1215/optcompare/internal/model"
	"golang.org/x/sync/errgroup"
)

// FigureRenderer writes figures to files concurrently.
// It uses errgroup to manage goroutines and respect the concurrency limit.
type FigureRenderer struct {
	// concurrency is the maximum number of figures drawn at once.
	concurrency int

	// logger is used for per-figure logging.
	logger *slog.Logger
}

// RendererOption configures a FigureRenderer.
type RendererOption func(*FigureRenderer)

// WithRendererLogger sets a custom logger for figure rendering.
func WithRendererLogger(logger *slog.Logger) RendererOption {
	return func(r *FigureRenderer) {
		r.logger = logger
	}
}

// WithConcurrency sets the maximum number of figures drawn at once.
// Default is 1, which renders sequentially.
func WithConcurrency(n int) RendererOption {
	return func(r *FigureRenderer) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// NewFigureRenderer creates a new FigureRenderer.
func NewFigureRenderer(opts ...RendererOption) *FigureRenderer {
	r := &FigureRenderer{
		concurrency: 1,
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.logger == nil {
		r.logger = slog.Default()
	}

	return r
}

// Concurrency returns the configured concurrency limit.
func (r *FigureRenderer) Concurrency() int {
	return r.concurrency
}

// Render writes each figure to "<name>.<format>" in the export directory.
// The returned artifacts are in figure order regardless of completion
// order. The first failure cancels figures that have not started yet.
func (r *FigureRenderer) Render(ctx context.Context, exp *model.Export, figures []*chart.Figure, format string) ([]model.Artifact, error) {
	if len(figures) == 0 {
		return nil, ErrNoFigures
	}

	r.logger.Info("rendering figures",
		"figures", len(figures),
		"format", format,
		"concurrency", r.concurrency,
	)
	startTime := time.Now()

	// Each goroutine writes only its own index.
	artifacts := make([]model.Artifact, len(figures))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i, fig := range figures {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			wt, err := fig.WriterTo(format)
			if err != nil {
				return err
			}

			a, err := newArtifact(exp, fig.Name+"."+format, model.ArtifactFigure, format,
				func(w io.Writer) error {
					_, err := wt.WriteTo(w)
					return err
				})
			if err != nil {
				return err
			}
			artifacts[i] = a

			r.logger.Debug("figure written",
				"figure", fig.Name,
				"bytes", a.Size,
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	r.logger.Info("figures rendered",
		"figures", len(figures),
		"elapsed", time.Since(startTime),
	)
	return artifacts, nil
}
