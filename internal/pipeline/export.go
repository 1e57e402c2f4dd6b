package pipeline

import (
	"context"

	"github.com/nao1215/optcompare/internal/generator"
	"github.com/nao1215/optcompare/internal/model"
	"github.com/nao1215/optcompare/internal/report"
)

// ExportConfig holds configuration for the export pipeline.
type ExportConfig struct {
	// FigureFormat is the image format of the figures.
	FigureFormat string

	// FigureScale multiplies the canvas size of every figure.
	FigureScale float64

	// Concurrency is the maximum number of figures drawn at once.
	Concurrency int

	// ReportFormats lists the summary formats to write.
	// No summary files are written when empty.
	ReportFormats []string

	// Viewer enables the HTML viewer page.
	Viewer bool

	// Opener, when set, is given the path of the viewer page.
	Opener func(ctx context.Context, path string) error

	// Version is recorded in reports that carry metadata.
	Version string
}

// ExportOption configures an ExportConfig.
type ExportOption func(*ExportConfig)

// WithFigureFormat sets the image format of the figures.
func WithFigureFormat(format string) ExportOption {
	return func(c *ExportConfig) {
		c.FigureFormat = format
	}
}

// WithFigureScale sets the canvas size multiplier of the figures.
func WithFigureScale(scale float64) ExportOption {
	return func(c *ExportConfig) {
		c.FigureScale = scale
	}
}

// WithFigureConcurrency sets how many figures are drawn at once.
func WithFigureConcurrency(n int) ExportOption {
	return func(c *ExportConfig) {
		c.Concurrency = n
	}
}

// WithReportFormats sets the summary formats to write.
func WithReportFormats(formats ...string) ExportOption {
	return func(c *ExportConfig) {
		c.ReportFormats = formats
	}
}

// WithViewer enables or disables the HTML viewer page.
func WithViewer(enabled bool) ExportOption {
	return func(c *ExportConfig) {
		c.Viewer = enabled
	}
}

// WithViewerOpener opens the viewer page once written.
func WithViewerOpener(open func(ctx context.Context, path string) error) ExportOption {
	return func(c *ExportConfig) {
		c.Opener = open
	}
}

// WithVersion sets the version recorded in reports.
func WithVersion(version string) ExportOption {
	return func(c *ExportConfig) {
		c.Version = version
	}
}

// ExportPipeline creates a pipeline with the standard export steps:
// summary reports, figures, the viewer page and the manifest.
//
// The first parameter holds pipeline options (WithLogger, etc).
// The variadic parameters are export options (WithFigureFormat, etc).
func ExportPipeline(ds *model.Dataset, pipelineOpts []Option, configOpts ...ExportOption) *Pipeline {
	p := New(pipelineOpts...)

	cfg := &ExportConfig{
		FigureFormat:  "png",
		FigureScale:   1,
		Concurrency:   1,
		ReportFormats: []string{report.FormatText},
		Viewer:        true,
	}
	for _, opt := range configOpts {
		opt(cfg)
	}

	if len(cfg.ReportFormats) > 0 {
		p.AddStep(NewSummaryStep(ds,
			WithSummaryFormats(cfg.ReportFormats...),
			WithSummaryVersion(cfg.Version),
			WithSummaryLogger(p.logger),
		))
	}

	p.AddStep(NewFigureStep(generator.New(ds),
		WithFormat(cfg.FigureFormat),
		WithScale(cfg.FigureScale),
		WithRenderer(NewFigureRenderer(
			WithConcurrency(cfg.Concurrency),
			WithRendererLogger(p.logger),
		)),
	))

	if cfg.Viewer {
		viewerOpts := []ViewerStepOption{WithViewerLogger(p.logger)}
		if cfg.Opener != nil {
			viewerOpts = append(viewerOpts, WithOpener(cfg.Opener))
		}
		p.AddStep(NewViewerStep(ds, viewerOpts...))
	}

	p.AddStep(NewManifestStep())

	return p
}
