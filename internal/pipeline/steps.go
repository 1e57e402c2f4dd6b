package pipeline

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/nao1215/optcompare/internal/chart"
	"github.com/nao1215/optcompare/internal/generator"
	"github.com/nao1215/optcompare/internal/model"
	"github.com/nao1215/optcompare/internal/report"
	"github.com/nao1215/optcompare/internal/viewer"
	"golang.org/x/crypto/sha3"
)

// Artifact file names.
const (
	// SummaryStem is the file stem of the summary reports.
	SummaryStem = "summary"

	// ViewerFile is the name of the HTML viewer page.
	ViewerFile = "index.html"

	// ManifestFile is the name of the artifact manifest.
	ManifestFile = "manifest.json"
)

// SummaryStep writes the summary report in each configured format.
type SummaryStep struct {
	dataset *model.Dataset
	formats []string
	version string
	logger  *slog.Logger
}

// SummaryStepOption configures a SummaryStep.
type SummaryStepOption func(*SummaryStep)

// WithSummaryFormats sets the report formats to write.
func WithSummaryFormats(formats ...string) SummaryStepOption {
	return func(s *SummaryStep) {
		s.formats = formats
	}
}

// WithSummaryVersion sets the version recorded by formats that carry metadata.
func WithSummaryVersion(version string) SummaryStepOption {
	return func(s *SummaryStep) {
		s.version = version
	}
}

// WithSummaryLogger sets a custom logger for the summary step.
func WithSummaryLogger(logger *slog.Logger) SummaryStepOption {
	return func(s *SummaryStep) {
		s.logger = logger
	}
}

// NewSummaryStep creates a step writing summary.txt by default.
func NewSummaryStep(ds *model.Dataset, opts ...SummaryStepOption) *SummaryStep {
	s := &SummaryStep{
		dataset: ds,
		formats: []string{report.FormatText},
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the step name.
func (s *SummaryStep) Name() string {
	return "summary"
}

// Do writes summary.<ext> for every format.
func (s *SummaryStep) Do(ctx context.Context, exp *model.Export) error {
	for _, format := range s.formats {
		if err := ctx.Err(); err != nil {
			return err
		}

		format = strings.ToLower(format)
		rel := SummaryStem + "." + report.Extension(format)
		a, err := newArtifact(exp, rel, model.ArtifactReport, format, func(w io.Writer) error {
			rw, err := report.NewWriter(format, w, s.version)
			if err != nil {
				return err
			}
			_, err = rw.Write(s.dataset)
			return err
		})
		if err != nil {
			return fmt.Errorf("failed to write %s summary: %w", format, err)
		}

		exp.AddArtifact(a)
		s.logger.Debug("summary written", "path", a.Path, "bytes", a.Size)
	}
	return nil
}

// FigureStep renders the comparison figures to image files.
type FigureStep struct {
	generator *generator.Generator
	renderer  *FigureRenderer
	format    string
	scale     float64
}

// FigureStepOption configures a FigureStep.
type FigureStepOption func(*FigureStep)

// WithFormat sets the image format of the figures, e.g. "svg".
func WithFormat(format string) FigureStepOption {
	return func(s *FigureStep) {
		s.format = strings.ToLower(format)
	}
}

// WithScale multiplies the canvas size of every figure.
func WithScale(scale float64) FigureStepOption {
	return func(s *FigureStep) {
		s.scale = scale
	}
}

// WithRenderer sets the renderer used to write the figures.
func WithRenderer(r *FigureRenderer) FigureStepOption {
	return func(s *FigureStep) {
		s.renderer = r
	}
}

// NewFigureStep creates a step writing PNG figures sequentially by default.
func NewFigureStep(g *generator.Generator, opts ...FigureStepOption) *FigureStep {
	s := &FigureStep{
		generator: g,
		format:    "png",
		scale:     1,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.renderer == nil {
		s.renderer = NewFigureRenderer()
	}

	return s
}

// Name returns the step name.
func (s *FigureStep) Name() string {
	return "figures"
}

// Do builds every figure and writes them in figure order.
func (s *FigureStep) Do(ctx context.Context, exp *model.Export) error {
	figures, err := s.generator.RenderAll()
	if err != nil {
		return err
	}

	scaled := make([]*chart.Figure, len(figures))
	for i, fig := range figures {
		scaled[i] = fig.Scaled(s.scale)
	}

	artifacts, err := s.renderer.Render(ctx, exp, scaled, s.format)
	if err != nil {
		return fmt.Errorf("failed to render figures: %w", err)
	}

	for _, a := range artifacts {
		exp.AddArtifact(a)
	}
	return nil
}

// ViewerStep writes the interactive HTML viewer page.
type ViewerStep struct {
	dataset *model.Dataset
	open    func(ctx context.Context, path string) error
	logger  *slog.Logger
}

// ViewerStepOption configures a ViewerStep.
type ViewerStepOption func(*ViewerStep)

// WithOpener hands the written page to open, e.g. viewer.Open.
func WithOpener(open func(ctx context.Context, path string) error) ViewerStepOption {
	return func(s *ViewerStep) {
		s.open = open
	}
}

// WithViewerLogger sets a custom logger for the viewer step.
func WithViewerLogger(logger *slog.Logger) ViewerStepOption {
	return func(s *ViewerStep) {
		s.logger = logger
	}
}

// NewViewerStep creates a step writing index.html.
func NewViewerStep(ds *model.Dataset, opts ...ViewerStepOption) *ViewerStep {
	s := &ViewerStep{
		dataset: ds,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the step name.
func (s *ViewerStep) Name() string {
	return "viewer"
}

// Do writes the viewer page and opens it when an opener is set.
// A failure to open is logged, not returned: the page is already written.
func (s *ViewerStep) Do(ctx context.Context, exp *model.Export) error {
	summary := report.NewSummary(s.dataset)
	page := viewer.Build(s.dataset, summary)

	a, err := newArtifact(exp, ViewerFile, model.ArtifactViewer, "html", func(w io.Writer) error {
		return viewer.Render(w, page, summary.Text())
	})
	if err != nil {
		return err
	}
	exp.AddArtifact(a)

	if s.open != nil {
		path := filepath.Join(exp.OutputDir, a.Path)
		if err := s.open(ctx, path); err != nil {
			s.logger.Warn("failed to open viewer", "path", path, "error", err)
		}
	}
	return nil
}

// ManifestStep writes manifest.json listing every artifact with its digest.
// It should run last so the listing is complete.
type ManifestStep struct{}

// NewManifestStep creates a manifest step.
func NewManifestStep() *ManifestStep {
	return &ManifestStep{}
}

// Name returns the step name.
func (s *ManifestStep) Name() string {
	return "manifest"
}

// Manifest is the document written to manifest.json.
type Manifest struct {
	// Algorithm names the digest function.
	Algorithm string `json:"algorithm"`

	// Artifacts are sorted by name.
	Artifacts []model.Artifact `json:"artifacts"`
}

// Do digests every artifact recorded so far and writes the manifest.
func (s *ManifestStep) Do(ctx context.Context, exp *model.Export) error {
	for i := range exp.Artifacts {
		if err := ctx.Err(); err != nil {
			return err
		}

		digest, err := Digest(filepath.Join(exp.OutputDir, filepath.FromSlash(exp.Artifacts[i].Path)))
		if err != nil {
			return err
		}
		exp.Artifacts[i].Digest = digest
	}

	listed := slices.Clone(exp.Artifacts)
	slices.SortFunc(listed, func(a, b model.Artifact) int {
		return strings.Compare(a.Name, b.Name)
	})
	manifest := Manifest{Algorithm: "sha3-256", Artifacts: listed}

	a, err := newArtifact(exp, ManifestFile, model.ArtifactManifest, "json", func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(manifest)
	})
	if err != nil {
		return err
	}
	exp.AddArtifact(a)
	return nil
}

// Digest returns the hex encoded SHA3-256 of the file at path.
func Digest(path string) (string, error) {
	file, err := os.Open(path) //nolint:gosec // path comes from recorded artifacts
	if err != nil {
		return "", fmt.Errorf("failed to open artifact: %w", err)
	}
	defer file.Close() //nolint:errcheck // read only

	h := sha3.New256()
	if _, err := io.Copy(h, file); err != nil {
		return "", fmt.Errorf("failed to digest %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// ReadManifest loads a manifest written by ManifestStep.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is chosen by the caller
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return &m, nil
}
