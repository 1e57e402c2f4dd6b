package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nao1215/optcompare/internal/generator"
	"github.com/nao1215/optcompare/internal/model"
	"github.com/nao1215/optcompare/internal/report"
	"github.com/nao1215/optcompare/internal/viewer"
)

// TestSummaryStep tests writing summary reports.
func TestSummaryStep(t *testing.T) {
	t.Parallel()

	t.Run("writes text summary by default", func(t *testing.T) {
		t.Parallel()

		exp := model.NewExport(t.TempDir())
		step := NewSummaryStep(model.NewDataset(), WithSummaryLogger(discardLogger()))

		if err := step.Do(context.Background(), exp); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(filepath.Join(exp.OutputDir, "summary.txt"))
		if err != nil {
			t.Fatalf("expected summary.txt: %v", err)
		}
		if string(data) != report.GenerateSummary(model.NewDataset()) {
			t.Error("expected summary.txt to equal the text report")
		}
	})

	t.Run("writes every configured format", func(t *testing.T) {
		t.Parallel()

		exp := model.NewExport(t.TempDir())
		step := NewSummaryStep(model.NewDataset(),
			WithSummaryFormats(report.FormatText, report.FormatMarkdown, report.FormatJSON),
			WithSummaryVersion("1.2.3"),
			WithSummaryLogger(discardLogger()),
		)

		if err := step.Do(context.Background(), exp); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		reports := exp.ArtifactsOfKind(model.ArtifactReport)
		if len(reports) != 3 {
			t.Fatalf("expected 3 reports, got %d", len(reports))
		}
		for i, want := range []string{"summary.txt", "summary.md", "summary.json"} {
			if reports[i].Path != want {
				t.Errorf("report %d: expected %q, got %q", i, want, reports[i].Path)
			}
		}

		data, err := os.ReadFile(filepath.Join(exp.OutputDir, "summary.json"))
		if err != nil {
			t.Fatalf("expected summary.json: %v", err)
		}
		var parsed report.JSONReport
		if err := json.Unmarshal(data, &parsed); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if parsed.Version != "1.2.3" {
			t.Errorf("expected version 1.2.3, got %q", parsed.Version)
		}
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		t.Parallel()

		exp := model.NewExport(t.TempDir())
		step := NewSummaryStep(model.NewDataset(), WithSummaryFormats("html"))

		if err := step.Do(context.Background(), exp); err == nil {
			t.Error("expected error for unknown format")
		}
	})

	t.Run("returns step name", func(t *testing.T) {
		t.Parallel()

		if NewSummaryStep(model.NewDataset()).Name() != "summary" {
			t.Error("expected name 'summary'")
		}
	})
}

// TestFigureStep tests writing figure files.
func TestFigureStep(t *testing.T) {
	t.Parallel()

	t.Run("writes png figures by default", func(t *testing.T) {
		t.Parallel()

		exp := model.NewExport(t.TempDir())
		step := NewFigureStep(generator.New(model.NewDataset()),
			WithRenderer(NewFigureRenderer(WithRendererLogger(discardLogger()))),
		)

		if err := step.Do(context.Background(), exp); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		figures := exp.ArtifactsOfKind(model.ArtifactFigure)
		if len(figures) != 3 {
			t.Fatalf("expected 3 figures, got %d", len(figures))
		}
		data, err := os.ReadFile(filepath.Join(exp.OutputDir, "winning_queries.png"))
		if err != nil {
			t.Fatalf("expected winning_queries.png: %v", err)
		}
		if !bytes.HasPrefix(data, []byte("\x89PNG")) {
			t.Error("expected PNG signature")
		}
	})

	t.Run("applies format and scale", func(t *testing.T) {
		t.Parallel()

		exp := model.NewExport(t.TempDir())
		step := NewFigureStep(generator.New(model.NewDataset()),
			WithFormat("SVG"),
			WithScale(0.5),
			WithRenderer(NewFigureRenderer(WithRendererLogger(discardLogger()))),
		)

		if err := step.Do(context.Background(), exp); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(filepath.Join(exp.OutputDir, "l1_distances.svg"))
		if err != nil {
			t.Fatalf("expected l1_distances.svg: %v", err)
		}
		// 10in x 6in at half scale is 360pt x 216pt.
		if !strings.Contains(string(data), `width="360pt"`) {
			t.Error("expected scaled svg width")
		}
	})

	t.Run("returns step name", func(t *testing.T) {
		t.Parallel()

		if NewFigureStep(generator.New(model.NewDataset())).Name() != "figures" {
			t.Error("expected name 'figures'")
		}
	})
}

// TestViewerStep tests writing the viewer page.
func TestViewerStep(t *testing.T) {
	t.Parallel()

	t.Run("writes index.html with summary", func(t *testing.T) {
		t.Parallel()

		exp := model.NewExport(t.TempDir())
		step := NewViewerStep(model.NewDataset(), WithViewerLogger(discardLogger()))

		if err := step.Do(context.Background(), exp); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		file, err := os.Open(filepath.Join(exp.OutputDir, ViewerFile))
		if err != nil {
			t.Fatalf("expected %s: %v", ViewerFile, err)
		}
		defer file.Close()

		text, ok, err := viewer.Summary(file)
		if err != nil || !ok {
			t.Fatalf("expected embedded summary, ok=%v err=%v", ok, err)
		}
		if text != report.GenerateSummary(model.NewDataset()) {
			t.Error("expected embedded summary to equal the text report")
		}
	})

	t.Run("passes page to opener", func(t *testing.T) {
		t.Parallel()

		exp := model.NewExport(t.TempDir())
		var opened string
		step := NewViewerStep(model.NewDataset(),
			WithViewerLogger(discardLogger()),
			WithOpener(func(_ context.Context, path string) error {
				opened = path
				return nil
			}),
		)

		if err := step.Do(context.Background(), exp); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if opened != filepath.Join(exp.OutputDir, ViewerFile) {
			t.Errorf("expected opener to get the page path, got %q", opened)
		}
	})

	t.Run("opener failure is not fatal", func(t *testing.T) {
		t.Parallel()

		exp := model.NewExport(t.TempDir())
		step := NewViewerStep(model.NewDataset(),
			WithViewerLogger(discardLogger()),
			WithOpener(func(context.Context, string) error {
				return viewer.ErrUnsupportedPlatform
			}),
		)

		if err := step.Do(context.Background(), exp); err != nil {
			t.Errorf("expected nil error, got %v", err)
		}
		if _, ok := exp.FindArtifact(ViewerFile); !ok {
			t.Error("expected viewer artifact")
		}
	})
}

// TestManifestStep tests the artifact manifest.
func TestManifestStep(t *testing.T) {
	t.Parallel()

	t.Run("digests artifacts and sorts by name", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		exp := model.NewExport(dir)
		for _, name := range []string{"b.txt", "a.txt"} {
			if err := os.WriteFile(filepath.Join(dir, name), []byte(name), 0o600); err != nil {
				t.Fatal(err)
			}
			exp.AddArtifact(model.Artifact{Name: name, Path: name, Kind: model.ArtifactReport, Format: "text"})
		}

		if err := NewManifestStep().Do(context.Background(), exp); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		m, err := ReadManifest(filepath.Join(dir, ManifestFile))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Algorithm != "sha3-256" {
			t.Errorf("unexpected algorithm %q", m.Algorithm)
		}
		if len(m.Artifacts) != 2 || m.Artifacts[0].Name != "a.txt" || m.Artifacts[1].Name != "b.txt" {
			t.Fatalf("expected artifacts sorted by name, got %+v", m.Artifacts)
		}

		want, err := Digest(filepath.Join(dir, "a.txt"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Artifacts[0].Digest != want || len(want) != 64 {
			t.Errorf("expected digest %q, got %q", want, m.Artifacts[0].Digest)
		}

		if _, ok := exp.FindArtifact(ManifestFile); !ok {
			t.Error("expected manifest to be recorded")
		}
	})

	t.Run("fails on missing artifact", func(t *testing.T) {
		t.Parallel()

		exp := model.NewExport(t.TempDir())
		exp.AddArtifact(model.Artifact{Name: "gone.txt", Path: "gone.txt"})

		err := NewManifestStep().Do(context.Background(), exp)
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected os.ErrNotExist, got %v", err)
		}
	})
}

// TestDigest tests the SHA3-256 helper against a known value.
func TestDigest(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := Digest(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	const emptySHA3 = "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"
	if got != emptySHA3 {
		t.Errorf("expected %s, got %s", emptySHA3, got)
	}
}

// TestExportPipeline tests the standard export pipeline end to end.
func TestExportPipeline(t *testing.T) {
	t.Parallel()

	t.Run("default steps", func(t *testing.T) {
		t.Parallel()

		p := ExportPipeline(model.NewDataset(), []Option{WithLogger(discardLogger())})
		want := []string{"summary", "figures", "viewer", "manifest"}
		if got := p.StepNames(); strings.Join(got, ",") != strings.Join(want, ",") {
			t.Errorf("expected steps %v, got %v", want, got)
		}
	})

	t.Run("figures only", func(t *testing.T) {
		t.Parallel()

		p := ExportPipeline(model.NewDataset(), []Option{WithLogger(discardLogger())},
			WithReportFormats(),
			WithViewer(false),
		)
		want := []string{"figures", "manifest"}
		if got := p.StepNames(); strings.Join(got, ",") != strings.Join(want, ",") {
			t.Errorf("expected steps %v, got %v", want, got)
		}
	})

	t.Run("writes every artifact", func(t *testing.T) {
		t.Parallel()

		exp := model.NewExport(t.TempDir())
		p := ExportPipeline(model.NewDataset(), []Option{WithLogger(discardLogger())},
			WithFigureFormat("svg"),
			WithFigureConcurrency(3),
			WithReportFormats(report.FormatText, report.FormatMarkdown),
			WithVersion("test"),
		)

		if err := p.Execute(context.Background(), exp); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for _, name := range []string{
			"summary.txt", "summary.md",
			"winning_queries.svg", "performance_metrics.svg", "l1_distances.svg",
			ViewerFile, ManifestFile,
		} {
			if _, err := os.Stat(filepath.Join(exp.OutputDir, name)); err != nil {
				t.Errorf("expected %s: %v", name, err)
			}
		}

		m, err := ReadManifest(filepath.Join(exp.OutputDir, ManifestFile))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(m.Artifacts) != 6 {
			t.Errorf("expected 6 manifest entries, got %d", len(m.Artifacts))
		}
		if len(exp.Steps) != 4 {
			t.Errorf("expected 4 steps recorded, got %v", exp.Steps)
		}
	})
}
