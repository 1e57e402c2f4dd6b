package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/nao1215/optcompare/internal/model"
)

// errWrite is returned by failingWriter.
var errWrite = errors.New("write failed")

// failingWriter is an io.Writer that always fails.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

// TestSimpleWriter tests the plain text report writer.
func TestSimpleWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes the summary unchanged", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)
		ds := model.NewDataset()

		n, err := w.Write(ds)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if buf.String() != GenerateSummary(ds) {
			t.Error("expected output to equal GenerateSummary")
		}
		if n != buf.Len() {
			t.Errorf("expected %d bytes reported, got %d", buf.Len(), n)
		}
	})

	t.Run("returns output error", func(t *testing.T) {
		t.Parallel()

		w := NewSimpleWriter(failingWriter{})
		if _, err := w.Write(model.NewDataset()); !errors.Is(err, errWrite) {
			t.Errorf("expected errWrite, got %v", err)
		}
	})
}

// TestJSONWriter tests the JSON report writer.
func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("outputs valid JSON", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf)

		if _, err := w.Write(model.NewDataset()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var parsed JSONReport
		if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}

		if parsed.Summary == nil {
			t.Fatal("expected summary in output")
		}
		if parsed.Summary.TotalQueries != 113 {
			t.Errorf("expected 113 queries, got %d", parsed.Summary.TotalQueries)
		}
		if len(parsed.Conclusions) != 5 || len(parsed.Recommendations) != 4 {
			t.Errorf("expected full narrative, got %d conclusions and %d recommendations",
				len(parsed.Conclusions), len(parsed.Recommendations))
		}
	})

	t.Run("compact output by default", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf)

		if _, err := w.Write(model.NewDataset()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		if len(lines) > 1 {
			t.Errorf("expected compact output (1 line), got %d lines", len(lines))
		}
	})

	t.Run("pretty print with indent", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf, WithPrettyPrint())

		if _, err := w.Write(model.NewDataset()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		if len(lines) < 5 {
			t.Errorf("expected multi-line output, got %d lines", len(lines))
		}
		if !strings.Contains(buf.String(), "\n  \"summary\"") {
			t.Error("expected two-space indentation")
		}
	})

	t.Run("custom indent", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf, WithIndent("", "\t"))

		if _, err := w.Write(model.NewDataset()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(buf.String(), "\n\t\"summary\"") {
			t.Error("expected tab indentation")
		}
	})

	t.Run("includes version", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf, WithVersion("2.0.0"))

		if _, err := w.Write(model.NewDataset()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var parsed JSONReport
		if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if parsed.Version != "2.0.0" {
			t.Errorf("expected version %q, got %q", "2.0.0", parsed.Version)
		}
	})

	t.Run("omits empty version", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf)

		if _, err := w.Write(model.NewDataset()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(buf.String(), "\"version\"") {
			t.Error("expected no version field")
		}
	})
}

// TestMarkdownWriter tests the Markdown report writer.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	write := func(t *testing.T) string {
		t.Helper()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)
		if _, err := w.Write(model.NewDataset()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return buf.String()
	}

	t.Run("writes title and benchmark", func(t *testing.T) {
		t.Parallel()

		output := write(t)
		if !strings.HasPrefix(output, "# Análisis Comparativo: COMPASS vs PostgreSQL") {
			t.Errorf("expected H1 title, got %q", output[:min(len(output), 80)])
		}
		if !strings.Contains(output, "**JOB Benchmark - 113 Queries**") {
			t.Error("expected bold benchmark line")
		}
	})

	t.Run("writes title case section headings", func(t *testing.T) {
		t.Parallel()

		output := write(t)
		for _, want := range []string{
			"## Winning Queries",
			"## Métricas De Rendimiento",
			"## Análisis De Distancias L1",
			"## Conclusiones Principales",
			"## Recomendaciones",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("expected heading %q", want)
			}
		}
	})

	t.Run("writes tables", func(t *testing.T) {
		t.Parallel()

		output := write(t)
		for _, want := range []string{
			"| Sistema | Queries Ganadas | Porcentaje |",
			"| COMPASS | 63 | 55.8% |",
			"| 10-19 Joins | 33 | 19 | 52 |",
			"| 20-28 Joins | 8000 | 35000 |",
			"| 20-28 Joins | 780 | 1200 |",
			"| 4-9 Joins | 2.50 | 4.80 |",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("expected table row %q", want)
			}
		}
	})

	t.Run("writes mermaid pie chart", func(t *testing.T) {
		t.Parallel()

		output := write(t)
		if !strings.Contains(output, "```mermaid") {
			t.Error("expected mermaid code block")
		}
		for _, want := range []string{`"COMPASS" : 63`, `"PostgreSQL" : 39`, `"Sin ganador" : 11`} {
			if !strings.Contains(output, want) {
				t.Errorf("expected pie slice %q", want)
			}
		}
	})

	t.Run("writes narrative as ordered lists", func(t *testing.T) {
		t.Parallel()

		output := write(t)
		if !strings.Contains(output, "1. COMPASS supera a PostgreSQL en el 55.75% de las queries") {
			t.Error("expected first conclusion")
		}
		if !strings.Contains(output, "4. La estrategia de sketch-merging de COMPASS es particularmente efectiva") {
			t.Error("expected last recommendation")
		}
		if !strings.Contains(output, "[!NOTE]") {
			t.Error("expected note about the narrative")
		}
	})

	t.Run("returns output error", func(t *testing.T) {
		t.Parallel()

		w := NewMarkdownWriter(failingWriter{})
		if _, err := w.Write(model.NewDataset()); !errors.Is(err, errWrite) {
			t.Errorf("expected errWrite, got %v", err)
		}
	})
}

// TestMultiWriter tests writing to multiple outputs.
func TestMultiWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes to all writers", func(t *testing.T) {
		t.Parallel()

		var buf1, buf2 bytes.Buffer
		multi := NewMultiWriter(NewSimpleWriter(&buf1), NewJSONWriter(&buf2))

		n, err := multi.Write(model.NewDataset())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if buf1.Len() == 0 || buf2.Len() == 0 {
			t.Fatal("expected both writers to have content")
		}
		if n != buf1.Len()+buf2.Len() {
			t.Errorf("expected %d total bytes, got %d", buf1.Len()+buf2.Len(), n)
		}
		if strings.HasPrefix(buf1.String(), "{") {
			t.Error("expected buf1 (simple) to not be JSON")
		}
		if !strings.HasPrefix(buf2.String(), "{") {
			t.Error("expected buf2 (JSON) to be JSON")
		}
	})

	t.Run("stops on first error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		multi := NewMultiWriter(NewSimpleWriter(failingWriter{}), NewSimpleWriter(&buf))

		if _, err := multi.Write(model.NewDataset()); !errors.Is(err, errWrite) {
			t.Fatalf("expected errWrite, got %v", err)
		}
		if buf.Len() != 0 {
			t.Error("expected second writer to be skipped")
		}
	})
}

// TestNewWriter tests format selection.
func TestNewWriter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		want   string
	}{
		{"", "*report.SimpleWriter"},
		{"text", "*report.SimpleWriter"},
		{"TXT", "*report.SimpleWriter"},
		{"markdown", "*report.MarkdownWriter"},
		{"md", "*report.MarkdownWriter"},
		{"json", "*report.JSONWriter"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			w, err := NewWriter(tt.format, &buf, "1.0.0")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := typeName(w); got != tt.want {
				t.Errorf("NewWriter(%q) = %s, want %s", tt.format, got, tt.want)
			}
		})
	}

	t.Run("rejects unknown format", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewWriter("html", &buf, ""); err == nil {
			t.Error("expected error for unknown format")
		}
	})
}

// TestExtension tests report file extensions.
func TestExtension(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		FormatText:     "txt",
		FormatMarkdown: "md",
		FormatJSON:     "json",
	}
	for format, want := range tests {
		if got := Extension(format); got != want {
			t.Errorf("Extension(%q) = %q, want %q", format, got, want)
		}
	}
}

func typeName(w Writer) string {
	switch w.(type) {
	case *SimpleWriter:
		return "*report.SimpleWriter"
	case *MarkdownWriter:
		return "*report.MarkdownWriter"
	case *JSONWriter:
		return "*report.JSONWriter"
	default:
		return "unknown"
	}
}
