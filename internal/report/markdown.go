package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"github.com/nao1215/optcompare/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MarkdownWriter outputs the report in GitHub Flavored Markdown.
// The data section becomes tables, total wins also become a mermaid pie
// chart, and the narrative becomes ordered lists.
type MarkdownWriter struct {
	baseWriter

	// title converts upper case section headings to title case.
	title cases.Caser
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
		title:      cases.Title(language.Spanish),
	}
}

// Heading converts an upper case section heading to title case,
// e.g. "MÉTRICAS DE RENDIMIENTO" to "Métricas De Rendimiento".
func (w *MarkdownWriter) Heading(section string) string {
	return w.title.String(strings.ToLower(section))
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(ds *model.Dataset) (int, error) {
	summary := NewSummary(ds)
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, summary)
	w.writeWinningQueries(md, summary)
	w.writePerformance(md, summary)
	w.writeDistances(md, summary)
	w.writeNarrative(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report title and benchmark line.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, s *Summary) {
	md.H1(s.Title)
	md.PlainText("")
	md.PlainText("**" + s.Subtitle() + "**")
	md.PlainText("")
}

// writeWinningQueries writes total wins and the per-bucket breakdown.
func (w *MarkdownWriter) writeWinningQueries(md *markdown.Markdown, s *Summary) {
	md.H2(w.Heading(SectionWinningQueries))
	md.PlainText("")
	md.PlainTextf("Total Queries Analizadas: %d", s.TotalQueries)
	md.PlainText("")

	rows := make([][]string, len(s.Wins))
	for i, win := range s.Wins {
		rows[i] = []string{
			win.System.String(),
			strconv.Itoa(win.Wins),
			fmt.Sprintf("%.1f%%", win.Percentage),
		}
	}
	md.Table(markdown.TableSet{
		Header:    []string{"Sistema", "Queries Ganadas", "Porcentaje"},
		Rows:      rows,
		Alignment: []markdown.TableAlignment{markdown.AlignLeft, markdown.AlignRight, markdown.AlignRight},
	})
	md.PlainText("")

	w.writePieChart(md, s)

	md.H3("Distribución por Número de Joins")
	md.PlainText("")
	header := []string{"Joins"}
	for _, win := range s.Wins {
		header = append(header, win.System.String())
	}
	header = append(header, "Total")

	bucketRows := make([][]string, len(s.Buckets))
	for i, b := range s.Buckets {
		row := []string{b.Label}
		for _, sys := range b.Systems {
			row = append(row, strconv.Itoa(sys.Wins))
		}
		bucketRows[i] = append(row, strconv.Itoa(b.Total))
	}
	md.Table(markdown.TableSet{Header: header, Rows: bucketRows})
	md.PlainText("")
}

// writePieChart writes a mermaid pie chart of total wins.
// Queries no system won are shown as their own slice.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, s *Summary) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Queries Ganadas"),
		piechart.WithShowData(true),
	)

	won := 0
	for _, win := range s.Wins {
		chart.LabelAndIntValue(win.System.String(), uint64(win.Wins)) //nolint:gosec // win counts are non-negative
		won += win.Wins
	}
	if rest := s.TotalQueries - won; rest > 0 {
		chart.LabelAndIntValue("Sin ganador", uint64(rest)) //nolint:gosec // guarded above
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writePerformance writes cardinality and execution time per bucket.
func (w *MarkdownWriter) writePerformance(md *markdown.Markdown, s *Summary) {
	md.H2(w.Heading(SectionPerformance))
	md.PlainText("")

	md.H3("Cardinalidad Promedio")
	md.PlainText("")
	md.Table(w.metricTable(s, func(sb SystemBucket) string {
		return strconv.FormatFloat(sb.Cardinality, 'f', 0, 64)
	}))
	md.PlainText("")

	md.H3("Tiempo de Ejecución (ms)")
	md.PlainText("")
	md.Table(w.metricTable(s, func(sb SystemBucket) string {
		return strconv.FormatFloat(sb.ExecutionTimeMS, 'f', 0, 64)
	}))
	md.PlainText("")
}

// writeDistances writes the L1 distances per bucket.
func (w *MarkdownWriter) writeDistances(md *markdown.Markdown, s *Summary) {
	md.H2(w.Heading(SectionDistances))
	md.PlainText("")
	md.Table(w.metricTable(s, func(sb SystemBucket) string {
		return strconv.FormatFloat(sb.L1Distance, 'f', 2, 64)
	}))
	md.PlainText("")
}

// metricTable builds a bucket by system table of one formatted metric.
func (w *MarkdownWriter) metricTable(s *Summary, value func(SystemBucket) string) markdown.TableSet {
	header := []string{"Joins"}
	for _, win := range s.Wins {
		header = append(header, win.System.String())
	}

	rows := make([][]string, len(s.Buckets))
	for i, b := range s.Buckets {
		row := []string{b.Label}
		for _, sys := range b.Systems {
			row = append(row, value(sys))
		}
		rows[i] = row
	}

	return markdown.TableSet{Header: header, Rows: rows}
}

// writeNarrative writes the author's conclusions and recommendations.
func (w *MarkdownWriter) writeNarrative(md *markdown.Markdown) {
	md.H2(w.Heading(SectionConclusions))
	md.PlainText("")
	md.OrderedList(conclusions...)
	md.PlainText("")

	md.H2(w.Heading(SectionRecommendations))
	md.PlainText("")
	md.OrderedList(recommendations...)
	md.PlainText("")

	md.Note("Las conclusiones y recomendaciones se reproducen tal como fueron redactadas por el autor del informe.")
}
