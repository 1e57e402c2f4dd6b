package report

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/nao1215/optcompare/internal/model"
)

// Section headings of the report, in order.
const (
	SectionWinningQueries  = "WINNING QUERIES"
	SectionPerformance     = "MÉTRICAS DE RENDIMIENTO"
	SectionDistances       = "ANÁLISIS DE DISTANCIAS L1"
	SectionConclusions     = "CONCLUSIONES PRINCIPALES"
	SectionRecommendations = "RECOMENDACIONES"
)

// Sections returns the section headings in report order.
func Sections() []string {
	return []string{
		SectionWinningQueries,
		SectionPerformance,
		SectionDistances,
		SectionConclusions,
		SectionRecommendations,
	}
}

// bannerWidth is the width of the "=" lines framing the report title.
const bannerWidth = 55

// SystemWins is one system's share of the whole workload.
type SystemWins struct {
	System     model.System `json:"system"`
	Wins       int          `json:"wins"`
	Percentage float64      `json:"percentage"`
}

// SystemBucket holds one system's figures inside one join bucket.
type SystemBucket struct {
	System          model.System `json:"system"`
	Wins            int          `json:"wins"`
	Cardinality     float64      `json:"cardinality"`
	ExecutionTimeMS float64      `json:"execution_time_ms"`
	L1Distance      float64      `json:"l1_distance"`
}

// BucketSummary groups the per-system figures of one join bucket.
type BucketSummary struct {
	Bucket  model.Bucket   `json:"bucket"`
	Label   string         `json:"label"`
	Total   int            `json:"total_queries"`
	Systems []SystemBucket `json:"systems"`
}

// Summary is the computed data section of the report.
// Every value is read from the Dataset when the Summary is built;
// slices follow model.Systems and model.Buckets order.
type Summary struct {
	Title        string          `json:"title"`
	Benchmark    string          `json:"benchmark"`
	TotalQueries int             `json:"total_queries"`
	Wins         []SystemWins    `json:"winning_queries"`
	Buckets      []BucketSummary `json:"buckets"`
}

// NewSummary computes the data section from the dataset.
func NewSummary(ds *model.Dataset) *Summary {
	systems := model.Systems()

	s := &Summary{
		Title:        comparisonTitle(systems),
		Benchmark:    ds.Benchmark,
		TotalQueries: ds.TotalQueries,
		Wins:         make([]SystemWins, len(systems)),
		Buckets:      make([]BucketSummary, 0, len(model.Buckets())),
	}

	for i, sys := range systems {
		s.Wins[i] = SystemWins{
			System:     sys,
			Wins:       ds.WinningQueries[sys],
			Percentage: ds.WinShare(sys),
		}
	}

	for _, b := range model.Buckets() {
		bs := BucketSummary{
			Bucket:  b,
			Label:   b.Label(),
			Total:   ds.JoinDistribution[b].Total,
			Systems: make([]SystemBucket, len(systems)),
		}
		for i, sys := range systems {
			m := ds.PerformanceMetrics[b][sys]
			bs.Systems[i] = SystemBucket{
				System:          sys,
				Wins:            ds.JoinDistribution[b].Wins[sys],
				Cardinality:     m.Cardinality,
				ExecutionTimeMS: m.ExecutionTimeMS,
				L1Distance:      ds.L1Distances[b][sys],
			}
		}
		s.Buckets = append(s.Buckets, bs)
	}

	return s
}

// comparisonTitle returns "Análisis Comparativo: A vs B".
func comparisonTitle(systems []model.System) string {
	names := make([]string, len(systems))
	for i, s := range systems {
		names[i] = s.String()
	}
	return "Análisis Comparativo: " + strings.Join(names, " vs ")
}

// Subtitle returns the benchmark line of the banner, e.g. "JOB Benchmark - 113 Queries".
func (s *Summary) Subtitle() string {
	return fmt.Sprintf("%s Benchmark - %d Queries", s.Benchmark, s.TotalQueries)
}

// GenerateSummary renders the fixed-layout plain text report for the dataset.
// The result depends only on the dataset, so repeated calls return
// identical strings.
func GenerateSummary(ds *model.Dataset) string {
	return NewSummary(ds).Text()
}

// Text renders the summary followed by the static narrative.
func (s *Summary) Text() string {
	var sb strings.Builder

	s.writeBanner(&sb)
	s.writeWinningQueries(&sb)
	s.writePerformance(&sb)
	s.writeDistances(&sb)
	writeNumberedSection(&sb, 4, SectionConclusions, conclusions)
	sb.WriteString("\n")
	writeNumberedSection(&sb, 5, SectionRecommendations, recommendations)

	return sb.String()
}

// writeBanner writes the title block framed by "=" lines.
func (s *Summary) writeBanner(sb *strings.Builder) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", bannerWidth))
	sb.WriteString("\n")
	sb.WriteString("    " + s.Title + "\n")
	sb.WriteString("    " + s.Subtitle() + "\n")
	sb.WriteString(strings.Repeat("=", bannerWidth))
	sb.WriteString("\n\n")
}

// writeHeading writes "<n>. <title>" underlined with one dash less than
// the heading length.
func writeHeading(sb *strings.Builder, n int, title string) {
	heading := fmt.Sprintf("%d. %s", n, title)
	sb.WriteString(heading + "\n")
	sb.WriteString(strings.Repeat("-", utf8.RuneCountInString(heading)-1))
	sb.WriteString("\n")
}

func (s *Summary) writeWinningQueries(sb *strings.Builder) {
	writeHeading(sb, 1, SectionWinningQueries)
	sb.WriteString(fmt.Sprintf("Total Queries Analizadas: %d\n", s.TotalQueries))
	for _, w := range s.Wins {
		sb.WriteString(fmt.Sprintf("%s: %d (%.1f%%)\n", w.System, w.Wins, w.Percentage))
	}
	sb.WriteString("\n")

	sb.WriteString("Distribución por Número de Joins:\n")
	for _, b := range s.Buckets {
		sb.WriteString(fmt.Sprintf("* %s:\n", b.Label))
		for _, sys := range b.Systems {
			sb.WriteString(fmt.Sprintf("  - %s: %d de %d\n", sys.System, sys.Wins, b.Total))
		}
		sb.WriteString("\n")
	}
}

func (s *Summary) writePerformance(sb *strings.Builder) {
	writeHeading(sb, 2, SectionPerformance)
	sb.WriteString("Cardinalidad Promedio:\n")
	for _, b := range s.Buckets {
		sb.WriteString(fmt.Sprintf("* %s:\n", b.Label))
		for _, sys := range b.Systems {
			sb.WriteString(fmt.Sprintf("  %s: %.0f\n", sys.System, sys.Cardinality))
		}
		sb.WriteString("\n")
	}
}

func (s *Summary) writeDistances(sb *strings.Builder) {
	writeHeading(sb, 3, SectionDistances)
	sb.WriteString("Promedio de Distancias L1:\n")
	for _, b := range s.Buckets {
		sb.WriteString(fmt.Sprintf("* %s:\n", b.Label))
		for _, sys := range b.Systems {
			sb.WriteString(fmt.Sprintf("  %s: %.2f\n", sys.System, sys.L1Distance))
		}
		sb.WriteString("\n")
	}
}

// writeNumberedSection writes a heading followed by a numbered list.
func writeNumberedSection(sb *strings.Builder, n int, title string, items []string) {
	writeHeading(sb, n, title)
	for i, item := range items {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, item))
	}
}
