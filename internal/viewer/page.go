package viewer

import (
	"fmt"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/nao1215/optcompare/internal/chart"
	"github.com/nao1215/optcompare/internal/model"
	"github.com/nao1215/optcompare/internal/report"
)

// Chart IDs are fixed so the rendered page is reproducible.
const (
	TotalWinsChartID   = "total_wins"
	BucketWinsChartID  = "bucket_wins"
	CardinalityChartID = "cardinality"
	ExecutionChartID   = "execution_time"
	L1DistanceChartID  = "l1_distances"
)

const (
	chartWidth  = "720px"
	chartHeight = "480px"
)

// Series styling matches the static figures.
var (
	barColors = map[model.System]string{
		model.SystemCOMPASS:    "#ADD8E6",
		model.SystemPostgreSQL: "#F08080",
	}
	lineColors = map[model.System]string{
		model.SystemCOMPASS:    "#0000FF",
		model.SystemPostgreSQL: "#FF0000",
	}
	lineSymbols = map[model.System]string{
		model.SystemCOMPASS:    "circle",
		model.SystemPostgreSQL: "rect",
	}
)

// Build assembles the viewer page for the dataset.
// The summary supplies the page title and benchmark subtitle.
func Build(ds *model.Dataset, summary *report.Summary) *components.Page {
	page := components.NewPage()
	page.SetPageTitle(summary.Title)
	page.SetLayout(components.PageFlexLayout)
	page.AddCharts(
		totalWinsChart(ds, summary),
		bucketWinsChart(ds),
		metricChart(ds, CardinalityChartID, "Comparación de Cardinalidad", "Cardinalidad (log scale)", "log",
			func(m model.Metrics) float64 { return m.Cardinality }),
		metricChart(ds, ExecutionChartID, "Comparación de Tiempos de Ejecución", "Tiempo de Ejecución (ms)", "value",
			func(m model.Metrics) float64 { return m.ExecutionTimeMS }),
		l1DistanceChart(ds),
	)
	return page
}

func initOpts(id string) charts.GlobalOpts {
	return charts.WithInitializationOpts(opts.Initialization{
		Width:   chartWidth,
		Height:  chartHeight,
		ChartID: id,
	})
}

func commonOpts(id, title, subtitle, yName, yType string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		initOpts(id),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      yName,
			Type:      yType,
			SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
		}),
	}
}

func bucketLabels() []string {
	buckets := model.Buckets()
	labels := make([]string, len(buckets))
	for i, b := range buckets {
		labels[i] = b.Label()
	}
	return labels
}

// totalWinsChart shows each system's wins with its share of the workload.
func totalWinsChart(ds *model.Dataset, summary *report.Summary) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(commonOpts(TotalWinsChartID, "Total de Queries Ganadas",
		summary.Subtitle(), "Número de Queries", "value")...)

	systems := model.Systems()
	names := make([]string, len(systems))
	data := make([]opts.BarData, len(systems))
	for i, s := range systems {
		wins := ds.WinningQueries[s]
		names[i] = s.String()
		data[i] = opts.BarData{
			Name:      s.String(),
			Value:     wins,
			ItemStyle: &opts.ItemStyle{Color: barColors[s]},
			Label: &opts.Label{
				Show:      opts.Bool(true),
				Position:  "top",
				Formatter: winFormatter(wins, ds.TotalQueries),
			},
		}
	}

	bar.SetXAxis(names).AddSeries("Queries Ganadas", data)
	return bar
}

// winFormatter renders the static figure's bar label on one line.
func winFormatter(count, total int) types.FuncStr {
	return types.FuncStr(fmt.Sprintf("%d (%.1f%%)", count, model.Percentage(count, total)))
}

// bucketWinsChart groups each bucket's wins per system.
func bucketWinsChart(ds *model.Dataset) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(commonOpts(BucketWinsChartID, "Winning Queries por Número de Joins",
		totalsSubtitle(ds), "", "value")...)
	bar.SetXAxis(bucketLabels())

	for _, s := range model.Systems() {
		data := make([]opts.BarData, 0, len(model.Buckets()))
		for _, b := range model.Buckets() {
			wins, _ := ds.BucketWinsFor(b, s)
			data = append(data, opts.BarData{Value: wins})
		}
		bar.AddSeries(s.String(), data,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: barColors[s]}),
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
		)
	}
	return bar
}

// totalsSubtitle lists the bucket sizes, e.g. "4-9 Joins Total: 37 | ...".
func totalsSubtitle(ds *model.Dataset) string {
	parts := make([]string, 0, len(model.Buckets()))
	for _, b := range model.Buckets() {
		parts = append(parts, b.Label()+" "+chart.TotalLabel(ds.JoinDistribution[b].Total))
	}
	return strings.Join(parts, " | ")
}

// metricChart draws one performance metric per bucket as lines with markers.
func metricChart(ds *model.Dataset, id, title, yName, yType string, metric func(model.Metrics) float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(commonOpts(id, title, "", yName, yType)...)

	buckets := model.Buckets()
	categories := make([]string, len(buckets))
	for i, b := range buckets {
		categories[i] = b.String()
	}
	line.SetXAxis(categories)

	for _, s := range model.Systems() {
		data := make([]opts.LineData, len(buckets))
		for i, b := range buckets {
			data[i] = opts.LineData{Value: metric(ds.PerformanceMetrics[b][s])}
		}
		line.AddSeries(s.String(), data,
			charts.WithLineChartOpts(opts.LineChart{
				Symbol:     lineSymbols[s],
				SymbolSize: 8,
				ShowSymbol: opts.Bool(true),
			}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: lineColors[s]}),
			charts.WithLineStyleOpts(opts.LineStyle{Color: lineColors[s], Width: 2}),
		)
	}
	return line
}

// l1DistanceChart groups the normalized L1 distances per bucket.
func l1DistanceChart(ds *model.Dataset) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(commonOpts(L1DistanceChartID, "Comparación de Distancias L1",
		"", "Distancia L1 Normalizada", "value")...)
	bar.SetXAxis(bucketLabels())

	for _, s := range model.Systems() {
		data := make([]opts.BarData, 0, len(model.Buckets()))
		for _, b := range model.Buckets() {
			data = append(data, opts.BarData{Value: ds.L1Distances[b][s]})
		}
		bar.AddSeries(s.String(), data,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: barColors[s]}),
		)
	}
	return bar
}
