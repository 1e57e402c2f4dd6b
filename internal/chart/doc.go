// Package chart builds the static comparison figures with gonum.org/v1/plot.
//
// A Figure is a row of one or more plots laid out side by side on a single
// canvas, the way a matplotlib figure with subplots is. Three builders
// produce the figures of the comparison:
//   - WinningQueries: total wins per system and wins per join bucket
//   - PerformanceMetrics: cardinality (log scale) and execution time per bucket
//   - L1Distances: normalized L1 distance per bucket
//
// Builders never write files. A Figure is rendered to any format registered
// with gonum's vg/draw package (png, svg, pdf, jpg, tiff, eps) through
// WriterTo or Save.
package chart
