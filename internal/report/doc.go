// Package report renders the COMPASS vs PostgreSQL summary report.
//
// The report has two parts kept apart on purpose:
//   - a computed data section (Summary), derived from a model.Dataset each
//     time it is built: win counts, percentages, per-bucket figures
//   - a static narrative (Conclusions, Recommendations) written by the
//     report's author and reproduced verbatim
//
// GenerateSummary renders the fixed-layout plain text report. Writers
// implement the Writer interface for the supported output formats:
//   - SimpleWriter: the plain text report for terminal display
//   - MarkdownWriter: GitHub Flavored Markdown with tables and a mermaid pie chart
//   - JSONWriter: structured JSON for tool integration
package report
