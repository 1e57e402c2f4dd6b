// Package viewer builds the interactive HTML page that stands in for an
// on-screen figure window.
//
// The page holds one go-echarts chart per static figure and the text
// summary report, so a single index.html shows everything the command
// line run produced. Open hands the page to the platform's default
// browser.
package viewer
