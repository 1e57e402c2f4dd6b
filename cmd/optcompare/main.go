// Package main provides the entry point for the optcompare CLI.
//
// optcompare compares the COMPASS join-order optimizer with PostgreSQL on
// the 113 queries of the Join Order Benchmark. It prints a Spanish summary
// report and exports the three comparison figures.
//
// Usage:
//
//	optcompare run
//	optcompare report --format markdown
//	optcompare charts --format svg --dir ./figures
//
// See --help for all available options.
package main

// main is the entry point for optcompare.
func main() {
	Execute()
}
