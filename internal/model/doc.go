// Package model defines the data structures shared by the optcompare packages.
//
// This package contains the following main types:
//   - Dataset: the embedded COMPASS vs PostgreSQL benchmark figures for the
//     113 queries of the Join Order Benchmark
//   - BucketWins and Metrics: per join-count bucket records inside a Dataset
//   - Export: the record of one export run (artifacts written, steps performed)
//
// Models live in their own package so that chart, report, viewer and
// pipeline can share them without import cycles.
package model
