package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
var (
	// ErrEmptyOutputDir is returned when no output directory is set.
	ErrEmptyOutputDir = errors.New("output directory must not be empty")

	// ErrInvalidFigureFormat is returned when the figure format has no renderer.
	ErrInvalidFigureFormat = errors.New("invalid figure format: must be one of png, svg, pdf, jpg, tiff, eps")

	// ErrInvalidReportFormat is returned when a report format is unknown.
	ErrInvalidReportFormat = errors.New("invalid report format: must be one of text, markdown, json")

	// ErrInvalidConcurrency is returned when the figure concurrency is not positive.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrInvalidFigureScale is returned when the figure scale is not positive.
	// A zero scale would produce empty canvases.
	ErrInvalidFigureScale = errors.New("invalid figure scale: must be positive")
)
