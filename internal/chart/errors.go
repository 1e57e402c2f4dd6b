package chart

import "errors"

var (
	// ErrUnsupportedFormat is returned when a figure is rendered to a format
	// no vg backend is registered for.
	ErrUnsupportedFormat = errors.New("unsupported figure format")

	// ErrNoSubplots is returned when a figure without plots is rendered.
	ErrNoSubplots = errors.New("figure has no subplots")
)
