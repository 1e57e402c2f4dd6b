package pipeline

import "errors"

var (
	// ErrNoFigures is returned when a FigureRenderer is given nothing to render.
	ErrNoFigures = errors.New("no figures to render")

	// ErrArtifactOutsideDir is returned when an artifact path escapes the
	// export output directory.
	ErrArtifactOutsideDir = errors.New("artifact path is outside the output directory")
)
