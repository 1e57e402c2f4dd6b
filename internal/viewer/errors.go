package viewer

import "errors"

var (
	// ErrUnsupportedPlatform is returned by Open when no opener is known
	// for the running operating system.
	ErrUnsupportedPlatform = errors.New("no opener for this platform")

	// ErrNoBody is returned by Render when the rendered page has no <body>.
	ErrNoBody = errors.New("page has no body element")
)
