package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Log record formats accepted by New.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrUnknownFormat is returned by New for a format other than text or json.
var ErrUnknownFormat = errors.New("unknown log format")

// Formats returns the accepted log formats.
func Formats() []string {
	return []string{FormatText, FormatJSON}
}

// New returns the logger for the named format. The name is case-insensitive
// and an empty name selects text.
func New(w io.Writer, format string, verbose bool) (*slog.Logger, error) {
	switch strings.ToLower(format) {
	case FormatText, "":
		return NewLogger(w, verbose), nil
	case FormatJSON:
		return NewJSONLogger(w, verbose), nil
	default:
		return nil, fmt.Errorf("%w %q: expected one of %s",
			ErrUnknownFormat, format, strings.Join(Formats(), ", "))
	}
}
