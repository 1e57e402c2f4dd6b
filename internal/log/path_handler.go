package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// PathHandler wraps an slog.Handler to shorten home directory paths.
// String attributes equal to the home directory, or below it, are
// rewritten to start with "~" before the record reaches the wrapped
// handler. Groups are rewritten recursively.
type PathHandler struct {
	// handler is the underlying slog handler that receives rewritten records.
	handler slog.Handler

	// home is the directory replaced by "~". Empty disables rewriting.
	home string
}

// NewPathHandler creates a PathHandler for the current user's home directory.
// If handler is nil, slog.Default().Handler() is used.
func NewPathHandler(handler slog.Handler) *PathHandler {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return NewPathHandlerWithHome(handler, home)
}

// NewPathHandlerWithHome creates a PathHandler that rewrites the given home
// directory instead of the current user's.
func NewPathHandlerWithHome(handler slog.Handler, home string) *PathHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	if home != "" {
		home = filepath.Clean(home)
	}
	return &PathHandler{handler: handler, home: home}
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *PathHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle rewrites the record's attributes and passes it to the underlying handler.
func (h *PathHandler) Handle(ctx context.Context, r slog.Record) error {
	rewritten := slog.NewRecord(r.Time, r.Level, h.ShortenPath(r.Message), r.PC)

	r.Attrs(func(a slog.Attr) bool {
		rewritten.AddAttrs(h.rewriteAttr(a))
		return true
	})

	return h.handler.Handle(ctx, rewritten)
}

// WithAttrs returns a new handler with the given attributes added.
// Attributes are rewritten before being added.
func (h *PathHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	rewritten := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		rewritten[i] = h.rewriteAttr(a)
	}
	return &PathHandler{handler: h.handler.WithAttrs(rewritten), home: h.home}
}

// WithGroup returns a new handler with the given group name.
func (h *PathHandler) WithGroup(name string) slog.Handler {
	return &PathHandler{handler: h.handler.WithGroup(name), home: h.home}
}

// rewriteAttr rewrites a single attribute, recursively handling groups.
func (h *PathHandler) rewriteAttr(a slog.Attr) slog.Attr {
	a.Value = a.Value.Resolve()

	switch a.Value.Kind() {
	case slog.KindGroup:
		attrs := a.Value.Group()
		rewritten := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			rewritten[i] = h.rewriteAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(rewritten...)}
	case slog.KindString:
		return slog.String(a.Key, h.ShortenPath(a.Value.String()))
	case slog.KindAny:
		if err, ok := a.Value.Any().(error); ok {
			return slog.String(a.Key, h.ShortenPath(err.Error()))
		}
	}

	return a
}

// ShortenPath replaces every occurrence of the home directory that starts
// a path in s with "~". A directory that merely shares the prefix, such as
// /home/alice2 for /home/alice, is left alone.
func (h *PathHandler) ShortenPath(s string) string {
	if h.home == "" || h.home == string(filepath.Separator) || !strings.Contains(s, h.home) {
		return s
	}

	var sb strings.Builder
	for {
		i := strings.Index(s, h.home)
		if i < 0 {
			sb.WriteString(s)
			return sb.String()
		}
		end := i + len(h.home)
		sb.WriteString(s[:i])
		if end == len(s) || s[end] == filepath.Separator || s[end] == '/' {
			sb.WriteString("~")
		} else {
			sb.WriteString(h.home)
		}
		s = s[end:]
	}
}

// NewLogger creates a new slog.Logger writing text records.
// Home directory paths are shortened in all log output.
//
// Parameters:
//   - w: The io.Writer to write log output to (typically os.Stderr)
//   - verbose: If true, sets log level to Debug; otherwise Warn
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewPathHandler(slog.NewTextHandler(w, handlerOptions(verbose))))
}

// NewJSONLogger creates a new slog.Logger writing JSON records.
// This is useful for structured log aggregation.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewPathHandler(slog.NewJSONHandler(w, handlerOptions(verbose))))
}

func handlerOptions(verbose bool) *slog.HandlerOptions {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return &slog.HandlerOptions{Level: level}
}
