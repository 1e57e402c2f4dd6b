package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/optcompare/internal/model"
)

// Format names accepted by NewWriter.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// Formats returns the supported report formats.
func Formats() []string {
	return []string{FormatText, FormatMarkdown, FormatJSON}
}

// Extension returns the file extension, without the dot, for a report format.
func Extension(format string) string {
	switch format {
	case FormatMarkdown:
		return "md"
	case FormatJSON:
		return "json"
	default:
		return "txt"
	}
}

// Writer defines the interface for report output.
// Implementations render the summary report of a dataset in one format.
type Writer interface {
	// Write outputs the report to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(ds *model.Dataset) (int, error)
}

// NewWriter returns the writer for the named format.
// version is recorded by formats that carry metadata.
func NewWriter(format string, output io.Writer, version string) (Writer, error) {
	switch strings.ToLower(format) {
	case FormatText, "txt", "":
		return NewSimpleWriter(output), nil
	case FormatMarkdown, "md":
		return NewMarkdownWriter(output), nil
	case FormatJSON:
		return NewJSONWriter(output, WithPrettyPrint(), WithVersion(version)), nil
	default:
		return nil, fmt.Errorf("unknown report format %q: expected one of %s",
			format, strings.Join(Formats(), ", "))
	}
}

// MultiWriter writes to multiple Writers in turn.
// This is useful for printing to the terminal and saving to a file at once.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the report to all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) Write(ds *model.Dataset) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(ds)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
