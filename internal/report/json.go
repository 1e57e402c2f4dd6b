package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/optcompare/internal/model"
)

// JSONWriter outputs reports in JSON format.
// This format is meant for tool integration and programmatic processing.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string

	// version is recorded in the output when non-empty.
	version string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
// This is a convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// WithVersion records the generating tool version in the output.
func WithVersion(version string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.version = version
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// JSONReport is the document written by JSONWriter.
// It carries the computed data section together with the narrative so
// consumers do not need to parse the text report.
type JSONReport struct {
	// Version is the optcompare version that generated this report.
	Version string `json:"version,omitempty"`

	// Summary is the data section computed from the dataset.
	Summary *Summary `json:"summary"`

	// Conclusions are the author's main conclusions, verbatim.
	Conclusions []string `json:"conclusions"`

	// Recommendations are the author's recommendations, verbatim.
	Recommendations []string `json:"recommendations"`
}

// NewJSONReport builds the JSON document for a dataset.
func NewJSONReport(ds *model.Dataset, version string) *JSONReport {
	return &JSONReport{
		Version:         version,
		Summary:         NewSummary(ds),
		Conclusions:     Conclusions(),
		Recommendations: Recommendations(),
	}
}

// Write outputs the report in JSON format.
func (w *JSONWriter) Write(ds *model.Dataset) (int, error) {
	return w.writeJSON(NewJSONReport(ds, w.version))
}

// writeJSON marshals the given value to JSON and writes it to the output.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return 0, err
	}

	// Add trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}
