package report

import (
	"io"

	"github.com/nao1215/optcompare/internal/model"
)

// SimpleWriter outputs the fixed-layout plain text report.
// The output is exactly GenerateSummary.
type SimpleWriter struct {
	baseWriter
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer) *SimpleWriter {
	return &SimpleWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the report in plain text.
func (w *SimpleWriter) Write(ds *model.Dataset) (int, error) {
	return io.WriteString(w.output, GenerateSummary(ds))
}
