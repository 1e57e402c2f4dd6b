package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/nao1215/optcompare/internal/model"
)

// Permissions of created directories and files.
const (
	dirPerm  = 0o750
	filePerm = 0o600
)

// writeFile creates rel under dir and fills it with write.
// It returns the number of bytes written.
func writeFile(dir, rel string, write func(io.Writer) error) (size int64, err error) {
	if !filepath.IsLocal(rel) {
		return 0, fmt.Errorf("%w: %s", ErrArtifactOutsideDir, rel)
	}

	path := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return 0, fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePerm) //nolint:gosec // path is kept inside the output directory
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", rel, err)
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close %s: %w", rel, cerr)
		}
	}()

	cw := &countingWriter{w: file}
	if err := write(cw); err != nil {
		return cw.n, fmt.Errorf("failed to write %s: %w", rel, err)
	}
	return cw.n, nil
}

// newArtifact writes rel under the export directory and describes it.
func newArtifact(exp *model.Export, rel string, kind model.ArtifactKind, format string, write func(io.Writer) error) (model.Artifact, error) {
	size, err := writeFile(exp.OutputDir, rel, write)
	if err != nil {
		return model.Artifact{}, err
	}
	return model.Artifact{
		Name:   filepath.ToSlash(rel),
		Path:   filepath.ToSlash(rel),
		Kind:   kind,
		Format: format,
		Size:   size,
	}, nil
}

// countingWriter counts the bytes passed through to w.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
