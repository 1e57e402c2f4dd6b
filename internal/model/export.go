package model

// ArtifactKind classifies a file produced by an export run.
type ArtifactKind string

const (
	// ArtifactReport is a summary report in text, markdown or JSON.
	ArtifactReport ArtifactKind = "report"

	// ArtifactFigure is a static chart image or document.
	ArtifactFigure ArtifactKind = "figure"

	// ArtifactViewer is the interactive HTML viewer page.
	ArtifactViewer ArtifactKind = "viewer"

	// ArtifactManifest is the digest listing of all other artifacts.
	ArtifactManifest ArtifactKind = "manifest"
)

// Artifact describes one file written to the output directory.
type Artifact struct {
	// Name identifies the artifact, e.g. "winning_queries".
	Name string `json:"name"`

	// Path is relative to the export output directory.
	Path string `json:"path"`

	// Kind classifies the artifact.
	Kind ArtifactKind `json:"kind"`

	// Format is the file format, e.g. "png", "markdown", "html".
	Format string `json:"format"`

	// Size is the file size in bytes.
	Size int64 `json:"size"`

	// Digest is the hex encoded SHA3-256 of the file contents.
	// Filled in by the manifest step.
	Digest string `json:"sha3_256,omitempty"`
}

// Export is the accumulated result of one export pipeline run.
// Pipeline steps receive it in turn and append their artifacts.
type Export struct {
	// OutputDir is the directory every artifact path is relative to.
	OutputDir string `json:"output_dir"`

	// Artifacts lists written files in the order they were produced.
	Artifacts []Artifact `json:"artifacts"`

	// Steps lists the names of the pipeline steps that ran.
	Steps []string `json:"steps"`

	// Error is the last step error, if any.
	Error error `json:"-"`

	// ErrorMessage is Error as text for serialized output.
	ErrorMessage string `json:"error,omitempty"`
}

// NewExport creates an empty Export rooted at dir.
func NewExport(dir string) *Export {
	return &Export{
		OutputDir: dir,
		Artifacts: make([]Artifact, 0),
		Steps:     make([]string, 0),
	}
}

// AddArtifact records a written file.
func (e *Export) AddArtifact(a Artifact) {
	e.Artifacts = append(e.Artifacts, a)
}

// ArtifactsOfKind returns the artifacts of the given kind in production order.
func (e *Export) ArtifactsOfKind(kind ArtifactKind) []Artifact {
	var out []Artifact
	for _, a := range e.Artifacts {
		if a.Kind == kind {
			out = append(out, a)
		}
	}
	return out
}

// FindArtifact returns the artifact with the given name.
func (e *Export) FindArtifact(name string) (Artifact, bool) {
	for _, a := range e.Artifacts {
		if a.Name == name {
			return a, true
		}
	}
	return Artifact{}, false
}
