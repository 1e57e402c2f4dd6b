package config

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "optcompare"

	// DefaultFigureFormat is PNG, the format of the original figures.
	DefaultFigureFormat = "png"

	// DefaultReportFormat is the plain text summary printed to the terminal.
	DefaultReportFormat = "text"

	// DefaultConcurrency renders figures one at a time.
	DefaultConcurrency = 1

	// DefaultFigureScale keeps the figures at their nominal size.
	DefaultFigureScale = 1.0
)

// FigureFormats returns the figure formats Validate accepts.
func FigureFormats() []string {
	return []string{"png", "svg", "pdf", "jpg", "tiff", "eps"}
}

// ReportFormats returns the report formats Validate accepts.
func ReportFormats() []string {
	return []string{"text", "markdown", "json"}
}

// Config holds all configuration options for optcompare.
// It is populated from defaults, then the config file, then CLI flags,
// and passed through the application rather than kept in global state.
type Config struct {
	// OutputDir is where exported files are written.
	OutputDir string

	// FigureFormat is the image format of exported figures.
	FigureFormat string

	// FigureScale multiplies the canvas size of exported figures.
	FigureScale float64

	// Concurrency is the maximum number of figures rendered at once.
	Concurrency int

	// ReportFormats lists the summary formats written to OutputDir.
	ReportFormats []string

	// Viewer enables the HTML viewer page.
	Viewer bool

	// Open hands the viewer page to the platform's default browser.
	Open bool

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .optcompare in the current directory
	// and then in the user's home directory.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		OutputDir:     DefaultOutputDir(),
		FigureFormat:  DefaultFigureFormat,
		FigureScale:   DefaultFigureScale,
		Concurrency:   DefaultConcurrency,
		ReportFormats: []string{DefaultReportFormat},
		Viewer:        true,
	}
}

// DefaultOutputDir returns the export directory under the XDG data directory.
func DefaultOutputDir() string {
	return filepath.Join(XDGDataDir(), "output")
}

// XDGDataDir returns the XDG data directory for optcompare.
// On Linux: ~/.local/share/optcompare
// On macOS: ~/Library/Application Support/optcompare
// On Windows: %LOCALAPPDATA%\optcompare
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found, wrapping a sentinel error.
// Format names are compared case-insensitively.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.OutputDir) == "" {
		return ErrEmptyOutputDir
	}

	if !slices.Contains(FigureFormats(), strings.ToLower(c.FigureFormat)) {
		return fmt.Errorf("%w: %q", ErrInvalidFigureFormat, c.FigureFormat)
	}

	for _, f := range c.ReportFormats {
		if !slices.Contains(ReportFormats(), strings.ToLower(f)) {
			return fmt.Errorf("%w: %q", ErrInvalidReportFormat, f)
		}
	}

	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}

	if c.FigureScale <= 0 {
		return ErrInvalidFigureScale
	}

	return nil
}
