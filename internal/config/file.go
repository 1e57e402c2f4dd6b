package config

import (
	"os"
	"path/filepath"
	"strings"
)

// FigureSection configures exported figures in the config file.
type FigureSection struct {
	// Format is the image format, e.g. "svg".
	Format string `yaml:"format,omitempty"`

	// Scale multiplies the canvas size.
	Scale float64 `yaml:"scale,omitempty"`

	// Concurrency is the maximum number of figures rendered at once.
	Concurrency int `yaml:"concurrency,omitempty"`
}

// ReportSection configures summary reports in the config file.
type ReportSection struct {
	// Formats lists the report formats to write.
	Formats []string `yaml:"formats,omitempty"`
}

// ViewerSection configures the HTML viewer in the config file.
// Pointers distinguish "false" from "not set".
type ViewerSection struct {
	// Enabled turns the viewer page on or off.
	Enabled *bool `yaml:"enabled,omitempty"`

	// Open hands the page to the default browser.
	Open *bool `yaml:"open,omitempty"`
}

// File represents the structure of the .optcompare configuration file.
// Every field is optional; unset fields keep the current value.
type File struct {
	// OutputDir is the export directory. A leading "~/" is expanded to
	// the user's home directory.
	OutputDir string `yaml:"outputDir,omitempty"`

	// Figures configures exported figures.
	Figures FigureSection `yaml:"figures,omitempty"`

	// Reports configures summary reports.
	Reports ReportSection `yaml:"reports,omitempty"`

	// Viewer configures the HTML viewer.
	Viewer ViewerSection `yaml:"viewer,omitempty"`
}

// Apply overlays the values set in the file onto cfg.
func (cf *File) Apply(cfg *Config) {
	if cf.OutputDir != "" {
		cfg.OutputDir = expandHome(cf.OutputDir)
	}
	if cf.Figures.Format != "" {
		cfg.FigureFormat = cf.Figures.Format
	}
	if cf.Figures.Scale != 0 {
		cfg.FigureScale = cf.Figures.Scale
	}
	if cf.Figures.Concurrency != 0 {
		cfg.Concurrency = cf.Figures.Concurrency
	}
	if len(cf.Reports.Formats) > 0 {
		cfg.ReportFormats = append([]string(nil), cf.Reports.Formats...)
	}
	if cf.Viewer.Enabled != nil {
		cfg.Viewer = *cf.Viewer.Enabled
	}
	if cf.Viewer.Open != nil {
		cfg.Open = *cf.Viewer.Open
	}
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
