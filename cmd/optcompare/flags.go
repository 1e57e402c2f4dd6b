package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nao1215/optcompare/internal/config"
	"github.com/nao1215/optcompare/internal/log"
	"github.com/nao1215/optcompare/internal/model"
	"github.com/spf13/cobra"
)

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// getConfigFlag retrieves the config file path from the command or its parent.
func getConfigFlag(cmd *cobra.Command) string {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		path, err = cmd.Root().PersistentFlags().GetString("config")
		if err != nil {
			return ""
		}
	}
	return path
}

// loadConfig builds the configuration from defaults and the config file.
// Command specific flags are applied by the caller.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(getConfigFlag(cmd))
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg.Verbose = getVerboseFlag(cmd)
	return cfg, nil
}

// exportFlags are the flags shared by run and charts.
type exportFlags struct {
	dir         string
	format      string
	concurrency int
}

// addExportFlags registers --dir, --format and --concurrency on cmd.
func addExportFlags(cmd *cobra.Command, f *exportFlags) {
	cmd.Flags().StringVarP(&f.dir, "dir", "d", "",
		"Output directory (default: outputDir from the config file or the XDG data directory)")
	cmd.Flags().StringVarP(&f.format, "format", "f", config.DefaultFigureFormat,
		"Figure format: "+strings.Join(config.FigureFormats(), ", "))
	cmd.Flags().IntVar(&f.concurrency, "concurrency", config.DefaultConcurrency,
		"Number of figures drawn at the same time")
}

// apply overrides cfg with the flags the user set explicitly.
func (f *exportFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("dir") {
		cfg.OutputDir = f.dir
	}
	if cmd.Flags().Changed("format") {
		cfg.FigureFormat = f.format
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Concurrency = f.concurrency
	}
	cfg.FigureFormat = strings.ToLower(cfg.FigureFormat)
}

// getLogFormatFlag retrieves the log format from the command or its parent.
func getLogFormatFlag(cmd *cobra.Command) string {
	format, err := cmd.Flags().GetString("log-format")
	if err != nil {
		format, err = cmd.Root().PersistentFlags().GetString("log-format")
		if err != nil {
			return log.FormatText
		}
	}
	return format
}

// setupLogger creates the stderr logger for cmd in the --log-format format.
func setupLogger(cmd *cobra.Command, verbose bool) (*slog.Logger, error) {
	return log.New(cmd.ErrOrStderr(), getLogFormatFlag(cmd), verbose)
}

// commandContext returns the command context, or Background if none is set.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// loadDataset returns the embedded benchmark dataset after checking it.
func loadDataset() (*model.Dataset, error) {
	ds := model.NewDataset()
	if err := ds.Validate(); err != nil {
		return nil, fmt.Errorf("invalid benchmark dataset: %w", err)
	}
	return ds, nil
}

// printExport lists the files of a finished export.
func printExport(cmd *cobra.Command, exp *model.Export) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Exported %d files to %s\n", len(exp.Artifacts), exp.OutputDir)
	for _, a := range exp.Artifacts {
		fmt.Fprintf(out, "  %-8s %s\n", a.Kind, a.Path)
	}
}
