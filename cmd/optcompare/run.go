package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/nao1215/optcompare/internal/config"
	"github.com/nao1215/optcompare/internal/model"
	"github.com/nao1215/optcompare/internal/pipeline"
	"github.com/nao1215/optcompare/internal/report"
	"github.com/nao1215/optcompare/internal/viewer"
	"github.com/spf13/cobra"
)

// errOpenWithoutViewer is returned when --open is combined with --no-viewer.
var errOpenWithoutViewer = errors.New("--open needs the viewer page (remove --no-viewer)")

// runFlags holds the flags of the run command.
type runFlags struct {
	exportFlags
	reportFormats []string
	noViewer      bool
	open          bool
}

// NewRunCmd creates the run command.
func NewRunCmd() *cobra.Command {
	f := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Print the summary report and export every figure",
		Long: `Run prints the summary report to the terminal and then exports:

- winning_queries, performance_metrics and l1_distances figures
- the summary in each report format (summary.txt, summary.md, summary.json)
- index.html, an interactive page with the charts and the summary
- manifest.json, the SHA3-256 digest of every file

Examples:
  # Export PNG figures to the default output directory
  optcompare run

  # Export SVG figures and a markdown summary to ./out
  optcompare run --dir ./out --format svg --report-format markdown

  # Open the viewer page when done
  optcompare run --open`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRunCmd(cmd, f)
		},
	}

	addExportFlags(cmd, &f.exportFlags)
	cmd.Flags().StringSliceVarP(&f.reportFormats, "report-format", "r", []string{config.DefaultReportFormat},
		"Summary formats to write, repeatable: "+strings.Join(config.ReportFormats(), ", "))
	cmd.Flags().BoolVar(&f.noViewer, "no-viewer", false,
		"Do not write the index.html viewer page")
	cmd.Flags().BoolVar(&f.open, "open", false,
		"Open the viewer page in the default browser")

	return cmd
}

// runRunCmd executes the run command.
func runRunCmd(cmd *cobra.Command, f *runFlags) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	f.apply(cmd, cfg)
	if cmd.Flags().Changed("report-format") {
		cfg.ReportFormats = f.reportFormats
	}
	if f.noViewer {
		cfg.Viewer = false
	}
	if cmd.Flags().Changed("open") {
		cfg.Open = f.open
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	if cfg.Open && !cfg.Viewer {
		return errOpenWithoutViewer
	}

	logger, err := setupLogger(cmd, cfg.Verbose)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runExport(ctx, cmd, cfg, logger)
}

// runExport prints the summary and runs the full export pipeline.
func runExport(ctx context.Context, cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	ds, err := loadDataset()
	if err != nil {
		return err
	}

	// The report comes first, then the figures.
	if _, err := report.NewSimpleWriter(cmd.OutOrStdout()).Write(ds); err != nil {
		return fmt.Errorf("failed to print summary report: %w", err)
	}

	exportOpts := []pipeline.ExportOption{
		pipeline.WithFigureFormat(cfg.FigureFormat),
		pipeline.WithFigureScale(cfg.FigureScale),
		pipeline.WithFigureConcurrency(cfg.Concurrency),
		pipeline.WithReportFormats(lowerAll(cfg.ReportFormats)...),
		pipeline.WithViewer(cfg.Viewer),
		pipeline.WithVersion(getVersion()),
	}
	if cfg.Open {
		exportOpts = append(exportOpts, pipeline.WithViewerOpener(viewer.Open))
	}

	p := pipeline.ExportPipeline(ds, []pipeline.Option{pipeline.WithLogger(logger)}, exportOpts...)

	logger.Info("starting export",
		"dir", cfg.OutputDir,
		"format", cfg.FigureFormat,
		"steps", p.StepNames(),
	)

	exp := model.NewExport(cfg.OutputDir)
	startTime := time.Now()
	if err := p.Execute(ctx, exp); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout())
	printExport(cmd, exp)
	logger.Info("export completed", "elapsed", time.Since(startTime).Round(time.Millisecond))

	return nil
}

// lowerAll returns the lower case form of every value.
func lowerAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v)
	}
	return out
}
