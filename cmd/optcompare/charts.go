package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nao1215/optcompare/internal/config"
	"github.com/nao1215/optcompare/internal/model"
	"github.com/nao1215/optcompare/internal/pipeline"
	"github.com/spf13/cobra"
)

// chartsFlags holds the flags of the charts command.
type chartsFlags struct {
	exportFlags
	scale float64
}

// NewChartsCmd creates the charts command.
func NewChartsCmd() *cobra.Command {
	f := &chartsFlags{}

	cmd := &cobra.Command{
		Use:   "charts",
		Short: "Export the three comparison figures",
		Long: `Charts exports only the figures, without summary files or the viewer page:

- winning_queries: total and per-bucket wins
- performance_metrics: cardinality (log scale) and execution time
- l1_distances: L1 distance per join bucket

A manifest.json with the SHA3-256 digest of each figure is written too.

Examples:
  # Export PDF figures to ./figures
  optcompare charts --dir ./figures --format pdf

  # Double size PNGs, drawn in parallel
  optcompare charts --scale 2 --concurrency 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runChartsCmd(cmd, f)
		},
	}

	addExportFlags(cmd, &f.exportFlags)
	cmd.Flags().Float64VarP(&f.scale, "scale", "s", config.DefaultFigureScale,
		"Canvas size multiplier")

	return cmd
}

// runChartsCmd executes the charts command.
func runChartsCmd(cmd *cobra.Command, f *chartsFlags) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	f.apply(cmd, cfg)
	if cmd.Flags().Changed("scale") {
		cfg.FigureScale = f.scale
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger, err := setupLogger(cmd, cfg.Verbose)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ds, err := loadDataset()
	if err != nil {
		return err
	}

	p := pipeline.ExportPipeline(ds,
		[]pipeline.Option{pipeline.WithLogger(logger)},
		pipeline.WithFigureFormat(cfg.FigureFormat),
		pipeline.WithFigureScale(cfg.FigureScale),
		pipeline.WithFigureConcurrency(cfg.Concurrency),
		pipeline.WithReportFormats(),
		pipeline.WithViewer(false),
	)

	exp := model.NewExport(cfg.OutputDir)
	if err := p.Execute(ctx, exp); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	printExport(cmd, exp)
	return nil
}
