package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nao1215/optcompare/internal/report"
	"github.com/spf13/cobra"
)

// errTeeWithoutOutput is returned when --tee is given without --output.
var errTeeWithoutOutput = errors.New("--tee requires --output")

// NewReportCmd creates the report command.
func NewReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the summary report",
		Long: `Report prints the comparative summary without drawing any figure.

The text format is the fixed-layout Spanish report. Markdown adds tables
and a pie chart of the wins; JSON carries the same data for tools.

Examples:
  # Print the text report
  optcompare report

  # Save a markdown report
  optcompare report --format markdown -o reports/summary.md

  # Save the report and print it as well
  optcompare report -o reports/summary.txt --tee`,
		Args: cobra.NoArgs,
		RunE: runReportCmd,
	}

	cmd.Flags().StringP("format", "f", report.FormatText,
		"Report format: "+strings.Join(report.Formats(), ", "))
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().Bool("tee", false, "Also print the report to stdout when --output is set")

	return cmd
}

// runReportCmd executes the report command.
func runReportCmd(cmd *cobra.Command, _ []string) (err error) {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	tee, err := cmd.Flags().GetBool("tee")
	if err != nil {
		return err
	}
	if tee && outputPath == "" {
		return errTeeWithoutOutput
	}

	ds, err := loadDataset()
	if err != nil {
		return err
	}

	w, err := report.NewWriter(format, cmd.OutOrStdout(), getVersion())
	if err != nil {
		return err
	}

	if outputPath != "" {
		dir := filepath.Dir(outputPath)
		if dir != "" && dir != "." {
			if mkErr := os.MkdirAll(dir, 0750); mkErr != nil {
				return fmt.Errorf("failed to create output directory: %w", mkErr)
			}
		}

		f, ferr := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided output path is intentional
		if ferr != nil {
			return fmt.Errorf("failed to create output file: %w", ferr)
		}
		defer closeOutput(f, &err)

		// format was checked when w was built
		fw, _ := report.NewWriter(format, f, getVersion())
		if tee {
			w = report.NewMultiWriter(fw, w)
		} else {
			w = fw
		}
	}

	if _, err = w.Write(ds); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// closeOutput closes c and stores its error in *err unless *err is already set.
func closeOutput(c io.Closer, err *error) {
	if cerr := c.Close(); cerr != nil && *err == nil {
		*err = fmt.Errorf("failed to close output file: %w", cerr)
	}
}
