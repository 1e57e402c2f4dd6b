package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/nao1215/optcompare/internal/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for optcompare.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "optcompare",
		Short: "Compare COMPASS and PostgreSQL on the JOB benchmark",
		Long: `optcompare reports how the COMPASS query optimizer compares with
PostgreSQL on the 113 queries of the Join Order Benchmark (JOB).

It prints a fixed-layout summary report and draws three figures:
winning queries, performance metrics and L1 distances.

Settings are read from .optcompare in the current or home directory.
Use "optcompare init" to create one.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().String("log-format", log.FormatText,
		"Log record format: "+strings.Join(log.Formats(), ", "))
	cmd.PersistentFlags().StringP("config", "c", "",
		"Configuration file path (default: .optcompare in current or home directory)")

	// Add subcommands
	cmd.AddCommand(NewRunCmd())
	cmd.AddCommand(NewReportCmd())
	cmd.AddCommand(NewChartsCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
