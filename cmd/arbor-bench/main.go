package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/arbor-dev/arbor/internal/logging"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var verbose bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "arbor-bench",
		Short: "Benchmark and inspection tool for the arbor reactive engine",
		Long: `arbor-bench exercises the arbor reactive engine from the command line.

Subcommands drive synthetic workloads (signal fan-out, keyed list
reconciliation) against a fresh runtime, print throughput numbers and the
engine's Prometheus counters, or dump a demo dependency graph as DOT.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		signalsCmd(),
		reconcileCmd(),
		graphCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// newLogger returns the logger for a bench run, honoring --verbose.
func newLogger() *slog.Logger {
	if verbose {
		return logging.New(slog.LevelDebug)
	}
	return logging.New(slog.LevelInfo)
}
