// Package cmd implements the CLI commands for tfdocs using Cobra.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/tfdocs/core/fetch"
)

// Persistent flag variables shared by all commands.
var (
	flagVerbose bool
	flagHeadful bool
	flagTimeout time.Duration
	flagSettle  time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "tfdocs",
	Short: "tfdocs — extract sections from Terraform provider documentation",
	Long: `tfdocs fetches JavaScript-rendered Terraform Registry documentation pages
and extracts named sections as HTML, text, or formatted markdown.

Usage:
  tfdocs extract <url> [flags]
  tfdocs list-sections <url>
  tfdocs docs <url> [flags]`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(flagVerbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&flagHeadful, "headful", false, "Run the browser with a visible window")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 10*time.Second, "Maximum wait for page content")
	rootCmd.PersistentFlags().DurationVar(&flagSettle, "settle", 2*time.Second, "Extra wait after page load")
}

// setupLogging configures the default slog handler based on verbosity.
func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// newFetcher builds the browser fetcher from the persistent flags.
func newFetcher() *fetch.BrowserFetcher {
	return fetch.New(
		fetch.WithHeadless(!flagHeadful),
		fetch.WithTimeout(flagTimeout),
		fetch.WithSettleDelay(flagSettle),
	)
}

// writeOutput writes data to the given file, or stdout when path is empty.
func writeOutput(path string, data []byte) error {
	if path == "" {
		fmt.Fprintln(os.Stdout, string(data))
		return nil
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing output file %s: %w", path, err)
	}
	slog.Info("saved output to file", "file", path)
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
