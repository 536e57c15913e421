// Package cmd — docs command.
// Extracts formatted Example Usage and Argument Reference markdown via the
// caching facade, printing to stdout or saving per-resource files.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/tfdocs/resource"
)

var (
	flagDocsLevel     int
	flagDocsOutputDir string
	flagDocsSave      bool
	flagDocsPDF       bool
	flagDocsExamples  bool
	flagDocsArguments bool
)

var docsCmd = &cobra.Command{
	Use:   "docs <url> [url...]",
	Short: "Extract formatted Example Usage and Argument Reference markdown",
	Long: `Docs extracts a resource's Example Usage and Argument Reference sections
and reformats them as clean markdown. With --save, files are written as
{resource}_examples.md and {resource}_arguments.md; multiple URLs are
processed as a batch.

Examples:
  tfdocs docs "hashicorp/aws/5.100.0/docs/resources/lb"
  tfdocs docs "hashicorp/aws/5.100.0/docs/resources/lb" --save --output-dir docs
  tfdocs docs "hashicorp/aws/5.100.0/docs/resources/lb" --arguments --heading-level 2`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDocs,
}

func init() {
	rootCmd.AddCommand(docsCmd)

	docsCmd.Flags().IntVar(&flagDocsLevel, "heading-level", 1, "Markdown heading depth of the main title")
	docsCmd.Flags().BoolVar(&flagDocsSave, "save", false, "Save to files instead of printing")
	docsCmd.Flags().StringVar(&flagDocsOutputDir, "output-dir", "", "Directory for saved files (default: current directory)")
	docsCmd.Flags().BoolVar(&flagDocsPDF, "pdf", false, "Save as PDF instead of markdown (implies --save)")
	docsCmd.Flags().BoolVar(&flagDocsExamples, "examples", false, "Extract only Example Usage")
	docsCmd.Flags().BoolVar(&flagDocsArguments, "arguments", false, "Extract only Argument Reference")
}

func runDocs(cmd *cobra.Command, args []string) error {
	if flagDocsLevel < 1 || flagDocsLevel > 4 {
		return fmt.Errorf("--heading-level must be between 1 and 4")
	}
	if flagDocsExamples && flagDocsArguments {
		return fmt.Errorf("--examples and --arguments are mutually exclusive; omit both for both sections")
	}

	docs := resource.New(resource.WithFetcher(newFetcher()))
	ctx := context.Background()

	if flagDocsSave || flagDocsPDF {
		return runDocsSave(ctx, docs, args)
	}

	if len(args) > 1 {
		return fmt.Errorf("multiple URLs require --save")
	}
	return runDocsPrint(ctx, docs, args[0])
}

// runDocsPrint extracts the selected sections and prints them to stdout.
func runDocsPrint(ctx context.Context, docs *resource.Docs, rawURL string) error {
	switch {
	case flagDocsExamples:
		md, err := docs.Examples(ctx, rawURL, flagDocsLevel)
		if err != nil {
			return err
		}
		if md == "" {
			return fmt.Errorf("no Example Usage sections found")
		}
		fmt.Fprintln(os.Stdout, md)

	case flagDocsArguments:
		md, err := docs.Arguments(ctx, rawURL, flagDocsLevel)
		if err != nil {
			return err
		}
		if md == "" {
			return fmt.Errorf("Argument Reference section not found")
		}
		fmt.Fprintln(os.Stdout, md)

	default:
		extraction, err := docs.ExtractAll(ctx, rawURL, flagDocsLevel)
		if err != nil {
			return err
		}
		if extraction.Examples == "" && extraction.Arguments == "" {
			return fmt.Errorf("no documentation sections found")
		}
		if extraction.Examples != "" {
			fmt.Fprintln(os.Stdout, extraction.Examples)
		}
		if extraction.Arguments != "" {
			fmt.Fprintln(os.Stdout, extraction.Arguments)
		}
	}
	return nil
}

// runDocsSave writes the extracted sections to files, one resource at a time.
func runDocsSave(ctx context.Context, docs *resource.Docs, urls []string) error {
	var failed int
	for _, rawURL := range urls {
		result, err := docs.SaveToFiles(ctx, rawURL, flagDocsOutputDir, flagDocsLevel, flagDocsPDF)
		if err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", rawURL, err)
			failed++
			continue
		}
		if result.ExamplesPath != "" {
			fmt.Fprintf(os.Stdout, "✓ Written: %s\n", result.ExamplesPath)
		}
		if result.ArgumentsPath != "" {
			fmt.Fprintf(os.Stdout, "✓ Written: %s\n", result.ArgumentsPath)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d/%d resources failed", failed, len(urls))
	}
	return nil
}
