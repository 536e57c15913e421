// Package cmd — extract-all command.
// Extracts the complete documentation body as HTML, text, or markdown.
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/tfdocs/core/parse"
	"github.com/gaurav-prasanna/tfdocs/core/registry"
	"github.com/gaurav-prasanna/tfdocs/core/render"
)

var (
	flagFullFormat string
	flagFullOutput string
)

var extractAllCmd = &cobra.Command{
	Use:   "extract-all <url>",
	Short: "Extract the complete documentation from a page",
	Long: `Extract the whole documentation body, without section splitting.

Example:
  tfdocs extract-all "hashicorp/aws/5.100.0/docs/resources/lb" --format markdown`,
	Args: cobra.ExactArgs(1),
	RunE: runExtractAll,
}

func init() {
	rootCmd.AddCommand(extractAllCmd)

	extractAllCmd.Flags().StringVar(&flagFullFormat, "format", "html", "Output format: html, text, or markdown")
	extractAllCmd.Flags().StringVarP(&flagFullOutput, "output", "o", "", "Output file (default: stdout)")
}

func runExtractAll(cmd *cobra.Command, args []string) error {
	u, err := registry.Parse(args[0])
	if err != nil {
		return err
	}

	rawHTML, err := newFetcher().Fetch(context.Background(), u.String())
	if err != nil {
		return err
	}

	p, err := parse.NewParser(rawHTML)
	if err != nil {
		return err
	}

	docHTML, ok := p.FullDocumentHTML()
	if !ok {
		return fmt.Errorf("failed to extract documentation")
	}

	var data []byte
	switch flagFullFormat {
	case "html":
		data = []byte(docHTML)
	case "text":
		text, _ := p.FullDocumentText()
		data = []byte(text)
	case "markdown":
		md, err := render.DocumentMarkdown(docHTML)
		if err != nil {
			return err
		}
		data = []byte(md)
	default:
		return fmt.Errorf("invalid format %q: must be html, text, or markdown", flagFullFormat)
	}

	return writeOutput(flagFullOutput, data)
}
