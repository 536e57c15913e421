// Package cmd — list-sections command.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/tfdocs/core/parse"
	"github.com/gaurav-prasanna/tfdocs/core/registry"
)

var listSectionsCmd = &cobra.Command{
	Use:   "list-sections <url>",
	Short: "List all available sections in a documentation page",
	Long: `List the section names available in a resource documentation page.

Example:
  tfdocs list-sections "hashicorp/aws/5.100.0/docs/resources/lb"`,
	Args: cobra.ExactArgs(1),
	RunE: runListSections,
}

func init() {
	rootCmd.AddCommand(listSectionsCmd)
}

func runListSections(cmd *cobra.Command, args []string) error {
	u, err := registry.Parse(args[0])
	if err != nil {
		return err
	}

	html, err := newFetcher().Fetch(context.Background(), u.String())
	if err != nil {
		return err
	}

	p, err := parse.NewParser(html)
	if err != nil {
		return err
	}

	names := p.ListSections()
	if len(names) == 0 {
		return fmt.Errorf("no sections found")
	}

	fmt.Fprintln(os.Stdout, "Available sections:")
	for i, name := range names {
		fmt.Fprintf(os.Stdout, "  %d. %s\n", i+1, name)
	}
	return nil
}
