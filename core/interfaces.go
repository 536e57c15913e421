// Package core defines the pipeline types and interfaces for tfdocs.
// Each stage of the pipeline is a clean, testable interface.
package core

import (
	"context"

	"golang.org/x/net/html"
)

// Section is a named, heading-delimited span of documentation content.
// Nodes holds the bounding heading followed by every tag-bearing sibling
// up to the next section boundary, in document order.
type Section struct {
	Name  string
	Nodes []*html.Node
}

// SectionText pairs a section name with its normalized plain-text content.
type SectionText struct {
	Name string
	Text string
}

// Fetcher retrieves fully rendered HTML for a documentation URL.
// Implementations are blocking; they must not return before the page's
// main content is present.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}
