// Package parse splits rendered documentation HTML into named sections and
// normalizes section content into plain text. Sections are delimited by the
// top-level h2 headings inside the registry's documentation root div.
package parse

import (
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/gaurav-prasanna/tfdocs/core"
)

const (
	// rootID identifies the documentation container rendered by the registry.
	rootID = "provider-doc"

	// notFoundMarker appears in the h1 of the registry's 404 page.
	notFoundMarker = "Page Not Found"

	// sectionTag is the heading rank that delimits sections.
	sectionTag = "h2"
)

// documentRoot locates the documentation root div, or nil if absent.
func documentRoot(doc *goquery.Document) *html.Node {
	sel := doc.Find("div#" + rootID)
	if sel.Length() == 0 {
		return nil
	}
	return sel.Get(0)
}

// isNotFoundPage reports whether the document carries the registry's
// "Page Not Found" h1 marker.
func isNotFoundPage(doc *goquery.Document) bool {
	found := false
	doc.Find("h1").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if strings.Contains(s.Text(), notFoundMarker) {
			found = true
			return false
		}
		return true
	})
	return found
}

// Split partitions the documentation root's children into named sections.
// Each section spans from one h2 heading (inclusive) to the next h2
// (exclusive) or the end of the container. Text-only siblings are skipped.
// A missing root yields an empty result, never an error: the condition is
// logged as page-not-found or a structural failure.
func Split(doc *goquery.Document, logger *slog.Logger) []core.Section {
	root := documentRoot(doc)
	if root == nil {
		if isNotFoundPage(doc) {
			logger.Warn("page not found: the requested documentation page does not exist")
		} else {
			logger.Error("could not find main documentation div")
		}
		return nil
	}

	var sections []core.Section
	var current *core.Section

	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if c.Data == sectionTag {
			if current != nil {
				sections = append(sections, *current)
			}
			current = &core.Section{
				Name:  strings.TrimSpace(textContent(c)),
				Nodes: []*html.Node{c},
			}
			continue
		}
		// Content before the first heading belongs to no section.
		if current == nil {
			continue
		}
		current.Nodes = append(current.Nodes, c)
	}
	if current != nil {
		sections = append(sections, *current)
	}

	logger.Debug("parsed sections", "count", len(sections))
	return sections
}
