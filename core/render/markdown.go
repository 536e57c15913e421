// Package render — full-document markdown conversion.
package render

import (
	"fmt"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// DocumentMarkdown converts a documentation HTML fragment into Markdown.
// Used for whole-document export, where section-level reflow does not apply.
func DocumentMarkdown(html string) (string, error) {
	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return markdown, nil
}
