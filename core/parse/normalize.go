package parse

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// Bullet is the glyph prefixing list items in normalized text.
const Bullet = "• "

var blankRuns = regexp.MustCompile(`\n{3,}`)

// Normalize renders a section's nodes as readable plain text, preserving
// code blocks, lists, quotes and nested headings. Only direct children are
// dispatched; descendants contribute through text extraction. The result is
// deterministic: runs of blank lines are collapsed to one and the whole
// string is trimmed.
func Normalize(nodes []*html.Node) string {
	var b strings.Builder

	for _, n := range nodes {
		if n.Type != html.ElementNode {
			continue
		}
		switch n.Data {
		case "h1", "h2", "h3", "h4", "h5", "h6":
			text := strings.TrimSpace(textContent(n))
			rule := strings.Repeat("=", utf8.RuneCountInString(text))
			fmt.Fprintf(&b, "\n%s\n%s\n%s\n", rule, text, rule)

		case "p":
			if text := strings.TrimSpace(textContent(n)); text != "" {
				b.WriteString(text + "\n")
			}

		case "pre", "code":
			// Code is emitted verbatim, not trimmed.
			fmt.Fprintf(&b, "\n```\n%s\n```\n", textContent(n))

		case "div":
			code := findElement(n, "pre")
			if code == nil {
				code = findElement(n, "code")
			}
			if code != nil {
				fmt.Fprintf(&b, "\n```\n%s\n```\n", textContent(code))
			} else if text := joinedText(n); text != "" {
				b.WriteString(text + "\n")
			}

		case "ul", "ol":
			// One bullet per direct list item; nested lists flatten into
			// their parent item's text.
			for li := n.FirstChild; li != nil; li = li.NextSibling {
				if li.Type == html.ElementNode && li.Data == "li" {
					b.WriteString(Bullet + strings.TrimSpace(textContent(li)) + "\n")
				}
			}
			b.WriteString("\n")

		case "blockquote":
			text := strings.TrimSpace(textContent(n))
			for _, line := range strings.Split(text, "\n") {
				b.WriteString("> " + line + "\n")
			}
			b.WriteString("\n")

		default:
			if text := joinedText(n); text != "" {
				b.WriteString(text + "\n")
			}
		}
	}

	out := blankRuns.ReplaceAllString(b.String(), "\n\n")
	return strings.TrimSpace(out)
}
