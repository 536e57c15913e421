// Package render reflows normalized section text into the final markdown
// shapes: Example Usage documents, Argument Reference documents, and the
// raw section-set output formats (JSON, HTML, text).
package render

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/tfdocs/core"
	"github.com/gaurav-prasanna/tfdocs/core/registry"
)

// fenceMarker delimits code blocks in normalized text and markdown output.
const fenceMarker = "```"

// codeLanguage tags rewritten code fences.
const codeLanguage = "hcl"

// FormatExamples reflows one or more Example Usage sections into markdown.
// With a single section the body follows the main heading directly. With
// several (compound names like "Example Usage - Basic"), each becomes a
// subsection one level deeper, separated by horizontal rules, with a
// trailing source-attribution line.
func FormatExamples(u *registry.ResourceURL, sections []core.SectionText, headingLevel int) string {
	if len(sections) == 0 {
		return ""
	}
	if len(sections) == 1 {
		return formatSingleExample(u, sections[0].Text, headingLevel)
	}
	return formatMultipleExamples(u, sections, headingLevel)
}

func formatSingleExample(u *registry.ResourceURL, content string, headingLevel int) string {
	lines := []string{
		fmt.Sprintf("%s Example Usage: %s", strings.Repeat("#", headingLevel), u.Resource),
		"",
	}
	lines = append(lines, reflowExampleBody(content)...)
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func formatMultipleExamples(u *registry.ResourceURL, sections []core.SectionText, headingLevel int) string {
	lines := []string{
		fmt.Sprintf("%s Example Usage: %s", strings.Repeat("#", headingLevel), u.Resource),
		"",
	}

	subHeading := strings.Repeat("#", headingLevel+1)
	for i, s := range sections {
		// "Example Usage - Basic" → "Basic"; unnamed variants are numbered.
		if _, suffix, found := strings.Cut(s.Name, " - "); found {
			lines = append(lines, subHeading+" "+suffix)
		} else {
			lines = append(lines, fmt.Sprintf("%s Example %d", subHeading, i+1))
		}
		lines = append(lines, "")
		lines = append(lines, reflowExampleBody(s.Text)...)
		lines = append(lines, "", "---", "")
	}

	lines = append(lines, fmt.Sprintf("*Source: %s*", u))
	return strings.Join(lines, "\n")
}

// reflowExampleBody rewrites opening fences to tagged ones, drops the
// normalizer's banner rules, and passes everything else through.
func reflowExampleBody(content string) []string {
	var lines []string
	inCodeBlock := false

	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == fenceMarker {
			if !inCodeBlock {
				lines = append(lines, fenceMarker+codeLanguage)
				inCodeBlock = true
			} else {
				lines = append(lines, fenceMarker)
				inCodeBlock = false
			}
			continue
		}
		if isBannerRule(line) {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// isBannerRule reports whether line is a heading rule emitted by the
// normalizer: it starts with '=' and consists solely of '=' once trimmed.
func isBannerRule(line string) bool {
	if !strings.HasPrefix(line, "=") {
		return false
	}
	return strings.Trim(strings.TrimSpace(line), "=") == ""
}
