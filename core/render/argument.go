package render

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/tfdocs/core/parse"
	"github.com/gaurav-prasanna/tfdocs/core/registry"
)

// hclKeywords are top-level block keywords in the configuration language.
// A code fence whose first line starts with one of these is real code; any
// other short first line marks the fence as a normalization artifact.
var hclKeywords = []string{"resource", "data", "module", "variable", "output"}

// headingExemptions keep note-style callouts ending in ':' from being
// promoted to subsection headings.
var headingExemptions = []string{"note", "warning", "important"}

// FormatArguments reflows a normalized Argument Reference section into
// markdown: bullet lines become bold inline-code argument names with their
// indent preserved, group labels ending in ':' are promoted to subsection
// headings, and spurious one-line code fences left over from normalization
// are suppressed along with their content. Malformed input falls through to
// a safe default rendering; this function never fails.
func FormatArguments(u *registry.ResourceURL, content string, headingLevel int) string {
	lines := []string{
		fmt.Sprintf("%s Argument Reference: %s", strings.Repeat("#", headingLevel), u.Resource),
		"",
	}

	contentLines := strings.Split(content, "\n")
	inCodeBlock := false
	skipCodeBlock := false
	subHeading := strings.Repeat("#", headingLevel+2)

	for i, line := range contentLines {
		if strings.TrimSpace(line) == fenceMarker {
			if !inCodeBlock {
				next := ""
				if i+1 < len(contentLines) {
					next = strings.TrimSpace(contentLines[i+1])
				}
				if len(strings.Fields(next)) <= 2 && !hasKeywordPrefix(next) {
					// Artifact fence: swallow the marker and its body.
					skipCodeBlock = true
					inCodeBlock = true
					continue
				}
				lines = append(lines, fenceMarker+codeLanguage)
				inCodeBlock = true
			} else {
				if skipCodeBlock {
					skipCodeBlock = false
					inCodeBlock = false
					continue
				}
				lines = append(lines, fenceMarker)
				inCodeBlock = false
			}
			continue
		}

		if skipCodeBlock && inCodeBlock {
			continue
		}
		if isBannerRule(line) {
			continue
		}

		stripped := strings.TrimLeft(line, " ")
		switch {
		case strings.HasPrefix(stripped, parse.Bullet):
			indent := strings.Repeat(" ", len(line)-len(stripped))
			argText := strings.TrimSpace(stripped[len(parse.Bullet):])
			if name, desc, found := strings.Cut(argText, "-"); found {
				lines = append(lines, fmt.Sprintf("%s- **`%s`** - %s",
					indent, strings.TrimSpace(name), strings.TrimSpace(desc)))
			} else {
				lines = append(lines, "- "+argText)
			}

		case stripped != "" && !inCodeBlock:
			if strings.HasSuffix(stripped, ":") && !containsExemption(stripped) {
				lines = append(lines, fmt.Sprintf("\n%s %s\n", subHeading, strings.TrimSuffix(stripped, ":")))
			} else {
				lines = append(lines, line)
			}

		case inCodeBlock:
			lines = append(lines, line)
		}
	}

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func hasKeywordPrefix(line string) bool {
	for _, kw := range hclKeywords {
		if strings.HasPrefix(line, kw) {
			return true
		}
	}
	return false
}

func containsExemption(line string) bool {
	lower := strings.ToLower(line)
	for _, word := range headingExemptions {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}
