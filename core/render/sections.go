// Package render — section-set output formats.
// A section set is the result of a batch lookup: section name → content,
// with nil marking sections the document does not have.
package render

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SectionSet maps section names to their extracted content.
// A nil value records a requested section that was absent.
type SectionSet map[string]*string

// RenderJSON marshals the section set as an indented JSON object.
// Absent sections appear as explicit nulls.
func RenderJSON(sections SectionSet) ([]byte, error) {
	data, err := json.MarshalIndent(sections, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling sections: %w", err)
	}
	return data, nil
}

// RenderHTML concatenates present sections with comment markers, in the
// order given by names.
func RenderHTML(names []string, sections SectionSet) []byte {
	var blocks []string
	for _, name := range names {
		if content := sections[name]; content != nil {
			blocks = append(blocks, fmt.Sprintf("<!-- Section: %s -->\n%s", name, *content))
		}
	}
	return []byte(strings.Join(blocks, "\n\n"))
}

// RenderText concatenates present sections with `=== name ===` markers, in
// the order given by names.
func RenderText(names []string, sections SectionSet) []byte {
	var blocks []string
	for _, name := range names {
		if content := sections[name]; content != nil {
			blocks = append(blocks, fmt.Sprintf("=== %s ===\n%s", name, *content))
		}
	}
	return []byte(strings.Join(blocks, "\n\n"))
}
