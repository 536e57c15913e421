package render

import (
	"strings"
	"testing"
)

func TestDocumentMarkdown(t *testing.T) {
	md, err := DocumentMarkdown(`<div><h2>Example Usage</h2><p>Some text.</p></div>`)
	if err != nil {
		t.Fatalf("DocumentMarkdown: %v", err)
	}
	if !strings.Contains(md, "Example Usage") || !strings.Contains(md, "Some text.") {
		t.Errorf("content lost in conversion: %q", md)
	}
	if strings.Contains(md, "<h2>") {
		t.Errorf("HTML tags survived conversion: %q", md)
	}
}
