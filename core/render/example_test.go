package render

import (
	"strings"
	"testing"

	"github.com/gaurav-prasanna/tfdocs/core"
	"github.com/gaurav-prasanna/tfdocs/core/registry"
)

func testURL() *registry.ResourceURL {
	return registry.FromComponents("hashicorp", "aws", "5.100.0", "lb")
}

const singleExampleText = `=============
Example Usage
=============
Basic usage:

` + "```" + `
resource "aws_lb" "example" {
  name = "test"
}
` + "```"

func TestFormatExamples_SingleSection(t *testing.T) {
	sections := []core.SectionText{{Name: "Example Usage", Text: singleExampleText}}
	got := FormatExamples(testURL(), sections, 1)

	lines := strings.Split(got, "\n")
	if lines[0] != "# Example Usage: lb" {
		t.Errorf("first line: got %q", lines[0])
	}
	if !strings.Contains(got, "```hcl") {
		t.Error("opening fence not tagged as hcl")
	}
	if strings.Contains(got, "=====") {
		t.Error("banner rule survived formatting")
	}
	if strings.Contains(got, "*Source:") {
		t.Error("single-section output must not carry a source line")
	}
}

func TestFormatExamples_HeadingLevel(t *testing.T) {
	sections := []core.SectionText{{Name: "Example Usage", Text: "body"}}
	for level := 1; level <= 4; level++ {
		got := FormatExamples(testURL(), sections, level)
		want := strings.Repeat("#", level) + " Example Usage: lb"
		if first := strings.Split(got, "\n")[0]; first != want {
			t.Errorf("level %d: got %q, want %q", level, first, want)
		}
	}
}

func TestFormatExamples_MultiSection(t *testing.T) {
	sections := []core.SectionText{
		{Name: "Example Usage - Basic", Text: "```\nresource \"aws_lb\" \"a\" {}\n```"},
		{Name: "Example Usage - Advanced", Text: "```\nresource \"aws_lb\" \"b\" {}\n```"},
	}
	got := FormatExamples(testURL(), sections, 1)

	basicIdx := strings.Index(got, "## Basic")
	advancedIdx := strings.Index(got, "## Advanced")
	if basicIdx == -1 || advancedIdx == -1 {
		t.Fatalf("subsection headings missing:\n%s", got)
	}
	if basicIdx > advancedIdx {
		t.Error("subsections out of document order")
	}
	if !strings.Contains(got, "\n---\n") {
		t.Error("horizontal rule missing between subsections")
	}
	want := "*Source: https://registry.terraform.io/providers/hashicorp/aws/5.100.0/docs/resources/lb*"
	if !strings.HasSuffix(got, want) {
		t.Errorf("source line missing, output ends with %q", got[max(0, len(got)-80):])
	}
}

func TestFormatExamples_MultiSectionFallbackNames(t *testing.T) {
	sections := []core.SectionText{
		{Name: "Example Usage", Text: "a"},
		{Name: "Example Usage - Advanced", Text: "b"},
	}
	got := FormatExamples(testURL(), sections, 2)

	if !strings.Contains(got, "### Example 1") {
		t.Errorf("fallback subsection name missing:\n%s", got)
	}
	if !strings.Contains(got, "### Advanced") {
		t.Errorf("named subsection missing:\n%s", got)
	}
}

func TestFormatExamples_FencePairing(t *testing.T) {
	sections := []core.SectionText{
		{Name: "Example Usage - Basic", Text: singleExampleText},
		{Name: "Example Usage - Advanced", Text: singleExampleText},
	}
	got := FormatExamples(testURL(), sections, 1)

	opening := strings.Count(got, "```hcl")
	closing := strings.Count(got, "```") - opening
	if opening != closing {
		t.Errorf("unpaired fences: %d opening, %d closing", opening, closing)
	}
}

func TestFormatExamples_Empty(t *testing.T) {
	if got := FormatExamples(testURL(), nil, 1); got != "" {
		t.Errorf("expected empty output for no sections, got %q", got)
	}
}
