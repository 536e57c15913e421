package render

import (
	"strings"
	"testing"
)

const argumentText = `==================
Argument Reference
==================
The following arguments are supported:
• timeout - Amount of time to wait
  • nested_field - A nested argument
• standalone bullet without separator`

func TestFormatArguments_Heading(t *testing.T) {
	got := FormatArguments(testURL(), "body", 2)
	if first := strings.Split(got, "\n")[0]; first != "## Argument Reference: lb" {
		t.Errorf("first line: got %q", first)
	}
}

func TestFormatArguments_BulletBolding(t *testing.T) {
	got := FormatArguments(testURL(), argumentText, 1)

	if !strings.Contains(got, "- **`timeout`** - Amount of time to wait") {
		t.Errorf("top-level bullet not bolded:\n%s", got)
	}
	if !strings.Contains(got, "  - **`nested_field`** - A nested argument") {
		t.Errorf("nested bullet lost its indent:\n%s", got)
	}
	if !strings.Contains(got, "- standalone bullet without separator") {
		t.Errorf("separator-less bullet not passed through:\n%s", got)
	}
	if strings.Contains(got, "=====") {
		t.Error("banner rule survived formatting")
	}
}

func TestFormatArguments_GroupLabelPromotion(t *testing.T) {
	got := FormatArguments(testURL(), "Nested fields:", 1)
	if !strings.Contains(got, "### Nested fields") {
		t.Errorf("group label not promoted to heading:\n%s", got)
	}
	if strings.Contains(got, "Nested fields:") {
		t.Error("trailing colon not stripped from promoted heading")
	}
}

func TestFormatArguments_ExemptLabelsNotPromoted(t *testing.T) {
	for _, line := range []string{
		"Note: this matters:",
		"WARNING about defaults:",
		"Important caveat:",
	} {
		got := FormatArguments(testURL(), line, 1)
		if strings.Contains(got, "###") {
			t.Errorf("exempt label %q was promoted:\n%s", line, got)
		}
	}
}

func TestFormatArguments_SuppressedFence(t *testing.T) {
	content := "intro line\n```\nterraform\n```\nafter"
	got := FormatArguments(testURL(), content, 1)

	if strings.Contains(got, "```") {
		t.Errorf("artifact fence not suppressed:\n%s", got)
	}
	if strings.Contains(got, "terraform") {
		t.Errorf("artifact fence body survived:\n%s", got)
	}
	if !strings.Contains(got, "intro line") || !strings.Contains(got, "after") {
		t.Errorf("surrounding lines lost:\n%s", got)
	}
}

func TestFormatArguments_RealFenceKept(t *testing.T) {
	content := "```\nresource \"aws_lb\" \"x\" {\n  name = \"y\"\n}\n```"
	got := FormatArguments(testURL(), content, 1)

	if !strings.Contains(got, "```hcl") {
		t.Errorf("real fence not tagged:\n%s", got)
	}
	if !strings.Contains(got, "  name = \"y\"") {
		t.Errorf("code body lost:\n%s", got)
	}
}

func TestFormatArguments_ShortKeywordLineIsRealCode(t *testing.T) {
	// Two tokens but a configuration keyword: must stay a real block.
	content := "```\nresource {\n}\n```"
	got := FormatArguments(testURL(), content, 1)
	if !strings.Contains(got, "```hcl") {
		t.Errorf("keyword-prefixed block wrongly suppressed:\n%s", got)
	}
}

func TestFormatArguments_FencePairing(t *testing.T) {
	contents := []string{
		argumentText,
		"```\nresource \"a\" \"b\" {}\n```",
		"```\nterraform\n```",
		"unmatched\n```",
	}
	for _, content := range contents {
		got := FormatArguments(testURL(), content, 1)
		opening := strings.Count(got, "```hcl")
		closing := strings.Count(got, "```") - opening
		if opening != closing {
			t.Errorf("unpaired fences for %q: %d opening, %d closing", content, opening, closing)
		}
	}
}

func TestFormatArguments_IndentRoundTrip(t *testing.T) {
	zero := FormatArguments(testURL(), "• timeout - Amount of time to wait", 1)
	if !strings.Contains(zero, "\n- **`timeout`** - Amount of time to wait") {
		t.Errorf("zero indent: %q", zero)
	}

	two := FormatArguments(testURL(), "  • timeout - Amount of time to wait", 1)
	if !strings.Contains(two, "\n  - **`timeout`** - Amount of time to wait") {
		t.Errorf("two-space indent: %q", two)
	}
}
