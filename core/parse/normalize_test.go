package parse

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

// fragmentNodes parses an HTML fragment and returns the body's child nodes,
// mimicking the node sequence a section wrapper holds.
func fragmentNodes(t *testing.T, fragment string) []*html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader("<html><body>" + fragment + "</body></html>"))
	if err != nil {
		t.Fatalf("parsing fragment: %v", err)
	}
	body := findElement(doc, "body")
	if body == nil {
		t.Fatal("no body in parsed fragment")
	}
	var nodes []*html.Node
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		nodes = append(nodes, c)
	}
	return nodes
}

func TestNormalize_HeadingBanner(t *testing.T) {
	got := Normalize(fragmentNodes(t, "<h3>Timeouts</h3>"))
	want := "========\nTimeouts\n========"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNormalize_Paragraph(t *testing.T) {
	got := Normalize(fragmentNodes(t, "<p>  Some text.  </p><p>   </p>"))
	if got != "Some text." {
		t.Errorf("got %q, want %q", got, "Some text.")
	}
}

func TestNormalize_CodeBlockVerbatim(t *testing.T) {
	got := Normalize(fragmentNodes(t, "<pre>resource \"aws_lb\" \"x\" {\n  name = \"y\"\n}</pre>"))
	want := "```\nresource \"aws_lb\" \"x\" {\n  name = \"y\"\n}\n```"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNormalize_DivWithNestedCode(t *testing.T) {
	got := Normalize(fragmentNodes(t, `<div><span>copy</span><pre>a = 1</pre></div>`))
	if !strings.Contains(got, "```\na = 1\n```") {
		t.Errorf("nested code not fenced: %q", got)
	}
}

func TestNormalize_DivWithoutCode(t *testing.T) {
	got := Normalize(fragmentNodes(t, `<div><span>first</span><span>second</span></div>`))
	if got != "first\nsecond" {
		t.Errorf("got %q, want %q", got, "first\nsecond")
	}
}

func TestNormalize_ListBullets(t *testing.T) {
	got := Normalize(fragmentNodes(t, `<ul><li>name - The name.</li><li>port - The port.</li></ul>`))
	want := "• name - The name.\n• port - The port."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNormalize_NestedListsNotRecursed(t *testing.T) {
	got := Normalize(fragmentNodes(t, `<ul><li>outer<ul><li>inner</li></ul></li></ul>`))
	// One bullet only; the nested item flattens into its parent's text.
	if strings.Count(got, Bullet) != 1 {
		t.Errorf("expected exactly one bullet, got %q", got)
	}
	if !strings.Contains(got, "inner") {
		t.Errorf("nested item text lost: %q", got)
	}
}

func TestNormalize_Blockquote(t *testing.T) {
	got := Normalize(fragmentNodes(t, `<blockquote>Note: be careful.</blockquote>`))
	if got != "> Note: be careful." {
		t.Errorf("got %q, want %q", got, "> Note: be careful.")
	}
}

func TestNormalize_BlankLineCollapse(t *testing.T) {
	// Empty lists each emit a trailing blank line; runs of blank lines
	// must collapse to a single one.
	got := Normalize(fragmentNodes(t, `<p>first</p><ul></ul><ul></ul><ul></ul><p>second</p>`))
	if got != "first\n\nsecond" {
		t.Errorf("got %q, want %q", got, "first\n\nsecond")
	}
}

func TestNormalize_FencePairing(t *testing.T) {
	got := Normalize(fragmentNodes(t,
		`<pre>a</pre><p>mid</p><div><code>b</code></div><pre>c</pre>`))
	if n := strings.Count(got, "```"); n%2 != 0 {
		t.Errorf("unpaired fences: %d markers in %q", n, got)
	}
}

func TestNormalize_Deterministic(t *testing.T) {
	nodes := fragmentNodes(t, docSectionFragment)
	first := Normalize(nodes)
	second := Normalize(nodes)
	if first != second {
		t.Error("Normalize is not deterministic for identical input")
	}
}

const docSectionFragment = `<h2>Example Usage</h2>
<p>Basic usage:</p>
<pre>resource "aws_lb" "example" {}</pre>
<ul><li>one - first</li></ul>
<blockquote>quoted</blockquote>`
