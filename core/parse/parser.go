package parse

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/gaurav-prasanna/tfdocs/core"
)

// Parser indexes the sections of one rendered documentation page.
// Splitting is lazy and memoized: the document is partitioned on first
// access and the result reused for the Parser's lifetime. Lookup misses are
// reported as absent values, never as errors.
type Parser struct {
	doc      *goquery.Document
	logger   *slog.Logger
	split    bool
	sections []core.Section
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) ParserOption {
	return func(p *Parser) { p.logger = l }
}

// NewParser parses raw HTML into a section index.
func NewParser(rawHTML string, opts ...ParserOption) (*Parser, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	p := &Parser{doc: doc, logger: slog.Default()}
	for _, o := range opts {
		o(p)
	}
	return p, nil
}

// Sections returns all sections in document order, splitting on first call.
func (p *Parser) Sections() []core.Section {
	if !p.split {
		p.sections = Split(p.doc, p.logger)
		p.split = true
	}
	return p.sections
}

// ListSections returns all section names in document order.
func (p *Parser) ListSections() []string {
	sections := p.Sections()
	names := make([]string, 0, len(sections))
	for _, s := range sections {
		names = append(names, s.Name)
	}
	return names
}

// find returns the first section whose name equals name, case-insensitively.
func (p *Parser) find(name string) (core.Section, bool) {
	for _, s := range p.Sections() {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return core.Section{}, false
}

// SectionHTML returns a section's content serialized as HTML.
func (p *Parser) SectionHTML(name string) (string, bool) {
	s, ok := p.find(name)
	if !ok {
		p.logger.Warn("section not found", "section", name)
		return "", false
	}
	return renderSection(s), true
}

// SectionText returns a section's content as normalized plain text.
func (p *Parser) SectionText(name string) (string, bool) {
	s, ok := p.find(name)
	if !ok {
		return "", false
	}
	return Normalize(s.Nodes), true
}

// SectionsHTML looks up several sections by name. Absent sections map to
// nil entries; absence is an expected outcome, not an error.
func (p *Parser) SectionsHTML(names []string) map[string]*string {
	result := make(map[string]*string, len(names))
	for _, name := range names {
		if content, ok := p.SectionHTML(name); ok {
			result[name] = &content
		} else {
			result[name] = nil
		}
	}
	return result
}

// SectionsText is SectionsHTML with normalized text content.
func (p *Parser) SectionsText(names []string) map[string]*string {
	result := make(map[string]*string, len(names))
	for _, name := range names {
		if content, ok := p.SectionText(name); ok {
			result[name] = &content
		} else {
			result[name] = nil
		}
	}
	return result
}

// SectionsByPrefix returns every section whose name starts with prefix
// (case-insensitive), as serialized HTML, in document order.
func (p *Parser) SectionsByPrefix(prefix string) []core.SectionText {
	var matches []core.SectionText
	for _, s := range p.Sections() {
		if hasPrefixFold(s.Name, prefix) {
			matches = append(matches, core.SectionText{Name: s.Name, Text: renderSection(s)})
		}
	}
	return matches
}

// TextByPrefix returns every section whose name starts with prefix
// (case-insensitive), as normalized text, in document order.
func (p *Parser) TextByPrefix(prefix string) []core.SectionText {
	var matches []core.SectionText
	for _, s := range p.Sections() {
		if hasPrefixFold(s.Name, prefix) {
			matches = append(matches, core.SectionText{Name: s.Name, Text: Normalize(s.Nodes)})
		}
	}
	return matches
}

// FullDocumentHTML returns the raw documentation root, unmodified.
func (p *Parser) FullDocumentHTML() (string, bool) {
	root := documentRoot(p.doc)
	if root == nil {
		return "", false
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, root); err != nil {
		return "", false
	}
	return buf.String(), true
}

// FullDocumentText returns the documentation root's text with element
// boundaries as line breaks.
func (p *Parser) FullDocumentText() (string, bool) {
	root := documentRoot(p.doc)
	if root == nil {
		return "", false
	}
	return joinedText(root), true
}

// renderSection serializes a section's nodes inside a wrapper div, keeping
// the heading followed by its content in document order.
func renderSection(s core.Section) string {
	var buf bytes.Buffer
	buf.WriteString("<div>")
	for _, n := range s.Nodes {
		if err := html.Render(&buf, n); err != nil {
			continue
		}
	}
	buf.WriteString("</div>")
	return buf.String()
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
