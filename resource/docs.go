// Package resource provides the high-level interface for extracting a
// registry resource's documentation: formatted Example Usage and Argument
// Reference markdown, file saving, and batch extraction.
//
// Fetched HTML is cached per canonical URL, so multiple operations against
// the same resource fetch the page once.
package resource

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gaurav-prasanna/tfdocs/core"
	"github.com/gaurav-prasanna/tfdocs/core/fetch"
	"github.com/gaurav-prasanna/tfdocs/core/output"
	"github.com/gaurav-prasanna/tfdocs/core/parse"
	"github.com/gaurav-prasanna/tfdocs/core/registry"
	"github.com/gaurav-prasanna/tfdocs/core/render"
)

const (
	exampleUsageSection      = "Example Usage"
	argumentReferenceSection = "Argument Reference"
)

// Docs extracts and formats resource documentation. It holds a single
// fetcher and a per-URL HTML cache with at most one entry per canonical URL.
// Methods are synchronous; the cache assumes a single writer.
type Docs struct {
	fetcher core.Fetcher
	logger  *slog.Logger
	cache   map[string]string
}

// Option configures Docs.
type Option func(*Docs)

// WithFetcher sets the page fetcher. Defaults to the headless-browser fetcher.
func WithFetcher(f core.Fetcher) Option {
	return func(d *Docs) { d.fetcher = f }
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(d *Docs) { d.logger = l }
}

// New creates a Docs extractor.
func New(opts ...Option) *Docs {
	d := &Docs{
		logger: slog.Default(),
		cache:  make(map[string]string),
	}
	for _, o := range opts {
		o(d)
	}
	if d.fetcher == nil {
		d.fetcher = fetch.New(fetch.WithLogger(d.logger))
	}
	return d
}

// ClearCache drops all cached page HTML, forcing re-fetches.
func (d *Docs) ClearCache() {
	d.logger.Debug("clearing HTML cache", "entries", len(d.cache))
	d.cache = make(map[string]string)
}

// html returns the page HTML for a canonical URL, fetching on cache miss.
func (d *Docs) html(ctx context.Context, u *registry.ResourceURL) (string, error) {
	key := u.String()
	if cached, ok := d.cache[key]; ok {
		d.logger.Debug("using cached HTML", "url", key)
		return cached, nil
	}

	html, err := d.fetcher.Fetch(ctx, key)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", key, err)
	}
	d.cache[key] = html
	return html, nil
}

// parserFor resolves the URL, fetches (or reuses) the page, and returns a
// section parser for it.
func (d *Docs) parserFor(ctx context.Context, rawURL string) (*parse.Parser, *registry.ResourceURL, error) {
	u, err := registry.Parse(rawURL)
	if err != nil {
		return nil, nil, err
	}
	html, err := d.html(ctx, u)
	if err != nil {
		return nil, nil, err
	}
	p, err := parse.NewParser(html, parse.WithLogger(d.logger))
	if err != nil {
		return nil, nil, err
	}
	return p, u, nil
}

// Extraction holds the formatted markdown for one resource. An empty field
// records a section the page does not have; absence is not an error.
type Extraction struct {
	Examples  string
	Arguments string
}

// ExtractAll extracts both Example Usage and Argument Reference, formatted
// as markdown at the given heading level. The page is fetched at most once.
func (d *Docs) ExtractAll(ctx context.Context, rawURL string, headingLevel int) (*Extraction, error) {
	p, u, err := d.parserFor(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	ex := &Extraction{}
	if md, ok := formatExamples(p, u, headingLevel); ok {
		ex.Examples = md
	} else {
		d.logger.Warn("no Example Usage sections found", "url", u)
	}
	if md, ok := formatArguments(p, u, headingLevel); ok {
		ex.Arguments = md
	} else {
		d.logger.Warn("Argument Reference section not found", "url", u)
	}
	return ex, nil
}

// Examples extracts only the Example Usage section(s). Returns an empty
// string when the page has none.
func (d *Docs) Examples(ctx context.Context, rawURL string, headingLevel int) (string, error) {
	p, u, err := d.parserFor(ctx, rawURL)
	if err != nil {
		return "", err
	}
	md, _ := formatExamples(p, u, headingLevel)
	return md, nil
}

// Arguments extracts only the Argument Reference section. Returns an empty
// string when the page has none.
func (d *Docs) Arguments(ctx context.Context, rawURL string, headingLevel int) (string, error) {
	p, u, err := d.parserFor(ctx, rawURL)
	if err != nil {
		return "", err
	}
	md, _ := formatArguments(p, u, headingLevel)
	return md, nil
}

// SaveResult reports the files written for one resource. Empty paths mean
// the corresponding section was absent.
type SaveResult struct {
	ExamplesPath  string
	ArgumentsPath string
}

// SaveToFiles extracts both sections and writes them under outputDir as
// {resource}_examples and {resource}_arguments, markdown by default or PDF
// when asPDF is set. The page is fetched once and formatted twice.
func (d *Docs) SaveToFiles(ctx context.Context, rawURL, outputDir string, headingLevel int, asPDF bool) (SaveResult, error) {
	var result SaveResult

	u, err := registry.Parse(rawURL)
	if err != nil {
		return result, err
	}

	extraction, err := d.ExtractAll(ctx, rawURL, headingLevel)
	if err != nil {
		return result, err
	}

	writer, err := output.New(outputDir)
	if err != nil {
		return result, err
	}

	ext := ".md"
	if asPDF {
		ext = ".pdf"
	}

	if extraction.Examples != "" {
		data, err := renderDoc(extraction.Examples, "Example Usage: "+u.Resource, u.String(), asPDF)
		if err != nil {
			return result, err
		}
		path, err := writer.Write(output.ExamplesFilename(u.Resource, ext), data)
		if err != nil {
			return result, err
		}
		result.ExamplesPath = path
		d.logger.Info("saved Example Usage", "file", path)
	}

	if extraction.Arguments != "" {
		data, err := renderDoc(extraction.Arguments, "Argument Reference: "+u.Resource, u.String(), asPDF)
		if err != nil {
			return result, err
		}
		path, err := writer.Write(output.ArgumentsFilename(u.Resource, ext), data)
		if err != nil {
			return result, err
		}
		result.ArgumentsPath = path
		d.logger.Info("saved Argument Reference", "file", path)
	}

	return result, nil
}

// BatchExtract saves documentation for multiple resources, keyed by input
// URL. Invalid URLs and failed fetches record a zero SaveResult and do not
// abort the batch.
func (d *Docs) BatchExtract(ctx context.Context, urls []string, outputDir string, headingLevel int) map[string]SaveResult {
	results := make(map[string]SaveResult, len(urls))
	d.logger.Info("starting batch extraction", "count", len(urls))

	for _, rawURL := range urls {
		result, err := d.SaveToFiles(ctx, rawURL, outputDir, headingLevel, false)
		if err != nil {
			d.logger.Warn("skipping resource", "url", rawURL, "error", err)
			results[rawURL] = SaveResult{}
			continue
		}
		results[rawURL] = result
	}

	d.logger.Info("batch extraction complete")
	return results
}

func formatExamples(p *parse.Parser, u *registry.ResourceURL, headingLevel int) (string, bool) {
	sections := p.TextByPrefix(exampleUsageSection)
	if len(sections) == 0 {
		return "", false
	}
	return render.FormatExamples(u, sections, headingLevel), true
}

func formatArguments(p *parse.Parser, u *registry.ResourceURL, headingLevel int) (string, bool) {
	text, ok := p.SectionText(argumentReferenceSection)
	if !ok || strings.TrimSpace(text) == "" {
		return "", false
	}
	return render.FormatArguments(u, text, headingLevel), true
}

func renderDoc(markdown, title, sourceURL string, asPDF bool) ([]byte, error) {
	if !asPDF {
		return []byte(markdown), nil
	}
	return render.RenderPDF(markdown, title, sourceURL)
}
