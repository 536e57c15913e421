// Package fetch implements the Fetcher interface with a headless browser.
// Registry documentation pages are rendered client-side, so a plain HTTP GET
// returns an empty shell; this fetcher drives Chrome via Rod, waits for the
// page's article element, and returns the rendered DOM.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/stealth"
)

const (
	defaultTimeout = 10 * time.Second
	defaultSettle  = 2 * time.Second

	// contentSelector is the element that signals the page has rendered.
	contentSelector = "article"
)

// Sentinel errors classifying fetch failures.
var (
	ErrTimeout    = errors.New("timed out waiting for page content")
	ErrNavigation = errors.New("navigation failed")
)

// BrowserFetcher fetches JavaScript-rendered pages via headless Chrome.
type BrowserFetcher struct {
	headless bool
	timeout  time.Duration
	settle   time.Duration
	logger   *slog.Logger
}

// Option configures a BrowserFetcher.
type Option func(*BrowserFetcher)

// WithHeadless toggles headless mode (default true).
func WithHeadless(headless bool) Option {
	return func(f *BrowserFetcher) { f.headless = headless }
}

// WithTimeout sets the maximum wait for the page's content element.
func WithTimeout(d time.Duration) Option {
	return func(f *BrowserFetcher) { f.timeout = d }
}

// WithSettleDelay sets the extra wait after the content element appears,
// giving client-side rendering time to finish.
func WithSettleDelay(d time.Duration) Option {
	return func(f *BrowserFetcher) { f.settle = d }
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(f *BrowserFetcher) { f.logger = l }
}

// New creates a BrowserFetcher with sensible defaults.
func New(opts ...Option) *BrowserFetcher {
	f := &BrowserFetcher{
		headless: true,
		timeout:  defaultTimeout,
		settle:   defaultSettle,
		logger:   slog.Default(),
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

// Fetch navigates to the URL in a fresh browser, waits for the content
// element plus the settle delay, and returns the rendered HTML.
func (f *BrowserFetcher) Fetch(ctx context.Context, url string) (string, error) {
	f.logger.Info("fetching page", "url", url)

	controlURL, err := launcher.New().
		Headless(f.headless).
		NoSandbox(true).
		Launch()
	if err != nil {
		return "", fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return "", fmt.Errorf("connecting to browser: %w", err)
	}
	defer browser.Close()

	page, err := stealth.Page(browser)
	if err != nil {
		return "", fmt.Errorf("creating page: %w", err)
	}
	defer page.Close()

	if err := page.Navigate(url); err != nil {
		return "", fmt.Errorf("navigating to %s: %w", url, ErrNavigation)
	}

	// Block until the content element is rendered, bounded by the timeout.
	if _, err := page.Timeout(f.timeout).Element(contentSelector); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("waiting for %q on %s: %w", contentSelector, url, ErrTimeout)
		}
		return "", fmt.Errorf("waiting for %q on %s: %w", contentSelector, url, err)
	}

	time.Sleep(f.settle)

	html, err := page.HTML()
	if err != nil {
		return "", fmt.Errorf("reading page HTML: %w", err)
	}

	f.logger.Debug("page fetched", "url", url, "html_length", len(html))
	return html, nil
}
