// Package rod provides a headless-browser implementation of kwscrape.Fetcher
// for pages that render their headings with JavaScript.
package rod

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/fwojciec/kwscrape"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout bounds a single navigation including page load.
const DefaultFetchTimeout = 30 * time.Second

// DefaultDocumentTimeout bounds the wait for the main document's response,
// even when the fetch timeout is disabled.
const DefaultDocumentTimeout = 30 * time.Second

// Ensure Fetcher implements kwscrape.Fetcher at compile time.
var _ kwscrape.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser   *rod.Browser
	launcher  *launcher.Launcher
	timeout   time.Duration
	docWait   time.Duration
	userAgent string
	closed    atomic.Bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the per-fetch timeout.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithDocumentTimeout sets how long to wait for the main document's
// response headers. Non-positive values keep DefaultDocumentTimeout.
func WithDocumentTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		if d > 0 {
			f.docWait = d
		}
	}
}

// WithUserAgent overrides the browser's User-Agent.
// Defaults to kwscrape.DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		docWait:   DefaultDocumentTimeout,
		userAgent: kwscrape.DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	// Launch browser using rod's launcher (finds or downloads Chrome)
	l := launcher.New().
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	f.browser = browser
	f.launcher = l
	return f, nil
}

// Fetch navigates to the URL, waits for the page to load, and returns the
// rendered HTML. A 4xx/5xx document response, or none at all, is
// EUNAVAILABLE.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.closed.Load() {
		return "", kwscrape.Errorf(kwscrape.EINVALID, "fetcher is closed")
	}

	// Check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx)

	if f.userAgent != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: f.userAgent}); err != nil {
			return "", fmt.Errorf("setting user agent: %w", err)
		}
	}

	// Capture the status of the main document; Navigate itself only fails
	// on network errors. Downloads and same-document navigations never
	// produce a document response, so the wait has its own deadline.
	docCtx, cancelDoc := context.WithTimeout(ctx, f.docWait)
	defer cancelDoc()
	docPage := page.Context(docCtx)

	var status int
	waitDocument := docPage.EachEvent(func(e *proto.NetworkResponseReceived) bool {
		if e.Type != proto.NetworkResourceTypeDocument {
			return false
		}
		status = e.Response.Status
		return true
	})

	if err := docPage.Navigate(url); err != nil {
		if ctx.Err() == nil && docCtx.Err() != nil {
			return "", f.noDocument(url)
		}
		return "", err
	}
	waitDocument()
	if err := ctx.Err(); err != nil {
		return "", err
	}

	switch {
	case status == 0:
		return "", f.noDocument(url)
	case status >= 400:
		return "", kwscrape.Errorf(kwscrape.EUNAVAILABLE, "HTTP %d for %s", status, url)
	}

	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	html, err := page.HTML()
	if err != nil {
		return "", err
	}

	return html, nil
}

func (f *Fetcher) noDocument(url string) error {
	return kwscrape.Errorf(kwscrape.EUNAVAILABLE, "no document response for %s within %s", url, f.docWait)
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}
	err := f.browser.Close()
	f.launcher.Kill()
	return err
}
