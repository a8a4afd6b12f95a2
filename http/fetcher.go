// Package http provides an HTTP-based implementation of kwscrape.Fetcher
// for pages that don't require JavaScript rendering.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/kwscrape"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 30 * time.Second

// Ensure Fetcher implements kwscrape.Fetcher at compile time.
var _ kwscrape.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using a single GET request.
// Unlike rod.Fetcher, this does not execute JavaScript.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests. Zero disables the timeout.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
// Defaults to kwscrape.DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithClient replaces the underlying HTTP client.
// The client's own Timeout takes precedence over WithTimeout.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: kwscrape.DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{
			Timeout: f.timeout,
		}
	}

	return f
}

// Fetch retrieves the page at url and returns its body decoded to UTF-8.
// Redirects are followed. Only a final 4xx or 5xx status is an error; other
// statuses return whatever body the server sent.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", kwscrape.Errorf(kwscrape.EINVALID, "invalid URL %q: %v", url, err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", kwscrape.Errorf(kwscrape.EUNAVAILABLE, "%v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", kwscrape.Errorf(kwscrape.EUNAVAILABLE, "HTTP %d %s for %s",
			resp.StatusCode, http.StatusText(resp.StatusCode), url)
	}

	// Pages declare their encoding in Content-Type or a meta tag;
	// goquery expects UTF-8.
	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", kwscrape.Errorf(kwscrape.EUNAVAILABLE, "decoding %s: %v", url, err)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return "", kwscrape.Errorf(kwscrape.EUNAVAILABLE, "reading %s: %v", url, err)
	}

	return string(data), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
