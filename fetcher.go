package kwscrape

import "context"

// DefaultURL is the page scanned when no URL is given.
const DefaultURL = "https://nestnepal.com/"

// DefaultUserAgent is sent with every request. Some hosting storefronts
// serve a stripped page to clients that do not look like a desktop browser.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch retrieves the page at url and returns its HTML.
	// Network failures and non-success statuses return EUNAVAILABLE.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the Fetcher.
	Close() error
}
