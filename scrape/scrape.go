// Package scrape coordinates fetching a page, extracting its headings, and
// turning the product headings into keyword sets.
package scrape

import (
	"context"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/kwscrape"
	"github.com/google/uuid"
)

// Ensure Scraper implements kwscrape.Scanner at compile time.
var _ kwscrape.Scanner = (*Scraper)(nil)

// Scraper scans a single page for product names.
type Scraper struct {
	Fetcher    kwscrape.Fetcher
	Headings   kwscrape.HeadingExtractor
	Indicators []string

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Scan fetches url once and returns the products named by its headings.
//
// On fetch or parse failure Scan returns an empty, non-nil Result along
// with the error, so callers can always render an outcome. No retries are
// attempted. The progress callback, if provided, is called before the fetch
// and again once the page has been retrieved.
func (s *Scraper) Scan(ctx context.Context, url string, progress kwscrape.ScanProgressFunc) (*kwscrape.Result, error) {
	result := &kwscrape.Result{
		ID:  uuid.New().String(),
		URL: url,
	}

	if url == "" {
		return result, kwscrape.Errorf(kwscrape.EINVALID, "URL required")
	}

	emit := func(p kwscrape.ScanProgress) {
		if progress != nil {
			progress(p)
		}
	}

	emit(kwscrape.ScanProgress{Stage: kwscrape.ScanFetching, URL: url})

	html, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return result, fmt.Errorf("fetching %s: %w", url, err)
	}
	result.FetchedAt = s.now().UTC()
	result.ContentHash = fmt.Sprintf("%016x", xxhash.Sum64String(html))

	emit(kwscrape.ScanProgress{Stage: kwscrape.ScanAnalyzing, URL: url, Bytes: len(html)})

	headings, err := s.Headings.Headings(html)
	if err != nil {
		return result, fmt.Errorf("extracting headings from %s: %w", url, err)
	}

	indicators := s.Indicators
	if len(indicators) == 0 {
		indicators = kwscrape.DefaultIndicators
	}

	catalog := kwscrape.NewCatalog()
	for _, heading := range headings {
		if !kwscrape.ContainsIndicator(heading, indicators) {
			continue
		}
		catalog.Add(kwscrape.CleanTitle(heading))
	}

	result.Products = catalog.Products()
	result.Keywords = catalog.Keywords()

	return result, nil
}

func (s *Scraper) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
