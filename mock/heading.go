package mock

import "github.com/fwojciec/kwscrape"

var _ kwscrape.HeadingExtractor = (*HeadingExtractor)(nil)

// HeadingExtractor is a mock implementation of kwscrape.HeadingExtractor.
type HeadingExtractor struct {
	HeadingsFn func(html string) ([]string, error)
}

func (e *HeadingExtractor) Headings(html string) ([]string, error) {
	return e.HeadingsFn(html)
}
