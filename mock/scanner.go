package mock

import (
	"context"

	"github.com/fwojciec/kwscrape"
)

var _ kwscrape.Scanner = (*Scanner)(nil)

// Scanner is a mock implementation of kwscrape.Scanner.
type Scanner struct {
	ScanFn func(ctx context.Context, url string, progress kwscrape.ScanProgressFunc) (*kwscrape.Result, error)
}

func (s *Scanner) Scan(ctx context.Context, url string, progress kwscrape.ScanProgressFunc) (*kwscrape.Result, error) {
	return s.ScanFn(ctx, url, progress)
}
