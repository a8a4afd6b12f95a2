package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/kwscrape"
)

var _ kwscrape.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher logs each page retrieval: the URL, the size of the
// returned HTML, how long it took, and the error code of a failure.
type LoggingFetcher struct {
	next   kwscrape.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher wraps next.
func NewLoggingFetcher(next kwscrape.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		level, attrs := outcome(err)
		attrs = append([]any{
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
		}, attrs...)
		f.logger.Log(ctx, level, "fetch", attrs...)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
