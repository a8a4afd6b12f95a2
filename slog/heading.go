package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/kwscrape"
)

var _ kwscrape.HeadingExtractor = (*LoggingHeadingExtractor)(nil)

// LoggingHeadingExtractor logs how many candidate headings each page held.
type LoggingHeadingExtractor struct {
	next   kwscrape.HeadingExtractor
	logger *slog.Logger
}

// NewLoggingHeadingExtractor wraps next.
func NewLoggingHeadingExtractor(next kwscrape.HeadingExtractor, logger *slog.Logger) *LoggingHeadingExtractor {
	return &LoggingHeadingExtractor{next: next, logger: logger}
}

func (e *LoggingHeadingExtractor) Headings(html string) (headings []string, err error) {
	defer func(begin time.Time) {
		level, attrs := outcome(err)
		attrs = append([]any{
			"bytes", len(html),
			"count", len(headings),
			"duration", time.Since(begin),
		}, attrs...)
		e.logger.Log(context.Background(), level, "extract headings", attrs...)
	}(time.Now())
	return e.next.Headings(html)
}
