// Package slog provides decorators that log calls to kwscrape services
// using log/slog.
package slog

import (
	"log/slog"

	"github.com/fwojciec/kwscrape"
)

// outcome returns the level and attributes describing err.
// Failures are logged at Warn with their application code.
func outcome(err error) (slog.Level, []any) {
	if err == nil {
		return slog.LevelInfo, nil
	}
	return slog.LevelWarn, []any{
		"code", kwscrape.ErrorCode(err),
		"err", err,
	}
}
