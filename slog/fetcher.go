// Package slog provides logging decorators for docset services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docset"
)

// Ensure LoggingFetcher implements docset.Fetcher at compile time.
var _ docset.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with per-request logging.
type LoggingFetcher struct {
	next   docset.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next docset.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher, logging the URL, status, size
// and duration of each request.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (*docset.FetchResult, error) {
	begin := time.Now()
	result, err := f.next.Fetch(ctx, url)
	duration := time.Since(begin)

	if err != nil {
		f.logger.Error("fetch",
			slog.String("url", url),
			slog.String("err", err.Error()),
			slog.Duration("duration", duration),
		)
		return nil, err
	}

	f.logger.Debug("fetch",
		slog.String("url", url),
		slog.Int("status", result.StatusCode),
		slog.Int("bytes", len(result.Body)),
		slog.Duration("duration", duration),
	)
	return result, nil
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
