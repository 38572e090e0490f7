package slog_test

import (
	"bytes"
	"context"
	"errors"
	stdslog "log/slog"
	"testing"

	"github.com/fwojciec/docset"
	"github.com/fwojciec/docset/mock"
	"github.com/fwojciec/docset/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger(buf *bytes.Buffer) *stdslog.Logger {
	return stdslog.New(stdslog.NewTextHandler(buf, &stdslog.HandlerOptions{Level: stdslog.LevelDebug}))
}

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs successful fetches", func(t *testing.T) {
		t.Parallel()

		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*docset.FetchResult, error) {
				return &docset.FetchResult{StatusCode: 200, Body: "hello"}, nil
			},
		}
		var buf bytes.Buffer
		fetcher := slog.NewLoggingFetcher(next, testLogger(&buf))

		result, err := fetcher.Fetch(context.Background(), "https://example.com/page")
		require.NoError(t, err)
		assert.Equal(t, 200, result.StatusCode)

		out := buf.String()
		assert.Contains(t, out, "fetch")
		assert.Contains(t, out, "url=https://example.com/page")
		assert.Contains(t, out, "status=200")
		assert.Contains(t, out, "bytes=5")
		assert.Contains(t, out, "duration=")
	})

	t.Run("logs errors", func(t *testing.T) {
		t.Parallel()

		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*docset.FetchResult, error) {
				return nil, errors.New("connection refused")
			},
		}
		var buf bytes.Buffer
		fetcher := slog.NewLoggingFetcher(next, testLogger(&buf))

		_, err := fetcher.Fetch(context.Background(), "https://example.com")
		require.Error(t, err)

		out := buf.String()
		assert.Contains(t, out, "level=ERROR")
		assert.Contains(t, out, "connection refused")
	})

	t.Run("close delegates", func(t *testing.T) {
		t.Parallel()

		closed := false
		next := &mock.Fetcher{CloseFn: func() error { closed = true; return nil }}
		fetcher := slog.NewLoggingFetcher(next, testLogger(&bytes.Buffer{}))

		require.NoError(t, fetcher.Close())
		assert.True(t, closed)
	})
}
