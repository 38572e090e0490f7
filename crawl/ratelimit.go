// Package crawl provides the documentation crawl engine: a breadth-first
// link-following scraper with per-site policy rules, a rate limiter,
// redirect resolution, and filter pipeline execution.
package crawl

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// DefaultRequestsPerMinute is the per-minute request ceiling applied when
// none is configured.
const DefaultRequestsPerMinute = 60

// defaultMinInterval is the minimum spacing between consecutive requests
// while under the per-minute ceiling.
const defaultMinInterval = 100 * time.Millisecond

// RateLimiter throttles outbound requests to a per-minute ceiling with a
// minimum inter-request spacing. It is safe for concurrent use; a caller
// blocked in Wait does not hold the lock, so other goroutines keep running.
type RateLimiter struct {
	mu      sync.Mutex
	limit   int
	minute  int64
	counter int

	spacing *rate.Limiter

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// RateLimiterOption configures a RateLimiter.
type RateLimiterOption func(*RateLimiter)

// WithMinInterval sets the minimum spacing between requests while under the
// per-minute ceiling. Zero disables spacing.
func WithMinInterval(d time.Duration) RateLimiterOption {
	return func(l *RateLimiter) {
		l.spacing = spacingLimiter(d)
	}
}

// WithClock replaces the wall clock and sleep function. This exists for
// testing the minute-boundary behavior without real waiting.
func WithClock(now func() time.Time, sleep func(ctx context.Context, d time.Duration) error) RateLimiterOption {
	return func(l *RateLimiter) {
		l.now = now
		l.sleep = sleep
	}
}

// NewRateLimiter creates a RateLimiter allowing limit requests per minute.
// Non-positive limits fall back to DefaultRequestsPerMinute.
func NewRateLimiter(limit int, opts ...RateLimiterOption) *RateLimiter {
	if limit <= 0 {
		limit = DefaultRequestsPerMinute
	}
	l := &RateLimiter{
		limit:   limit,
		spacing: spacingLimiter(defaultMinInterval),
		now:     time.Now,
		sleep:   sleepContext,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.minute = l.currentMinute()
	return l
}

// Wait blocks until it is safe to issue the next request. Within a clock
// minute the first limit calls return after at most the minimum spacing;
// the next call suspends until one second past the next minute boundary.
// Returns an error only if the context is canceled while waiting.
func (l *RateLimiter) Wait(ctx context.Context) error {
	l.mu.Lock()

	minute := l.currentMinute()
	if minute != l.minute {
		l.minute = minute
		l.counter = 0
	}
	l.counter++

	if l.counter > l.limit {
		// Sleep to the start of the next minute plus a one second margin,
		// then count this call against the new minute.
		wait := time.Duration(61-l.now().Unix()%60) * time.Second
		l.mu.Unlock()
		if err := l.sleep(ctx, wait); err != nil {
			return err
		}
		l.mu.Lock()
		l.minute = l.currentMinute()
		l.counter = 1
		l.mu.Unlock()
	} else {
		l.mu.Unlock()
	}

	return l.spacing.Wait(ctx)
}

func (l *RateLimiter) currentMinute() int64 {
	return l.now().Unix() / 60
}

func spacingLimiter(d time.Duration) *rate.Limiter {
	if d <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(d), 1)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
