// Package quota enforces the persistent daily API call budget.
//
// Counters live in the store keyed by (api name, UTC calendar day), so the
// budget survives restarts and rolls over automatically at midnight UTC.
// Storage failures fail open: a broken counter must not take price lookups
// down with it.
package quota

import (
	"context"
	"log/slog"
	"time"

	"github.com/dimedrop/card-price-tracker/internal/metrics"
	"github.com/dimedrop/card-price-tracker/internal/store"
)

// DefaultDailyLimit leaves headroom under eBay's 5000 calls/day allowance.
const DefaultDailyLimit = 4800

// DailyLimiter admits API calls against a per-day budget backed by the store.
type DailyLimiter struct {
	store   store.Store
	apiName string
	limit   int
	logger  *slog.Logger
	nowFunc func() time.Time
}

// Option configures a DailyLimiter.
type Option func(*DailyLimiter)

// WithLimit sets the daily call budget.
func WithLimit(limit int) Option {
	return func(l *DailyLimiter) {
		l.limit = limit
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *DailyLimiter) {
		l.logger = logger
	}
}

// WithNowFunc overrides the time source for tests.
func WithNowFunc(now func() time.Time) Option {
	return func(l *DailyLimiter) {
		l.nowFunc = now
	}
}

// NewDailyLimiter creates a limiter for the named API.
func NewDailyLimiter(s store.Store, apiName string, opts ...Option) *DailyLimiter {
	l := &DailyLimiter{
		store:   s,
		apiName: apiName,
		limit:   DefaultDailyLimit,
		logger:  slog.Default(),
		nowFunc: time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Allow attempts to admit one API call against today's budget. It returns
// false only when the counter has verifiably reached the limit; counter
// storage errors admit the call and log a warning.
func (l *DailyLimiter) Allow(ctx context.Context) bool {
	now := l.nowFunc()

	count, allowed, err := l.store.IncrementCallCount(ctx, l.apiName, now, l.limit)
	if err != nil {
		l.logger.Warn("rate limit counter unavailable, failing open",
			"api", l.apiName, "error", err)
		return true
	}

	metrics.EbayDailyUsage.Set(float64(count))

	if !allowed {
		metrics.EbayDailyLimitHits.Inc()
		l.logger.Warn("daily API call limit reached",
			"api", l.apiName, "count", count, "limit", l.limit)
	}
	return allowed
}

// Usage returns today's call count and the configured limit.
func (l *DailyLimiter) Usage(ctx context.Context) (count, limit int, err error) {
	count, err = l.store.GetCallCount(ctx, l.apiName, l.nowFunc())
	if err != nil {
		return 0, l.limit, err
	}
	return count, l.limit, nil
}

// Limit returns the configured daily budget.
func (l *DailyLimiter) Limit() int {
	return l.limit
}
