// Package cache implements the persistent price cache with TTL expiry.
//
// Entries are insert-only and carry an expiry window fixed at write time.
// The TTL is capped at 90 days to honor marketplace data retention terms;
// configuring a longer window is a configuration error, not a clamp.
package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dimedrop/card-price-tracker/internal/metrics"
	"github.com/dimedrop/card-price-tracker/internal/store"
	domain "github.com/dimedrop/card-price-tracker/pkg/types"
)

// MaxTTLDays is the hard retention ceiling for cached price data.
const MaxTTLDays = 90

// DefaultTTLDays is the cache window used when none is configured.
const DefaultTTLDays = 90

// PriceCache reads and writes price snapshots through the Store.
type PriceCache struct {
	store   store.Store
	ttl     time.Duration
	nowFunc func() time.Time
}

// Option configures a PriceCache.
type Option func(*PriceCache)

// WithTTLDays sets the cache window in days.
func WithTTLDays(days int) Option {
	return func(c *PriceCache) {
		c.ttl = time.Duration(days) * 24 * time.Hour
	}
}

// WithNowFunc overrides the time source for tests.
func WithNowFunc(now func() time.Time) Option {
	return func(c *PriceCache) {
		c.nowFunc = now
	}
}

// New creates a PriceCache over the given store. It returns an error if
// the configured TTL exceeds the retention ceiling.
func New(s store.Store, opts ...Option) (*PriceCache, error) {
	c := &PriceCache{
		store:   s,
		ttl:     DefaultTTLDays * 24 * time.Hour,
		nowFunc: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.ttl <= 0 {
		return nil, fmt.Errorf("cache TTL must be positive, got %s", c.ttl)
	}
	if c.ttl > MaxTTLDays*24*time.Hour {
		return nil, fmt.Errorf("cache TTL %s exceeds %d-day retention ceiling", c.ttl, MaxTTLDays)
	}

	return c, nil
}

// NormalizeQuery canonicalizes a card query for cache keying: trimmed,
// lowercased, inner whitespace collapsed to single spaces.
func NormalizeQuery(q string) string {
	return strings.ToLower(strings.Join(strings.Fields(q), " "))
}

// Get returns the freshest unexpired entry for the query, or
// store.ErrNotFound on a miss.
func (c *PriceCache) Get(ctx context.Context, cardQuery string) (*domain.PriceCacheEntry, error) {
	entry, err := c.store.GetFreshPrice(ctx, NormalizeQuery(cardQuery), c.nowFunc())
	if err != nil {
		metrics.PriceCacheMisses.Inc()
		return nil, err
	}

	metrics.PriceCacheHits.Inc()
	return entry, nil
}

// Put stores a new snapshot for the query with the configured TTL and
// returns the written entry.
func (c *PriceCache) Put(
	ctx context.Context,
	cardQuery string,
	snapshot domain.PriceSnapshot,
) (*domain.PriceCacheEntry, error) {
	now := c.nowFunc()
	entry := &domain.PriceCacheEntry{
		CardQuery: NormalizeQuery(cardQuery),
		Snapshot:  snapshot,
		CachedAt:  now,
		ExpiresAt: now.Add(c.ttl),
	}

	if err := c.store.InsertPrice(ctx, entry); err != nil {
		return nil, fmt.Errorf("caching price snapshot: %w", err)
	}
	return entry, nil
}

// SweepExpired deletes all entries past their expiry and returns the count.
func (c *PriceCache) SweepExpired(ctx context.Context) (int, error) {
	deleted, err := c.store.DeleteExpiredPrices(ctx, c.nowFunc())
	if err != nil {
		return 0, fmt.Errorf("sweeping expired prices: %w", err)
	}

	metrics.CacheSweepDeleted.Add(float64(deleted))
	return deleted, nil
}
