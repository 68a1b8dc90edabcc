package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimedrop/card-price-tracker/internal/cache"
	"github.com/dimedrop/card-price-tracker/internal/store"
	domain "github.com/dimedrop/card-price-tracker/pkg/types"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()
	ctx := context.Background()

	s, err := store.NewSQLiteStore(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.Migrate(ctx))

	return s
}

func sampleSnapshot() domain.PriceSnapshot {
	return domain.NewPriceSnapshot([]domain.PriceItem{
		{Price: 150.00, Date: "2025-10-01", Title: "Wembanyama Prizm RC"},
		{Price: 145.50, Date: "2025-10-01", Title: "Wembanyama Prizm PSA 9"},
	}, domain.SourceEbay)
}

func TestNormalizeQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Wembanyama Prizm", "wembanyama prizm"},
		{"  Wembanyama   Prizm  ", "wembanyama prizm"},
		{"VICTOR WEMBANYAMA", "victor wembanyama"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, cache.NormalizeQuery(tt.in))
	}
}

func TestNew_TTLValidation(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	_, err := cache.New(s, cache.WithTTLDays(91))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "retention ceiling")

	_, err = cache.New(s, cache.WithTTLDays(0))
	require.Error(t, err)

	c, err := cache.New(s, cache.WithTTLDays(90))
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestPriceCache_PutAndGet(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

	c, err := cache.New(s, cache.WithTTLDays(30), cache.WithNowFunc(func() time.Time { return now }))
	require.NoError(t, err)

	entry, err := c.Put(ctx, "  Wembanyama   Prizm ", sampleSnapshot())
	require.NoError(t, err)
	assert.Equal(t, "wembanyama prizm", entry.CardQuery)
	assert.True(t, entry.ExpiresAt.Equal(now.Add(30*24*time.Hour)))

	// Lookup normalizes the same way, so variant spellings hit.
	got, err := c.Get(ctx, "WEMBANYAMA PRIZM")
	require.NoError(t, err)
	assert.Equal(t, entry.ID, got.ID)
	assert.InDelta(t, 147.75, got.Snapshot.AvgPrice, 0.001)
}

func TestPriceCache_MissAfterExpiry(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	c, err := cache.New(s, cache.WithTTLDays(1), cache.WithNowFunc(func() time.Time { return now }))
	require.NoError(t, err)

	_, err = c.Put(ctx, "wembanyama prizm", sampleSnapshot())
	require.NoError(t, err)

	// Advance past the TTL: the entry must no longer be served.
	now = now.Add(25 * time.Hour)
	_, err = c.Get(ctx, "wembanyama prizm")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestPriceCache_SweepExpired(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	c, err := cache.New(s, cache.WithTTLDays(1), cache.WithNowFunc(func() time.Time { return now }))
	require.NoError(t, err)

	_, err = c.Put(ctx, "stale card", sampleSnapshot())
	require.NoError(t, err)

	now = now.Add(48 * time.Hour)
	_, err = c.Put(ctx, "fresh card", sampleSnapshot())
	require.NoError(t, err)

	deleted, err := c.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	_, err = c.Get(ctx, "fresh card")
	require.NoError(t, err)
}
