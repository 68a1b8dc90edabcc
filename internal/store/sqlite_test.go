package store_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimedrop/card-price-tracker/internal/store"
	domain "github.com/dimedrop/card-price-tracker/pkg/types"
)

func setupSQLite(t *testing.T) *store.SQLiteStore {
	t.Helper()
	ctx := context.Background()

	s, err := store.NewSQLiteStore(ctx, ":memory:")
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = s.Close()
	})

	require.NoError(t, s.Migrate(ctx))

	return s
}

func testEntry(query string, cachedAt time.Time, ttl time.Duration) *domain.PriceCacheEntry {
	snapshot := domain.NewPriceSnapshot([]domain.PriceItem{
		{Price: 150.00, Date: "2025-10-01", Title: "Victor Wembanyama 2023-24 Prizm RC"},
		{Price: 145.50, Date: "2025-10-01", Title: "Wembanyama Prizm Rookie PSA 9"},
	}, domain.SourceEbay)

	return &domain.PriceCacheEntry{
		CardQuery: query,
		Snapshot:  snapshot,
		CachedAt:  cachedAt,
		ExpiresAt: cachedAt.Add(ttl),
	}
}

func TestSQLiteStore_Ping(t *testing.T) {
	t.Parallel()
	s := setupSQLite(t)
	require.NoError(t, s.Ping(context.Background()))
}

func TestSQLiteStore_MigrateIdempotent(t *testing.T) {
	t.Parallel()
	s := setupSQLite(t)

	// Second run must be a no-op, not a failure.
	require.NoError(t, s.Migrate(context.Background()))
}

func TestSQLiteStore_PriceCache(t *testing.T) {
	t.Parallel()
	s := setupSQLite(t)
	ctx := context.Background()
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

	t.Run("miss on empty cache", func(t *testing.T) {
		_, err := s.GetFreshPrice(ctx, "wembanyama prizm", now)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("insert and read back", func(t *testing.T) {
		entry := testEntry("wembanyama prizm", now, 90*24*time.Hour)
		require.NoError(t, s.InsertPrice(ctx, entry))
		assert.NotZero(t, entry.ID)

		got, err := s.GetFreshPrice(ctx, "wembanyama prizm", now.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, entry.ID, got.ID)
		assert.Equal(t, "wembanyama prizm", got.CardQuery)
		assert.InDelta(t, 147.75, got.Snapshot.AvgPrice, 0.001)
		assert.Len(t, got.Snapshot.Items, 2)
		assert.Equal(t, domain.SourceEbay, got.Snapshot.Source)
		assert.True(t, got.CachedAt.Equal(now))
		assert.True(t, got.ExpiresAt.Equal(now.Add(90*24*time.Hour)))
	})

	t.Run("expired entry is not returned", func(t *testing.T) {
		entry := testEntry("expired card", now, time.Hour)
		require.NoError(t, s.InsertPrice(ctx, entry))

		_, err := s.GetFreshPrice(ctx, "expired card", now.Add(2*time.Hour))
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("expiry boundary is exclusive", func(t *testing.T) {
		entry := testEntry("boundary card", now, time.Hour)
		require.NoError(t, s.InsertPrice(ctx, entry))

		// Exactly at expires_at counts as expired.
		_, err := s.GetFreshPrice(ctx, "boundary card", now.Add(time.Hour))
		assert.ErrorIs(t, err, store.ErrNotFound)

		got, err := s.GetFreshPrice(ctx, "boundary card", now.Add(time.Hour-time.Second))
		require.NoError(t, err)
		assert.Equal(t, entry.ID, got.ID)
	})

	t.Run("freshest unexpired row wins", func(t *testing.T) {
		older := testEntry("stacked card", now, 90*24*time.Hour)
		require.NoError(t, s.InsertPrice(ctx, older))

		newer := testEntry("stacked card", now.Add(24*time.Hour), 90*24*time.Hour)
		newer.Snapshot = domain.NewPriceSnapshot([]domain.PriceItem{
			{Price: 200.00, Date: "2025-10-02", Title: "Wembanyama Prizm"},
		}, domain.SourceEbay)
		require.NoError(t, s.InsertPrice(ctx, newer))

		got, err := s.GetFreshPrice(ctx, "stacked card", now.Add(48*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, newer.ID, got.ID)
		assert.InDelta(t, 200.00, got.Snapshot.AvgPrice, 0.001)
	})

	t.Run("sweep deletes only expired rows", func(t *testing.T) {
		fresh := testEntry("sweep fresh", now, 90*24*time.Hour)
		require.NoError(t, s.InsertPrice(ctx, fresh))
		stale := testEntry("sweep stale", now.Add(-48*time.Hour), time.Hour)
		require.NoError(t, s.InsertPrice(ctx, stale))

		deleted, err := s.DeleteExpiredPrices(ctx, now)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, deleted, 1)

		_, err = s.GetFreshPrice(ctx, "sweep fresh", now)
		require.NoError(t, err)
		_, err = s.GetFreshPrice(ctx, "sweep stale", now)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestSQLiteStore_CallCounts(t *testing.T) {
	t.Parallel()
	s := setupSQLite(t)
	ctx := context.Background()
	day := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

	t.Run("zero before any calls", func(t *testing.T) {
		count, err := s.GetCallCount(ctx, "ebay", day)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("increments up to the limit", func(t *testing.T) {
		for i := 1; i <= 3; i++ {
			count, allowed, err := s.IncrementCallCount(ctx, "ebay", day, 3)
			require.NoError(t, err)
			assert.True(t, allowed)
			assert.Equal(t, i, count)
		}

		// Fourth call is denied and the counter stays at the limit.
		count, allowed, err := s.IncrementCallCount(ctx, "ebay", day, 3)
		require.NoError(t, err)
		assert.False(t, allowed)
		assert.Equal(t, 3, count)

		count, err = s.GetCallCount(ctx, "ebay", day)
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("counters are keyed by UTC day", func(t *testing.T) {
		nextDay := day.Add(24 * time.Hour)
		count, allowed, err := s.IncrementCallCount(ctx, "ebay", nextDay, 3)
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Equal(t, 1, count)
	})

	t.Run("counters are keyed by api name", func(t *testing.T) {
		count, allowed, err := s.IncrementCallCount(ctx, "other-api", day, 3)
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Equal(t, 1, count)
	})

	t.Run("non-positive limit denies without incrementing", func(t *testing.T) {
		_, allowed, err := s.IncrementCallCount(ctx, "zero-limit", day, 0)
		require.NoError(t, err)
		assert.False(t, allowed)

		count, err := s.GetCallCount(ctx, "zero-limit", day)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestSQLiteStore_CallCountsConcurrent(t *testing.T) {
	t.Parallel()
	s := setupSQLite(t)
	ctx := context.Background()
	day := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)

	const workers = 20
	const limit = 10

	var wg sync.WaitGroup
	admitted := make(chan bool, workers)

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, allowed, err := s.IncrementCallCount(ctx, "ebay", day, limit)
			assert.NoError(t, err)
			admitted <- allowed
		}()
	}
	wg.Wait()
	close(admitted)

	var allowedCount int
	for ok := range admitted {
		if ok {
			allowedCount++
		}
	}

	// Exactly limit callers get through, never more.
	assert.Equal(t, limit, allowedCount)

	count, err := s.GetCallCount(ctx, "ebay", day)
	require.NoError(t, err)
	assert.Equal(t, limit, count)
}

func TestSQLiteStore_Portfolio(t *testing.T) {
	t.Parallel()
	s := setupSQLite(t)
	ctx := context.Background()

	purchased := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	item := &domain.PortfolioItem{
		CardName:     "Victor Wembanyama 2023-24 Prizm RC",
		BuyPrice:     120.00,
		Quantity:     2,
		Condition:    "PSA 10",
		PurchaseDate: &purchased,
		Notes:        "bought at local show",
	}

	require.NoError(t, s.AddPortfolioItem(ctx, item))
	assert.NotZero(t, item.ID)
	assert.False(t, item.CreatedAt.IsZero())

	got, err := s.GetPortfolioItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.CardName, got.CardName)
	assert.InDelta(t, 120.00, got.BuyPrice, 0.001)
	assert.Equal(t, 2, got.Quantity)
	assert.Equal(t, "PSA 10", got.Condition)
	require.NotNil(t, got.PurchaseDate)
	assert.True(t, got.PurchaseDate.Equal(purchased))

	items, err := s.ListPortfolio(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)

	require.NoError(t, s.DeletePortfolioItem(ctx, item.ID))
	_, err = s.GetPortfolioItem(ctx, item.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	err = s.DeletePortfolioItem(ctx, item.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSQLiteStore_Alerts(t *testing.T) {
	t.Parallel()
	s := setupSQLite(t)
	ctx := context.Background()

	a := &domain.Alert{
		CardName:    "Wembanyama Prizm RC",
		TargetPrice: 100.00,
		Direction:   domain.AlertBelow,
		Active:      true,
	}

	require.NoError(t, s.CreateAlert(ctx, a))
	assert.NotZero(t, a.ID)

	got, err := s.GetAlert(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AlertBelow, got.Direction)
	assert.True(t, got.Active)
	assert.Nil(t, got.LastTriggeredAt)
	assert.Nil(t, got.LastPrice)

	t.Run("update", func(t *testing.T) {
		got.TargetPrice = 90.00
		require.NoError(t, s.UpdateAlert(ctx, got))

		updated, err := s.GetAlert(ctx, a.ID)
		require.NoError(t, err)
		assert.InDelta(t, 90.00, updated.TargetPrice, 0.001)
	})

	t.Run("trigger deactivates and records price", func(t *testing.T) {
		firedAt := time.Date(2025, 10, 2, 9, 30, 0, 0, time.UTC)
		require.NoError(t, s.MarkAlertTriggered(ctx, a.ID, 85.00, firedAt))

		fired, err := s.GetAlert(ctx, a.ID)
		require.NoError(t, err)
		assert.False(t, fired.Active)
		require.NotNil(t, fired.LastTriggeredAt)
		assert.True(t, fired.LastTriggeredAt.Equal(firedAt))
		require.NotNil(t, fired.LastPrice)
		assert.InDelta(t, 85.00, *fired.LastPrice, 0.001)
	})

	t.Run("active filter excludes triggered alerts", func(t *testing.T) {
		active := &domain.Alert{
			CardName:    "Chet Holmgren Prizm RC",
			TargetPrice: 40.00,
			Direction:   domain.AlertAbove,
			Active:      true,
		}
		require.NoError(t, s.CreateAlert(ctx, active))

		all, err := s.ListAlerts(ctx, false)
		require.NoError(t, err)
		assert.Len(t, all, 2)

		activeOnly, err := s.ListAlerts(ctx, true)
		require.NoError(t, err)
		require.Len(t, activeOnly, 1)
		assert.Equal(t, active.ID, activeOnly[0].ID)
	})

	t.Run("missing alert returns not found", func(t *testing.T) {
		_, err := s.GetAlert(ctx, 99999)
		assert.ErrorIs(t, err, store.ErrNotFound)
		assert.ErrorIs(t, s.DeleteAlert(ctx, 99999), store.ErrNotFound)
		assert.ErrorIs(t, s.MarkAlertTriggered(ctx, 99999, 1, time.Now()), store.ErrNotFound)
	})
}
