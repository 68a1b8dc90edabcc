//go:build integration

package store_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dimedrop/card-price-tracker/internal/store"
	domain "github.com/dimedrop/card-price-tracker/pkg/types"
)

func setupPostgres(t *testing.T) *store.PostgresStore {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("cpt_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := store.NewPostgresStore(ctx, connStr)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = s.Close()
	})

	require.NoError(t, s.Migrate(ctx))

	return s
}

func TestPostgresStore_Ping(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Ping(context.Background()))
}

func TestPostgresStore_PriceCache(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	snapshot := domain.NewPriceSnapshot([]domain.PriceItem{
		{Price: 150.00, Date: "2025-10-01", Title: "Victor Wembanyama 2023-24 Prizm RC"},
		{Price: 145.50, Date: "2025-10-01", Title: "Wembanyama Prizm Rookie PSA 9"},
	}, domain.SourceEbay)

	entry := &domain.PriceCacheEntry{
		CardQuery: "wembanyama prizm",
		Snapshot:  snapshot,
		CachedAt:  now,
		ExpiresAt: now.Add(90 * 24 * time.Hour),
	}

	require.NoError(t, s.InsertPrice(ctx, entry))
	assert.NotZero(t, entry.ID)

	got, err := s.GetFreshPrice(ctx, "wembanyama prizm", now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, entry.ID, got.ID)
	assert.InDelta(t, 147.75, got.Snapshot.AvgPrice, 0.001)
	assert.Len(t, got.Snapshot.Items, 2)

	// Past expiry the entry is gone.
	_, err = s.GetFreshPrice(ctx, "wembanyama prizm", now.Add(91*24*time.Hour))
	assert.ErrorIs(t, err, store.ErrNotFound)

	deleted, err := s.DeleteExpiredPrices(ctx, now.Add(91*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)
}

func TestPostgresStore_CallCountsConcurrent(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()
	day := time.Now().UTC()

	const workers = 50
	const limit = 20

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

	assert.Equal(t, limit, allowedCount)

	count, err := s.GetCallCount(ctx, "ebay", day)
	require.NoError(t, err)
	assert.Equal(t, limit, count)
}

func TestPostgresStore_PortfolioAndAlerts(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	item := &domain.PortfolioItem{
		CardName:  "Victor Wembanyama 2023-24 Prizm RC",
		BuyPrice:  120.00,
		Quantity:  2,
		Condition: "PSA 10",
	}
	require.NoError(t, s.AddPortfolioItem(ctx, item))
	assert.NotZero(t, item.ID)
	assert.False(t, item.CreatedAt.IsZero())

	items, err := s.ListPortfolio(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)

	a := &domain.Alert{
		CardName:    "Wembanyama Prizm RC",
		TargetPrice: 100.00,
		Direction:   domain.AlertBelow,
		Active:      true,
	}
	require.NoError(t, s.CreateAlert(ctx, a))

	firedAt := time.Now().UTC().Truncate(time.Microsecond)
	require.NoError(t, s.MarkAlertTriggered(ctx, a.ID, 85.00, firedAt))

	fired, err := s.GetAlert(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, fired.Active)
	require.NotNil(t, fired.LastPrice)
	assert.InDelta(t, 85.00, *fired.LastPrice, 0.001)

	active, err := s.ListAlerts(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, active)
}
