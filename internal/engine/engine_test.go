package engine_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimedrop/card-price-tracker/internal/cache"
	"github.com/dimedrop/card-price-tracker/internal/engine"
	"github.com/dimedrop/card-price-tracker/internal/notify"
	"github.com/dimedrop/card-price-tracker/internal/store"
	domain "github.com/dimedrop/card-price-tracker/pkg/types"
)

// stubPrices maps card names to prices; unknown names error.
type stubPrices struct {
	prices map[string]float64
}

func (s *stubPrices) GetPrices(_ context.Context, cardQuery string) (*domain.PriceReport, error) {
	price, ok := s.prices[cardQuery]
	if !ok {
		return nil, errors.New("lookup failed")
	}
	return &domain.PriceReport{
		PriceSnapshot: domain.PriceSnapshot{AvgPrice: price, Count: 1},
	}, nil
}

// recordingNotifier captures sent payloads.
type recordingNotifier struct {
	mu   sync.Mutex
	sent []notify.AlertPayload
	err  error
}

func (r *recordingNotifier) SendAlert(_ context.Context, alert notify.AlertPayload) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, alert)
	return r.err
}

type fixture struct {
	store    store.Store
	cache    *cache.PriceCache
	notifier *recordingNotifier
	engine   *engine.Engine
}

func newFixture(t *testing.T, prices map[string]float64) *fixture {
	t.Helper()
	ctx := context.Background()

	s, err := store.NewSQLiteStore(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.Migrate(ctx))

	c, err := cache.New(s)
	require.NoError(t, err)

	notifier := &recordingNotifier{}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &fixture{
		store:    s,
		cache:    c,
		notifier: notifier,
		engine:   engine.New(s, &stubPrices{prices: prices}, c, notifier, log),
	}
}

func addAlert(t *testing.T, s store.Store, card string, target float64, dir domain.AlertDirection) *domain.Alert {
	t.Helper()
	a := &domain.Alert{CardName: card, TargetPrice: target, Direction: dir, Active: true}
	require.NoError(t, s.CreateAlert(context.Background(), a))
	return a
}

func TestEngine_RunAlertCheck(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t, map[string]float64{
		"Wembanyama Prizm": 85.00,
		"Chet Holmgren":    55.00,
	})

	below := addAlert(t, f.store, "Wembanyama Prizm", 100.00, domain.AlertBelow)
	above := addAlert(t, f.store, "Chet Holmgren", 50.00, domain.AlertAbove)
	dormant := addAlert(t, f.store, "Wembanyama Prizm", 50.00, domain.AlertBelow)

	require.NoError(t, f.engine.RunAlertCheck(ctx))

	// Both crossing alerts fired and were deactivated.
	got, err := f.store.GetAlert(ctx, below.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)
	require.NotNil(t, got.LastPrice)
	assert.InDelta(t, 85.00, *got.LastPrice, 0.001)

	got, err = f.store.GetAlert(ctx, above.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)

	// The dormant alert stays armed.
	got, err = f.store.GetAlert(ctx, dormant.ID)
	require.NoError(t, err)
	assert.True(t, got.Active)

	assert.Len(t, f.notifier.sent, 2)
}

func TestEngine_RunAlertCheck_TriggeredOnlyOnce(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t, map[string]float64{"Wembanyama Prizm": 85.00})
	addAlert(t, f.store, "Wembanyama Prizm", 100.00, domain.AlertBelow)

	require.NoError(t, f.engine.RunAlertCheck(ctx))
	require.NoError(t, f.engine.RunAlertCheck(ctx))

	// Deactivated on the first pass, so no second notification.
	assert.Len(t, f.notifier.sent, 1)
}

func TestEngine_RunAlertCheck_LookupFailureDoesNotStopOthers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t, map[string]float64{"Wembanyama Prizm": 85.00})
	addAlert(t, f.store, "Unpriceable Card", 10.00, domain.AlertBelow)
	addAlert(t, f.store, "Wembanyama Prizm", 100.00, domain.AlertBelow)

	err := f.engine.RunAlertCheck(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unpriceable Card")

	// The healthy alert still fired.
	assert.Len(t, f.notifier.sent, 1)
	assert.Equal(t, "Wembanyama Prizm", f.notifier.sent[0].CardName)
}

func TestEngine_RunAlertCheck_NotificationFailureKeepsTrigger(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t, map[string]float64{"Wembanyama Prizm": 85.00})
	f.notifier.err = errors.New("webhook down")
	a := addAlert(t, f.store, "Wembanyama Prizm", 100.00, domain.AlertBelow)

	require.NoError(t, f.engine.RunAlertCheck(ctx))

	got, err := f.store.GetAlert(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)
}

func TestEngine_RunAlertCheck_NoActiveAlerts(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	require.NoError(t, f.engine.RunAlertCheck(context.Background()))
	assert.Empty(t, f.notifier.sent)
}

func TestEngine_RunCacheSweep(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t, nil)

	// An already-expired entry, inserted directly.
	past := time.Now().Add(-48 * time.Hour)
	require.NoError(t, f.store.InsertPrice(ctx, &domain.PriceCacheEntry{
		CardQuery: "stale card",
		Snapshot:  domain.NewPriceSnapshot(nil, domain.SourceSynthetic),
		CachedAt:  past,
		ExpiresAt: past.Add(time.Hour),
	}))

	require.NoError(t, f.engine.RunCacheSweep(ctx))

	_, err := f.store.GetFreshPrice(ctx, "stale card", time.Now())
	assert.ErrorIs(t, err, store.ErrNotFound)
}
