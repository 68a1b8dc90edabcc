// Package engine runs the background jobs: periodic alert checks against
// current market prices and expired cache sweeps.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dimedrop/card-price-tracker/internal/cache"
	"github.com/dimedrop/card-price-tracker/internal/metrics"
	"github.com/dimedrop/card-price-tracker/internal/notify"
	"github.com/dimedrop/card-price-tracker/internal/store"
	domain "github.com/dimedrop/card-price-tracker/pkg/types"
)

// PriceSource supplies current market prices for alert evaluation.
type PriceSource interface {
	GetPrices(ctx context.Context, cardQuery string) (*domain.PriceReport, error)
}

// Engine evaluates price alerts and maintains the cache.
type Engine struct {
	store    store.Store
	prices   PriceSource
	cache    *cache.PriceCache
	notifier notify.Notifier
	log      *slog.Logger
	nowFunc  func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithNowFunc overrides the time source for tests.
func WithNowFunc(now func() time.Time) Option {
	return func(e *Engine) {
		e.nowFunc = now
	}
}

// New creates an Engine.
func New(
	s store.Store,
	prices PriceSource,
	priceCache *cache.PriceCache,
	notifier notify.Notifier,
	log *slog.Logger,
	opts ...Option,
) *Engine {
	e := &Engine{
		store:    s,
		prices:   prices,
		cache:    priceCache,
		notifier: notifier,
		log:      log,
		nowFunc:  time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RunAlertCheck evaluates every active alert against the current market
// price. Triggered alerts are deactivated, recorded, and notified. A
// failure on one alert does not stop the rest; all failures are joined
// into the returned error.
func (e *Engine) RunAlertCheck(ctx context.Context) error {
	alerts, err := e.store.ListAlerts(ctx, true)
	if err != nil {
		return fmt.Errorf("listing active alerts: %w", err)
	}

	if len(alerts) == 0 {
		return nil
	}

	e.log.Info("alert check starting", "active_alerts", len(alerts))

	var errs []error
	var triggered int
	for i := range alerts {
		fired, err := e.checkAlert(ctx, &alerts[i])
		if err != nil {
			metrics.AlertCheckErrors.Inc()
			errs = append(errs, fmt.Errorf("alert %d (%s): %w", alerts[i].ID, alerts[i].CardName, err))
			continue
		}
		if fired {
			triggered++
		}
	}

	e.log.Info("alert check complete", "triggered", triggered, "errors", len(errs))
	return errors.Join(errs...)
}

func (e *Engine) checkAlert(ctx context.Context, alert *domain.Alert) (bool, error) {
	report, err := e.prices.GetPrices(ctx, alert.CardName)
	if err != nil {
		return false, fmt.Errorf("looking up price: %w", err)
	}

	price := report.AvgPrice
	if !alert.ShouldTrigger(price) {
		return false, nil
	}

	now := e.nowFunc()
	if err := e.store.MarkAlertTriggered(ctx, alert.ID, price, now); err != nil {
		return false, fmt.Errorf("marking triggered: %w", err)
	}

	metrics.AlertsTriggeredTotal.Inc()
	e.log.Info("price alert triggered",
		"card", alert.CardName,
		"target", alert.TargetPrice,
		"price", price,
		"direction", alert.Direction,
	)

	if err := e.notifier.SendAlert(ctx, notify.AlertPayload{
		CardName:     alert.CardName,
		TargetPrice:  alert.TargetPrice,
		CurrentPrice: price,
		Direction:    alert.Direction,
		TriggeredAt:  now,
	}); err != nil {
		// The trigger is already recorded; a lost notification is not
		// worth re-arming the alert over.
		e.log.Error("alert notification failed", "card", alert.CardName, "error", err)
	}

	return true, nil
}

// RunCacheSweep deletes expired price cache entries.
func (e *Engine) RunCacheSweep(ctx context.Context) error {
	deleted, err := e.cache.SweepExpired(ctx)
	if err != nil {
		return fmt.Errorf("sweeping cache: %w", err)
	}

	e.log.Info("cache sweep complete", "deleted", deleted)
	return nil
}
