// Package store defines the datastore abstraction for card-price-tracker.
// All business logic depends on the Store interface, never on concrete
// implementations. Two backends exist: SQLite (default, local file) and
// PostgreSQL.
package store

import (
	"context"
	"errors"
	"time"

	domain "github.com/dimedrop/card-price-tracker/pkg/types"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// Store defines all data access operations for card-price-tracker.
type Store interface {
	// Price cache. Entries are insert-only; GetFreshPrice returns the
	// newest row whose expires_at is after now, or ErrNotFound.
	GetFreshPrice(ctx context.Context, cardQuery string, now time.Time) (*domain.PriceCacheEntry, error)
	InsertPrice(ctx context.Context, entry *domain.PriceCacheEntry) error
	DeleteExpiredPrices(ctx context.Context, now time.Time) (int, error)

	// Daily API call counters, keyed by (api_name, UTC calendar day).
	// IncrementCallCount is a single atomic increment-and-compare: it
	// increments only while the counter is below limit, and reports
	// whether the call was admitted.
	IncrementCallCount(ctx context.Context, apiName string, day time.Time, limit int) (count int, allowed bool, err error)
	GetCallCount(ctx context.Context, apiName string, day time.Time) (int, error)

	// Portfolio
	AddPortfolioItem(ctx context.Context, item *domain.PortfolioItem) error
	GetPortfolioItem(ctx context.Context, id int64) (*domain.PortfolioItem, error)
	ListPortfolio(ctx context.Context) ([]domain.PortfolioItem, error)
	DeletePortfolioItem(ctx context.Context, id int64) error

	// Alerts
	CreateAlert(ctx context.Context, a *domain.Alert) error
	GetAlert(ctx context.Context, id int64) (*domain.Alert, error)
	ListAlerts(ctx context.Context, activeOnly bool) ([]domain.Alert, error)
	UpdateAlert(ctx context.Context, a *domain.Alert) error
	DeleteAlert(ctx context.Context, id int64) error
	MarkAlertTriggered(ctx context.Context, id int64, price float64, at time.Time) error

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error

	// Close releases the underlying connections.
	Close() error
}

// dayKey normalizes a timestamp to its UTC calendar date. Counter rollover
// is implicit: a new date produces a fresh row.
func dayKey(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}
