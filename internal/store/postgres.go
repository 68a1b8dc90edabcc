package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/dimedrop/card-price-tracker/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
//
// TODO(test): PostgresStore methods require live Postgres, tested via integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

var _ Store = (*PostgresStore)(nil)

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return runPostgresMigrations(ctx, s.pool)
}

// GetFreshPrice returns the newest unexpired cache entry for cardQuery.
func (s *PostgresStore) GetFreshPrice(
	ctx context.Context,
	cardQuery string,
	now time.Time,
) (*domain.PriceCacheEntry, error) {
	e := &domain.PriceCacheEntry{}
	var snapshotJSON []byte

	err := s.pool.QueryRow(ctx, queryGetFreshPrice, cardQuery, now).Scan(
		&e.ID, &e.CardQuery, &snapshotJSON, &e.CachedAt, &e.ExpiresAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying price cache: %w", err)
	}

	if err := json.Unmarshal(snapshotJSON, &e.Snapshot); err != nil {
		return nil, fmt.Errorf("unmarshaling price snapshot: %w", err)
	}

	return e, nil
}

// InsertPrice appends a new cache entry. Existing rows are never updated.
func (s *PostgresStore) InsertPrice(ctx context.Context, entry *domain.PriceCacheEntry) error {
	snapshotJSON, err := json.Marshal(entry.Snapshot)
	if err != nil {
		return fmt.Errorf("marshaling price snapshot: %w", err)
	}

	args := pgx.NamedArgs{
		"card_query": entry.CardQuery,
		"price_data": snapshotJSON,
		"cached_at":  entry.CachedAt,
		"expires_at": entry.ExpiresAt,
	}

	if err := s.pool.QueryRow(ctx, queryInsertPrice, args).Scan(&entry.ID); err != nil {
		return fmt.Errorf("inserting price cache entry: %w", err)
	}
	return nil
}

// DeleteExpiredPrices removes entries past their expiry and returns the count.
func (s *PostgresStore) DeleteExpiredPrices(ctx context.Context, now time.Time) (int, error) {
	tag, err := s.pool.Exec(ctx, queryDeleteExpiredPrices, now)
	if err != nil {
		return 0, fmt.Errorf("deleting expired prices: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// IncrementCallCount atomically increments the daily counter for apiName
// if it is below limit. Returns the counter value and whether the call
// was admitted.
func (s *PostgresStore) IncrementCallCount(
	ctx context.Context,
	apiName string,
	day time.Time,
	limit int,
) (int, bool, error) {
	if limit <= 0 {
		count, err := s.GetCallCount(ctx, apiName, day)
		if err != nil {
			return 0, false, err
		}
		return count, false, nil
	}

	args := pgx.NamedArgs{
		"api_name": apiName,
		"date":     dayKey(day),
		"limit":    limit,
	}

	var count int
	err := s.pool.QueryRow(ctx, queryIncrementCallCount, args).Scan(&count)

	// The conditional upsert returns no row once the counter is at limit.
	if errors.Is(err, pgx.ErrNoRows) {
		count, err = s.GetCallCount(ctx, apiName, day)
		if err != nil {
			return 0, false, err
		}
		return count, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("incrementing call count: %w", err)
	}

	return count, true, nil
}

// GetCallCount returns the recorded call count for the given UTC day,
// or zero if no calls have been made.
func (s *PostgresStore) GetCallCount(
	ctx context.Context,
	apiName string,
	day time.Time,
) (int, error) {
	var count int
	err := s.pool.QueryRow(ctx, queryGetCallCount, apiName, dayKey(day)).Scan(&count)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("querying call count: %w", err)
	}
	return count, nil
}

// AddPortfolioItem inserts a new portfolio holding.
func (s *PostgresStore) AddPortfolioItem(ctx context.Context, item *domain.PortfolioItem) error {
	args := pgx.NamedArgs{
		"card_name":     item.CardName,
		"buy_price":     item.BuyPrice,
		"quantity":      item.Quantity,
		"condition":     item.Condition,
		"purchase_date": item.PurchaseDate,
		"notes":         item.Notes,
	}

	err := s.pool.QueryRow(ctx, queryAddPortfolioItem, args).Scan(
		&item.ID, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting portfolio item: %w", err)
	}
	return nil
}

// GetPortfolioItem retrieves a portfolio holding by ID.
func (s *PostgresStore) GetPortfolioItem(ctx context.Context, id int64) (*domain.PortfolioItem, error) {
	item := &domain.PortfolioItem{}
	err := scanPortfolioItem(s.pool.QueryRow(ctx, queryGetPortfolioItem, id), item)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying portfolio item: %w", err)
	}
	return item, nil
}

// ListPortfolio returns all portfolio holdings, newest first.
func (s *PostgresStore) ListPortfolio(ctx context.Context) ([]domain.PortfolioItem, error) {
	rows, err := s.pool.Query(ctx, queryListPortfolio)
	if err != nil {
		return nil, fmt.Errorf("querying portfolio: %w", err)
	}
	defer rows.Close()

	var items []domain.PortfolioItem
	for rows.Next() {
		var item domain.PortfolioItem
		if err := scanPortfolioItem(rows, &item); err != nil {
			return nil, fmt.Errorf("scanning portfolio item: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// DeletePortfolioItem removes a holding by ID.
func (s *PostgresStore) DeletePortfolioItem(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, queryDeletePortfolioItem, id)
	if err != nil {
		return fmt.Errorf("deleting portfolio item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateAlert inserts a new price alert.
func (s *PostgresStore) CreateAlert(ctx context.Context, a *domain.Alert) error {
	args := pgx.NamedArgs{
		"card_name":    a.CardName,
		"target_price": a.TargetPrice,
		"direction":    string(a.Direction),
		"active":       a.Active,
	}

	err := s.pool.QueryRow(ctx, queryCreateAlert, args).Scan(
		&a.ID, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting alert: %w", err)
	}
	return nil
}

// GetAlert retrieves an alert by ID.
func (s *PostgresStore) GetAlert(ctx context.Context, id int64) (*domain.Alert, error) {
	a := &domain.Alert{}
	err := scanAlert(s.pool.QueryRow(ctx, queryGetAlert, id), a)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying alert: %w", err)
	}
	return a, nil
}

// ListAlerts returns alerts, optionally filtered to active only.
func (s *PostgresStore) ListAlerts(ctx context.Context, activeOnly bool) ([]domain.Alert, error) {
	query := queryListAlertsAll
	if activeOnly {
		query = queryListAlertsActive
	}

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying alerts: %w", err)
	}
	defer rows.Close()

	var alerts []domain.Alert
	for rows.Next() {
		var a domain.Alert
		if err := scanAlert(rows, &a); err != nil {
			return nil, fmt.Errorf("scanning alert: %w", err)
		}
		alerts = append(alerts, a)
	}

	return alerts, rows.Err()
}

// UpdateAlert updates an existing alert's target, direction and active flag.
func (s *PostgresStore) UpdateAlert(ctx context.Context, a *domain.Alert) error {
	args := pgx.NamedArgs{
		"id":           a.ID,
		"card_name":    a.CardName,
		"target_price": a.TargetPrice,
		"direction":    string(a.Direction),
		"active":       a.Active,
	}

	tag, err := s.pool.Exec(ctx, queryUpdateAlert, args)
	if err != nil {
		return fmt.Errorf("updating alert: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAlert removes an alert by ID.
func (s *PostgresStore) DeleteAlert(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, queryDeleteAlert, id)
	if err != nil {
		return fmt.Errorf("deleting alert: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkAlertTriggered records the firing price and time and deactivates the alert.
func (s *PostgresStore) MarkAlertTriggered(
	ctx context.Context,
	id int64,
	price float64,
	at time.Time,
) error {
	tag, err := s.pool.Exec(ctx, queryMarkAlertTriggered, id, at, price)
	if err != nil {
		return fmt.Errorf("marking alert triggered: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// scannable abstracts pgx.Row and pgx.Rows for reuse.
type scannable interface {
	Scan(dest ...any) error
}

func scanPortfolioItem(row scannable, item *domain.PortfolioItem) error {
	return row.Scan(
		&item.ID, &item.CardName, &item.BuyPrice, &item.Quantity,
		&item.Condition, &item.PurchaseDate, &item.Notes,
		&item.CreatedAt, &item.UpdatedAt,
	)
}

func scanAlert(row scannable, a *domain.Alert) error {
	return row.Scan(
		&a.ID, &a.CardName, &a.TargetPrice, &a.Direction, &a.Active,
		&a.LastTriggeredAt, &a.LastPrice, &a.CreatedAt, &a.UpdatedAt,
	)
}
