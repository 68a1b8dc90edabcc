package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	domain "github.com/dimedrop/card-price-tracker/pkg/types"
)

// SQLiteStore implements Store on a local SQLite file (or :memory:).
// It is the default backend; no external database is required.
//
// Timestamps are stored as RFC 3339 text so round-trips are exact
// regardless of driver conversion rules.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens (creating if needed) the SQLite database at path.
// Use ":memory:" for an ephemeral database.
func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// SQLite handles one writer at a time; a single connection avoids
	// SQLITE_BUSY under concurrent writes and keeps :memory: databases
	// from silently becoming separate per-connection stores.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close shuts down the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Ping verifies the database is reachable.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	return runSQLiteMigrations(ctx, s.db)
}

// GetFreshPrice returns the newest unexpired cache entry for cardQuery.
func (s *SQLiteStore) GetFreshPrice(
	ctx context.Context,
	cardQuery string,
	now time.Time,
) (*domain.PriceCacheEntry, error) {
	const query = `
		SELECT id, card_query, price_data, cached_at, expires_at
		FROM price_cache
		WHERE card_query = ? AND expires_at > ?
		ORDER BY cached_at DESC
		LIMIT 1`

	e := &domain.PriceCacheEntry{}
	var snapshotJSON []byte
	var cachedAt, expiresAt string

	err := s.db.QueryRowContext(ctx, query, cardQuery, fmtTime(now)).Scan(
		&e.ID, &e.CardQuery, &snapshotJSON, &cachedAt, &expiresAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying price cache: %w", err)
	}

	if err := json.Unmarshal(snapshotJSON, &e.Snapshot); err != nil {
		return nil, fmt.Errorf("unmarshaling price snapshot: %w", err)
	}
	if e.CachedAt, err = parseTime(cachedAt); err != nil {
		return nil, err
	}
	if e.ExpiresAt, err = parseTime(expiresAt); err != nil {
		return nil, err
	}

	return e, nil
}

// InsertPrice appends a new cache entry. Existing rows are never updated.
func (s *SQLiteStore) InsertPrice(ctx context.Context, entry *domain.PriceCacheEntry) error {
	snapshotJSON, err := json.Marshal(entry.Snapshot)
	if err != nil {
		return fmt.Errorf("marshaling price snapshot: %w", err)
	}

	const query = `
		INSERT INTO price_cache (card_query, price_data, cached_at, expires_at)
		VALUES (?, ?, ?, ?)`

	res, err := s.db.ExecContext(ctx, query,
		entry.CardQuery, snapshotJSON, fmtTime(entry.CachedAt), fmtTime(entry.ExpiresAt),
	)
	if err != nil {
		return fmt.Errorf("inserting price cache entry: %w", err)
	}

	entry.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading inserted price cache id: %w", err)
	}
	return nil
}

// DeleteExpiredPrices removes entries past their expiry and returns the count.
func (s *SQLiteStore) DeleteExpiredPrices(ctx context.Context, now time.Time) (int, error) {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM price_cache WHERE expires_at < ?", fmtTime(now),
	)
	if err != nil {
		return 0, fmt.Errorf("deleting expired prices: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reading deleted row count: %w", err)
	}
	return int(n), nil
}

// IncrementCallCount atomically increments the daily counter for apiName
// if it is below limit. Returns the counter value and whether the call
// was admitted.
func (s *SQLiteStore) IncrementCallCount(
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

	// Conditional upsert: the increment only applies while the counter
	// is below limit, so check-and-increment is a single statement.
	const query = `
		INSERT INTO api_rate_limits (api_name, date, call_count)
		VALUES (?, ?, 1)
		ON CONFLICT (api_name, date) DO UPDATE
			SET call_count = call_count + 1
			WHERE call_count < ?
		RETURNING call_count`

	var count int
	err := s.db.QueryRowContext(ctx, query, apiName, dayKey(day), limit).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
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
func (s *SQLiteStore) GetCallCount(
	ctx context.Context,
	apiName string,
	day time.Time,
) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT call_count FROM api_rate_limits WHERE api_name = ? AND date = ?",
		apiName, dayKey(day),
	).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("querying call count: %w", err)
	}
	return count, nil
}

// AddPortfolioItem inserts a new portfolio holding.
func (s *SQLiteStore) AddPortfolioItem(ctx context.Context, item *domain.PortfolioItem) error {
	now := time.Now().UTC()

	const query = `
		INSERT INTO portfolio (
			card_name, buy_price, quantity, condition, purchase_date, notes,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	res, err := s.db.ExecContext(ctx, query,
		item.CardName, item.BuyPrice, item.Quantity, item.Condition,
		fmtTimePtr(item.PurchaseDate), item.Notes, fmtTime(now), fmtTime(now),
	)
	if err != nil {
		return fmt.Errorf("inserting portfolio item: %w", err)
	}

	item.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading inserted portfolio id: %w", err)
	}
	item.CreatedAt = now
	item.UpdatedAt = now
	return nil
}

// GetPortfolioItem retrieves a portfolio holding by ID.
func (s *SQLiteStore) GetPortfolioItem(ctx context.Context, id int64) (*domain.PortfolioItem, error) {
	const query = `
		SELECT id, card_name, buy_price, quantity, condition, purchase_date,
			notes, created_at, updated_at
		FROM portfolio WHERE id = ?`

	item := &domain.PortfolioItem{}
	err := scanSQLitePortfolioItem(s.db.QueryRowContext(ctx, query, id), item)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying portfolio item: %w", err)
	}
	return item, nil
}

// ListPortfolio returns all portfolio holdings, newest first.
func (s *SQLiteStore) ListPortfolio(ctx context.Context) ([]domain.PortfolioItem, error) {
	const query = `
		SELECT id, card_name, buy_price, quantity, condition, purchase_date,
			notes, created_at, updated_at
		FROM portfolio ORDER BY created_at DESC, id DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying portfolio: %w", err)
	}
	defer rows.Close()

	var items []domain.PortfolioItem
	for rows.Next() {
		var item domain.PortfolioItem
		if err := scanSQLitePortfolioItem(rows, &item); err != nil {
			return nil, fmt.Errorf("scanning portfolio item: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// DeletePortfolioItem removes a holding by ID.
func (s *SQLiteStore) DeletePortfolioItem(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM portfolio WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting portfolio item: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading deleted row count: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateAlert inserts a new price alert.
func (s *SQLiteStore) CreateAlert(ctx context.Context, a *domain.Alert) error {
	now := time.Now().UTC()

	const query = `
		INSERT INTO alerts (card_name, target_price, direction, active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	res, err := s.db.ExecContext(ctx, query,
		a.CardName, a.TargetPrice, string(a.Direction), a.Active,
		fmtTime(now), fmtTime(now),
	)
	if err != nil {
		return fmt.Errorf("inserting alert: %w", err)
	}

	a.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading inserted alert id: %w", err)
	}
	a.CreatedAt = now
	a.UpdatedAt = now
	return nil
}

// GetAlert retrieves an alert by ID.
func (s *SQLiteStore) GetAlert(ctx context.Context, id int64) (*domain.Alert, error) {
	const query = `
		SELECT id, card_name, target_price, direction, active,
			last_triggered_at, last_price, created_at, updated_at
		FROM alerts WHERE id = ?`

	a := &domain.Alert{}
	err := scanSQLiteAlert(s.db.QueryRowContext(ctx, query, id), a)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying alert: %w", err)
	}
	return a, nil
}

// ListAlerts returns alerts, optionally filtered to active only.
func (s *SQLiteStore) ListAlerts(ctx context.Context, activeOnly bool) ([]domain.Alert, error) {
	query := `
		SELECT id, card_name, target_price, direction, active,
			last_triggered_at, last_price, created_at, updated_at
		FROM alerts ORDER BY created_at DESC, id DESC`
	if activeOnly {
		query = `
			SELECT id, card_name, target_price, direction, active,
				last_triggered_at, last_price, created_at, updated_at
			FROM alerts WHERE active = 1 ORDER BY created_at DESC, id DESC`
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying alerts: %w", err)
	}
	defer rows.Close()

	var alerts []domain.Alert
	for rows.Next() {
		var a domain.Alert
		if err := scanSQLiteAlert(rows, &a); err != nil {
			return nil, fmt.Errorf("scanning alert: %w", err)
		}
		alerts = append(alerts, a)
	}

	return alerts, rows.Err()
}

// UpdateAlert updates an existing alert's target, direction and active flag.
func (s *SQLiteStore) UpdateAlert(ctx context.Context, a *domain.Alert) error {
	const query = `
		UPDATE alerts SET
			card_name = ?, target_price = ?, direction = ?, active = ?, updated_at = ?
		WHERE id = ?`

	res, err := s.db.ExecContext(ctx, query,
		a.CardName, a.TargetPrice, string(a.Direction), a.Active,
		fmtTime(time.Now().UTC()), a.ID,
	)
	if err != nil {
		return fmt.Errorf("updating alert: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading updated row count: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAlert removes an alert by ID.
func (s *SQLiteStore) DeleteAlert(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM alerts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting alert: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading deleted row count: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkAlertTriggered records the firing price and time and deactivates the alert.
func (s *SQLiteStore) MarkAlertTriggered(
	ctx context.Context,
	id int64,
	price float64,
	at time.Time,
) error {
	const query = `
		UPDATE alerts SET
			active = 0, last_triggered_at = ?, last_price = ?, updated_at = ?
		WHERE id = ?`

	res, err := s.db.ExecContext(ctx, query, fmtTime(at), price, fmtTime(at), id)
	if err != nil {
		return fmt.Errorf("marking alert triggered: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading updated row count: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanSQLitePortfolioItem(row scannable, item *domain.PortfolioItem) error {
	var purchaseDate sql.NullString
	var createdAt, updatedAt string

	if err := row.Scan(
		&item.ID, &item.CardName, &item.BuyPrice, &item.Quantity,
		&item.Condition, &purchaseDate, &item.Notes, &createdAt, &updatedAt,
	); err != nil {
		return err
	}

	var err error
	if item.PurchaseDate, err = parseTimePtr(purchaseDate); err != nil {
		return err
	}
	if item.CreatedAt, err = parseTime(createdAt); err != nil {
		return err
	}
	item.UpdatedAt, err = parseTime(updatedAt)
	return err
}

func scanSQLiteAlert(row scannable, a *domain.Alert) error {
	var lastTriggered sql.NullString
	var createdAt, updatedAt string

	if err := row.Scan(
		&a.ID, &a.CardName, &a.TargetPrice, &a.Direction, &a.Active,
		&lastTriggered, &a.LastPrice, &createdAt, &updatedAt,
	); err != nil {
		return err
	}

	var err error
	if a.LastTriggeredAt, err = parseTimePtr(lastTriggered); err != nil {
		return err
	}
	if a.CreatedAt, err = parseTime(createdAt); err != nil {
		return err
	}
	a.UpdatedAt, err = parseTime(updatedAt)
	return err
}

// sqliteTimeLayout is RFC 3339 with a fixed-width fraction so that
// lexicographic comparison of stored text matches chronological order.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func fmtTime(t time.Time) string {
	return t.UTC().Format(sqliteTimeLayout)
}

func fmtTimePtr(t *time.Time) any {
	if t == nil {
		return nil
	}
	return fmtTime(*t)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing stored timestamp %q: %w", s, err)
	}
	return t, nil
}

func parseTimePtr(s sql.NullString) (*time.Time, error) {
	if !s.Valid {
		return nil, nil
	}
	t, err := parseTime(s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
