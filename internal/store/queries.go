package store

// SQL query constants for the PostgreSQL backend.

const (
	// --- Price cache ---

	queryGetFreshPrice = `
		SELECT id, card_query, price_data, cached_at, expires_at
		FROM price_cache
		WHERE card_query = $1 AND expires_at > $2
		ORDER BY cached_at DESC
		LIMIT 1`

	queryInsertPrice = `
		INSERT INTO price_cache (card_query, price_data, cached_at, expires_at)
		VALUES (@card_query, @price_data, @cached_at, @expires_at)
		RETURNING id`

	queryDeleteExpiredPrices = `DELETE FROM price_cache WHERE expires_at < $1`

	// --- Daily API call counters ---
	//
	// The upsert increments only while the counter is under the limit;
	// the WHERE clause makes check-and-increment a single atomic
	// statement under concurrent callers.

	queryIncrementCallCount = `
		INSERT INTO api_rate_limits (api_name, date, call_count)
		VALUES (@api_name, @date, 1)
		ON CONFLICT (api_name, date) DO UPDATE
			SET call_count = api_rate_limits.call_count + 1
			WHERE api_rate_limits.call_count < @limit
		RETURNING call_count`

	queryGetCallCount = `
		SELECT call_count FROM api_rate_limits
		WHERE api_name = $1 AND date = $2`

	// --- Portfolio ---

	queryAddPortfolioItem = `
		INSERT INTO portfolio (
			card_name, buy_price, quantity, condition, purchase_date, notes
		) VALUES (
			@card_name, @buy_price, @quantity, @condition, @purchase_date, @notes
		)
		RETURNING id, created_at, updated_at`

	queryGetPortfolioItem = `
		SELECT id, card_name, buy_price, quantity, condition, purchase_date,
			notes, created_at, updated_at
		FROM portfolio WHERE id = $1`

	queryListPortfolio = `
		SELECT id, card_name, buy_price, quantity, condition, purchase_date,
			notes, created_at, updated_at
		FROM portfolio ORDER BY created_at DESC`

	queryDeletePortfolioItem = `DELETE FROM portfolio WHERE id = $1`

	// --- Alerts ---

	queryCreateAlert = `
		INSERT INTO alerts (card_name, target_price, direction, active)
		VALUES (@card_name, @target_price, @direction, @active)
		RETURNING id, created_at, updated_at`

	queryGetAlert = `
		SELECT id, card_name, target_price, direction, active,
			last_triggered_at, last_price, created_at, updated_at
		FROM alerts WHERE id = $1`

	queryListAlertsAll = `
		SELECT id, card_name, target_price, direction, active,
			last_triggered_at, last_price, created_at, updated_at
		FROM alerts ORDER BY created_at DESC`

	queryListAlertsActive = `
		SELECT id, card_name, target_price, direction, active,
			last_triggered_at, last_price, created_at, updated_at
		FROM alerts WHERE active = true ORDER BY created_at DESC`

	queryUpdateAlert = `
		UPDATE alerts SET
			card_name = @card_name,
			target_price = @target_price,
			direction = @direction,
			active = @active,
			updated_at = now()
		WHERE id = @id`

	queryDeleteAlert = `DELETE FROM alerts WHERE id = $1`

	queryMarkAlertTriggered = `
		UPDATE alerts SET
			active = false,
			last_triggered_at = $2,
			last_price = $3,
			updated_at = now()
		WHERE id = $1`
)
