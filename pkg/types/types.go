// Package domain defines the core business types for the card price tracker.
package domain

import (
	"math"
	"time"
)

// PriceItem is a single observed sale or listing price for a card.
type PriceItem struct {
	Price float64 `json:"price"`
	Date  string  `json:"date"`
	Title string  `json:"title"`
}

// PriceSource identifies where a price snapshot came from.
type PriceSource string

// Price source constants.
const (
	SourceEbay      PriceSource = "ebay"
	SourceSynthetic PriceSource = "synthetic"
)

// PriceSnapshot is an immutable summary of observed prices for a card query.
// It is the payload stored in the price cache.
type PriceSnapshot struct {
	Items    []PriceItem `json:"items"`
	AvgPrice float64     `json:"avg_price"`
	High     float64     `json:"high"`
	Low      float64     `json:"low"`
	Count    int         `json:"count"`
	Source   PriceSource `json:"source,omitempty"`
}

// NewPriceSnapshot builds a snapshot from items, computing the aggregate
// fields. The average is rounded to cents.
func NewPriceSnapshot(items []PriceItem, source PriceSource) PriceSnapshot {
	s := PriceSnapshot{
		Items:  items,
		Count:  len(items),
		Source: source,
	}
	if len(items) == 0 {
		return s
	}

	var sum float64
	s.High = items[0].Price
	s.Low = items[0].Price
	for _, it := range items {
		sum += it.Price
		s.High = math.Max(s.High, it.Price)
		s.Low = math.Min(s.Low, it.Price)
	}
	s.AvgPrice = roundCents(sum / float64(len(items)))
	return s
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// PriceReport is the consumer-facing result of a price lookup: a snapshot
// plus cache provenance.
type PriceReport struct {
	PriceSnapshot
	Cached    bool      `json:"cached"`
	CacheDate time.Time `json:"cache_date"`
}

// PriceCacheEntry is one stored price snapshot with its expiry window.
// Entries are insert-only; lookups pick the freshest unexpired row.
type PriceCacheEntry struct {
	ID        int64         `json:"id"         db:"id"`
	CardQuery string        `json:"card_query" db:"card_query"`
	Snapshot  PriceSnapshot `json:"price_data" db:"price_data"`
	CachedAt  time.Time     `json:"cached_at"  db:"cached_at"`
	ExpiresAt time.Time     `json:"expires_at" db:"expires_at"`
}

// Expired reports whether the entry is past its expiry at the given instant.
func (e *PriceCacheEntry) Expired(now time.Time) bool {
	return !e.ExpiresAt.After(now)
}

// Listing is a live marketplace listing for a card.
type Listing struct {
	ItemID         string    `json:"itemId"`
	Title          string    `json:"title"`
	CurrentPrice   float64   `json:"currentPrice"`
	BidCount       int       `json:"bidCount"`
	EndTime        time.Time `json:"endTime"`
	ImageURL       string    `json:"imageUrl,omitempty"`
	ViewItemURL    string    `json:"viewItemUrl"`
	Condition      string    `json:"condition"`
	SellerFeedback int       `json:"sellerFeedbackScore"`
	Location       string    `json:"location,omitempty"`
}

// PortfolioItem is one card holding in the user's portfolio.
type PortfolioItem struct {
	ID           int64      `json:"id"                      db:"id"`
	CardName     string     `json:"card_name"               db:"card_name"`
	BuyPrice     float64    `json:"buy_price"               db:"buy_price"`
	Quantity     int        `json:"quantity"                db:"quantity"`
	Condition    string     `json:"condition,omitempty"     db:"condition"`
	PurchaseDate *time.Time `json:"purchase_date,omitempty" db:"purchase_date"`
	Notes        string     `json:"notes,omitempty"         db:"notes"`
	CreatedAt    time.Time  `json:"created_at"              db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"              db:"updated_at"`
}

// Cost returns the total purchase cost of the holding.
func (p *PortfolioItem) Cost() float64 {
	return roundCents(p.BuyPrice * float64(p.Quantity))
}

// PortfolioValuation is a portfolio item priced against the current market.
type PortfolioValuation struct {
	Item          PortfolioItem `json:"item"`
	CurrentPrice  float64       `json:"current_price"`
	CurrentValue  float64       `json:"current_value"`
	Cost          float64       `json:"cost"`
	ProfitLoss    float64       `json:"profit_loss"`
	ProfitLossPct float64       `json:"profit_loss_pct"`
}

// NewPortfolioValuation prices an item at the given current market price.
func NewPortfolioValuation(item PortfolioItem, currentPrice float64) PortfolioValuation {
	cost := item.Cost()
	value := roundCents(currentPrice * float64(item.Quantity))
	pl := roundCents(value - cost)

	var pct float64
	if cost > 0 {
		pct = math.Round(pl/cost*10000) / 100
	}

	return PortfolioValuation{
		Item:          item,
		CurrentPrice:  currentPrice,
		CurrentValue:  value,
		Cost:          cost,
		ProfitLoss:    pl,
		ProfitLossPct: pct,
	}
}

// AlertDirection is the trigger direction of a price alert.
type AlertDirection string

// Alert direction constants.
const (
	AlertAbove AlertDirection = "above"
	AlertBelow AlertDirection = "below"
)

// Valid reports whether the direction is a recognized value.
func (d AlertDirection) Valid() bool {
	return d == AlertAbove || d == AlertBelow
}

// Alert is a price alert on a card. A triggered alert records the price
// and time it fired and deactivates until re-armed.
type Alert struct {
	ID              int64          `json:"id"                          db:"id"`
	CardName        string         `json:"card_name"                   db:"card_name"`
	TargetPrice     float64        `json:"target_price"                db:"target_price"`
	Direction       AlertDirection `json:"direction"                   db:"direction"`
	Active          bool           `json:"active"                      db:"active"`
	LastTriggeredAt *time.Time     `json:"last_triggered_at,omitempty" db:"last_triggered_at"`
	LastPrice       *float64       `json:"last_price,omitempty"        db:"last_price"`
	CreatedAt       time.Time      `json:"created_at"                  db:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"                  db:"updated_at"`
}

// ShouldTrigger reports whether the alert fires at the given price.
func (a *Alert) ShouldTrigger(price float64) bool {
	switch a.Direction {
	case AlertAbove:
		return price >= a.TargetPrice
	case AlertBelow:
		return price <= a.TargetPrice
	default:
		return false
	}
}

// SentimentReport summarizes the hype heuristic for a card.
type SentimentReport struct {
	CardName   string    `json:"card_name"`
	Score      float64   `json:"score"`
	Label      string    `json:"label"`
	FlipScore  int       `json:"flip_score"`
	SampleSize int       `json:"sample_size"`
	AnalyzedAt time.Time `json:"analyzed_at"`
}
