// Package portfolio manages card holdings and values them against current
// market prices.
package portfolio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/dimedrop/card-price-tracker/internal/store"
	domain "github.com/dimedrop/card-price-tracker/pkg/types"
)

// Validation errors surfaced to API handlers.
var (
	ErrInvalidCardName = errors.New("card name is required")
	ErrInvalidBuyPrice = errors.New("buy price must be positive")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// PriceSource supplies the current market price for a card.
type PriceSource interface {
	GetPrices(ctx context.Context, cardQuery string) (*domain.PriceReport, error)
}

// Report is the full portfolio priced against the market.
type Report struct {
	Items         []domain.PortfolioValuation `json:"items"`
	TotalCost     float64                     `json:"total_cost"`
	TotalValue    float64                     `json:"total_value"`
	ProfitLoss    float64                     `json:"profit_loss"`
	ProfitLossPct float64                     `json:"profit_loss_pct"`
}

// Service manages portfolio holdings.
type Service struct {
	store  store.Store
	prices PriceSource
	logger *slog.Logger
}

// NewService creates a portfolio service.
func NewService(s store.Store, prices PriceSource, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: s, prices: prices, logger: logger}
}

// Add validates and stores a new holding.
func (s *Service) Add(ctx context.Context, item *domain.PortfolioItem) error {
	if item.CardName == "" {
		return ErrInvalidCardName
	}
	if item.BuyPrice <= 0 {
		return ErrInvalidBuyPrice
	}
	if item.Quantity < 1 {
		return ErrInvalidQuantity
	}

	if err := s.store.AddPortfolioItem(ctx, item); err != nil {
		return fmt.Errorf("adding portfolio item: %w", err)
	}
	return nil
}

// Get returns a holding by ID.
func (s *Service) Get(ctx context.Context, id int64) (*domain.PortfolioItem, error) {
	return s.store.GetPortfolioItem(ctx, id)
}

// List returns all holdings, newest first.
func (s *Service) List(ctx context.Context) ([]domain.PortfolioItem, error) {
	return s.store.ListPortfolio(ctx)
}

// Delete removes a holding by ID.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.store.DeletePortfolioItem(ctx, id)
}

// Valuation prices every holding and aggregates the totals. A holding
// whose price lookup fails is valued at its cost basis so one bad lookup
// does not sink the whole report.
func (s *Service) Valuation(ctx context.Context) (*Report, error) {
	items, err := s.store.ListPortfolio(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing portfolio: %w", err)
	}

	report := &Report{Items: make([]domain.PortfolioValuation, 0, len(items))}

	for _, item := range items {
		currentPrice := item.BuyPrice

		priceReport, err := s.prices.GetPrices(ctx, item.CardName)
		if err != nil {
			s.logger.Warn("price lookup failed, valuing at cost basis",
				"card_name", item.CardName, "error", err)
		} else if priceReport.AvgPrice > 0 {
			currentPrice = priceReport.AvgPrice
		}

		v := domain.NewPortfolioValuation(item, currentPrice)
		report.Items = append(report.Items, v)
		report.TotalCost += v.Cost
		report.TotalValue += v.CurrentValue
	}

	report.TotalCost = roundCents(report.TotalCost)
	report.TotalValue = roundCents(report.TotalValue)
	report.ProfitLoss = roundCents(report.TotalValue - report.TotalCost)
	if report.TotalCost > 0 {
		report.ProfitLossPct = math.Round(report.ProfitLoss/report.TotalCost*10000) / 100
	}

	return report, nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
