package pricing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dimedrop/card-price-tracker/internal/cache"
	"github.com/dimedrop/card-price-tracker/internal/ebay"
	"github.com/dimedrop/card-price-tracker/internal/metrics"
	"github.com/dimedrop/card-price-tracker/internal/store"
	domain "github.com/dimedrop/card-price-tracker/pkg/types"
)

// minQueryLen is the shortest accepted card query after normalization.
const minQueryLen = 3

// Sentinel errors surfaced to API handlers.
var (
	ErrQueryTooShort = errors.New("card query must be at least 3 characters")
	ErrRateLimited   = errors.New("daily eBay API call limit reached")
)

// Limiter gates outbound API calls against the daily budget.
type Limiter interface {
	Allow(ctx context.Context) bool
}

// Service answers price lookups. The flow is cache, then the daily call
// budget, then a live eBay fetch with a synthetic fallback, and finally a
// cache write for the next caller.
type Service struct {
	cache     *cache.PriceCache
	limiter   Limiter
	ebay      Fetcher
	synthetic *SyntheticFetcher
	listings  ebay.EbayClient
	logger    *slog.Logger
	nowFunc   func() time.Time
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithEbayFetcher sets the live price source. Without one, all lookups
// are served synthetically.
func WithEbayFetcher(f Fetcher) ServiceOption {
	return func(s *Service) {
		s.ebay = f
	}
}

// WithListingClient sets the eBay client used for live listing lookups.
func WithListingClient(c ebay.EbayClient) ServiceOption {
	return func(s *Service) {
		s.listings = c
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithNowFunc overrides the time source for tests.
func WithNowFunc(now func() time.Time) ServiceOption {
	return func(s *Service) {
		s.nowFunc = now
	}
}

// NewService creates the price lookup service.
func NewService(priceCache *cache.PriceCache, limiter Limiter, opts ...ServiceOption) *Service {
	s := &Service{
		cache:     priceCache,
		limiter:   limiter,
		synthetic: NewSyntheticFetcher(),
		logger:    slog.Default(),
		nowFunc:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetPrices returns a price report for the card query.
//
// A cache hit short-circuits everything: no budget check, no API call.
// On a miss the daily budget gates the fetch; past the gate the live
// source is tried first and the synthetic source covers any failure, so
// a miss under budget always produces data.
func (s *Service) GetPrices(ctx context.Context, cardQuery string) (*domain.PriceReport, error) {
	timer := prometheus.NewTimer(metrics.PriceLookupDuration)
	defer timer.ObserveDuration()

	normalized := cache.NormalizeQuery(cardQuery)
	if utf8.RuneCountInString(normalized) < minQueryLen {
		return nil, fmt.Errorf("%w: %q", ErrQueryTooShort, cardQuery)
	}

	entry, err := s.cache.Get(ctx, normalized)
	if err == nil {
		return &domain.PriceReport{
			PriceSnapshot: entry.Snapshot,
			Cached:        true,
			CacheDate:     entry.CachedAt,
		}, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		// A broken cache degrades to a live lookup.
		s.logger.Warn("cache lookup failed, continuing without cache",
			"card_query", normalized, "error", err)
	}

	if !s.limiter.Allow(ctx) {
		return nil, ErrRateLimited
	}

	snapshot := s.fetch(ctx, normalized)

	if _, err := s.cache.Put(ctx, normalized, snapshot); err != nil {
		s.logger.Warn("cache write failed", "card_query", normalized, "error", err)
	}

	return &domain.PriceReport{
		PriceSnapshot: snapshot,
		Cached:        false,
		CacheDate:     s.nowFunc(),
	}, nil
}

// fetch tries the live source and falls back to synthetic data on any
// failure or empty result.
func (s *Service) fetch(ctx context.Context, cardQuery string) domain.PriceSnapshot {
	if s.ebay != nil {
		snapshot, err := s.ebay.FetchPrices(ctx, cardQuery, defaultFetchLimit)
		if err == nil && snapshot.Count > 0 {
			return snapshot
		}
		if err != nil {
			s.logger.Warn("live price fetch failed, using synthetic data",
				"card_query", cardQuery, "error", err)
		} else {
			s.logger.Info("live price fetch returned no results, using synthetic data",
				"card_query", cardQuery)
		}
	}

	metrics.SyntheticFallbacksTotal.Inc()
	snapshot, _ := s.synthetic.FetchPrices(ctx, cardQuery, defaultFetchLimit)
	return snapshot
}

// GetLiveListings returns current marketplace listings for a card. Live
// results come from eBay when a client is configured and the daily budget
// admits the call; otherwise synthetic listings are returned.
func (s *Service) GetLiveListings(
	ctx context.Context,
	cardName string,
	limit int,
) ([]domain.Listing, error) {
	if utf8.RuneCountInString(cache.NormalizeQuery(cardName)) < minQueryLen {
		return nil, fmt.Errorf("%w: %q", ErrQueryTooShort, cardName)
	}

	if s.listings == nil || !s.limiter.Allow(ctx) {
		return s.synthetic.SyntheticListings(cardName, limit), nil
	}

	resp, err := s.listings.Search(ctx, ebay.SearchRequest{
		Query: cardName + " basketball card",
		Limit: limit,
	})
	if err != nil {
		s.logger.Warn("live listing fetch failed, using synthetic listings",
			"card_name", cardName, "error", err)
		return s.synthetic.SyntheticListings(cardName, limit), nil
	}

	return ebay.ToListings(resp.Items), nil
}
