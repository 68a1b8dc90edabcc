// Package pricing implements card price lookups: cache first, then the
// daily call budget, then eBay with a synthetic fallback.
package pricing

import (
	"context"
	"fmt"
	"time"

	"github.com/dimedrop/card-price-tracker/internal/ebay"
	domain "github.com/dimedrop/card-price-tracker/pkg/types"
)

// Fetcher retrieves observed prices for a card query.
type Fetcher interface {
	FetchPrices(ctx context.Context, cardQuery string, limit int) (domain.PriceSnapshot, error)
}

// defaultFetchLimit bounds how many sold/listed comps one lookup pulls.
const defaultFetchLimit = 50

// EbayFetcher fetches prices from the eBay Browse API.
type EbayFetcher struct {
	client  ebay.EbayClient
	nowFunc func() time.Time
}

// NewEbayFetcher creates a fetcher over the given eBay client.
func NewEbayFetcher(client ebay.EbayClient) *EbayFetcher {
	return &EbayFetcher{client: client, nowFunc: time.Now}
}

// FetchPrices searches eBay and converts the results to a price snapshot.
func (f *EbayFetcher) FetchPrices(
	ctx context.Context,
	cardQuery string,
	limit int,
) (domain.PriceSnapshot, error) {
	if limit <= 0 {
		limit = defaultFetchLimit
	}

	resp, err := f.client.Search(ctx, ebay.SearchRequest{
		Query: cardQuery + " basketball card",
		Limit: limit,
	})
	if err != nil {
		return domain.PriceSnapshot{}, fmt.Errorf("searching ebay: %w", err)
	}

	items := ebay.ToPriceItems(resp.Items, f.nowFunc())
	return domain.NewPriceSnapshot(items, domain.SourceEbay), nil
}
