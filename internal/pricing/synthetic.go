package pricing

import (
	"context"
	"fmt"
	"strings"
	"time"

	domain "github.com/dimedrop/card-price-tracker/pkg/types"
)

// SyntheticFetcher returns deterministic fixture prices. It serves as the
// fallback when eBay credentials are absent or the live fetch fails, so
// lookups always produce data.
type SyntheticFetcher struct {
	nowFunc func() time.Time
}

// NewSyntheticFetcher creates a synthetic price source.
func NewSyntheticFetcher() *SyntheticFetcher {
	return &SyntheticFetcher{nowFunc: time.Now}
}

// hype cards get the richer fixture set.
var hypeTerms = []string{"wembanyama", "wemby", "prizm"}

// FetchPrices returns fixture prices for the query. Queries mentioning
// hype rookies get a dedicated sample; everything else gets generic comps
// built from the query text.
func (f *SyntheticFetcher) FetchPrices(
	_ context.Context,
	cardQuery string,
	_ int,
) (domain.PriceSnapshot, error) {
	lower := strings.ToLower(cardQuery)
	for _, term := range hypeTerms {
		if strings.Contains(lower, term) {
			return domain.NewPriceSnapshot(wembyItems(), domain.SourceSynthetic), nil
		}
	}
	return domain.NewPriceSnapshot(genericItems(cardQuery), domain.SourceSynthetic), nil
}

func wembyItems() []domain.PriceItem {
	return []domain.PriceItem{
		{Price: 150.00, Date: "2025-10-01", Title: "Victor Wembanyama 2023-24 Prizm Rookie Card PSA 10"},
		{Price: 145.50, Date: "2025-10-03", Title: "Wembanyama Prizm Silver Rookie #236 PSA 9"},
		{Price: 160.00, Date: "2025-10-05", Title: "2023 Prizm Victor Wembanyama RC #236 BGS 9.5"},
		{Price: 155.00, Date: "2025-10-07", Title: "Wembanyama Prizm Base Rookie PSA 10 Gem Mint"},
		{Price: 152.00, Date: "2025-10-09", Title: "Victor Wembanyama 2023-24 Prizm #236 RC PSA 10"},
	}
}

func genericItems(cardQuery string) []domain.PriceItem {
	return []domain.PriceItem{
		{Price: 45.00, Date: "2025-10-01", Title: fmt.Sprintf("%s Rookie Card PSA 9", cardQuery)},
		{Price: 52.00, Date: "2025-10-03", Title: fmt.Sprintf("%s Base Rookie PSA 10", cardQuery)},
		{Price: 48.50, Date: "2025-10-05", Title: fmt.Sprintf("%s RC BGS 9.5", cardQuery)},
		{Price: 50.00, Date: "2025-10-07", Title: fmt.Sprintf("%s Rookie PSA 10", cardQuery)},
		{Price: 49.00, Date: "2025-10-09", Title: fmt.Sprintf("%s RC Gem Mint", cardQuery)},
	}
}

// SyntheticListings returns fixture live listings for a card, capped at limit.
func (f *SyntheticFetcher) SyntheticListings(cardName string, limit int) []domain.Listing {
	now := f.nowFunc()
	listings := []domain.Listing{
		{
			ItemID:         "123456789",
			Title:          fmt.Sprintf("%s Rookie Card PSA 10", cardName),
			CurrentPrice:   150.00,
			BidCount:       5,
			EndTime:        now.Add(3 * 24 * time.Hour),
			ImageURL:       "/mock-card.jpg",
			ViewItemURL:    "https://ebay.com/itm/123456789",
			Condition:      "Near Mint",
			SellerFeedback: 98,
			Location:       "USA",
		},
		{
			ItemID:         "987654321",
			Title:          fmt.Sprintf("%s Silver Prizm RC", cardName),
			CurrentPrice:   200.00,
			BidCount:       12,
			EndTime:        now.Add(5 * 24 * time.Hour),
			ImageURL:       "/mock-card2.jpg",
			ViewItemURL:    "https://ebay.com/itm/987654321",
			Condition:      "Mint",
			SellerFeedback: 95,
			Location:       "Canada",
		},
	}

	if limit > 0 && limit < len(listings) {
		listings = listings[:limit]
	}
	return listings
}
