package ebay_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimedrop/card-price-tracker/internal/ebay"
)

func TestToListings(t *testing.T) {
	t.Parallel()

	items := []ebay.ItemSummary{
		{
			ItemID:     "v1|123|0",
			Title:      "Victor Wembanyama 2023-24 Prizm RC PSA 10",
			Price:      ebay.ItemPrice{Value: "150.00", Currency: "USD"},
			ItemWebURL: "https://ebay.com/itm/123",
			Condition:  "Near Mint",
			BidCount:   5,
			Image:      &ebay.ItemImage{ImageURL: "https://img.ebay.com/123.jpg"},
			Seller: &ebay.ItemSeller{
				Username:      "cardshop",
				FeedbackScore: 98,
			},
			ItemLocation: &ebay.Location{Country: "US"},
			ItemEndDate:  "2025-10-05T18:00:00Z",
		},
		{
			ItemID: "v1|456|0",
			Title:  "Unparseable price still converts",
			Price:  ebay.ItemPrice{Value: "n/a", Currency: "USD"},
		},
	}

	listings := ebay.ToListings(items)
	require.Len(t, listings, 2)

	l := listings[0]
	assert.Equal(t, "v1|123|0", l.ItemID)
	assert.Equal(t, "Victor Wembanyama 2023-24 Prizm RC PSA 10", l.Title)
	assert.InDelta(t, 150.00, l.CurrentPrice, 0.001)
	assert.Equal(t, "https://ebay.com/itm/123", l.ViewItemURL)
	assert.Equal(t, "https://img.ebay.com/123.jpg", l.ImageURL)
	assert.Equal(t, "Near Mint", l.Condition)
	assert.Equal(t, 5, l.BidCount)
	assert.Equal(t, 98, l.SellerFeedback)
	assert.Equal(t, "US", l.Location)
	assert.Equal(t, time.Date(2025, 10, 5, 18, 0, 0, 0, time.UTC), l.EndTime)

	// Missing optional fields leave zero values.
	assert.Zero(t, listings[1].CurrentPrice)
	assert.Empty(t, listings[1].ImageURL)
}

func TestToPriceItems(t *testing.T) {
	t.Parallel()

	observedAt := time.Date(2025, 10, 1, 14, 30, 0, 0, time.UTC)

	items := []ebay.ItemSummary{
		{Title: "Card A", Price: ebay.ItemPrice{Value: "45.00"}},
		{Title: "bad price skipped", Price: ebay.ItemPrice{Value: "oops"}},
		{Title: "Card B", Price: ebay.ItemPrice{Value: "52.00"}},
	}

	priceItems := ebay.ToPriceItems(items, observedAt)
	require.Len(t, priceItems, 2)

	assert.InDelta(t, 45.00, priceItems[0].Price, 0.001)
	assert.Equal(t, "Card A", priceItems[0].Title)
	assert.Equal(t, "2025-10-01", priceItems[0].Date)
	assert.InDelta(t, 52.00, priceItems[1].Price, 0.001)
}
