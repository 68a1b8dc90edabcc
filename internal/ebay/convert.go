package ebay

import (
	"strconv"
	"time"

	domain "github.com/dimedrop/card-price-tracker/pkg/types"
)

// ToListings converts eBay API item summaries into domain listings.
func ToListings(items []ItemSummary) []domain.Listing {
	listings := make([]domain.Listing, 0, len(items))
	for i := range items {
		listings = append(listings, toListing(&items[i]))
	}
	return listings
}

func toListing(item *ItemSummary) domain.Listing {
	l := domain.Listing{
		ItemID:      item.ItemID,
		Title:       item.Title,
		ViewItemURL: item.ItemWebURL,
		Condition:   item.Condition,
		BidCount:    item.BidCount,
	}

	if p, err := strconv.ParseFloat(item.Price.Value, 64); err == nil {
		l.CurrentPrice = p
	}

	if item.Image != nil {
		l.ImageURL = item.Image.ImageURL
	}

	if item.Seller != nil {
		l.SellerFeedback = item.Seller.FeedbackScore
	}

	if item.ItemLocation != nil {
		l.Location = item.ItemLocation.Country
	}

	if item.ItemEndDate != "" {
		if t, err := time.Parse(time.RFC3339, item.ItemEndDate); err == nil {
			l.EndTime = t
		}
	}

	return l
}

// ToPriceItems converts item summaries into price observations for a
// snapshot. Items without a parseable price are skipped.
func ToPriceItems(items []ItemSummary, observedAt time.Time) []domain.PriceItem {
	out := make([]domain.PriceItem, 0, len(items))
	date := observedAt.UTC().Format(time.DateOnly)

	for i := range items {
		p, err := strconv.ParseFloat(items[i].Price.Value, 64)
		if err != nil {
			continue
		}
		out = append(out, domain.PriceItem{
			Price: p,
			Date:  date,
			Title: items[i].Title,
		})
	}
	return out
}
