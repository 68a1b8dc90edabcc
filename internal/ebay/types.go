package ebay

// ItemSummary represents a single item from the eBay Browse API search response.
type ItemSummary struct {
	ItemID        string      `json:"itemId"`
	Title         string      `json:"title"`
	Price         ItemPrice   `json:"price"`
	ItemWebURL    string      `json:"itemWebUrl"`
	Image         *ItemImage  `json:"image,omitempty"`
	Seller        *ItemSeller `json:"seller,omitempty"`
	Condition     string      `json:"condition"`
	ConditionID   string      `json:"conditionId"`
	BuyingOptions []string    `json:"buyingOptions"`
	BidCount      int         `json:"bidCount,omitempty"`
	ItemEndDate   string      `json:"itemEndDate,omitempty"`
	ItemLocation  *Location   `json:"itemLocation,omitempty"`
}

// ItemPrice holds eBay price information.
type ItemPrice struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

// ItemImage holds eBay image information.
type ItemImage struct {
	ImageURL string `json:"imageUrl"`
}

// ItemSeller holds eBay seller information.
type ItemSeller struct {
	Username           string `json:"username"`
	FeedbackScore      int    `json:"feedbackScore"`
	FeedbackPercentage string `json:"feedbackPercentage"`
}

// Location holds eBay item location information.
type Location struct {
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
}
