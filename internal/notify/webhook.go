package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	domain "github.com/dimedrop/card-price-tracker/pkg/types"
)

const (
	colorGreen  = 0x2ECC71 // buy window: price fell to target
	colorOrange = 0xE67E22 // sell window: price rose to target
)

// WebhookNotifier implements Notifier via a Discord-compatible webhook.
type WebhookNotifier struct {
	webhookURL string
	client     *http.Client
}

// WebhookOption configures a WebhookNotifier.
type WebhookOption func(*WebhookNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) WebhookOption {
	return func(w *WebhookNotifier) {
		w.client = c
	}
}

// NewWebhookNotifier creates a new WebhookNotifier.
func NewWebhookNotifier(webhookURL string, opts ...WebhookOption) *WebhookNotifier {
	w := &WebhookNotifier{
		webhookURL: webhookURL,
		client:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// webhookPayload is the Discord webhook JSON structure.
type webhookPayload struct {
	Embeds []embed `json:"embeds"`
}

type embed struct {
	Title       string       `json:"title"`
	Color       int          `json:"color"`
	Description string       `json:"description,omitempty"`
	Fields      []embedField `json:"fields,omitempty"`
}

type embedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// SendAlert sends a single price alert as a webhook embed.
func (w *WebhookNotifier) SendAlert(ctx context.Context, alert AlertPayload) error {
	return w.post(ctx, webhookPayload{Embeds: []embed{buildEmbed(alert)}})
}

func buildEmbed(alert AlertPayload) embed {
	verb := "rose above"
	color := colorOrange
	if alert.Direction == domain.AlertBelow {
		verb = "dropped below"
		color = colorGreen
	}

	return embed{
		Title: fmt.Sprintf("Price Alert: %s", alert.CardName),
		Color: color,
		Description: fmt.Sprintf("%s %s your $%.2f target",
			alert.CardName, verb, alert.TargetPrice),
		Fields: []embedField{
			{Name: "Current Price", Value: fmt.Sprintf("$%.2f", alert.CurrentPrice), Inline: true},
			{Name: "Target", Value: fmt.Sprintf("$%.2f", alert.TargetPrice), Inline: true},
			{Name: "Direction", Value: string(alert.Direction), Inline: true},
		},
	}
}

func (w *WebhookNotifier) post(ctx context.Context, payload webhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		w.webhookURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("webhook rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("webhook returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("webhook returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
