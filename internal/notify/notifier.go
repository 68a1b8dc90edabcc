// Package notify defines the notification interface and implementations
// for price alert delivery.
package notify

import (
	"context"
	"time"

	domain "github.com/dimedrop/card-price-tracker/pkg/types"
)

// AlertPayload contains the data needed to send a price alert notification.
type AlertPayload struct {
	CardName     string
	TargetPrice  float64
	CurrentPrice float64
	Direction    domain.AlertDirection
	TriggeredAt  time.Time
}

// Notifier defines the interface for sending price alert notifications.
type Notifier interface {
	SendAlert(ctx context.Context, alert AlertPayload) error
}
