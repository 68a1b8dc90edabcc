package ebay

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// RateLimiter smooths the per-second call rate against the eBay API using
// a token bucket. Daily quota enforcement lives in the quota package; this
// limiter only keeps bursts polite.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a rate limiter with the given per-second rate and
// burst size.
func NewRateLimiter(perSecond float64, burst int) *RateLimiter {
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
	}
}

// Wait blocks until the rate limiter allows the call, or the context is
// canceled.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if err := r.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait: %w", err)
	}
	return nil
}
