package ai

import (
	"context"

	"golang.org/x/time/rate"
)

// DefaultRateLimit is the default number of upstream calls allowed per minute.
const DefaultRateLimit = 60

// RateLimiter throttles calls to the provider API across all clients.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a limiter allowing perMinute calls per minute, with a burst of
// the same size. Non-positive values fall back to DefaultRateLimit.
func NewRateLimiter(perMinute int) *RateLimiter {
	if perMinute <= 0 {
		perMinute = DefaultRateLimit
	}
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), perMinute),
	}
}

// Wait blocks until a call is allowed or ctx is done.
func (r *RateLimiter) Wait(ctx context.Context) error {
	return r.limiter.Wait(ctx)
}
