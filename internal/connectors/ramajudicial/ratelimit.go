package ramajudicial

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// DefaultRequestsPerMinute is a conservative pace for the consultation
// API, which throttles aggressively during business hours.
const DefaultRequestsPerMinute = 15

// RateLimiter paces outbound calls to at most N requests per minute.
// It admits a full minute's quota as an initial burst and then spaces
// further calls so the one-minute window is never exceeded; a call
// arriving while the window is full blocks until the window admits it.
// No call is ever dropped.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a limiter for the given per-minute quota.
// Non-positive values fall back to DefaultRequestsPerMinute.
func NewRateLimiter(requestsPerMinute int) *RateLimiter {
	if requestsPerMinute <= 0 {
		requestsPerMinute = DefaultRequestsPerMinute
	}
	return &RateLimiter{
		limiter: rate.NewLimiter(
			rate.Every(time.Minute/time.Duration(requestsPerMinute)),
			requestsPerMinute,
		),
	}
}

// Wait blocks until a request can be made without exceeding the quota,
// or until ctx is cancelled.
func (r *RateLimiter) Wait(ctx context.Context) error {
	return r.limiter.Wait(ctx)
}

// Allow reports whether a request could proceed immediately without
// blocking. It consumes quota when it returns true.
func (r *RateLimiter) Allow() bool {
	return r.limiter.Allow()
}
