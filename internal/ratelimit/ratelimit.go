// Package ratelimit constructs the token bucket limiter used by the rate
// limit middleware.
package ratelimit

import "golang.org/x/time/rate"

// NewRateLimiter returns a token bucket limiter for the given requests
// per minute. Tokens replenish continuously at requestsPerMinute/60 per
// second with a burst capacity of one minute's worth of requests.
func NewRateLimiter(requestsPerMinute int) *rate.Limiter {
	return rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), requestsPerMinute)
}
