package ratelimit

import (
	"math/rand/v2"
	"time"

	"golang.org/x/time/rate"
)

const (
	BatchConcurrency = 4
	burst            = 1
)

// NewLimiter spreads requestsPerMinute evenly over the Discogs one minute
// window.
func NewLimiter(requestsPerMinute int) *rate.Limiter {
	if requestsPerMinute <= 0 {
		return rate.NewLimiter(rate.Inf, burst)
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(requestsPerMinute)), burst)
}

// RetryWait is how long to wait before the given (1-based) attempt after the
// API reported the request budget was exhausted.
func RetryWait(attempt int) time.Duration {
	const (
		from = 1
		to   = 4
	)
	if attempt <= 1 {
		return 0
	}
	millis := (rand.IntN(to-from)+from)*1000 + rand.N(1000) //nolint:gosec
	return time.Duration(attempt-1) * time.Duration(millis) * time.Millisecond
}
