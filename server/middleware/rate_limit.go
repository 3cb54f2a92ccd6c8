package middleware

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter throttles chat completions per authenticated user so a single
// conversation cannot drain the upstream LLM quota.
type RateLimiter struct {
	mu       sync.Mutex
	limits   map[int32]*rate.Limiter
	interval time.Duration
	burst    int
}

// NewRateLimiter allows one request per interval with the given burst.
func NewRateLimiter(interval time.Duration, burst int) *RateLimiter {
	if interval <= 0 {
		interval = 3 * time.Second
	}
	if burst <= 0 {
		burst = 5
	}
	return &RateLimiter{
		limits:   make(map[int32]*rate.Limiter),
		interval: interval,
		burst:    burst,
	}
}

func (rl *RateLimiter) getLimiter(userID int32) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if limiter, ok := rl.limits[userID]; ok {
		return limiter
	}

	limiter := rate.NewLimiter(rate.Every(rl.interval), rl.burst)
	rl.limits[userID] = limiter
	return limiter
}

// Allow reports whether the user may issue another completion right now.
func (rl *RateLimiter) Allow(userID int32) bool {
	return rl.getLimiter(userID).Allow()
}
