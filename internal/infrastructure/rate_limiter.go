package infrastructure

import (
	"context"
	"sync"
	"time"
)

// Limiter guards the login path against brute forcing, keyed by email.
type Limiter interface {
	Allow(ctx context.Context, key string) bool
}

// RateLimiter is the in-memory fallback used when Redis is not configured.
type RateLimiter struct {
	attempts map[string]int
	lastTry  map[string]time.Time
	mutex    sync.Mutex
	window   time.Duration
	maxTries int
}

// NewRateLimiter creates a new rate limiter
// window: time period for rate limiting
// maxTries: maximum number of attempts allowed within window
func NewRateLimiter(window time.Duration, maxTries int) *RateLimiter {
	return &RateLimiter{
		attempts: make(map[string]int),
		lastTry:  make(map[string]time.Time),
		window:   window,
		maxTries: maxTries,
	}
}

// Allow checks if a request from the given identifier should be allowed
func (rl *RateLimiter) Allow(_ context.Context, identifier string) bool {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := time.Now()
	lastTry, exists := rl.lastTry[identifier]

	// Reset counter if window has passed
	if !exists || now.Sub(lastTry) > rl.window {
		rl.attempts[identifier] = 1
		rl.lastTry[identifier] = now
		return true
	}

	if rl.attempts[identifier] >= rl.maxTries {
		return false
	}

	rl.attempts[identifier]++
	rl.lastTry[identifier] = now
	return true
}
