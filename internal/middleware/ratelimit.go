package middleware

import (
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"fleetrent/internal/errors"
)

// RateLimiter is a sliding-window request counter keyed by client IP. It is
// an injectable component owned by the router, guarded by a mutex, and keys
// idle longer than idleTTL are evicted so the map stays bounded.
type RateLimiter struct {
	mu       sync.Mutex
	window   time.Duration
	max      int
	idleTTL  time.Duration
	requests map[string][]time.Time
	lastSeen map[string]time.Time
	lastScan time.Time
	now      func() time.Time // injectable for tests
}

// NewRateLimiter creates a limiter allowing max requests per key per window.
func NewRateLimiter(max int, window, idleTTL time.Duration) *RateLimiter {
	return &RateLimiter{
		window:   window,
		max:      max,
		idleTTL:  idleTTL,
		requests: make(map[string][]time.Time),
		lastSeen: make(map[string]time.Time),
		now:      time.Now,
	}
}

// Allow records a request for key and reports whether it is within the limit.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.evictIdle(now)

	windowStart := now.Add(-rl.window)
	valid := rl.requests[key][:0]
	for _, ts := range rl.requests[key] {
		if ts.After(windowStart) {
			valid = append(valid, ts)
		}
	}

	rl.lastSeen[key] = now
	if len(valid) >= rl.max {
		rl.requests[key] = valid
		return false
	}
	rl.requests[key] = append(valid, now)
	return true
}

// evictIdle drops keys with no activity in idleTTL. Runs at most once per
// idleTTL; callers hold the mutex.
func (rl *RateLimiter) evictIdle(now time.Time) {
	if now.Sub(rl.lastScan) < rl.idleTTL {
		return
	}
	rl.lastScan = now
	for key, seen := range rl.lastSeen {
		if now.Sub(seen) > rl.idleTTL {
			delete(rl.lastSeen, key)
			delete(rl.requests, key)
		}
	}
}

// Middleware returns an Echo middleware rejecting over-limit clients with 429.
func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !rl.Allow(c.RealIP()) {
				httpErr := errors.MapErrorToHTTP(errors.ErrRateLimited)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			return next(c)
		}
	}
}
