package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestLimiter(max int, window, idleTTL time.Duration) (*RateLimiter, *time.Time) {
	rl := NewRateLimiter(max, window, idleTTL)
	now := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }
	return rl, &now
}

func TestRateLimiter_Allow(t *testing.T) {
	rl, now := newTestLimiter(3, 60*time.Second, 10*time.Minute)

	// exactly 3 requests inside the window succeed
	assert.True(t, rl.Allow("1.2.3.4"))
	assert.True(t, rl.Allow("1.2.3.4"))
	assert.True(t, rl.Allow("1.2.3.4"))
	// the 4th within the same window is rejected
	assert.False(t, rl.Allow("1.2.3.4"))

	// other clients are counted independently
	assert.True(t, rl.Allow("5.6.7.8"))

	// once the oldest counted request ages past the window, a slot frees up
	*now = now.Add(61 * time.Second)
	assert.True(t, rl.Allow("1.2.3.4"))
}

func TestRateLimiter_SlidingWindow(t *testing.T) {
	rl, now := newTestLimiter(3, 60*time.Second, 10*time.Minute)

	assert.True(t, rl.Allow("k"))
	*now = now.Add(30 * time.Second)
	assert.True(t, rl.Allow("k"))
	assert.True(t, rl.Allow("k"))
	assert.False(t, rl.Allow("k"))

	// 31s later only the first request has left the window; the two from
	// t+30s still count, so one more is admitted and the next is not
	*now = now.Add(31 * time.Second)
	assert.True(t, rl.Allow("k"))
	assert.False(t, rl.Allow("k"))
}

func TestRateLimiter_EvictsIdleKeys(t *testing.T) {
	rl, now := newTestLimiter(3, 60*time.Second, 5*time.Minute)

	assert.True(t, rl.Allow("idle"))
	assert.True(t, rl.Allow("busy"))

	*now = now.Add(6 * time.Minute)
	assert.True(t, rl.Allow("busy"))

	rl.mu.Lock()
	_, idleKept := rl.requests["idle"]
	_, busyKept := rl.requests["busy"]
	rl.mu.Unlock()

	assert.False(t, idleKept, "idle key should be evicted")
	assert.True(t, busyKept)
}
