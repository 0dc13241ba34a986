// Package ratelimit provides per-client request throttling for the HTTP API
// using token buckets.
package ratelimit

import (
	"sync"
	"time"
)

// tokenBucket holds up to capacity tokens and refills at refillRate tokens per second.
type tokenBucket struct {
	capacity   int
	refillRate float64
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

func newTokenBucket(capacity int, refillRate float64) *tokenBucket {
	return &tokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// take consumes a token if one is available and reports the bucket state
// after the attempt.
func (tb *tokenBucket) take(now time.Time) Info {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	tb.refill(now)
	info := Info{Limit: tb.capacity}
	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		info.Allowed = true
	} else {
		info.RetryAfter = tb.nextTokenIn()
	}
	info.Remaining = int(tb.tokens)
	info.ResetTime = tb.fullAt(now)
	return info
}

// caller holds tb.mu
func (tb *tokenBucket) refill(now time.Time) {
	elapsed := now.Sub(tb.lastRefill)
	if elapsed > 0 {
		tb.tokens = min(float64(tb.capacity), tb.tokens+elapsed.Seconds()*tb.refillRate)
		tb.lastRefill = now
	}
}

// caller holds tb.mu
func (tb *tokenBucket) fullAt(now time.Time) time.Time {
	missing := float64(tb.capacity) - tb.tokens
	if missing <= 0 || tb.refillRate <= 0 {
		return now
	}
	return now.Add(time.Duration(missing / tb.refillRate * float64(time.Second)))
}

// nextTokenIn returns how long until one whole token is available.
// caller holds tb.mu
func (tb *tokenBucket) nextTokenIn() time.Duration {
	if tb.tokens >= 1.0 || tb.refillRate <= 0 {
		return 0
	}
	return time.Duration((1.0 - tb.tokens) / tb.refillRate * float64(time.Second))
}
