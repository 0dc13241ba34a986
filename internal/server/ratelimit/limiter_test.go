package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestTokenBucket_Take(t *testing.T) {
	bucket := newTokenBucket(10, 1.0)
	now := time.Now()

	for i := 0; i < 10; i++ {
		if info := bucket.take(now); !info.Allowed {
			t.Errorf("Expected request %d to be allowed", i+1)
		}
	}

	info := bucket.take(now)
	if info.Allowed {
		t.Error("Expected 11th request to be denied")
	}
	if info.RetryAfter <= 0 || info.RetryAfter > time.Second {
		t.Errorf("Expected retry after within one second, got %v", info.RetryAfter)
	}
}

func TestTokenBucket_Refill(t *testing.T) {
	bucket := newTokenBucket(10, 1.0)
	now := time.Now()

	for i := 0; i < 10; i++ {
		bucket.take(now)
	}

	later := now.Add(1100 * time.Millisecond)
	if info := bucket.take(later); !info.Allowed {
		t.Error("Expected request to be allowed after refill")
	}
	if info := bucket.take(later); info.Allowed {
		t.Error("Expected request to be denied after consuming refilled token")
	}
}

func TestTokenBucket_ResetTime(t *testing.T) {
	bucket := newTokenBucket(10, 1.0)
	now := time.Now()

	var info Info
	for i := 0; i < 5; i++ {
		info = bucket.take(now)
	}

	if info.Remaining != 5 {
		t.Errorf("Expected 5 remaining tokens, got %d", info.Remaining)
	}
	if want := now.Add(5 * time.Second); !info.ResetTime.Equal(want) {
		t.Errorf("Expected reset at %v, got %v", want, info.ResetTime)
	}
}

func TestLimiter_Allow(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
	})
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/render", "POST")
		if !allowed {
			t.Errorf("Expected request %d to be allowed", i+1)
		}
		if info.Limit != 10 {
			t.Errorf("Expected limit 10, got %d", info.Limit)
		}
		if info.Remaining != 9-i {
			t.Errorf("Expected remaining %d, got %d", 9-i, info.Remaining)
		}
	}

	allowed, info := limiter.Allow("127.0.0.1", "/render", "POST")
	if allowed {
		t.Error("Expected 11th request to be denied")
	}
	if info.RetryAfter <= 0 {
		t.Error("Expected retry after to be positive")
	}

	// Another client has its own budget
	if allowed, _ := limiter.Allow("127.0.0.2", "/render", "POST"); !allowed {
		t.Error("Expected request from another client to be allowed")
	}
}

func TestLimiter_WhitelistAndBlacklist(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{"127.0.0.1": true},
		Blacklist:     map[string]bool{"192.168.1.1": true},
	})
	defer limiter.Stop()

	for i := 0; i < 50; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/render", "POST")
		if !allowed {
			t.Errorf("Expected whitelisted request %d to be allowed", i+1)
		}
		if info.Limit != 0 {
			t.Errorf("Expected limit 0 for whitelisted, got %d", info.Limit)
		}
	}

	if allowed, _ := limiter.Allow("192.168.1.1", "/render", "POST"); allowed {
		t.Error("Expected blacklisted request to be denied")
	}
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		if allowed, _ := limiter.Allow("127.0.0.1", "/export/pdf", "POST"); !allowed {
			t.Errorf("Expected request %d to be allowed when disabled", i+1)
		}
	}
}

func TestLimiter_HealthUnlimited(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: true, DefaultLimit: 1, DefaultWindow: time.Minute})
	defer limiter.Stop()

	for i := 0; i < 20; i++ {
		if allowed, _ := limiter.Allow("127.0.0.1", "/health", "GET"); !allowed {
			t.Fatalf("Expected health check %d to be allowed", i+1)
		}
	}
}

func TestLimiter_SessionRoutesShareBucket(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/sessions/*/export/pdf", Method: "POST", Limit: 2, Window: time.Hour, Burst: 2},
		},
	})
	defer limiter.Stop()

	paths := []string{"/sessions/a/export/pdf", "/sessions/b/export/pdf", "/sessions/c/export/pdf"}
	var results []bool
	for _, p := range paths {
		allowed, _ := limiter.Allow("127.0.0.1", p, "POST")
		results = append(results, allowed)
	}

	if !results[0] || !results[1] || results[2] {
		t.Errorf("Expected [true true false], got %v", results)
	}
	if limiter.Len() != 1 {
		t.Errorf("Expected one bucket, got %d", limiter.Len())
	}
}

func TestLimiter_EndpointSpecific(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/export/pdf", Method: "POST", Limit: 5, Window: time.Hour, Burst: 5},
		},
	})
	defer limiter.Stop()

	for i := 0; i < 5; i++ {
		if allowed, _ := limiter.Allow("127.0.0.1", "/export/pdf", "POST"); !allowed {
			t.Errorf("Expected request %d to be allowed", i+1)
		}
	}
	allowed, info := limiter.Allow("127.0.0.1", "/export/pdf", "POST")
	if allowed {
		t.Error("Expected 6th request to be denied")
	}
	if info.Limit != 5 {
		t.Errorf("Expected limit 5, got %d", info.Limit)
	}

	allowed, info = limiter.Allow("127.0.0.1", "/templates", "GET")
	if !allowed {
		t.Error("Expected different endpoint to be allowed")
	}
	if info.Limit != 1000 {
		t.Errorf("Expected default limit 1000, got %d", info.Limit)
	}
}

func TestLimiter_Concurrent(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
	})
	defer limiter.Stop()

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowedCount := 0

	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if allowed, _ := limiter.Allow("127.0.0.1", "/render", "POST"); allowed {
				mu.Lock()
				allowedCount++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	// A few tokens may refill while the goroutines run
	if allowedCount < 100 || allowedCount > 105 {
		t.Errorf("Expected about 100 allowed requests, got %d", allowedCount)
	}
}

func TestLimiter_EvictIdle(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: true, DefaultLimit: 10, DefaultWindow: time.Minute})
	defer limiter.Stop()

	base := time.Now()
	limiter.now = func() time.Time { return base }
	for i := 0; i < 10; i++ {
		limiter.Allow(fmt.Sprintf("127.0.0.%d", i+1), "/render", "POST")
	}

	limiter.now = func() time.Time { return base.Add(2 * time.Hour) }
	for i := 0; i < 3; i++ {
		limiter.Allow(fmt.Sprintf("127.0.0.%d", i+1), "/render", "POST")
	}

	removed := limiter.evictIdle(base.Add(time.Hour))
	if removed != 7 {
		t.Errorf("Expected 7 idle buckets removed, got %d", removed)
	}
	if limiter.Len() != 3 {
		t.Errorf("Expected 3 buckets left, got %d", limiter.Len())
	}
}

func TestLimiter_StopTwice(t *testing.T) {
	limiter := NewLimiter(nil)
	limiter.Stop()
	limiter.Stop()
}

func TestNewLimiter_NilConfig(t *testing.T) {
	limiter := NewLimiter(nil)
	defer limiter.Stop()

	allowed, info := limiter.Allow("127.0.0.1", "/render", "POST")
	if !allowed {
		t.Error("Expected request to be allowed with default config")
	}
	if info.Limit != 1000 {
		t.Errorf("Expected default limit 1000, got %d", info.Limit)
	}
}
