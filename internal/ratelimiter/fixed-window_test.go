package ratelimiter

import (
	"sync"
	"testing"
	"time"
)

func TestFixedWindowAllowsUpToLimit(t *testing.T) {
	rl := NewFixedWindowLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		allowed, _ := rl.Allow("10.0.0.1")
		if !allowed {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}

	allowed, retryAfter := rl.Allow("10.0.0.1")
	if allowed {
		t.Error("request over the limit should be denied")
	}
	if retryAfter != time.Minute {
		t.Errorf("retryAfter = %v, want %v", retryAfter, time.Minute)
	}
}

func TestFixedWindowTracksClientsSeparately(t *testing.T) {
	rl := NewFixedWindowLimiter(1, time.Minute)

	if allowed, _ := rl.Allow("10.0.0.1"); !allowed {
		t.Fatal("first client's first request should be allowed")
	}
	if allowed, _ := rl.Allow("10.0.0.1"); allowed {
		t.Fatal("first client's second request should be denied")
	}
	if allowed, _ := rl.Allow("10.0.0.2"); !allowed {
		t.Error("second client should not be affected by the first")
	}
}

func TestFixedWindowConcurrentAccess(t *testing.T) {
	rl := NewFixedWindowLimiter(50, time.Minute)

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowedCount := 0

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if allowed, _ := rl.Allow("10.0.0.1"); allowed {
				mu.Lock()
				allowedCount++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if allowedCount != 50 {
		t.Errorf("allowed %d requests, want exactly 50", allowedCount)
	}
}
