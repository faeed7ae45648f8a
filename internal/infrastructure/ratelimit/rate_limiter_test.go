package ratelimit

import (
	"testing"
	"time"
)

func TestRateLimiter_Basic(t *testing.T) {
	limiter := NewRateLimiter(2)

	if qps := limiter.GetQPS(); qps != 2 {
		t.Errorf("expected QPS 2, got %d", qps)
	}

	now := time.Now()
	if !limiter.AllowAt("10.0.0.1", now) || !limiter.AllowAt("10.0.0.1", now) {
		t.Fatal("burst of 2 should be allowed")
	}
	if limiter.AllowAt("10.0.0.1", now) {
		t.Error("third request in the same instant should be rejected")
	}

	// 不同客户端互不影响
	if !limiter.AllowAt("10.0.0.2", now) {
		t.Error("other client should be allowed")
	}
}

func TestRateLimiter_NoLimit(t *testing.T) {
	limiter := NewRateLimiter(0)

	if qps := limiter.GetQPS(); qps != 0 {
		t.Errorf("expected QPS 0 (unlimited), got %d", qps)
	}
	if limiter.Enabled() {
		t.Error("limiter with QPS 0 should be disabled")
	}

	for i := 0; i < 100; i++ {
		if !limiter.Allow("client") {
			t.Fatal("unlimited limiter should allow all requests")
		}
	}
	if limiter.Len() != 0 {
		t.Errorf("unlimited limiter should not track clients, got %d", limiter.Len())
	}
}

func TestRateLimiter_SetQPS(t *testing.T) {
	limiter := NewRateLimiter(10)
	limiter.Allow("client")

	limiter.SetQPS(20)
	if qps := limiter.GetQPS(); qps != 20 {
		t.Errorf("expected QPS 20 after SetQPS, got %d", qps)
	}

	limiter.SetQPS(0)
	if qps := limiter.GetQPS(); qps != 0 {
		t.Errorf("expected QPS 0 after SetQPS(0), got %d", qps)
	}
	if limiter.Len() != 0 {
		t.Errorf("disabling should drop tracked clients, got %d", limiter.Len())
	}
}

func TestRateLimiter_Cleanup(t *testing.T) {
	limiter := NewRateLimiter(5)
	start := time.Now()

	limiter.AllowAt("old", start)
	limiter.AllowAt("new", start.Add(9*time.Minute))

	removed := limiter.Cleanup(start.Add(11*time.Minute), DefaultIdleTTL)
	if removed != 1 {
		t.Errorf("expected 1 client removed, got %d", removed)
	}
	if limiter.Len() != 1 {
		t.Errorf("expected 1 client left, got %d", limiter.Len())
	}
}
