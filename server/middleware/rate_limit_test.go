package middleware

import (
	"testing"
	"time"
)

func TestRateLimiterBurstThenBlock(t *testing.T) {
	rl := NewRateLimiter(time.Hour, 3)

	for i := 0; i < 3; i++ {
		if !rl.Allow(1) {
			t.Fatalf("request %d within burst should be allowed", i+1)
		}
	}
	if rl.Allow(1) {
		t.Fatal("request beyond burst should be rejected")
	}

	// Other users keep their own budget.
	if !rl.Allow(2) {
		t.Fatal("separate user should not share the exhausted budget")
	}
}
