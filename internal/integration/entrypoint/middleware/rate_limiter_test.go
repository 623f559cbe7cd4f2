package middleware

import (
	"testing"
	"time"
)

func TestRateLimiter_Allow(t *testing.T) {
	t.Run("denies once the window limit is reached", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(2, 1*time.Minute)

		if !rl.allow("user-a") || !rl.allow("user-a") {
			t.Fatal("expected the first two attempts to be allowed")
		}
		if rl.allow("user-a") {
			t.Error("expected the third attempt to be denied")
		}
	})

	t.Run("keys are tracked independently", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(1, 1*time.Minute)

		if !rl.allow("user-a") {
			t.Fatal("expected the first attempt to be allowed")
		}
		if !rl.allow("user-b") {
			t.Error("expected a different key to have its own window")
		}
	})

	t.Run("allows again after the window expires", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(1, 10*time.Millisecond)

		if !rl.allow("user-a") {
			t.Fatal("expected the first attempt to be allowed")
		}
		if rl.allow("user-a") {
			t.Fatal("expected the second attempt to be denied")
		}

		time.Sleep(20 * time.Millisecond)
		if !rl.allow("user-a") {
			t.Error("expected a fresh window after expiry")
		}
	})
}

func TestRateLimiter_EvictsExpiredEntries(t *testing.T) {
	t.Run("allow sweeps stale keys from earlier windows", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(5, 10*time.Millisecond)

		rl.allow("user-a")
		rl.allow("user-b")

		time.Sleep(20 * time.Millisecond)
		rl.allow("user-c")

		rl.mu.Lock()
		defer rl.mu.Unlock()
		if len(rl.entries) != 1 {
			t.Errorf("expected only the active key to remain, got %d entries", len(rl.entries))
		}
		if _, ok := rl.entries["user-c"]; !ok {
			t.Error("expected the active key to survive the sweep")
		}
	})

	t.Run("Cleanup drops every expired window", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(5, 10*time.Millisecond)

		rl.allow("user-a")
		rl.allow("user-b")

		time.Sleep(20 * time.Millisecond)
		rl.Cleanup()

		rl.mu.Lock()
		defer rl.mu.Unlock()
		if len(rl.entries) != 0 {
			t.Errorf("expected no entries after cleanup, got %d", len(rl.entries))
		}
	})
}
