// ABOUTME: Tests for backoff calculation
// ABOUTME: Verifies growth, jitter bounds, and the 30s cap
package util

import (
	"testing"
	"time"
)

func TestCalculateBackoff_ZeroForFirstAttempt(t *testing.T) {
	if got := CalculateBackoff(time.Second, 0); got != 0 {
		t.Errorf("CalculateBackoff(1s, 0) = %s, want 0", got)
	}
	if got := CalculateBackoff(time.Second, -1); got != 0 {
		t.Errorf("CalculateBackoff(1s, -1) = %s, want 0", got)
	}
}

func TestCalculateBackoff_GrowsWithAttempts(t *testing.T) {
	base := 100 * time.Millisecond

	// With 25% jitter, attempt n is bounded by [0.75, 1.25] * 2^n * base
	for attempt := 1; attempt <= 4; attempt++ {
		got := CalculateBackoff(base, attempt)
		expected := base * time.Duration(1<<uint(attempt))
		lo := expected * 3 / 4
		hi := expected * 5 / 4
		if got < lo || got > hi {
			t.Errorf("attempt %d: backoff = %s, want within [%s, %s]", attempt, got, lo, hi)
		}
	}
}

func TestCalculateBackoff_CapsAt30Seconds(t *testing.T) {
	// Large attempt counts must not overflow or exceed the cap plus jitter
	for _, attempt := range []int{20, 31, 100} {
		got := CalculateBackoff(2*time.Second, attempt)
		if got > 30*time.Second*5/4 {
			t.Errorf("attempt %d: backoff = %s exceeds capped range", attempt, got)
		}
		if got <= 0 {
			t.Errorf("attempt %d: backoff = %s, want positive", attempt, got)
		}
	}
}
