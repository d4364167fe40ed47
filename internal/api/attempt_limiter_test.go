package api

import (
	"testing"
	"time"
)

func TestAttemptLimiterWindowAndReset(t *testing.T) {
	t.Parallel()

	limiter := newAttemptLimiter()
	key := "127.0.0.1"
	window := time.Hour
	now := time.Now().UTC()

	limiter.addFailure(key, now.Add(-2*time.Hour), window)
	if limiter.tooManyRecent(key, now, 1, window) {
		t.Fatal("expected stale failure to fall out of the window")
	}

	limiter.addFailure(key, now.Add(-30*time.Minute), window)
	if !limiter.tooManyRecent(key, now, 1, window) {
		t.Fatal("expected one recent failure to hit limit 1")
	}

	limiter.reset(key)
	if limiter.tooManyRecent(key, now, 1, window) {
		t.Fatal("expected no failures after reset")
	}
}

func TestAttemptLimiterKeysAreIndependent(t *testing.T) {
	t.Parallel()

	limiter := newAttemptLimiter()
	window := time.Hour
	now := time.Now().UTC()

	limiter.addFailure("10.0.0.1", now, window)
	limiter.addFailure("10.0.0.1", now, window)

	if !limiter.tooManyRecent("10.0.0.1", now, 2, window) {
		t.Fatal("expected the failing key to be limited")
	}
	if limiter.tooManyRecent("10.0.0.2", now, 2, window) {
		t.Fatal("expected other keys to stay unaffected")
	}
}
