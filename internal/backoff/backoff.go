// Package backoff provides inter-attempt delay calculation for the
// retry orchestrator.
package backoff

import (
	"math"
	"time"
)

// Strategy defines the interface for backoff calculation algorithms.
type Strategy interface {
	// Delay returns the wait duration applied after a failed attempt,
	// where attempt is the 1-based number of the attempt that failed.
	Delay(attempt int, base time.Duration) time.Duration
}

// LinearStrategy implements linear backoff: the delay after attempt n
// is exactly base * n, so waits grow strictly with the attempt number
// and are never truncated.
type LinearStrategy struct{}

// Delay implements the Strategy interface for linear backoff.
func (LinearStrategy) Delay(attempt int, base time.Duration) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	if base <= 0 {
		return 0
	}

	// Prevent overflow when the attempt counter is absurdly large.
	if attempt > 1<<20 {
		attempt = 1 << 20
	}

	d := base * time.Duration(attempt)
	if d < 0 {
		return time.Duration(math.MaxInt64)
	}
	return d
}
