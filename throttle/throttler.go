/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

// Package throttle provides a fixed-window request throttler for client-side rate limiting.
//
// The GLEIF API allows a fixed number of requests per rolling window (60 requests
// per minute for anonymous access at the time of writing). Throttler counts
// acquisitions against a window of configurable duration and makes callers wait
// for the window to elapse once the quota is spent. The fixed-window algorithm
// intentionally mirrors the behavior of the service: bursts up to the full quota
// are allowed at the start of every window, which means short-term spikes of up
// to twice the nominal rate around a window boundary. It is an accepted
// approximation, not a smooth pacing guarantee.
package throttle

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/atomic"
)

// Default parameter values for Throttler.
const (
	DefaultRateLimit = 60
	DefaultInterval  = time.Minute
)

// Throttler enforces a fixed-window quota on request dispatch.
// A single Throttler is shared by all request builders of one client;
// it is safe for concurrent use.
type Throttler struct {
	rateLimit int
	interval  time.Duration

	mu          sync.Mutex
	count       int
	windowStart time.Time

	acquiredTotal atomic.Uint64
	waitsTotal    atomic.Uint64
}

// Stats holds cumulative counters of a Throttler.
type Stats struct {
	// AcquiredTotal is the total number of successful acquisitions.
	AcquiredTotal uint64

	// WaitsTotal is the total number of acquisitions that had to wait for a window reset.
	WaitsTotal uint64
}

// New creates a new Throttler with the given quota per interval.
func New(rateLimit int, interval time.Duration) (*Throttler, error) {
	if rateLimit <= 0 {
		return nil, fmt.Errorf("rate limit must be positive")
	}
	if interval <= 0 {
		return nil, fmt.Errorf("interval must be positive")
	}
	return &Throttler{
		rateLimit: rateLimit,
		interval:  interval,
		// The first window is already expired, so the first acquisition starts a fresh one.
		windowStart: time.Now().Add(-interval),
	}, nil
}

// Must creates a new Throttler and panics on invalid arguments.
func Must(rateLimit int, interval time.Duration) *Throttler {
	t, err := New(rateLimit, interval)
	if err != nil {
		panic(err)
	}
	return t
}

// RateLimit returns the configured quota per window.
func (t *Throttler) RateLimit() int {
	return t.rateLimit
}

// Interval returns the configured window duration.
func (t *Throttler) Interval() time.Duration {
	return t.interval
}

// Acquire reserves one request slot in the current window.
// It returns immediately while the quota is available and otherwise blocks
// until the window elapses and the counter resets. The internal lock is not
// held while waiting, so concurrent callers keep making progress against the
// shared state. Acquire never fails on its own; the only returned error is
// ctx.Err() when the context is canceled during the wait.
func (t *Throttler) Acquire(ctx context.Context) error {
	for {
		t.mu.Lock()
		now := time.Now()

		if now.Sub(t.windowStart) >= t.interval {
			t.windowStart = now
			t.count = 1
			t.mu.Unlock()
			t.acquiredTotal.Inc()
			return nil
		}

		if t.count < t.rateLimit {
			t.count++
			t.mu.Unlock()
			t.acquiredTotal.Inc()
			return nil
		}

		delay := t.windowStart.Add(t.interval).Sub(now)
		t.mu.Unlock()

		t.waitsTotal.Inc()
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		// Re-check under the lock: another caller may have started a new window
		// (and spent part of its quota) while we were sleeping.
	}
}

// Stats returns cumulative acquisition counters.
func (t *Throttler) Stats() Stats {
	return Stats{
		AcquiredTotal: t.acquiredTotal.Load(),
		WaitsTotal:    t.waitsTotal.Load(),
	}
}
