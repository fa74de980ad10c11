// Package ratelimit tracks failed attempts per key.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Clock returns the current time.
type Clock func() time.Time

// AttemptLimiter allows up to max failed attempts per key. Failures refill
// continuously so a key that has exhausted its budget is fully restored one
// window after its last failure. A success resets the key.
type AttemptLimiter struct {
	mu       sync.Mutex
	max      int
	window   time.Duration
	now      Clock
	limiters map[string]*rate.Limiter
}

// NewAttemptLimiter creates a limiter. A nil clock uses time.Now.
func NewAttemptLimiter(max int, window time.Duration, clock Clock) *AttemptLimiter {
	if max < 1 {
		max = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	if clock == nil {
		clock = time.Now
	}
	return &AttemptLimiter{
		max:      max,
		window:   window,
		now:      clock,
		limiters: make(map[string]*rate.Limiter),
	}
}

// Allow reports whether key may make another attempt.
func (l *AttemptLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	lim, ok := l.limiters[key]
	if !ok {
		return true
	}
	tokens := lim.TokensAt(l.now())
	if tokens >= float64(l.max) {
		delete(l.limiters, key)
	}
	return tokens >= 1
}

// Fail records a failed attempt for key.
func (l *AttemptLimiter) Fail(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	lim, ok := l.limiters[key]
	if !ok {
		lim = rate.NewLimiter(rate.Every(l.window/time.Duration(l.max)), l.max)
		l.limiters[key] = lim
	}
	lim.AllowN(l.now(), 1)
}

// Reset clears key's failure history.
func (l *AttemptLimiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.limiters, key)
}

// RetryAfter estimates how long key must wait before its next attempt.
func (l *AttemptLimiter) RetryAfter(key string) time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	lim, ok := l.limiters[key]
	if !ok {
		return 0
	}
	missing := 1 - lim.TokensAt(l.now())
	if missing <= 0 {
		return 0
	}
	per := l.window / time.Duration(l.max)
	return time.Duration(missing * float64(per))
}
