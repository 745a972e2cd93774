// Package ratelimit is a fixed-window request limiter keyed by string
// (a user id for meeting joins).
//
// Each key gets a bucket holding a counter and the start of its window.
// Once the window has passed the counter starts over. Stale buckets are
// removed by a background sweep.
package ratelimit

import (
	"sync"
	"time"
)

type bucket struct {
	count       int
	windowStart time.Time
}

// Limiter allows at most maxRequests per key within window.
//
//	limiter := ratelimit.New(10, time.Minute)
//	if !limiter.Allow(userID) { return 429 }
type Limiter struct {
	mu          sync.Mutex
	buckets     map[string]*bucket
	maxRequests int
	window      time.Duration

	stopCleanup chan struct{}
	closeOnce   sync.Once
}

func New(maxRequests int, window time.Duration) *Limiter {
	l := &Limiter{
		buckets:     make(map[string]*bucket),
		maxRequests: maxRequests,
		window:      window,
		stopCleanup: make(chan struct{}),
	}

	go l.cleanupLoop()

	return l
}

// Allow counts one request for key and reports whether it is within limit.
func (l *Limiter) Allow(key string) bool {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, exists := l.buckets[key]
	if !exists {
		l.buckets[key] = &bucket{count: 1, windowStart: now}
		return true
	}

	if now.Sub(b.windowStart) > l.window {
		b.count = 1
		b.windowStart = now
		return true
	}

	b.count++
	return b.count <= l.maxRequests
}

// Reset forgets the counter of key.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.buckets, key)
}

// RetryAfterSeconds returns the seconds until key's window ends, rounded up.
// Used for the Retry-After header.
func (l *Limiter) RetryAfterSeconds(key string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, exists := l.buckets[key]
	if !exists {
		return 0
	}

	remaining := l.window - time.Since(b.windowStart)
	if remaining < 0 {
		return 0
	}
	return int(remaining.Seconds()) + 1
}

func (l *Limiter) Close() {
	l.closeOnce.Do(func() { close(l.stopCleanup) })
}

func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.cleanup()
		case <-l.stopCleanup:
			return
		}
	}
}

func (l *Limiter) cleanup() {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	for key, b := range l.buckets {
		if now.Sub(b.windowStart) > l.window {
			delete(l.buckets, key)
		}
	}
}
