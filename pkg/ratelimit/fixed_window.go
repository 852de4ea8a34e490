// Package ratelimit implements a per-key fixed window request counter.
// It guards the public submission endpoints and is a deterrence mechanism,
// not a precise quota: the process restarting resets every counter.
package ratelimit

import (
	"sync"
	"time"
)

type bucket struct {
	count   int
	resetAt time.Time
}

// Result reports the outcome of a single Check call. ResetAt is returned
// even when the call is allowed so callers can echo it to clients.
type Result struct {
	Allowed   bool      `json:"allowed"`
	Remaining int       `json:"remaining"`
	ResetAt   time.Time `json:"resetAt"`
}

// Limiter counts requests per key inside a fixed window. Each guarded
// action owns its own Limiter so key spaces never overlap.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket

	limit  int
	window time.Duration
}

func New(limit int, window time.Duration) *Limiter {
	l := &Limiter{
		buckets: make(map[string]*bucket),
		limit:   limit,
		window:  window,
	}

	go l.cleanupBuckets(time.Minute)

	return l
}

// Check records one request for key and reports whether it fits in the
// current window. The first request for a key, or the first after the
// window expired, starts a fresh bucket. Rejected requests don't count
// against the window.
func (l *Limiter) Check(key string) Result {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok || now.After(b.resetAt) {
		nb := &bucket{count: 1, resetAt: now.Add(l.window)}
		l.buckets[key] = nb

		return Result{Allowed: true, Remaining: l.limit - 1, ResetAt: nb.resetAt}
	}

	if b.count >= l.limit {
		return Result{Allowed: false, Remaining: 0, ResetAt: b.resetAt}
	}

	b.count++
	return Result{Allowed: true, Remaining: l.limit - b.count, ResetAt: b.resetAt}
}

func (l *Limiter) Limit() int {
	return l.limit
}

func (l *Limiter) Window() time.Duration {
	return l.window
}

// cleanupBuckets drops buckets whose window expired more than a full
// window ago, so the map stays bounded by active clients instead of
// growing with every key ever seen
func (l *Limiter) cleanupBuckets(interval time.Duration) {
	for {
		time.Sleep(interval)

		now := time.Now()

		l.mu.Lock()
		for key, b := range l.buckets {
			if now.Sub(b.resetAt) > l.window {
				delete(l.buckets, key)
			}
		}
		l.mu.Unlock()
	}
}
