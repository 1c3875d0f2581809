// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ratelimit

import (
	"math"
	"sync"
	"time"

	"github.com/MKhiriev/go-farol/internal/metrics"
	"golang.org/x/time/rate"
)

// Clock returns the current time.
type Clock func() time.Time

// Decision is the outcome of a [Limiter.Check].
type Decision struct {
	// Allowed reports whether the tokens were taken.
	Allowed bool

	// RetryAfter is how long until cost tokens are available. Zero when
	// Allowed.
	RetryAfter time.Duration

	// Remaining is the number of tokens left in the bucket.
	Remaining float64
}

// RetryAfterSeconds returns RetryAfter as fractional seconds.
func (d Decision) RetryAfterSeconds() float64 {
	return d.RetryAfter.Seconds()
}

// RetryAfterHeader returns RetryAfter in whole seconds, rounded up, as used
// by the Retry-After header.
func (d Decision) RetryAfterHeader() int {
	return int(math.Ceil(d.RetryAfter.Seconds()))
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter holds one token bucket per client key.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket

	limit rate.Limit
	burst int
	now   Clock
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithClock replaces the wall clock.
func WithClock(clock Clock) Option {
	return func(l *Limiter) {
		l.now = clock
	}
}

// New returns a Limiter with capacity burst refilling at
// requestsPerMinute/60 tokens per second.
func New(requestsPerMinute, burst int, opts ...Option) *Limiter {
	l := &Limiter{
		buckets: make(map[string]*bucket),
		limit:   rate.Limit(float64(requestsPerMinute) / 60),
		burst:   burst,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Check takes cost tokens from the bucket of key if they are available.
// A rejected check takes nothing.
func (l *Limiter) Check(key string, cost int) Decision {
	now := l.now()
	b := l.touch(key, now)

	if b.limiter.AllowN(now, cost) {
		return Decision{Allowed: true, Remaining: b.limiter.TokensAt(now)}
	}

	available := b.limiter.TokensAt(now)
	return Decision{
		Allowed:    false,
		RetryAfter: l.retryAfter(float64(cost) - available),
		Remaining:  math.Max(available, 0),
	}
}

func (l *Limiter) retryAfter(missing float64) time.Duration {
	if l.limit <= 0 {
		return time.Duration(math.MaxInt64)
	}
	if missing <= 0 {
		return 0
	}

	return time.Duration(missing / float64(l.limit) * float64(time.Second))
}

// touch returns the bucket of key, creating a full one when absent, and
// records now as its last use.
func (l *Limiter) touch(key string, now time.Time) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[key] = b
		metrics.RateLimitBuckets.Set(float64(len(l.buckets)))
	}
	if now.After(b.lastSeen) {
		b.lastSeen = now
	}

	return b
}

// Sweep evicts buckets unused for at least idle whose tokens have refilled
// to capacity, and returns how many were evicted.
func (l *Limiter) Sweep(idle time.Duration) int {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	evicted := 0
	for key, b := range l.buckets {
		if now.Sub(b.lastSeen) < idle {
			continue
		}
		if b.limiter.TokensAt(now) < float64(l.burst) {
			continue
		}
		delete(l.buckets, key)
		evicted++
	}
	metrics.RateLimitBuckets.Set(float64(len(l.buckets)))

	return evicted
}

// Len returns the number of live buckets.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.buckets)
}
