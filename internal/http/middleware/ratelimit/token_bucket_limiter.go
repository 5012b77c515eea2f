package ratelimit

import (
	"sync"
	"time"
)

// Config tunes the limiter guarding the export endpoint. Rate is the
// steady refill in tokens per second, Burst the bucket capacity. Idle
// buckets older than TTL are evicted; zero disables eviction.
// MaxBuckets caps the number of distinct client keys; once full, new
// keys are rejected outright.
type Config struct {
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// TokenBucketLimiter keeps one refillable token bucket per client key.
type TokenBucketLimiter struct {
	cfg       Config
	clock     Clock
	mu        sync.RWMutex
	buckets   map[string]*bucket
	lastSweep time.Time
}

type bucket struct {
	mu         sync.Mutex
	tokens     float64
	refilledAt time.Time
	seenAt     time.Time
}

// NewTokenBucketLimiter builds a limiter from cfg. Non-positive Rate
// and Burst normalize to 1 so a zero Config still limits instead of
// admitting everything. A nil clock falls back to the system clock.
func NewTokenBucketLimiter(clock Clock, cfg Config) *TokenBucketLimiter {
	if clock == nil {
		clock = RealClock{}
	}
	if cfg.Rate <= 0 {
		cfg.Rate = 1
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	if cfg.MaxBuckets < 0 {
		cfg.MaxBuckets = 0
	}
	return &TokenBucketLimiter{
		cfg:     cfg,
		clock:   clock,
		buckets: make(map[string]*bucket),
	}
}

// Allow reports whether key may make a request right now and consumes
// a token when it may.
func (l *TokenBucketLimiter) Allow(key string) bool {
	now := l.clock.Now()
	l.maybeSweep(now)
	b := l.bucketFor(key, now)
	if b == nil {
		return false
	}
	return b.take(now, l.cfg.Rate, float64(l.cfg.Burst))
}

func (l *TokenBucketLimiter) bucketFor(key string, now time.Time) *bucket {
	l.mu.RLock()
	b := l.buckets[key]
	l.mu.RUnlock()
	if b != nil {
		return b
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if b = l.buckets[key]; b != nil {
		return b
	}
	if l.cfg.MaxBuckets > 0 && len(l.buckets) >= l.cfg.MaxBuckets {
		return nil
	}

	b = &bucket{
		tokens:     float64(l.cfg.Burst),
		refilledAt: now,
		seenAt:     now,
	}
	l.buckets[key] = b
	return b
}

func (b *bucket) take(now time.Time, rate, burst float64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if dt := now.Sub(b.refilledAt); dt > 0 {
		b.tokens += dt.Seconds() * rate
		if b.tokens > burst {
			b.tokens = burst
		}
		b.refilledAt = now
	}
	b.seenAt = now

	if b.tokens < 1.0 {
		return false
	}
	b.tokens -= 1.0
	return true
}

// maybeSweep drops buckets idle longer than TTL. Sweeps run at most
// once per max(1min, TTL/2) to keep the hot path cheap.
func (l *TokenBucketLimiter) maybeSweep(now time.Time) {
	if l.cfg.TTL <= 0 {
		return
	}

	interval := time.Minute
	if half := l.cfg.TTL / 2; half > interval {
		interval = half
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.lastSweep.IsZero() && now.Sub(l.lastSweep) < interval {
		return
	}
	l.lastSweep = now

	for k, b := range l.buckets {
		b.mu.Lock()
		seen := b.seenAt
		b.mu.Unlock()

		if now.Sub(seen) > l.cfg.TTL {
			delete(l.buckets, k)
		}
	}
}
