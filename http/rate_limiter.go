package http

import (
	"sync"
	"time"
)

const (
	bucketCleanupThreshold = 1 * time.Hour
	cleanupInterval        = 30 * time.Minute
)

type visitorBucket struct {
	tokens     int
	lastRefill time.Time
}

// RateLimiter is a per-IP token bucket: each visitor gets limit requests
// per refill window, with idle buckets swept in the background.
type RateLimiter struct {
	mu          sync.Mutex
	limit       int
	refillDur   time.Duration
	visitors    map[string]*visitorBucket
	stopCleanup chan struct{}
}

func NewRateLimiter(limit int, refillDur time.Duration) *RateLimiter {
	rl := &RateLimiter{
		limit:       limit,
		refillDur:   refillDur,
		visitors:    make(map[string]*visitorBucket),
		stopCleanup: make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

func (r *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.cleanup()
		case <-r.stopCleanup:
			return
		}
	}
}

func (r *RateLimiter) cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for ip, bucket := range r.visitors {
		if now.Sub(bucket.lastRefill) > bucketCleanupThreshold {
			delete(r.visitors, ip)
		}
	}
}

func (r *RateLimiter) Stop() {
	close(r.stopCleanup)
}

func (r *RateLimiter) Allow(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	bucket, exists := r.visitors[ip]

	if !exists {
		r.visitors[ip] = &visitorBucket{
			tokens:     r.limit - 1,
			lastRefill: now,
		}
		return true
	}

	if now.Sub(bucket.lastRefill) >= r.refillDur {
		bucket.tokens = r.limit
		bucket.lastRefill = now
	}

	if bucket.tokens <= 0 {
		return false
	}

	bucket.tokens--
	return true
}
