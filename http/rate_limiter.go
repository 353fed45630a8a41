package http

import (
	"sync"
	"time"
)

const (
	// Buckets idle longer than this are dropped by the sweeper.
	staleBucketAge = 1 * time.Hour
	sweepInterval  = 30 * time.Minute
)

type bucket struct {
	remaining  int
	lastRefill time.Time
}

// RateLimiter grants each client, keyed by remote IP, a fixed budget of
// requests per refill window. A background sweeper drops buckets of clients
// that have gone quiet so the map cannot grow without bound.
type RateLimiter struct {
	mu       sync.Mutex
	capacity int
	window   time.Duration
	buckets  map[string]*bucket
	done     chan struct{}
}

func NewRateLimiter(capacity int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		capacity: capacity,
		window:   window,
		buckets:  make(map[string]*bucket),
		done:     make(chan struct{}),
	}
	go rl.sweep()
	return rl
}

// Allow reports whether the client identified by ip may proceed, consuming
// one token when it does.
func (r *RateLimiter) Allow(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	b, ok := r.buckets[ip]
	if !ok {
		r.buckets[ip] = &bucket{remaining: r.capacity - 1, lastRefill: now}
		return true
	}

	if now.Sub(b.lastRefill) >= r.window {
		b.remaining = r.capacity
		b.lastRefill = now
	}

	if b.remaining <= 0 {
		return false
	}
	b.remaining--
	return true
}

// Stop terminates the sweeper goroutine.
func (r *RateLimiter) Stop() {
	close(r.done)
}

func (r *RateLimiter) sweep() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.dropStale()
		case <-r.done:
			return
		}
	}
}

func (r *RateLimiter) dropStale() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for ip, b := range r.buckets {
		if now.Sub(b.lastRefill) > staleBucketAge {
			delete(r.buckets, ip)
		}
	}
}
