package auth

import (
	"sync"

	"golang.org/x/time/rate"
)

// LoginLimiter throttles credential attempts per client IP with a token
// bucket each. Buckets are never evicted; the key space is bounded by the
// set of client addresses seen since startup.
type LoginLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	limit   rate.Limit
	burst   int
}

// NewLoginLimiter allows perMinute attempts sustained, with a burst of
// burst.
func NewLoginLimiter(perMinute float64, burst int) *LoginLimiter {
	return &LoginLimiter{
		buckets: make(map[string]*rate.Limiter),
		limit:   rate.Limit(perMinute / 60),
		burst:   burst,
	}
}

// Allow reports whether another attempt from this address may proceed now.
func (l *LoginLimiter) Allow(addr string) bool {
	l.mu.Lock()
	b, ok := l.buckets[addr]
	if !ok {
		b = rate.NewLimiter(l.limit, l.burst)
		l.buckets[addr] = b
	}
	l.mu.Unlock()
	return b.Allow()
}
