package accountsvc

import (
	"sync"
	"time"
)

const (
	cleanupInterval = time.Minute
	staleAfter      = 10 * time.Minute
)

// TokenBucket throttles login and signup attempts per client IP so a
// scripted caller cannot hammer the account table. Each key gets its
// own bucket of tokens refilled continuously at rate per second up to
// capacity; a request spends one token. Safe for concurrent use.
type TokenBucket struct {
	mu       sync.Mutex
	buckets  map[string]*bucket
	rate     float64
	capacity float64
}

type bucket struct {
	tokens float64
	last   time.Time
}

// refill credits the tokens accrued since the last request, capped at
// the bucket's capacity.
func (b *bucket) refill(now time.Time, rate, capacity float64) {
	b.tokens = min(b.tokens+now.Sub(b.last).Seconds()*rate, capacity)
	b.last = now
}

// NewTokenBucket creates a limiter allowing bursts of up to capacity
// requests per key, refilling at rate tokens per second. A background
// goroutine drops buckets idle for more than ten minutes so the map
// does not grow with every address that ever connected.
func NewTokenBucket(rate, capacity float64) *TokenBucket {
	tb := &TokenBucket{
		buckets:  make(map[string]*bucket),
		rate:     rate,
		capacity: capacity,
	}
	go tb.evictStale()
	return tb
}

// Allow spends one token from the key's bucket and reports whether
// one was available.
func (tb *TokenBucket) Allow(key string) bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	b, ok := tb.buckets[key]
	if !ok {
		b = &bucket{tokens: tb.capacity, last: time.Now()}
		tb.buckets[key] = b
	}
	b.refill(time.Now(), tb.rate, tb.capacity)

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (tb *TokenBucket) evictStale() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-staleAfter)
		tb.mu.Lock()
		for key, b := range tb.buckets {
			if b.last.Before(cutoff) {
				delete(tb.buckets, key)
			}
		}
		tb.mu.Unlock()
	}
}
