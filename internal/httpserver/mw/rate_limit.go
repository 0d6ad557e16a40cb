package mw

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/sggtools/boapi/internal/utils"
)

// RateLimitConfig tunes the per-IP token bucket. Used on the text-extraction
// route, whose upstream call can take up to a minute.
type RateLimitConfig struct {
	Burst      int  // bucket capacity
	PerMinute  int  // refill rate per IP per minute
	TrustProxy bool // resolve client IP from proxy headers
}

type bucket struct {
	tokens   float64
	lastRef  time.Time
	lastSeen time.Time
}

type limiter struct {
	mu       sync.Mutex
	cfg      RateLimitConfig
	rate     float64
	capacity float64
	buckets  map[string]*bucket
	lastGC   time.Time
}

const bucketIdleTTL = 15 * time.Minute

func newLimiter(cfg RateLimitConfig) *limiter {
	if cfg.Burst < 1 {
		cfg.Burst = 1
	}
	if cfg.PerMinute < 1 {
		cfg.PerMinute = 1
	}
	return &limiter{
		cfg:      cfg,
		rate:     float64(cfg.PerMinute) / 60.0,
		capacity: float64(cfg.Burst),
		buckets:  make(map[string]*bucket),
		lastGC:   time.Now(),
	}
}

func (l *limiter) allow(key string, now time.Time) (ok bool, retryAfterSec int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastGC) > bucketIdleTTL {
		for ip, b := range l.buckets {
			if now.Sub(b.lastSeen) > bucketIdleTTL {
				delete(l.buckets, ip)
			}
		}
		l.lastGC = now
	}

	b := l.buckets[key]
	if b == nil {
		b = &bucket{tokens: l.capacity, lastRef: now}
		l.buckets[key] = b
	}

	if elapsed := now.Sub(b.lastRef).Seconds(); elapsed > 0 {
		b.tokens = math.Min(l.capacity, b.tokens+elapsed*l.rate)
		b.lastRef = now
	}
	b.lastSeen = now

	if b.tokens >= 1.0 {
		b.tokens -= 1.0
		return true, 0
	}

	sec := int(math.Ceil((1.0 - b.tokens) / l.rate))
	if sec < 1 {
		sec = 1
	}
	return false, sec
}

// RateLimit returns a per-IP token-bucket middleware.
func RateLimit(cfg RateLimitConfig) func(http.Handler) http.Handler {
	l := newLimiter(cfg)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := utils.ClientIP(r, l.cfg.TrustProxy)

			ok, retry := l.allow(key, time.Now())
			if !ok {
				w.Header().Set("Retry-After", strconv.Itoa(retry))
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
