package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/dossierimmo/form-gateway/internal/pkg/response"
	cache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// bucket tracks rate limit state for a single client
type bucket struct {
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

// RateLimiter implements per-IP token bucket rate limiting. Bucket state
// lives in an expiring cache so inactive clients age out on their own.
type RateLimiter struct {
	buckets    *cache.Cache
	maxTokens  float64
	refillRate float64 // tokens added per second
	logger     *zap.Logger
}

func NewRateLimiter(perMinute, burst int, logger *zap.Logger) *RateLimiter {
	return &RateLimiter{
		buckets:    cache.New(10*time.Minute, 15*time.Minute),
		maxTokens:  float64(burst),
		refillRate: float64(perMinute) / 60.0,
		logger:     logger,
	}
}

// Handler wraps next with the rate limit check.
func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientIP := clientAddr(r)

		if !rl.allow(clientIP) {
			rl.logger.Warn("rate limit exceeded",
				zap.String("client_ip", clientIP),
				zap.String("path", r.URL.Path),
			)
			response.Error(w, http.StatusTooManyRequests, "too many requests")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) allow(clientIP string) bool {
	b := rl.bucketFor(clientIP)

	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(b.lastRefill).Seconds()
	b.tokens += elapsed * rl.refillRate
	if b.tokens > rl.maxTokens {
		b.tokens = rl.maxTokens
	}
	b.lastRefill = now

	if b.tokens >= 1.0 {
		b.tokens -= 1.0
		return true
	}

	return false
}

func (rl *RateLimiter) bucketFor(clientIP string) *bucket {
	if raw, ok := rl.buckets.Get(clientIP); ok {
		// Touch to keep active clients from expiring mid-burst.
		rl.buckets.SetDefault(clientIP, raw)
		return raw.(*bucket)
	}

	fresh := &bucket{tokens: rl.maxTokens, lastRefill: time.Now()}
	if err := rl.buckets.Add(clientIP, fresh, cache.DefaultExpiration); err != nil {
		// Lost the insert race; use the winner's bucket.
		if raw, ok := rl.buckets.Get(clientIP); ok {
			return raw.(*bucket)
		}
	}
	return fresh
}

func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
