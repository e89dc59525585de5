package middleware

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Counter tracks hits per key within a fixed window and returns the hit
// count after the increment. The first hit of a window starts it.
type Counter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

type bucket struct {
	count int64
	until time.Time
}

// MemoryCounter is the in-process fixed-window counter. Windows reset per
// instance, so multi-instance deployments should use the Redis counter.
type MemoryCounter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
}

// NewMemoryCounter constructs an in-process counter.
func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{buckets: make(map[string]*bucket)}
}

// Incr counts a hit for the key, starting a new window when the previous
// one has elapsed.
func (c *MemoryCounter) Incr(_ context.Context, key string, window time.Duration) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	b, ok := c.buckets[key]
	if !ok || now.After(b.until) {
		b = &bucket{until: now.Add(window)}
		c.buckets[key] = b
	}
	b.count++
	return b.count, nil
}

// RateLimit applies a fixed-window per-IP limit. Exceeding it yields a
// 429 with a Retry-After hint. Counter failures fail open: throttling is
// admission control, not a correctness gate.
func RateLimit(limit int64, window time.Duration, counter Counter, logger zerolog.Logger) func(http.Handler) http.Handler {
	retryAfter := int(window / time.Second)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIPForRateLimit(r)
			count, err := counter.Incr(r.Context(), "ratelimit:"+ip, window)
			if err != nil {
				logger.Error().Err(err).Str("ip", ip).Msg("rate limit counter failed")
				next.ServeHTTP(w, r)
				return
			}
			if count > limit {
				logger.Warn().Str("ip", ip).Int64("count", count).Msg("rate limit exceeded")
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(map[string]any{
					"error":      "rate_limited",
					"message":    "Too many donation requests from this IP, please try again later.",
					"retryAfter": retryAfter,
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIPForRateLimit(r *http.Request) string {
	if xf := r.Header.Get("X-Forwarded-For"); xf != "" {
		for _, part := range strings.Split(xf, ",") {
			ip := strings.TrimSpace(part)
			if ip == "" {
				continue
			}
			if net.ParseIP(ip) != nil {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil {
		if net.ParseIP(host) != nil {
			return host
		}
	} else if net.ParseIP(r.RemoteAddr) != nil {
		return r.RemoteAddr
	}

	return r.RemoteAddr
}
