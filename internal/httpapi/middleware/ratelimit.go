package middleware

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// KeyByClientIP keys the rate-limit window on the caller's IP, honouring
// proxy headers.
func KeyByClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimiter implements a fixed-window request limiter backed by Redis.
type RateLimiter struct {
	redis     *redis.Client
	namespace string
}

// NewRateLimiter constructs a RateLimiter.
func NewRateLimiter(client *redis.Client, namespace string) *RateLimiter {
	return &RateLimiter{redis: client, namespace: namespace}
}

// Limit allows at most max requests per window per key. Redis outages fail
// open: limiting is protection, not a correctness requirement.
func (l *RateLimiter) Limit(name string, max int64, window time.Duration, keyFn func(*http.Request) string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if l.redis == nil {
				next.ServeHTTP(w, r)
				return
			}
			key := fmt.Sprintf("%s:ratelimit:%s:%s", l.namespace, name, keyFn(r))
			count, err := l.redis.Incr(r.Context(), key).Result()
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				if err := l.redis.Expire(r.Context(), key, window).Err(); err != nil {
					// An unexpiring window would lock the key out forever.
					l.redis.Del(r.Context(), key)
					next.ServeHTTP(w, r)
					return
				}
			}
			if count > max {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(map[string]any{
					"error": "rate limit exceeded",
					"code":  "rate_limited",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
