package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"venture-hub/internal/platform/logger"

	"github.com/redis/go-redis/v9"
)

// Counter es la parte de redis que usa el rate limit (ventana fija INCR + EXPIRE).
type Counter interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

type RateLimitOptions struct {
	Prefix   string
	Requests int
	Window   time.Duration
	Log      logger.Logger
}

// RateLimit limita por usuario (o por IP si es anónimo). counter == nil deshabilita el límite.
// Si redis falla, el request pasa (fail open) y queda un warn en el log.
func RateLimit(counter Counter, opts RateLimitOptions) func(http.Handler) http.Handler {
	if opts.Requests <= 0 {
		opts.Requests = 10
	}
	if opts.Window <= 0 {
		opts.Window = time.Minute
	}
	if opts.Prefix == "" {
		opts.Prefix = "ratelimit"
	}
	log := opts.Log
	if log == nil {
		log = logger.Discard()
	}

	return func(next http.Handler) http.Handler {
		if counter == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			bucket := time.Now().UnixNano() / int64(opts.Window)
			key := fmt.Sprintf("%s:%s:%d", opts.Prefix, rateKey(r), bucket)

			n, err := counter.Incr(r.Context(), key).Result()
			if err != nil {
				log.Warn("rate limit unavailable", map[string]any{"error": err.Error()})
				next.ServeHTTP(w, r)
				return
			}
			if n == 1 {
				_ = counter.Expire(r.Context(), key, opts.Window).Err()
			}

			if n > int64(opts.Requests) {
				w.Header().Set("Retry-After", strconv.Itoa(int(opts.Window.Seconds())))
				http.Error(w, "too many requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func rateKey(r *http.Request) string {
	if claims, ok := GetClaims(r.Context()); ok && strings.TrimSpace(claims.UserID) != "" {
		return "user:" + claims.UserID
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}
