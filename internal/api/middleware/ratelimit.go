package middleware

import (
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/placez/placez-api/internal/api/shared"
	"github.com/placez/placez-api/internal/platform/logger"
)

// LoginRateLimiterConfig holds the tuning knobs for the login limiter.
type LoginRateLimiterConfig struct {
	Rate            rate.Limit    // token refill rate per client (req/sec)
	Burst           int           // burst size per client
	CleanupInterval time.Duration // sweep interval for stale client entries
}

// DefaultLoginRateLimiterConfig allows 10 login attempts per minute per
// client address, which is generous for humans and hostile to credential
// stuffing.
func DefaultLoginRateLimiterConfig() LoginRateLimiterConfig {
	return LoginRateLimiterConfig{
		Rate:            rate.Limit(10.0 / 60.0),
		Burst:           10,
		CleanupInterval: 5 * time.Minute,
	}
}

// clientLimiter pairs a limiter with its last access time so stale
// entries can be swept.
type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// LoginRateLimiter throttles authentication attempts per client address.
// Login runs before any token exists, so the key is the remote IP rather
// than a user identity.
type LoginRateLimiter struct {
	config LoginRateLimiterConfig

	mu       sync.Mutex
	limiters map[string]*clientLimiter

	stopCh chan struct{}
}

// NewLoginRateLimiter creates a limiter and starts its background
// cleanup goroutine. Call Stop during shutdown.
func NewLoginRateLimiter(config LoginRateLimiterConfig) *LoginRateLimiter {
	rl := &LoginRateLimiter{
		config:   config,
		limiters: make(map[string]*clientLimiter),
		stopCh:   make(chan struct{}),
	}

	go rl.cleanupLoop()

	return rl
}

// Stop terminates the background cleanup goroutine.
func (rl *LoginRateLimiter) Stop() {
	close(rl.stopCh)
}

// Limit is the middleware. Requests over the budget get 429 with a
// Retry-After hint.
func (rl *LoginRateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientKey(r)
		limiter := rl.getOrCreateLimiter(key)

		if !limiter.Allow() {
			log := logger.FromContextOrDefault(r.Context(), slog.Default())
			log.Warn("login rate limit exceeded",
				"client", key,
				"path", r.URL.Path)

			retryAfterSec := int(math.Ceil(1.0 / float64(rl.config.Rate)))
			if retryAfterSec < 1 {
				retryAfterSec = 1
			}
			w.Header().Set("Retry-After", strconv.Itoa(retryAfterSec))
			shared.RespondWithError(w, r, http.StatusTooManyRequests, "Too many login attempts, please try again later.")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// LimiterCount reports the number of tracked clients, for tests.
func (rl *LoginRateLimiter) LimiterCount() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.limiters)
}

func (rl *LoginRateLimiter) getOrCreateLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if cl, exists := rl.limiters[key]; exists {
		cl.lastAccess = time.Now()
		return cl.limiter
	}

	limiter := rate.NewLimiter(rl.config.Rate, rl.config.Burst)
	rl.limiters[key] = &clientLimiter{
		limiter:    limiter,
		lastAccess: time.Now(),
	}

	return limiter
}

func (rl *LoginRateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.stopCh:
			return
		}
	}
}

// cleanup drops entries idle for more than twice the sweep interval.
func (rl *LoginRateLimiter) cleanup() {
	ttl := rl.config.CleanupInterval * 2
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, cl := range rl.limiters {
		if now.Sub(cl.lastAccess) > ttl {
			delete(rl.limiters, key)
		}
	}
}

// clientKey extracts the client address without the ephemeral port, so
// repeated attempts from one host share a bucket.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
