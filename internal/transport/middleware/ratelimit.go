package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RatePolicy sets per-minute request budgets per client IP. OAuth requests
// draw from their own, usually smaller, budget. A budget of zero or less
// disables limiting for that class.
type RatePolicy struct {
	PerMinute      int
	OAuthPerMinute int
}

// RateLimiter keeps one token bucket per client IP and request class.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[clientKey]*clientLimiter
	idle    time.Duration
	now     func() time.Time
	stop    chan struct{}
	done    chan struct{}
}

type clientKey struct {
	class string
	ip    string
}

type clientLimiter struct {
	lim  *rate.Limiter
	seen time.Time
}

// NewRateLimiter creates a rate limiter that forgets clients idle for ten
// minutes, checking every cleanupInterval. Call Stop on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[clientKey]*clientLimiter),
		idle:    10 * time.Minute,
		now:     time.Now,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine and waits for it.
func (rl *RateLimiter) Stop() {
	close(rl.stop)
	<-rl.done
}

// Limit returns middleware enforcing p. Rejected requests get 429 with a
// Retry-After header naming the seconds until a token is available.
func (rl *RateLimiter) Limit(p RatePolicy) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			class, perMinute := "api", p.PerMinute
			if strings.HasPrefix(r.URL.Path, "/api/oauth/") {
				class, perMinute = "oauth", p.OAuthPerMinute
			}
			if perMinute <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			now := rl.now()
			lim := rl.limiter(clientKey{class: class, ip: clientIP(r)}, perMinute, now)
			res := lim.ReserveN(now, 1)
			if delay := res.DelayFrom(now); delay > 0 {
				res.CancelAt(now)
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) limiter(key clientKey, perMinute int, now time.Time) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	c, ok := rl.clients[key]
	if !ok {
		c = &clientLimiter{lim: rate.NewLimiter(rate.Limit(float64(perMinute)/60), perMinute)}
		rl.clients[key] = c
	}
	c.seen = now
	return c.lim
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	defer close(rl.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.evictIdle()
		}
	}
}

func (rl *RateLimiter) evictIdle() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-rl.idle)
	for key, c := range rl.clients {
		if c.seen.Before(cutoff) {
			delete(rl.clients, key)
		}
	}
}

// clientIP strips the port so every connection of one host shares a bucket.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
