package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// rateLimiter throttles comment mutations per authenticated user. Anonymous
// requests never reach it, but the client IP is used as a fallback key so a
// misconfigured route still gets limited.
type rateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	limit    rate.Limit
	burst    int
	done     chan struct{}
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newRateLimiter(perMinute, burst int) *rateLimiter {
	rl := &rateLimiter{
		limiters: make(map[string]*limiterEntry),
		limit:    rate.Limit(float64(perMinute) / 60.0),
		burst:    burst,
		done:     make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

func (rl *rateLimiter) get(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	entry, ok := rl.limiters[key]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.limiters[key] = entry
	}
	entry.lastSeen = time.Now()
	return entry.limiter
}

// cleanupLoop evicts limiters that have been idle for a while so the map
// does not grow unbounded.
func (rl *rateLimiter) cleanupLoop() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-rl.done:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-30 * time.Minute)
			rl.mu.Lock()
			for key, entry := range rl.limiters {
				if entry.lastSeen.Before(cutoff) {
					delete(rl.limiters, key)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// Stop terminates the cleanup goroutine.
func (rl *rateLimiter) Stop() {
	close(rl.done)
}

func (rl *rateLimiter) middleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if user := currentUser(c); user != nil {
			key = user.ID
		}

		if !rl.get(key).Allow() {
			log.Warn().Str("key", key).Str("path", c.Request.URL.Path).Msg("Rate limit exceeded")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, errorBody{Error: "Too many requests"})
			return
		}
		c.Next()
	}
}
