package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimiter is a fixed-window in-memory rate limiter keyed by client IP
type RateLimiter struct {
	mu       sync.Mutex
	clients  map[string]*bucket
	limit    int
	window   time.Duration
	stopChan chan struct{}
	stopOnce sync.Once
}

type bucket struct {
	remaining int
	windowAt  time.Time
}

// NewRateLimiter creates a rate limiter allowing limit requests per window
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		clients:  make(map[string]*bucket),
		limit:    limit,
		window:   window,
		stopChan: make(chan struct{}),
	}
	go rl.cleanup()
	return rl
}

// Close stops the cleanup goroutine. Safe to call multiple times.
func (rl *RateLimiter) Close() {
	rl.stopOnce.Do(func() {
		close(rl.stopChan)
	})
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.window * 2)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stopChan:
			return
		case <-ticker.C:
			rl.mu.Lock()
			now := time.Now()
			for key, b := range rl.clients {
				if now.Sub(b.windowAt) > rl.window*2 {
					delete(rl.clients, key)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// Allow reports whether a request from the given key is within the limit
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	b, ok := rl.clients[key]
	if !ok || now.Sub(b.windowAt) >= rl.window {
		rl.clients[key] = &bucket{remaining: rl.limit - 1, windowAt: now}
		return true
	}
	if b.remaining > 0 {
		b.remaining--
		return true
	}
	return false
}

// RateLimit returns a middleware enforcing the limiter per client IP
func RateLimit(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "ERR_RATE_LIMITED",
					"message": "Too many requests, try again later",
				},
			})
			return
		}
		c.Next()
	}
}
