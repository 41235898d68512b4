package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimitConfig holds fixed-window rate limiter settings
type RateLimitConfig struct {
	Requests int
	Window   time.Duration
	// KeyFunc derives the bucket key; defaults to client IP.
	KeyFunc func(c *gin.Context) string
}

type rateWindow struct {
	count   int
	resetAt time.Time
}

// RateLimit returns a per-client fixed-window rate limiter. State is
// in-process, so limits apply per instance, not across a fleet.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = func(c *gin.Context) string { return c.ClientIP() }
	}

	var mu sync.Mutex
	windows := make(map[string]*rateWindow)

	return func(c *gin.Context) {
		key := cfg.KeyFunc(c)
		now := time.Now()

		mu.Lock()
		w, ok := windows[key]
		if !ok || now.After(w.resetAt) {
			w = &rateWindow{resetAt: now.Add(cfg.Window)}
			windows[key] = w
		}
		w.count++
		exceeded := w.count > cfg.Requests
		// Opportunistic cleanup keeps the map from growing unbounded.
		if len(windows) > 10000 {
			for k, v := range windows {
				if now.After(v.resetAt) {
					delete(windows, k)
				}
			}
		}
		mu.Unlock()

		if exceeded {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "RATE_LIMITED",
					"message": "Too many requests, slow down",
				},
			})
			return
		}

		c.Next()
	}
}
