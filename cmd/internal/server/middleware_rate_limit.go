package server

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter guards a shared token bucket.
type RateLimiter struct {
	limiter *rate.Limiter
	mu      sync.Mutex
}

// ServiceRateLimitMiddleware limits internal-service traffic so a leaked
// API key cannot be used to flood the ingest endpoints.
// requests is the sustained requests per second, burst the bucket size.
func ServiceRateLimitMiddleware(requests int, burst int) gin.HandlerFunc {
	limiter := &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(requests), burst),
	}

	return func(c *gin.Context) {
		limiter.mu.Lock()
		allowed := limiter.limiter.Allow()
		limiter.mu.Unlock()

		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded",
			})
			return
		}

		c.Next()
	}
}
