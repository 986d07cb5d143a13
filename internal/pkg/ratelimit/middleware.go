package ratelimit

import (
	"math"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/filmdeck/internal/pkg/logger"
	"github.com/xyz-asif/filmdeck/internal/pkg/response"
)

// KeyFunc picks the bucket a request is counted in.
type KeyFunc func(c *gin.Context) string

// ClientIP buckets requests by caller address.
func ClientIP(c *gin.Context) string {
	return c.ClientIP()
}

// Middleware limits requests per key. A store error lets the request through.
func Middleware(store Store, keyFunc KeyFunc, log *logger.Logger) gin.HandlerFunc {
	if keyFunc == nil {
		keyFunc = ClientIP
	}

	return func(c *gin.Context) {
		key := keyFunc(c)
		if key == "" {
			key = c.ClientIP()
		}

		d, err := store.Allow(c.Request.Context(), key)
		if err != nil {
			log.WarnContext(c.Request.Context(), "rate limiter unavailable, allowing request",
				"key", key, "error", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(d.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(d.ResetAt.Unix(), 10))

		if !d.Allowed {
			c.Header("Retry-After", strconv.Itoa(retryAfter(d.ResetAt)))
			response.TooManyRequests(c, "Rate limit exceeded. Try again later.", "RATE_LIMITED")
			c.Abort()
			return
		}

		c.Next()
	}
}

// retryAfter is the whole seconds until reset, at least 1.
func retryAfter(reset time.Time) int {
	secs := int(math.Ceil(time.Until(reset).Seconds()))
	if secs < 1 {
		return 1
	}
	return secs
}
