package middlewares

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// SubmitRateLimiter caps public submissions (reports, contact messages)
// per client IP over a 24-hour window. With a nil client the limiter is a
// pass-through so the service runs without Redis.
func SubmitRateLimiter(client *redis.Client, prefix string, limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil {
			c.Next()
			return
		}

		key := prefix + ":" + c.ClientIP()
		ctx := c.Request.Context()

		count, err := client.Incr(ctx, key).Result()
		if err != nil {
			// Redis being down should not block submissions.
			c.Next()
			return
		}

		if count == 1 {
			_ = client.Expire(ctx, key, 24*time.Hour).Err()
		}

		if count > int64(limit) {
			retryAfter, _ := client.TTL(ctx, key).Result()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"success":     false,
				"error":       "rate limit exceeded",
				"retry_after": retryAfter.Seconds(),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
