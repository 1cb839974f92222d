package middlewares

import (
	"strconv"
	"time"

	"disaster-alert-be/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request counts and durations per method/route/status.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(duration)
	}
}
