package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLogger writes one structured log line per request.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if requestID, ok := c.Get("request_id"); ok {
			fields = append(fields, zap.Any("request_id", requestID))
		}

		if c.Writer.Status() >= 500 {
			log.Error("request failed", fields...)
		} else {
			log.Info("request", fields...)
		}
	}
}
