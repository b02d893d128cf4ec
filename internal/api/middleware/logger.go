package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"baas-lcos/internal/logger"
)

// Logger logs one line per request.
func Logger(log logger.Logger) gin.HandlerFunc {
	if log == nil {
		log = logger.NopLogger{}
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		status := c.Writer.Status()
		fields := map[string]any{
			"method":     c.Request.Method,
			"path":       c.FullPath(),
			"status":     status,
			"latency_ms": time.Since(start).Milliseconds(),
		}
		if status >= 500 {
			log.Errorw("request failed", fields)
			return
		}
		log.Debugw("request", fields)
	}
}
