package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"blog-backend/pkg/logger"
)

// Logger writes one line per request through the shared logger,
// tagged with the id set by RequestID. The matched route is logged
// alongside the raw path so /users/7 and /users/8 aggregate under
// /users/:id.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		logger.Info("request completed", map[string]interface{}{
			"request_id": c.GetString("request_id"),
			"method":     c.Request.Method,
			"path":       path,
			"route":      c.FullPath(),
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"bytes":      c.Writer.Size(),
		})
	}
}
