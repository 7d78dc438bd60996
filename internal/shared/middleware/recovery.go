package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/shared/response"
	"blog-backend/pkg/logger"
)

// Recovery turns a handler panic into the standard 500 envelope
// instead of a dropped connection. The panic value is logged with the
// request id; the client sees only the generic message.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered",
					fmt.Errorf("request %s: %v", c.GetString("request_id"), r))

				response.InternalServerError(c, "internal server error")
				c.Abort()
			}
		}()

		c.Next()
	}
}
