package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/domains/user"
	"blog-backend/internal/shared/response"
)

// CurrentUserKey is the gin context key holding the authenticated
// user's DTO.
const CurrentUserKey = "currentUser"

// Auth extracts the bearer token and resolves it to a user. Every
// failure mode produces the same 401, so callers cannot distinguish
// a bad signature from an expired token or a deleted account.
func Auth(users user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		u, err := users.CurrentUser(c.Request.Context(), parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(CurrentUserKey, u)
		c.Next()
	}
}

// CurrentUser returns the user set by Auth, or nil outside an
// authenticated route.
func CurrentUser(c *gin.Context) *user.UserDTO {
	v, ok := c.Get(CurrentUserKey)
	if !ok {
		return nil
	}
	u, _ := v.(*user.UserDTO)
	return u
}
