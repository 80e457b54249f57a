package middleware

import (
	"strings"

	"todoapi/internal/adapter/http/helper"
	"todoapi/pkg/auth"

	"github.com/gin-gonic/gin"
)

// GinJwtMiddleware guards the authenticated route groups. On success
// the numeric user id lands in the gin context under "x-user-id".
func GinJwtMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		bearer := c.GetHeader("Authorization")

		if bearer == "" {
			helper.SendUnauthorizedError(c, "Unauthorized request")
			c.Abort()
			return
		}

		if !strings.HasPrefix(bearer, "Bearer ") {
			helper.SendUnauthorizedError(c, "Invalid authorization format")
			c.Abort()
			return
		}

		claims, err := auth.VerifyJwtToken(bearer[len("Bearer "):])

		if err != nil {
			helper.SendUnauthorizedError(c, "Unauthorized request")
			c.Abort()
			return
		}

		rawUserId, ok := claims["user_id"].(float64)

		if !ok {
			helper.SendUnauthorizedError(c, "Unauthorized request")
			c.Abort()
			return
		}

		c.Set("x-user-id", int(rawUserId))
		c.Next()
	}
}

// CurrentUserId reads the id stashed by GinJwtMiddleware.
func CurrentUserId(c *gin.Context) (int, bool) {
	userId, exists := c.Get("x-user-id")

	if !exists {
		return 0, false
	}

	id, ok := userId.(int)

	return id, ok
}
