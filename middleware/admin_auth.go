package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"angoni/config"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware guards admin endpoints with the static bearer token
// configured per deployment.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := config.AppConfig.AdminAPIToken
		if token == "" {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"success": false,
				"error":   "Admin access is not configured",
			})
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Missing or invalid Authorization header",
			})
			return
		}
		provided := strings.TrimPrefix(authHeader, "Bearer ")

		if subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Unauthorized admin access",
			})
			return
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}
