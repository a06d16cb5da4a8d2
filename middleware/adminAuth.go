package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"housemate/config"
)

// AdminAuthMiddleware gates moderation endpoints behind a static API
// key supplied in the X-Admin-Key header.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		expected := config.AppConfig.AdminAPIKey
		if expected == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access is not configured"})
			return
		}
		key := c.GetHeader("X-Admin-Key")
		if subtle.ConstantTimeCompare([]byte(key), []byte(expected)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}
		c.Set("isAdmin", true)
		c.Next()
	}
}
