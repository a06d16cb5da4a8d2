package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"housemate/models"
	"housemate/utils"
)

// Context keys set by the auth middleware.
const (
	CtxUserID = "userID"
	CtxRole   = "role"
	CtxPhone  = "phone"
	CtxToken  = "token"
)

// JWTAuthMiddleware validates the bearer token and checks the auth
// cache so revoked tokens stop working before they expire.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.ExtractClaims(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		// The token hash must still be cached; logout deletes it.
		key := "authToken:" + utils.HashToken(tokenString)
		cached, err := utils.GetAuthCacheClient().Get(context.Background(), key).Result()
		if err != nil || cached != claims.UserID {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token revoked or expired"})
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxRole, claims.Role)
		c.Set(CtxPhone, claims.Phone)
		c.Set(CtxToken, tokenString)
		c.Next()
	}
}

// RequireRole rejects requests whose token was issued for another role.
func RequireRole(role models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, ok := c.Get(CtxRole)
		if !ok || got.(models.UserRole) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient role"})
			return
		}
		c.Next()
	}
}

// UserID reads the authenticated user's ID from the context.
func UserID(c *gin.Context) string {
	return c.GetString(CtxUserID)
}
