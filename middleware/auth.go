// middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"docportal/utils"

	"github.com/gin-gonic/gin"
)

// ContextEmailKey is where the authenticated email lands in the gin context.
const ContextEmailKey = "email"

// JWTAuthMiddleware verifies the bearer token and stores the authenticated
// email in the context. A missing credential is 401; a present but invalid or
// expired one is 403.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		email, err := utils.ExtractEmailFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}

		c.Set(ContextEmailKey, email)
		c.Next()
	}
}

// AuthedEmail returns the email set by JWTAuthMiddleware.
func AuthedEmail(c *gin.Context) string {
	return c.GetString(ContextEmailKey)
}
