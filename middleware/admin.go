package middleware

import (
	"net/http"

	userRepo "docportal/database/repository/user"

	"github.com/gin-gonic/gin"
)

// AdminOnlyMiddleware rejects callers whose authenticated email does not
// belong to an admin user. Must run after JWTAuthMiddleware.
func AdminOnlyMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := AuthedEmail(c)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		u, err := users.GetByEmail(c.Request.Context(), email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "failed to verify role"})
			return
		}
		if !u.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}

		c.Next()
	}
}
