package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"innflow/utils"
)

// AdminAuthMiddleware guards the mapping-diagnostics endpoints. It
// accepts either a signed admin JWT or the raw admin API key (verified
// against the configured bcrypt hash).
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		credential := strings.TrimPrefix(authHeader, "Bearer ")

		if err := utils.ValidateAdminToken(credential); err != nil {
			if keyErr := utils.VerifyAdminKey(credential); keyErr != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
				return
			}
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}
