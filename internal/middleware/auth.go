package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminAuth guards the read-only admin surface with a static API key.
func AdminAuth(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-Admin-API-Key")
		if key == "" || key != apiKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid admin API key"})
			return
		}
		c.Next()
	}
}
