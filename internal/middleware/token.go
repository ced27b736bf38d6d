package middleware

import (
	"net/http"                 // HTTP status codes
	"recipe_api/internal/auth" // Token resolution
	"strings"                  // String manipulation

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// TokenAuthMiddleware validates opaque bearer tokens and loads the caller
func TokenAuthMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		// Check if the Authorization header is present and properly formatted
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		key := strings.TrimPrefix(authHeader, "Bearer ") // Extract the token key
		user, err := auth.ResolveToken(db, key)          // Resolve the token to its user
		if err != nil {
			// Unknown token or inactive user, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		c.Set("userID", user.ID) // Store userID in context
		c.Next()                 // Proceed to the next handler
	}
}
