package api

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// Tags and ingredients share the same shape and endpoint behavior, so
// their handlers are a single generic list/create pair instead of two
// near-identical implementations.

// AttributeRequest is the write shape shared by tags and ingredients
type AttributeRequest struct {
	Name string `json:"name" binding:"required"` // Name must be provided and non-blank
}

// ListAttributesHandler lists the caller's entities ordered by name descending
func ListAttributesHandler[T any](db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("userID").(uint) // Set by the token middleware
		items := make([]T, 0)                // Empty list serializes as [], not null
		// Owner-scoped query, name descending
		if err := db.Where("user_id = ?", userID).Order("name DESC").Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// CreateAttributeHandler creates an entity owned by the caller. The build
// function constructs the concrete model; the owner always comes from the
// authenticated context, never from the request body.
func CreateAttributeHandler[T any](db *gorm.DB, build func(name string, userID uint) *T) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("userID").(uint) // Set by the token middleware
		var req AttributeRequest             // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
			// Blank name, return bad request and persist nothing
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name must not be blank"})
			return
		}
		item := build(req.Name, userID) // Owner forced to the caller
		if err := db.Create(item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create"})
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}
