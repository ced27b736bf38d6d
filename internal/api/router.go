package api

import (
	"recipe_api/internal/domain"     // Importing domain models
	"recipe_api/internal/middleware" // Token authentication middleware

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// SetupRouter wires all routes onto a Gin engine. Trailing slashes are part
// of the public paths and are registered as-is.
func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default() // Gin router instance

	// Public user routes
	r.POST("/user/create/", CreateUserHandler(db)) // Registration endpoint
	r.POST("/user/token/", CreateTokenHandler(db)) // Token endpoint

	// Recipe routes (protected by bearer token)
	recipeGroup := r.Group("/recipe")
	recipeGroup.Use(middleware.TokenAuthMiddleware(db))
	recipeGroup.GET("/tags/", ListAttributesHandler[domain.Tag](db)) // List tags endpoint
	recipeGroup.POST("/tags/", CreateAttributeHandler(db, func(name string, userID uint) *domain.Tag {
		return &domain.Tag{Name: name, UserID: userID} // Create tag endpoint
	}))
	recipeGroup.GET("/ingredient/", ListAttributesHandler[domain.Ingredient](db)) // List ingredients endpoint
	recipeGroup.POST("/ingredient/", CreateAttributeHandler(db, func(name string, userID uint) *domain.Ingredient {
		return &domain.Ingredient{Name: name, UserID: userID} // Create ingredient endpoint
	}))
	recipeGroup.GET("/recipe/", ListRecipesHandler(db))            // List recipes endpoint
	recipeGroup.POST("/recipe/", CreateRecipeHandler(db))          // Create recipe endpoint
	recipeGroup.GET("/recipe/:id/", RetrieveRecipeHandler(db))     // Recipe detail endpoint
	recipeGroup.PUT("/recipe/:id/", UpdateRecipeHandler(db, false)) // Full update endpoint
	recipeGroup.PATCH("/recipe/:id/", UpdateRecipeHandler(db, true)) // Partial update endpoint
	recipeGroup.DELETE("/recipe/:id/", DeleteRecipeHandler(db))    // Delete endpoint

	return r
}
