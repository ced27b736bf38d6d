package api

import (
	"errors"                     // Error values
	"net/http"                   // HTTP status codes
	"recipe_api/internal/domain" // Importing domain models
	"strconv"                    // String conversion

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
	"gorm.io/gorm/clause"        // For association-aware deletes
)

// errUnknownReference signals a tag/ingredient id that does not exist
var errUnknownReference = errors.New("unknown tag or ingredient id")

// RecipeRequest is the full write shape for create and PUT.
// Price and TimeMinutes bind through pointers so a literal 0 is accepted
// while a missing field is still rejected.
type RecipeRequest struct {
	Title       string   `json:"title" binding:"required"`                      // Recipe title
	Price       *float64 `json:"price" binding:"required,gt=-1000,lt=1000"`     // decimal(5,2) range
	TimeMinutes *int     `json:"time_minutes" binding:"required"`               // Preparation time
	Link        string   `json:"link"`                                          // Optional external link
	Tags        []uint   `json:"tags"`                                          // Tag ids
	Ingredients []uint   `json:"ingredients"`                                   // Ingredient ids
}

// RecipePatchRequest is the partial write shape for PATCH; only the
// fields present in the payload are applied.
type RecipePatchRequest struct {
	Title       *string  `json:"title"`
	Price       *float64 `json:"price" binding:"omitempty,gt=-1000,lt=1000"`
	TimeMinutes *int     `json:"time_minutes"`
	Link        *string  `json:"link"`
	Tags        *[]uint  `json:"tags"`
	Ingredients *[]uint  `json:"ingredients"`
}

// RecipeResponse is the list/write shape: associations as bare id lists
type RecipeResponse struct {
	ID          uint    `json:"id"`           // Generated id
	Title       string  `json:"title"`        // Recipe title
	Price       float64 `json:"price"`        // Price
	TimeMinutes int     `json:"time_minutes"` // Preparation time
	Ingredients []uint  `json:"ingredients"`  // Ingredient ids
	Tags        []uint  `json:"tags"`         // Tag ids
	Link        string  `json:"link"`         // External link
}

// RecipeDetailResponse is the retrieve-by-id shape: associations expanded
// into full {id, name} objects.
type RecipeDetailResponse struct {
	ID          uint                `json:"id"`
	Title       string              `json:"title"`
	Price       float64             `json:"price"`
	TimeMinutes int                 `json:"time_minutes"`
	Ingredients []domain.Ingredient `json:"ingredients"`
	Tags        []domain.Tag        `json:"tags"`
	Link        string              `json:"link"`
}

// toRecipeResponse maps a recipe to the list/write shape
func toRecipeResponse(r domain.Recipe) RecipeResponse {
	tags := make([]uint, 0, len(r.Tags)) // [] instead of null for empty sets
	for _, t := range r.Tags {
		tags = append(tags, t.ID)
	}
	ingredients := make([]uint, 0, len(r.Ingredients))
	for _, i := range r.Ingredients {
		ingredients = append(ingredients, i.ID)
	}
	return RecipeResponse{
		ID:          r.ID,
		Title:       r.Title,
		Price:       r.Price,
		TimeMinutes: r.TimeMinutes,
		Ingredients: ingredients,
		Tags:        tags,
		Link:        r.Link,
	}
}

// toRecipeDetailResponse maps a recipe to the expanded detail shape
func toRecipeDetailResponse(r domain.Recipe) RecipeDetailResponse {
	if r.Tags == nil {
		r.Tags = make([]domain.Tag, 0)
	}
	if r.Ingredients == nil {
		r.Ingredients = make([]domain.Ingredient, 0)
	}
	return RecipeDetailResponse{
		ID:          r.ID,
		Title:       r.Title,
		Price:       r.Price,
		TimeMinutes: r.TimeMinutes,
		Ingredients: r.Ingredients,
		Tags:        r.Tags,
		Link:        r.Link,
	}
}

// resolveTags loads the referenced tags, failing if any id is unknown.
// Ownership of the referenced tags is deliberately not checked.
func resolveTags(db *gorm.DB, ids []uint) ([]domain.Tag, error) {
	tags := make([]domain.Tag, 0, len(ids))
	if len(ids) == 0 {
		return tags, nil
	}
	if err := db.Find(&tags, ids).Error; err != nil {
		return nil, err
	}
	if len(tags) != len(ids) {
		return nil, errUnknownReference
	}
	return tags, nil
}

// resolveIngredients loads the referenced ingredients, failing if any id is unknown
func resolveIngredients(db *gorm.DB, ids []uint) ([]domain.Ingredient, error) {
	ingredients := make([]domain.Ingredient, 0, len(ids))
	if len(ids) == 0 {
		return ingredients, nil
	}
	if err := db.Find(&ingredients, ids).Error; err != nil {
		return nil, err
	}
	if len(ingredients) != len(ids) {
		return nil, errUnknownReference
	}
	return ingredients, nil
}

// fetchRecipe loads a recipe with its associations by path id
func fetchRecipe(c *gin.Context, db *gorm.DB) (*domain.Recipe, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64) // Parse the path id
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return nil, false
	}
	var recipe domain.Recipe
	if err := db.Preload("Tags").Preload("Ingredients").First(&recipe, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return nil, false
	}
	return &recipe, true
}

// ListRecipesHandler lists the caller's recipes in ascending id order
func ListRecipesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("userID").(uint) // Set by the token middleware
		var recipes []domain.Recipe
		// Owner-scoped query, ascending id
		if err := db.Preload("Tags").Preload("Ingredients").
			Where("user_id = ?", userID).Order("id ASC").Find(&recipes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list recipes"})
			return
		}
		out := make([]RecipeResponse, 0, len(recipes)) // [] for users with no recipes
		for _, r := range recipes {
			out = append(out, toRecipeResponse(r))
		}
		c.JSON(http.StatusOK, out)
	}
}

// CreateRecipeHandler creates a recipe owned by the caller
func CreateRecipeHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("userID").(uint) // Set by the token middleware
		var req RecipeRequest                // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// Missing/invalid fields, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		tags, err := resolveTags(db, req.Tags) // Referenced tags must exist
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tag reference"})
			return
		}
		ingredients, err := resolveIngredients(db, req.Ingredients) // Referenced ingredients must exist
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ingredient reference"})
			return
		}
		recipe := domain.Recipe{
			UserID:      userID, // Owner forced to the caller
			Title:       req.Title,
			Price:       *req.Price,
			TimeMinutes: *req.TimeMinutes,
			Link:        req.Link,
			Tags:        tags,
			Ingredients: ingredients,
		}
		if err := db.Create(&recipe).Error; err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // Owner
				"title":   req.Title,   // Recipe title
				"error":   err.Error(), // Error message
			}).Error("Recipe creation failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create recipe"})
			return
		}
		c.JSON(http.StatusCreated, toRecipeResponse(recipe))
	}
}

// RetrieveRecipeHandler returns a single recipe in the expanded detail shape
func RetrieveRecipeHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		recipe, ok := fetchRecipe(c, db)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, toRecipeDetailResponse(*recipe))
	}
}

// UpdateRecipeHandler updates a recipe; partial selects PATCH semantics.
// Tag/ingredient associations are replaced wholesale when present.
func UpdateRecipeHandler(db *gorm.DB, partial bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		recipe, ok := fetchRecipe(c, db)
		if !ok {
			return
		}
		fields := map[string]any{}   // Scalar column updates
		var tagIDs, ingredientIDs *[]uint // Association replacements, nil means untouched
		if partial {
			var req RecipePatchRequest // Bind only the provided fields
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
				return
			}
			if req.Title != nil {
				fields["title"] = *req.Title
			}
			if req.Price != nil {
				fields["price"] = *req.Price
			}
			if req.TimeMinutes != nil {
				fields["time_minutes"] = *req.TimeMinutes
			}
			if req.Link != nil {
				fields["link"] = *req.Link
			}
			tagIDs = req.Tags
			ingredientIDs = req.Ingredients
		} else {
			var req RecipeRequest // PUT requires the full write shape
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
				return
			}
			fields["title"] = req.Title
			fields["price"] = *req.Price
			fields["time_minutes"] = *req.TimeMinutes
			fields["link"] = req.Link
			// Omitted association lists mean an empty set on full update
			tags := req.Tags
			if tags == nil {
				tags = []uint{}
			}
			ingredients := req.Ingredients
			if ingredients == nil {
				ingredients = []uint{}
			}
			tagIDs = &tags
			ingredientIDs = &ingredients
		}
		var tags []domain.Tag
		var ingredients []domain.Ingredient
		var err error
		if tagIDs != nil {
			if tags, err = resolveTags(db, *tagIDs); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tag reference"})
				return
			}
		}
		if ingredientIDs != nil {
			if ingredients, err = resolveIngredients(db, *ingredientIDs); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ingredient reference"})
				return
			}
		}
		if len(fields) > 0 {
			// Map-based update so zero values are written through
			if err := db.Model(recipe).Updates(fields).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update recipe"})
				return
			}
		}
		if tagIDs != nil {
			if err := db.Model(recipe).Association("Tags").Replace(tags); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update recipe"})
				return
			}
		}
		if ingredientIDs != nil {
			if err := db.Model(recipe).Association("Ingredients").Replace(ingredients); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update recipe"})
				return
			}
		}
		// Reload with associations for the response
		var updated domain.Recipe
		if err := db.Preload("Tags").Preload("Ingredients").First(&updated, recipe.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update recipe"})
			return
		}
		c.JSON(http.StatusOK, toRecipeResponse(updated))
	}
}

// DeleteRecipeHandler deletes a recipe and its association rows
func DeleteRecipeHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		recipe, ok := fetchRecipe(c, db)
		if !ok {
			return
		}
		// Select associations so the join rows are removed as well
		if err := db.Select(clause.Associations).Delete(recipe).Error; err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"recipe_id": recipe.ID,   // Recipe being deleted
				"error":     err.Error(), // Error message
			}).Error("Recipe deletion failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete recipe"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
