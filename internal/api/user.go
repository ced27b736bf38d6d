package api

import (
	"net/http"                     // HTTP status codes
	"recipe_api/internal/auth"     // Token issuance
	"recipe_api/internal/identity" // User creation and credential checks

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// CreateUserRequest is the write shape for user registration
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`  // Login email, required
	Password string `json:"password" binding:"required,min=5"` // Write-only, minimum 5 characters
	Name     string `json:"name"`                            // Display name, optional
}

// UserResponse is returned on successful registration; password is omitted
type UserResponse struct {
	Email string `json:"email"` // Normalized email
	Name  string `json:"name"`  // Display name
}

// TokenRequest is the credential shape for token issuance
type TokenRequest struct {
	Email    string `json:"email" binding:"required"`    // Login email
	Password string `json:"password" binding:"required"` // Password
}

// TokenResponse carries the opaque bearer token
type TokenResponse struct {
	Token string `json:"token"` // Token key
}

// CreateUserHandler registers a new user account
func CreateUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateUserRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// Missing email or too-short password, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		user, err := identity.CreateUser(db, req.Email, req.Password, req.Name)
		if err != nil {
			// Creation fails on a duplicate email, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
			return
		}
		// Return the created user without the password
		c.JSON(http.StatusCreated, UserResponse{Email: user.Email, Name: user.Name})
	}
}

// CreateTokenHandler issues an opaque bearer token for valid credentials
func CreateTokenHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TokenRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		user := identity.VerifyCredentials(db, req.Email, req.Password)
		if user == nil {
			// Deliberately generic, do not reveal which field was wrong
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email or Password is incorrect"})
			return
		}
		token, err := auth.IssueToken(db, user.ID) // Get or create the user's token
		if err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"user_id": user.ID,     // Authenticated user
				"error":   err.Error(), // Error message
			}).Error("Token issuance failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
			return
		}
		// Return the token in the response
		c.JSON(http.StatusOK, TokenResponse{Token: token.Key})
	}
}
