package auth

import (
	"errors"                     // Error values
	"recipe_api/internal/domain" // Importing domain models
	"recipe_api/internal/utils"  // Token key generation

	"gorm.io/gorm" // GORM ORM library
)

// ErrInvalidToken is returned when a token key is unknown or its user is inactive
var ErrInvalidToken = errors.New("invalid token")

// IssueToken returns the user's existing token or creates a new one.
// A user holds at most one token at a time; issuing is idempotent.
func IssueToken(db *gorm.DB, userID uint) (*domain.Token, error) {
	var token domain.Token // Look for an existing token first
	err := db.Where("user_id = ?", userID).First(&token).Error
	if err == nil {
		return &token, nil // Reuse the existing token
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err // Unexpected store failure
	}
	key, err := utils.GenerateTokenKey() // Generate a fresh random key
	if err != nil {
		return nil, err
	}
	token = domain.Token{Key: key, UserID: userID}
	if err := db.Create(&token).Error; err != nil {
		return nil, err // Return error if creation fails
	}
	return &token, nil
}

// ResolveToken maps a bearer token key to its active user
func ResolveToken(db *gorm.DB, key string) (*domain.User, error) {
	var token domain.Token // Look up the token by key
	if err := db.Where("`key` = ?", key).First(&token).Error; err != nil {
		return nil, ErrInvalidToken // Unknown token
	}
	var user domain.User // Fetch the associated user
	if err := db.First(&user, token.UserID).Error; err != nil {
		return nil, ErrInvalidToken // Dangling token
	}
	if !user.IsActive {
		return nil, ErrInvalidToken // Deactivated accounts are rejected
	}
	return &user, nil
}
