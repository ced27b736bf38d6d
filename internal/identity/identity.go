package identity

import (
	"errors"                     // Error values
	"recipe_api/internal/domain" // Importing domain models
	"strings"                    // String manipulation

	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// ErrEmailRequired is returned when a user is created without an email address
var ErrEmailRequired = errors.New("users must have an email address")

// NormalizeEmail lowercases and trims an email address; email is the sole
// login identifier so lookups and storage always use the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateUser creates and saves a new user with a hashed password
func CreateUser(db *gorm.DB, email, password, name string) (*domain.User, error) {
	email = NormalizeEmail(email) // Normalize the email address
	if email == "" {
		return nil, ErrEmailRequired // Reject empty email, nothing persisted
	}
	// Hash the password, never store it in clear
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err // Return error if hashing fails
	}
	user := domain.User{
		Email:    email,        // Normalized email
		Password: string(hash), // Hashed password
		Name:     name,         // Display name
		IsActive: true,         // New users are active
	}
	// Attempt to create the user in the database
	if err := db.Create(&user).Error; err != nil {
		return nil, err // Duplicate email surfaces here
	}
	return &user, nil
}

// CreateSuperuser creates an admin user with staff and superuser flags set
func CreateSuperuser(db *gorm.DB, email, password string) (*domain.User, error) {
	user, err := CreateUser(db, email, password, "") // Create the base user first
	if err != nil {
		return nil, err
	}
	// Promote to staff and superuser
	if err := db.Model(user).Updates(map[string]any{"is_staff": true, "is_superuser": true}).Error; err != nil {
		return nil, err
	}
	user.IsStaff = true
	user.IsSuperuser = true
	return user, nil
}

// VerifyCredentials looks up a user by normalized email and checks the
// password against the stored hash. Returns nil, not an error, on any
// mismatch so callers cannot tell which part was wrong.
func VerifyCredentials(db *gorm.DB, email, password string) *domain.User {
	var user domain.User // Fetch user from database
	if err := db.Where("email = ?", NormalizeEmail(email)).First(&user).Error; err != nil {
		return nil // Unknown email
	}
	// Compare provided password with stored hash
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil // Wrong password
	}
	if !user.IsActive {
		return nil // Deactivated accounts cannot authenticate
	}
	return &user
}
