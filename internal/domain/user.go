package domain

// User Model
type User struct {
	ID          uint   `gorm:"primaryKey" json:"id"`                 // Primary key
	Email       string `gorm:"size:255;uniqueIndex;not null" json:"email"` // Unique login email, stored lowercase
	Password    string `gorm:"not null" json:"-"`                    // Hashed password, never serialized
	Name        string `gorm:"size:255" json:"name"`                 // Display name
	IsActive    bool   `gorm:"default:true" json:"is_active"`        // Inactive users cannot authenticate
	IsStaff     bool   `gorm:"default:false" json:"is_staff"`        // Staff flag
	IsSuperuser bool   `gorm:"default:false" json:"is_superuser"`    // Superuser flag
}
