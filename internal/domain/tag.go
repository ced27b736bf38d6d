package domain

// Tag Model
type Tag struct {
	ID     uint   `gorm:"primaryKey" json:"id"`                 // Primary key
	Name   string `gorm:"size:255;not null" json:"name"`        // Tag name, duplicates allowed
	UserID uint   `gorm:"index;not null" json:"-"`              // Foreign key to the owning User
	User   User   `gorm:"constraint:OnDelete:CASCADE" json:"-"` // Owning user, cascade on delete
}
