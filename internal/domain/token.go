package domain

// Token Model
// One opaque bearer token per user; the key is the credential presented
// in the Authorization header.
type Token struct {
	ID        uint   `gorm:"primaryKey"`                                // Primary key
	Key       string `gorm:"size:40;uniqueIndex;not null"`              // Random hex token key
	UserID    uint   `gorm:"uniqueIndex"`                               // Foreign key to User, one token per user
	User      User   `gorm:"constraint:OnDelete:CASCADE" json:"-"`      // Owning user
	CreatedAt int64  `gorm:"autoCreateTime:milli"`                      // Timestamp of creation in milliseconds
}
