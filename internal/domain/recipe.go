package domain

// Recipe Model
type Recipe struct {
	ID          uint         `gorm:"primaryKey"`                           // Primary key
	UserID      uint         `gorm:"index;not null"`                       // Foreign key to the owning User, fixed at creation
	User        User         `gorm:"constraint:OnDelete:CASCADE"`          // Owning user, cascade on delete
	Title       string       `gorm:"size:255;not null"`                    // Recipe title
	Price       float64      `gorm:"type:decimal(5,2)"`                    // Price, 5 digits total with 2 decimals
	TimeMinutes int          // Preparation time in minutes
	Link        string       `gorm:"size:255;default:''"`                  // Optional external link
	Tags        []Tag        `gorm:"many2many:recipe_tags;constraint:OnDelete:CASCADE"`        // Associated tags
	Ingredients []Ingredient `gorm:"many2many:recipe_ingredients;constraint:OnDelete:CASCADE"` // Associated ingredients
}
