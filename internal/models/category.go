package models

import (
	"time"
)

// Category names are stored lowercase; the API layer capitalizes them
// on the way out.
type Category struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `gorm:"size:50;uniqueIndex;not null" json:"name"`

	Ingredients []Ingredient `gorm:"many2many:ingredient_categories" json:"ingredients,omitempty"`
}
