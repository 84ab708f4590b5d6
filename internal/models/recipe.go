package models

import (
	"time"
)

// DifficultyLevel is the closed set of recipe difficulties.
type DifficultyLevel string

const (
	DifficultyEasy   DifficultyLevel = "EASY"
	DifficultyMedium DifficultyLevel = "MEDIUM"
	DifficultyHard   DifficultyLevel = "HARD"
)

// Valid reports whether the level is one of the known values.
func (d DifficultyLevel) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

type Recipe struct {
	ID              uint            `gorm:"primarykey" json:"id"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	Name            string          `gorm:"size:183;uniqueIndex;not null" json:"name"`
	CookingTime     int             `gorm:"not null" json:"cooking_time"`
	DifficultyLevel DifficultyLevel `gorm:"size:10;not null" json:"difficulty_level"`
	Portions        int             `gorm:"not null" json:"portions"`
	Instructions    string          `gorm:"type:text;not null" json:"instructions"`
	UserID          uint            `gorm:"not null;index" json:"user_id"`

	User              User               `gorm:"foreignKey:UserID" json:"-"`
	RecipeIngredients []RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
}

// IsVegan is derived at read time from the current ingredient set.
// A recipe with no ingredients counts as vegan (vacuous truth).
func (r *Recipe) IsVegan() bool {
	for _, ri := range r.RecipeIngredients {
		if !ri.Ingredient.IsVegan {
			return false
		}
	}
	return true
}

// RecipeIngredient is the join row between a recipe and an ingredient,
// carrying a free-text quantity such as "100 grams".
type RecipeIngredient struct {
	ID           uint   `gorm:"primarykey" json:"id"`
	RecipeID     uint   `gorm:"not null;index" json:"recipe_id"`
	IngredientID uint   `gorm:"not null;index" json:"ingredient_id"`
	Quantity     string `gorm:"size:50;not null" json:"quantity"`

	Ingredient Ingredient `gorm:"foreignKey:IngredientID" json:"-"`
}
