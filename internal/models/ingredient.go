package models

import (
	"time"
)

type Ingredient struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `gorm:"size:50;uniqueIndex;not null" json:"name"`
	IsVegan   bool      `gorm:"not null;default:false" json:"is_vegan"`

	Categories []Category `gorm:"many2many:ingredient_categories" json:"categories,omitempty"`
}
