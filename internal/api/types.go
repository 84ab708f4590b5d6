package api

import (
	"strings"
	"time"
	"unicode"

	"github.com/culina/recipebook-api/internal/models"
	"github.com/culina/recipebook-api/internal/service"
)

// capitalize renders a stored lowercase name for display: first rune
// uppercased, the rest lowercase.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// EntityRef is a shallow reference to a related entity.
type EntityRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CategoryResponse struct {
	ID          uint        `json:"id"`
	Name        string      `json:"name"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
	Ingredients []EntityRef `json:"ingredients"`
}

type IngredientResponse struct {
	ID         uint        `json:"id"`
	Name       string      `json:"name"`
	IsVegan    bool        `json:"is_vegan"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
	Categories []EntityRef `json:"categories"`
}

// RecipeIngredientPayload appears both in recipe requests and recipe
// responses.
type RecipeIngredientPayload struct {
	IngredientID uint   `json:"ingredient_id" binding:"required"`
	Quantity     string `json:"quantity" binding:"required"`
}

type RecipeResponse struct {
	ID              uint                      `json:"id"`
	Name            string                    `json:"name"`
	CookingTime     int                       `json:"cooking_time"`
	DifficultyLevel models.DifficultyLevel    `json:"difficulty_level"`
	Portions        int                       `json:"portions"`
	Instructions    string                    `json:"instructions"`
	IsVegan         bool                      `json:"is_vegan"`
	UserID          uint                      `json:"user_id"`
	CreatedAt       time.Time                 `json:"created_at"`
	Ingredients     []RecipeIngredientPayload `json:"ingredients"`
}

func toUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toCategoryResponse(c *models.Category) CategoryResponse {
	refs := make([]EntityRef, 0, len(c.Ingredients))
	for _, ing := range c.Ingredients {
		refs = append(refs, EntityRef{ID: ing.ID, Name: capitalize(ing.Name)})
	}
	return CategoryResponse{
		ID:          c.ID,
		Name:        capitalize(c.Name),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		Ingredients: refs,
	}
}

func toIngredientResponse(i *models.Ingredient) IngredientResponse {
	refs := make([]EntityRef, 0, len(i.Categories))
	for _, cat := range i.Categories {
		refs = append(refs, EntityRef{ID: cat.ID, Name: capitalize(cat.Name)})
	}
	return IngredientResponse{
		ID:         i.ID,
		Name:       capitalize(i.Name),
		IsVegan:    i.IsVegan,
		CreatedAt:  i.CreatedAt,
		UpdatedAt:  i.UpdatedAt,
		Categories: refs,
	}
}

func toRecipeResponse(r *models.Recipe) RecipeResponse {
	ingredients := make([]RecipeIngredientPayload, 0, len(r.RecipeIngredients))
	for _, ri := range r.RecipeIngredients {
		ingredients = append(ingredients, RecipeIngredientPayload{
			IngredientID: ri.IngredientID,
			Quantity:     ri.Quantity,
		})
	}
	return RecipeResponse{
		ID:              r.ID,
		Name:            capitalize(r.Name),
		CookingTime:     r.CookingTime,
		DifficultyLevel: r.DifficultyLevel,
		Portions:        r.Portions,
		Instructions:    r.Instructions,
		IsVegan:         r.IsVegan(),
		UserID:          r.UserID,
		CreatedAt:       r.CreatedAt,
		Ingredients:     ingredients,
	}
}

func toIngredientInputs(payloads []RecipeIngredientPayload) []service.RecipeIngredientInput {
	inputs := make([]service.RecipeIngredientInput, 0, len(payloads))
	for _, p := range payloads {
		inputs = append(inputs, service.RecipeIngredientInput{
			IngredientID: p.IngredientID,
			Quantity:     p.Quantity,
		})
	}
	return inputs
}

func refIDs(refs []EntityRef) []uint {
	ids := make([]uint, 0, len(refs))
	for _, ref := range refs {
		ids = append(ids, ref.ID)
	}
	return ids
}
