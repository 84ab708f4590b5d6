package api

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/culina/recipebook-api/internal/models"
)

func TestCapitalize(t *testing.T) {
	cases := map[string]string{
		"":            "",
		"broccoli":    "Broccoli",
		"GREEK SALAD": "Greek salad",
		"stir fry":    "Stir fry",
		"œuf":         "Œuf",
	}
	for in, want := range cases {
		assert.Equal(t, want, capitalize(in))
	}
}

func TestToRecipeResponseDerivesVegan(t *testing.T) {
	recipe := &models.Recipe{
		Name: "stir fry",
		RecipeIngredients: []models.RecipeIngredient{
			{IngredientID: 1, Quantity: "200 grams", Ingredient: models.Ingredient{IsVegan: true}},
			{IngredientID: 2, Quantity: "50 grams", Ingredient: models.Ingredient{IsVegan: false}},
		},
	}

	resp := toRecipeResponse(recipe)
	assert.Equal(t, "Stir fry", resp.Name)
	assert.False(t, resp.IsVegan)
	assert.Len(t, resp.Ingredients, 2)
	assert.Equal(t, "200 grams", resp.Ingredients[0].Quantity)
}

func TestToRecipeResponseEmptyIngredientsIsVegan(t *testing.T) {
	resp := toRecipeResponse(&models.Recipe{Name: "water"})
	assert.True(t, resp.IsVegan)
	assert.NotNil(t, resp.Ingredients)
}
