package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/culina/recipebook-api/internal/apperr"
	"github.com/culina/recipebook-api/internal/models"
	"github.com/culina/recipebook-api/internal/service"
	"github.com/culina/recipebook-api/internal/testhelpers"
)

// Exercises the unique-violation translation against a real PostgreSQL
// instance, where GORM reports duplicates differently than sqlite.
func TestPostgresUniqueViolations(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-based test in short mode")
	}

	db := testhelpers.SetupPostgres(t)

	categories := service.NewCategoryService(db)
	_, err := categories.Create("Veggies")
	require.NoError(t, err)

	_, err = categories.Create("VEGGIES")
	require.Error(t, err)

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindConflict, appErr.Kind)
}

func TestPostgresRecipeLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-based test in short mode")
	}

	db := testhelpers.SetupPostgres(t)

	owner, _ := testhelpers.CreateUser(t, db, "alice")
	ingredient := testhelpers.CreateIngredient(t, db, "broccoli", true)

	recipes := service.NewRecipeService(db)
	created, err := recipes.Create(service.CreateRecipeParams{
		Name:            "Stir Fry",
		CookingTime:     30,
		DifficultyLevel: models.DifficultyEasy,
		Portions:        2,
		Instructions:    "Mix everything",
		Ingredients: []service.RecipeIngredientInput{
			{IngredientID: ingredient.ID, Quantity: "200 grams"},
		},
	}, owner)
	require.NoError(t, err)
	assert.Equal(t, "stir fry", created.Name)

	fetched, err := recipes.Get(created.ID)
	require.NoError(t, err)
	assert.True(t, fetched.IsVegan())

	deleted, err := recipes.Delete(created.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	_, err = recipes.Get(created.ID)
	require.ErrorAs(t, err, new(*apperr.Error))
}
