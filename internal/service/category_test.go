package service_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/culina/recipebook-api/internal/apperr"
	"github.com/culina/recipebook-api/internal/service"
	"github.com/culina/recipebook-api/internal/testhelpers"
)

func TestCategoryCreateNormalizesName(t *testing.T) {
	db := testhelpers.OpenTestDB(t)
	categories := service.NewCategoryService(db)

	category, err := categories.Create("Veggies")
	require.NoError(t, err)
	assert.Equal(t, "veggies", category.Name)
}

func TestCategoryCreateDuplicateIsConflict(t *testing.T) {
	db := testhelpers.OpenTestDB(t)
	categories := service.NewCategoryService(db)

	_, err := categories.Create("Veggies")
	require.NoError(t, err)

	// Same name in different case collides after normalization
	_, err = categories.Create("VEGGIES")
	require.Error(t, err)

	appErr := apperr.From(err, "test")
	assert.Equal(t, http.StatusConflict, appErr.Code)
	assert.Equal(t, apperr.KindConflict, appErr.Kind)
}

func TestCategoryGetNotFound(t *testing.T) {
	db := testhelpers.OpenTestDB(t)
	categories := service.NewCategoryService(db)

	_, err := categories.Get(42)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperr.From(err, "test").Code)
}

func TestCategoryUpdate(t *testing.T) {
	db := testhelpers.OpenTestDB(t)
	categories := service.NewCategoryService(db)

	created, err := categories.Create("Veggies")
	require.NoError(t, err)

	updated, err := categories.Update(created.ID, "Greens")
	require.NoError(t, err)
	assert.Equal(t, "greens", updated.Name)
	assert.Equal(t, created.ID, updated.ID)
}

func TestCategoryUpdateDuplicateIsConflict(t *testing.T) {
	db := testhelpers.OpenTestDB(t)
	categories := service.NewCategoryService(db)

	_, err := categories.Create("Veggies")
	require.NoError(t, err)
	other, err := categories.Create("Dairy")
	require.NoError(t, err)

	_, err = categories.Update(other.ID, "Veggies")
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperr.From(err, "test").Code)
}

func TestCategoryDeleteClearsIngredientLinks(t *testing.T) {
	db := testhelpers.OpenTestDB(t)
	categories := service.NewCategoryService(db)
	ingredients := service.NewIngredientService(db)

	category, err := categories.Create("Veggies")
	require.NoError(t, err)
	ingredient, err := ingredients.Create(service.CreateIngredientParams{
		Name:        "Broccoli",
		IsVegan:     true,
		CategoryIDs: []uint{category.ID},
	})
	require.NoError(t, err)

	_, err = categories.Delete(category.ID)
	require.NoError(t, err)

	_, err = categories.Get(category.ID)
	require.Error(t, err)

	// The ingredient survives with the link removed
	got, err := ingredients.Get(ingredient.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Categories)
}

func TestCategoryListIncludesIngredients(t *testing.T) {
	db := testhelpers.OpenTestDB(t)
	categories := service.NewCategoryService(db)

	category := testhelpers.CreateCategory(t, db, "veggies")
	ingredient := testhelpers.CreateIngredient(t, db, "broccoli", true)
	require.NoError(t, db.Model(category).Association("Ingredients").Append(ingredient))

	all, err := categories.List()
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Len(t, all[0].Ingredients, 1)
	assert.Equal(t, "broccoli", all[0].Ingredients[0].Name)
}
