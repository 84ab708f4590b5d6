package testhelpers

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/culina/recipebook-api/internal/database"
	"github.com/culina/recipebook-api/internal/models"
	"github.com/culina/recipebook-api/internal/service"
)

// OpenTestDB returns an isolated in-memory SQLite database with the
// full schema applied. Each call gets its own database.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, database.AutoMigrate(db))
	return db
}

// CreateUser inserts a user with a known password and returns it. The
// plaintext password is returned for login flows in tests.
func CreateUser(t *testing.T, db *gorm.DB, username string) (*models.User, string) {
	t.Helper()

	const password = "test-password"
	hashed, err := service.HashPassword(password)
	require.NoError(t, err)

	user := &models.User{
		Username:       username,
		Email:          username + "@example.com",
		FullName:       "Test User",
		HashedPassword: hashed,
		IsActive:       true,
	}
	require.NoError(t, db.Create(user).Error)
	return user, password
}

// CreateCategory inserts a category with a normalized name.
func CreateCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()

	category := &models.Category{Name: name}
	require.NoError(t, db.Create(category).Error)
	return category
}

// CreateIngredient inserts an ingredient.
func CreateIngredient(t *testing.T, db *gorm.DB, name string, vegan bool) *models.Ingredient {
	t.Helper()

	ingredient := &models.Ingredient{Name: name, IsVegan: vegan}
	require.NoError(t, db.Create(ingredient).Error)
	return ingredient
}

// CreateRecipe inserts a recipe owned by the given user with the given
// ingredients, one unit of each.
func CreateRecipe(t *testing.T, db *gorm.DB, name string, owner *models.User, ingredients ...*models.Ingredient) *models.Recipe {
	t.Helper()

	recipe := &models.Recipe{
		Name:            name,
		CookingTime:     30,
		DifficultyLevel: models.DifficultyEasy,
		Portions:        2,
		Instructions:    "Mix everything",
		UserID:          owner.ID,
	}
	for _, ing := range ingredients {
		recipe.RecipeIngredients = append(recipe.RecipeIngredients, models.RecipeIngredient{
			IngredientID: ing.ID,
			Quantity:     "1 unit",
		})
	}
	require.NoError(t, db.Create(recipe).Error)
	return recipe
}
