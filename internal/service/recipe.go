package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/culina/recipebook-api/internal/apperr"
	"github.com/culina/recipebook-api/internal/models"
)

// RecipeService handles recipe CRUD, the recipe to ingredient join
// rows, and ownership checks. Mutations take the resolved acting user.
type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

type RecipeIngredientInput struct {
	IngredientID uint
	Quantity     string
}

type CreateRecipeParams struct {
	Name            string
	CookingTime     int
	DifficultyLevel models.DifficultyLevel
	Portions        int
	Instructions    string
	Ingredients     []RecipeIngredientInput
}

type UpdateRecipeParams struct {
	Name            *string
	CookingTime     *int
	DifficultyLevel *models.DifficultyLevel
	Portions        *int
	Instructions    *string
	Ingredients     *[]RecipeIngredientInput
}

func (s *RecipeService) List() ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := s.db.Preload("RecipeIngredients.Ingredient").Order("id").Find(&recipes).Error; err != nil {
		return nil, apperr.Internal("RecipeService.List")
	}
	return recipes, nil
}

func (s *RecipeService) Get(id uint) (*models.Recipe, error) {
	const source = "RecipeService.Get"

	var recipe models.Recipe
	if err := s.db.Preload("RecipeIngredients.Ingredient").First(&recipe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(source, "recipe not found")
		}
		return nil, apperr.Internal(source)
	}
	return &recipe, nil
}

// ListByUser returns all recipes owned by the given user, failing with
// NotFound when the user owns none.
func (s *RecipeService) ListByUser(userID uint) ([]models.Recipe, error) {
	const source = "RecipeService.ListByUser"

	var recipes []models.Recipe
	if err := s.db.Preload("RecipeIngredients.Ingredient").Where("user_id = ?", userID).Order("id").Find(&recipes).Error; err != nil {
		return nil, apperr.Internal(source)
	}
	if len(recipes) == 0 {
		return nil, apperr.NotFound(source, "recipe not found for the user")
	}
	return recipes, nil
}

func (s *RecipeService) Create(params CreateRecipeParams, user *models.User) (*models.Recipe, error) {
	const source = "RecipeService.Create"

	recipe := models.Recipe{
		Name:            normalizeName(params.Name),
		CookingTime:     params.CookingTime,
		DifficultyLevel: params.DifficultyLevel,
		Portions:        params.Portions,
		Instructions:    params.Instructions,
		UserID:          user.ID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		joins, err := s.resolveIngredients(tx, params.Ingredients, source)
		if err != nil {
			return err
		}
		recipe.RecipeIngredients = joins
		return tx.Create(&recipe).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperr.Conflict(source, "recipe name already exists")
		}
		return nil, apperr.From(err, source)
	}

	return s.Get(recipe.ID)
}

func (s *RecipeService) Update(id uint, params UpdateRecipeParams, user *models.User) (*models.Recipe, error) {
	const source = "RecipeService.Update"

	var recipe models.Recipe
	if err := s.db.Preload("RecipeIngredients").First(&recipe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(source, "recipe not found")
		}
		return nil, apperr.Internal(source)
	}

	if recipe.UserID != user.ID {
		return nil, apperr.Forbidden(source, "you do not have permission to update this recipe")
	}

	if params.Name != nil {
		recipe.Name = normalizeName(*params.Name)
	}
	if params.CookingTime != nil {
		recipe.CookingTime = *params.CookingTime
	}
	if params.DifficultyLevel != nil {
		recipe.DifficultyLevel = *params.DifficultyLevel
	}
	if params.Portions != nil {
		recipe.Portions = *params.Portions
	}
	if params.Instructions != nil {
		recipe.Instructions = *params.Instructions
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if params.Ingredients != nil {
			joins, err := s.resolveIngredients(tx, *params.Ingredients, source)
			if err != nil {
				return err
			}
			if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeIngredient{}).Error; err != nil {
				return err
			}
			for i := range joins {
				joins[i].RecipeID = recipe.ID
			}
			if len(joins) > 0 {
				if err := tx.Create(&joins).Error; err != nil {
					return err
				}
			}
			recipe.RecipeIngredients = nil
		}
		return tx.Omit("RecipeIngredients").Save(&recipe).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperr.Conflict(source, "recipe name already exists")
		}
		return nil, apperr.From(err, source)
	}

	return s.Get(recipe.ID)
}

// Delete hard-deletes a recipe and its join rows after the ownership
// check. The deleted recipe is returned so the handler can echo it.
func (s *RecipeService) Delete(id uint, user *models.User) (*models.Recipe, error) {
	const source = "RecipeService.Delete"

	recipe, err := s.Get(id)
	if err != nil {
		var appErr *apperr.Error
		if errors.As(err, &appErr) && appErr.Kind == apperr.KindNotFound {
			return nil, apperr.NotFound(source, "recipe not found")
		}
		return nil, err
	}

	if recipe.UserID != user.ID {
		return nil, apperr.Forbidden(source, "you do not have permission to delete this recipe")
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Recipe{}, recipe.ID).Error
	})
	if err != nil {
		return nil, apperr.Internal(source)
	}
	return recipe, nil
}

// resolveIngredients maps ingredient references to join rows, failing
// with NotFound listing every unresolved id.
func (s *RecipeService) resolveIngredients(tx *gorm.DB, items []RecipeIngredientInput, source string) ([]models.RecipeIngredient, error) {
	if len(items) == 0 {
		return nil, nil
	}

	ids := make([]uint, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.IngredientID)
	}

	var ingredients []models.Ingredient
	if err := tx.Where("id IN ?", ids).Find(&ingredients).Error; err != nil {
		return nil, apperr.Internal(source)
	}

	found := make(map[uint]models.Ingredient, len(ingredients))
	for _, ing := range ingredients {
		found[ing.ID] = ing
	}

	var missing []uint
	joins := make([]models.RecipeIngredient, 0, len(items))
	for _, item := range items {
		ing, ok := found[item.IngredientID]
		if !ok {
			missing = append(missing, item.IngredientID)
			continue
		}
		joins = append(joins, models.RecipeIngredient{
			IngredientID: ing.ID,
			Quantity:     item.Quantity,
		})
	}
	if len(missing) > 0 {
		return nil, apperr.NotFound(source, fmt.Sprintf("ingredients not found: %v", missing))
	}
	return joins, nil
}
