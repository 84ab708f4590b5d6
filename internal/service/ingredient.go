package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/culina/recipebook-api/internal/apperr"
	"github.com/culina/recipebook-api/internal/models"
)

// IngredientService handles ingredient CRUD and the ingredient to
// category many-to-many relationship.
type IngredientService struct {
	db *gorm.DB
}

func NewIngredientService(db *gorm.DB) *IngredientService {
	return &IngredientService{db: db}
}

type CreateIngredientParams struct {
	Name        string
	IsVegan     bool
	CategoryIDs []uint
}

type UpdateIngredientParams struct {
	Name        *string
	IsVegan     *bool
	CategoryIDs *[]uint
}

func (s *IngredientService) List() ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	if err := s.db.Preload("Categories").Order("id").Find(&ingredients).Error; err != nil {
		return nil, apperr.Internal("IngredientService.List")
	}
	return ingredients, nil
}

func (s *IngredientService) Get(id uint) (*models.Ingredient, error) {
	const source = "IngredientService.Get"

	var ingredient models.Ingredient
	if err := s.db.Preload("Categories").First(&ingredient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(source, "ingredient not found")
		}
		return nil, apperr.Internal(source)
	}
	return &ingredient, nil
}

func (s *IngredientService) Create(params CreateIngredientParams) (*models.Ingredient, error) {
	const source = "IngredientService.Create"

	categories, err := s.resolveCategories(s.db, params.CategoryIDs, source)
	if err != nil {
		return nil, err
	}

	ingredient := models.Ingredient{
		Name:       normalizeName(params.Name),
		IsVegan:    params.IsVegan,
		Categories: categories,
	}
	if err := s.db.Create(&ingredient).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, apperr.Conflict(source, "ingredient name already exists")
		}
		return nil, apperr.Internal(source)
	}
	return &ingredient, nil
}

func (s *IngredientService) Update(id uint, params UpdateIngredientParams) (*models.Ingredient, error) {
	const source = "IngredientService.Update"

	var ingredient models.Ingredient
	if err := s.db.Preload("Categories").First(&ingredient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(source, "ingredient not found")
		}
		return nil, apperr.Internal(source)
	}

	if params.Name != nil {
		ingredient.Name = normalizeName(*params.Name)
	}
	if params.IsVegan != nil {
		ingredient.IsVegan = *params.IsVegan
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if params.CategoryIDs != nil {
			categories, err := s.resolveCategories(tx, *params.CategoryIDs, source)
			if err != nil {
				return err
			}
			if err := tx.Model(&ingredient).Association("Categories").Replace(categories); err != nil {
				return err
			}
			ingredient.Categories = categories
		}
		return tx.Omit("Categories").Save(&ingredient).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperr.Conflict(source, "ingredient name already exists")
		}
		return nil, apperr.From(err, source)
	}
	return &ingredient, nil
}

// Delete hard-deletes an ingredient. Ingredients still referenced by a
// recipe cannot be removed.
func (s *IngredientService) Delete(id uint) (*models.Ingredient, error) {
	const source = "IngredientService.Delete"

	var ingredient models.Ingredient
	if err := s.db.Preload("Categories").First(&ingredient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(source, "ingredient not found")
		}
		return nil, apperr.Internal(source)
	}

	var used int64
	if err := s.db.Model(&models.RecipeIngredient{}).Where("ingredient_id = ?", id).Count(&used).Error; err != nil {
		return nil, apperr.Internal(source)
	}
	if used > 0 {
		return nil, apperr.Conflict(source, "ingredient is used by existing recipes")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&ingredient).Association("Categories").Clear(); err != nil {
			return err
		}
		return tx.Delete(&ingredient).Error
	})
	if err != nil {
		return nil, apperr.Internal(source)
	}
	return &ingredient, nil
}

// resolveCategories maps category ids to rows, failing with NotFound
// listing every unresolved id.
func (s *IngredientService) resolveCategories(tx *gorm.DB, ids []uint, source string) ([]models.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var categories []models.Category
	if err := tx.Where("id IN ?", ids).Find(&categories).Error; err != nil {
		return nil, apperr.Internal(source)
	}

	found := make(map[uint]models.Category, len(categories))
	for _, c := range categories {
		found[c.ID] = c
	}

	var missing []uint
	resolved := make([]models.Category, 0, len(ids))
	for _, id := range ids {
		c, ok := found[id]
		if !ok {
			missing = append(missing, id)
			continue
		}
		resolved = append(resolved, c)
	}
	if len(missing) > 0 {
		return nil, apperr.NotFound(source, fmt.Sprintf("categories not found: %v", missing))
	}
	return resolved, nil
}
