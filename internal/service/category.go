package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/culina/recipebook-api/internal/apperr"
	"github.com/culina/recipebook-api/internal/models"
)

// CategoryService handles category CRUD. Names are normalized to
// lowercase before they hit the store.
type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

func (s *CategoryService) List() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Preload("Ingredients").Order("id").Find(&categories).Error; err != nil {
		return nil, apperr.Internal("CategoryService.List")
	}
	return categories, nil
}

func (s *CategoryService) Get(id uint) (*models.Category, error) {
	const source = "CategoryService.Get"

	var category models.Category
	if err := s.db.Preload("Ingredients").First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(source, "category not found")
		}
		return nil, apperr.Internal(source)
	}
	return &category, nil
}

func (s *CategoryService) Create(name string) (*models.Category, error) {
	const source = "CategoryService.Create"

	category := models.Category{Name: normalizeName(name)}
	if err := s.db.Create(&category).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, apperr.Conflict(source, "category name already exists")
		}
		return nil, apperr.Internal(source)
	}
	return &category, nil
}

func (s *CategoryService) Update(id uint, name string) (*models.Category, error) {
	const source = "CategoryService.Update"

	var category models.Category
	if err := s.db.Preload("Ingredients").First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(source, "category not found")
		}
		return nil, apperr.Internal(source)
	}

	category.Name = normalizeName(name)
	if err := s.db.Omit("Ingredients").Save(&category).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, apperr.Conflict(source, "category name already exists")
		}
		return nil, apperr.Internal(source)
	}
	return &category, nil
}

// Delete hard-deletes a category and its ingredient links.
func (s *CategoryService) Delete(id uint) (*models.Category, error) {
	const source = "CategoryService.Delete"

	var category models.Category
	if err := s.db.Preload("Ingredients").First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(source, "category not found")
		}
		return nil, apperr.Internal(source)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&category).Association("Ingredients").Clear(); err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
	if err != nil {
		return nil, apperr.Internal(source)
	}
	return &category, nil
}
