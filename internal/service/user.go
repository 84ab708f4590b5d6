package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/culina/recipebook-api/internal/apperr"
	"github.com/culina/recipebook-api/internal/models"
)

// UserService handles user CRUD.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

type CreateUserParams struct {
	Username string
	Email    string
	FullName string
	Password string
	IsActive bool
}

type UpdateUserParams struct {
	Username *string
	Email    *string
	FullName *string
	Password *string
	IsActive *bool
}

func (s *UserService) List() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("id").Find(&users).Error; err != nil {
		return nil, apperr.Internal("UserService.List")
	}
	return users, nil
}

func (s *UserService) Get(id uint) (*models.User, error) {
	const source = "UserService.Get"

	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(source, "user not found")
		}
		return nil, apperr.Internal(source)
	}
	return &user, nil
}

func (s *UserService) Create(params CreateUserParams) (*models.User, error) {
	const source = "UserService.Create"

	hashed, err := HashPassword(params.Password)
	if err != nil {
		return nil, apperr.Internal(source)
	}

	user := models.User{
		Username:       params.Username,
		Email:          params.Email,
		FullName:       params.FullName,
		HashedPassword: hashed,
		IsActive:       params.IsActive,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, apperr.Conflict(source, "username or email already exists")
		}
		return nil, apperr.Internal(source)
	}
	return &user, nil
}

func (s *UserService) Update(id uint, params UpdateUserParams) (*models.User, error) {
	const source = "UserService.Update"

	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(source, "user not found")
		}
		return nil, apperr.Internal(source)
	}

	if params.Username != nil {
		user.Username = *params.Username
	}
	if params.Email != nil {
		user.Email = *params.Email
	}
	if params.FullName != nil {
		user.FullName = *params.FullName
	}
	if params.IsActive != nil {
		user.IsActive = *params.IsActive
	}
	if params.Password != nil {
		hashed, err := HashPassword(*params.Password)
		if err != nil {
			return nil, apperr.Internal(source)
		}
		user.HashedPassword = hashed
	}

	if err := s.db.Omit("Recipes").Save(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, apperr.Conflict(source, "username or email already exists")
		}
		return nil, apperr.Internal(source)
	}
	return &user, nil
}
