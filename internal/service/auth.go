package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/culina/recipebook-api/internal/apperr"
	"github.com/culina/recipebook-api/internal/models"
)

// AuthService authenticates credentials and resolves bearer tokens to
// users.
type AuthService struct {
	db     *gorm.DB
	tokens *TokenService
}

func NewAuthService(db *gorm.DB, tokens *TokenService) *AuthService {
	return &AuthService{db: db, tokens: tokens}
}

// Tokens exposes the underlying token service for login handlers.
func (s *AuthService) Tokens() *TokenService {
	return s.tokens
}

// Authenticate looks up a user by username and checks the password.
// Absent user and wrong password are indistinguishable to the caller.
func (s *AuthService) Authenticate(username, password string) (*models.User, error) {
	const source = "AuthService.Authenticate"

	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Unauthorized(source, "invalid username or password")
		}
		return nil, apperr.Internal(source)
	}

	if !CheckPassword(password, user.HashedPassword) {
		return nil, apperr.Unauthorized(source, "invalid username or password")
	}

	return &user, nil
}

// CurrentUser verifies an access token and loads the subject user.
func (s *AuthService) CurrentUser(token string) (*models.User, error) {
	const source = "AuthService.CurrentUser"

	username, err := s.tokens.Verify(token, TokenTypeAccess)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Unauthorized(source, "could not find user for this token")
		}
		return nil, apperr.Internal(source)
	}

	return &user, nil
}
