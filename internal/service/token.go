package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/culina/recipebook-api/internal/apperr"
)

// TokenType distinguishes what a token grants.
type TokenType string

const (
	TokenTypeAccess       TokenType = "access"
	TokenTypeConfirmation TokenType = "confirmation"
)

// Confirmation tokens always live 24 hours regardless of the access TTL.
const confirmationTokenTTL = 1440 * time.Minute

// TokenClaims is the payload carried by every issued token.
type TokenClaims struct {
	Username string    `json:"username"`
	Type     TokenType `json:"type"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HMAC-signed JWTs.
type TokenService struct {
	secret    []byte
	accessTTL time.Duration
}

func NewTokenService(secret string, accessTTLMinutes int) *TokenService {
	return &TokenService{
		secret:    []byte(secret),
		accessTTL: time.Duration(accessTTLMinutes) * time.Minute,
	}
}

// IssueAccessToken signs a short-lived token for API access.
func (s *TokenService) IssueAccessToken(username string) (string, error) {
	return s.issue(username, TokenTypeAccess, s.accessTTL)
}

// IssueConfirmationToken signs a token for account confirmation flows.
func (s *TokenService) IssueConfirmationToken(username string) (string, error) {
	return s.issue(username, TokenTypeConfirmation, confirmationTokenTTL)
}

func (s *TokenService) issue(username string, tokenType TokenType, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		Username: username,
		Type:     tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", apperr.Internal("TokenService.issue")
	}
	return signed, nil
}

// Verify checks the signature, expiry, and token type, and returns the
// subject username.
func (s *TokenService) Verify(tokenString string, expected TokenType) (string, error) {
	const source = "TokenService.Verify"

	var claims TokenClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", apperr.Unauthorized(source, "token has expired")
		}
		return "", apperr.Unauthorized(source, "could not validate token")
	}

	if claims.Username == "" {
		return "", apperr.Unauthorized(source, "token is missing 'username' field")
	}
	if claims.Type != expected {
		return "", apperr.Unauthorized(source, fmt.Sprintf("token has incorrect type, expected '%s'", expected))
	}

	return claims.Username, nil
}
