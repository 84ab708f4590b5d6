package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/culina/recipebook-api/internal/apperr"
	"github.com/culina/recipebook-api/internal/models"
)

// ContextUserKey is where the resolved acting user is stored on the
// Gin context.
const ContextUserKey = "current_user"

// UserResolver resolves a bearer token to a user.
type UserResolver interface {
	CurrentUser(token string) (*models.User, error)
}

// Auth validates the bearer token and injects the resolved user into
// the request context.
func Auth(resolver UserResolver) gin.HandlerFunc {
	const source = "middleware.Auth"

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, apperr.Unauthorized(source, "missing authorization header"))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortWithError(c, apperr.Unauthorized(source, "invalid authorization header format"))
			return
		}

		user, err := resolver.CurrentUser(parts[1])
		if err != nil {
			abortWithError(c, apperr.From(err, source))
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

func abortWithError(c *gin.Context, err *apperr.Error) {
	c.AbortWithStatusJSON(err.Code, err)
}
