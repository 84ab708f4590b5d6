package api

import (
	"github.com/gin-gonic/gin"

	"github.com/culina/recipebook-api/internal/apperr"
	"github.com/culina/recipebook-api/internal/middleware"
	"github.com/culina/recipebook-api/internal/models"
)

// respondError translates any error into the uniform error body
// {code, message, kind, source}.
func respondError(c *gin.Context, err error, source string) {
	appErr := apperr.From(err, source)
	c.JSON(appErr.Code, appErr)
}

// respondValidation reports a request-binding failure as a 422
// ValidationError.
func respondValidation(c *gin.Context, source string, err error) {
	appErr := apperr.Validation(source, err.Error())
	c.JSON(appErr.Code, appErr)
}

// currentUser returns the authenticated user placed on the context by
// the auth middleware.
func currentUser(c *gin.Context) (*models.User, bool) {
	val, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := val.(*models.User)
	return user, ok
}
