package middleware

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/culina/recipebook-api/internal/apperr"
)

// Recovery turns panics into the uniform 500 error body instead of
// Gin's default empty response. No panic detail reaches the client.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("panic recovered: %v", r)
				appErr := apperr.Internal(c.FullPath())
				c.AbortWithStatusJSON(appErr.Code, appErr)
			}
		}()
		c.Next()
	}
}
