package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindStatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		code int
		kind Kind
	}{
		{"not found", NotFound("CategoryService.Get", "category not found"), http.StatusNotFound, KindNotFound},
		{"conflict", Conflict("CategoryService.Create", "name already exists"), http.StatusConflict, KindConflict},
		{"validation", Validation("RecipeHandler.Create", "invalid body"), http.StatusUnprocessableEntity, KindValidation},
		{"unauthorized", Unauthorized("TokenService.Verify", "token has expired"), http.StatusUnauthorized, KindAuthorization},
		{"forbidden", Forbidden("RecipeService.Delete", "not the owner"), http.StatusForbidden, KindAuthorization},
		{"internal", Internal("RecipeService.List"), http.StatusInternalServerError, KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.kind, tt.err.Kind)
			assert.NotEmpty(t, tt.err.Source)
		})
	}
}

func TestFromPassesThroughTypedErrors(t *testing.T) {
	orig := NotFound("IngredientService.Get", "ingredient not found")
	got := From(fmt.Errorf("wrapped: %w", orig), "IngredientHandler.Get")
	assert.Equal(t, orig, got)
}

func TestFromHidesUnexpectedErrors(t *testing.T) {
	got := From(errors.New("pq: connection refused"), "RecipeService.List")
	assert.Equal(t, http.StatusInternalServerError, got.Code)
	assert.Equal(t, KindInternal, got.Kind)
	assert.Equal(t, "internal server error", got.Message)
	assert.Equal(t, "RecipeService.List", got.Source)
}
