package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/culina/recipebook-api/internal/apperr"
	"github.com/culina/recipebook-api/internal/models"
	"github.com/culina/recipebook-api/internal/service"
)

type RecipeHandler struct {
	recipes *service.RecipeService
}

func NewRecipeHandler(recipes *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

type CreateRecipeRequest struct {
	Name            string                    `json:"name" binding:"required,max=183"`
	CookingTime     int                       `json:"cooking_time" binding:"required,min=1"`
	DifficultyLevel models.DifficultyLevel    `json:"difficulty_level" binding:"required,oneof=EASY MEDIUM HARD"`
	Portions        int                       `json:"portions" binding:"required,min=1"`
	Instructions    string                    `json:"instructions" binding:"required"`
	Ingredients     []RecipeIngredientPayload `json:"ingredients" binding:"omitempty,dive"`
}

type UpdateRecipeRequest struct {
	Name            *string                    `json:"name" binding:"omitempty,max=183"`
	CookingTime     *int                       `json:"cooking_time" binding:"omitempty,min=1"`
	DifficultyLevel *models.DifficultyLevel    `json:"difficulty_level" binding:"omitempty,oneof=EASY MEDIUM HARD"`
	Portions        *int                       `json:"portions" binding:"omitempty,min=1"`
	Instructions    *string                    `json:"instructions"`
	Ingredients     *[]RecipeIngredientPayload `json:"ingredients" binding:"omitempty,dive"`
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipes.List()
	if err != nil {
		respondError(c, err, "RecipeHandler.ListRecipes")
		return
	}

	out := make([]RecipeResponse, 0, len(recipes))
	for i := range recipes {
		out = append(out, toRecipeResponse(&recipes[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	const source = "RecipeHandler.GetRecipe"

	id, err := pathID(c)
	if err != nil {
		respondValidation(c, source, err)
		return
	}

	recipe, err := h.recipes.Get(id)
	if err != nil {
		respondError(c, err, source)
		return
	}
	c.JSON(http.StatusOK, toRecipeResponse(recipe))
}

// ListUserRecipes returns all recipes owned by the user in the path.
func (h *RecipeHandler) ListUserRecipes(c *gin.Context) {
	const source = "RecipeHandler.ListUserRecipes"

	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		respondValidation(c, source, err)
		return
	}

	recipes, err := h.recipes.ListByUser(uint(userID))
	if err != nil {
		respondError(c, err, source)
		return
	}

	out := make([]RecipeResponse, 0, len(recipes))
	for i := range recipes {
		out = append(out, toRecipeResponse(&recipes[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	const source = "RecipeHandler.CreateRecipe"

	user, ok := currentUser(c)
	if !ok {
		respondError(c, apperr.Unauthorized(source, "not authenticated"), source)
		return
	}

	var req CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, source, err)
		return
	}

	recipe, err := h.recipes.Create(service.CreateRecipeParams{
		Name:            req.Name,
		CookingTime:     req.CookingTime,
		DifficultyLevel: req.DifficultyLevel,
		Portions:        req.Portions,
		Instructions:    req.Instructions,
		Ingredients:     toIngredientInputs(req.Ingredients),
	}, user)
	if err != nil {
		respondError(c, err, source)
		return
	}
	c.JSON(http.StatusCreated, toRecipeResponse(recipe))
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	const source = "RecipeHandler.UpdateRecipe"

	user, ok := currentUser(c)
	if !ok {
		respondError(c, apperr.Unauthorized(source, "not authenticated"), source)
		return
	}

	id, err := pathID(c)
	if err != nil {
		respondValidation(c, source, err)
		return
	}

	var req UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, source, err)
		return
	}

	params := service.UpdateRecipeParams{
		Name:            req.Name,
		CookingTime:     req.CookingTime,
		DifficultyLevel: req.DifficultyLevel,
		Portions:        req.Portions,
		Instructions:    req.Instructions,
	}
	if req.Ingredients != nil {
		inputs := toIngredientInputs(*req.Ingredients)
		params.Ingredients = &inputs
	}

	recipe, err := h.recipes.Update(id, params, user)
	if err != nil {
		respondError(c, err, source)
		return
	}
	c.JSON(http.StatusOK, toRecipeResponse(recipe))
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	const source = "RecipeHandler.DeleteRecipe"

	user, ok := currentUser(c)
	if !ok {
		respondError(c, apperr.Unauthorized(source, "not authenticated"), source)
		return
	}

	id, err := pathID(c)
	if err != nil {
		respondValidation(c, source, err)
		return
	}

	recipe, err := h.recipes.Delete(id, user)
	if err != nil {
		respondError(c, err, source)
		return
	}
	c.JSON(http.StatusOK, toRecipeResponse(recipe))
}
