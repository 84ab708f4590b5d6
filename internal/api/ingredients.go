package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/culina/recipebook-api/internal/service"
)

type IngredientHandler struct {
	ingredients *service.IngredientService
}

func NewIngredientHandler(ingredients *service.IngredientService) *IngredientHandler {
	return &IngredientHandler{ingredients: ingredients}
}

type CreateIngredientRequest struct {
	Name       string      `json:"name" binding:"required,max=50"`
	IsVegan    *bool       `json:"is_vegan" binding:"required"`
	Categories []EntityRef `json:"categories"`
}

type UpdateIngredientRequest struct {
	Name       *string      `json:"name" binding:"omitempty,max=50"`
	IsVegan    *bool        `json:"is_vegan"`
	Categories *[]EntityRef `json:"categories"`
}

func (h *IngredientHandler) ListIngredients(c *gin.Context) {
	ingredients, err := h.ingredients.List()
	if err != nil {
		respondError(c, err, "IngredientHandler.ListIngredients")
		return
	}

	out := make([]IngredientResponse, 0, len(ingredients))
	for i := range ingredients {
		out = append(out, toIngredientResponse(&ingredients[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *IngredientHandler) GetIngredient(c *gin.Context) {
	const source = "IngredientHandler.GetIngredient"

	id, err := pathID(c)
	if err != nil {
		respondValidation(c, source, err)
		return
	}

	ingredient, err := h.ingredients.Get(id)
	if err != nil {
		respondError(c, err, source)
		return
	}
	c.JSON(http.StatusOK, toIngredientResponse(ingredient))
}

func (h *IngredientHandler) CreateIngredient(c *gin.Context) {
	const source = "IngredientHandler.CreateIngredient"

	var req CreateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, source, err)
		return
	}

	ingredient, err := h.ingredients.Create(service.CreateIngredientParams{
		Name:        req.Name,
		IsVegan:     *req.IsVegan,
		CategoryIDs: refIDs(req.Categories),
	})
	if err != nil {
		respondError(c, err, source)
		return
	}
	c.JSON(http.StatusCreated, toIngredientResponse(ingredient))
}

func (h *IngredientHandler) UpdateIngredient(c *gin.Context) {
	const source = "IngredientHandler.UpdateIngredient"

	id, err := pathID(c)
	if err != nil {
		respondValidation(c, source, err)
		return
	}

	var req UpdateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, source, err)
		return
	}

	params := service.UpdateIngredientParams{
		Name:    req.Name,
		IsVegan: req.IsVegan,
	}
	if req.Categories != nil {
		ids := refIDs(*req.Categories)
		params.CategoryIDs = &ids
	}

	ingredient, err := h.ingredients.Update(id, params)
	if err != nil {
		respondError(c, err, source)
		return
	}
	c.JSON(http.StatusOK, toIngredientResponse(ingredient))
}

func (h *IngredientHandler) DeleteIngredient(c *gin.Context) {
	const source = "IngredientHandler.DeleteIngredient"

	id, err := pathID(c)
	if err != nil {
		respondValidation(c, source, err)
		return
	}

	ingredient, err := h.ingredients.Delete(id)
	if err != nil {
		respondError(c, err, source)
		return
	}
	c.JSON(http.StatusOK, toIngredientResponse(ingredient))
}
