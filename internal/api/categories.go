package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/culina/recipebook-api/internal/service"
)

type CategoryHandler struct {
	categories *service.CategoryService
}

func NewCategoryHandler(categories *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

type CategoryRequest struct {
	Name string `json:"name" binding:"required,max=50"`
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categories.List()
	if err != nil {
		respondError(c, err, "CategoryHandler.ListCategories")
		return
	}

	out := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, toCategoryResponse(&categories[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	const source = "CategoryHandler.GetCategory"

	id, err := pathID(c)
	if err != nil {
		respondValidation(c, source, err)
		return
	}

	category, err := h.categories.Get(id)
	if err != nil {
		respondError(c, err, source)
		return
	}
	c.JSON(http.StatusOK, toCategoryResponse(category))
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	const source = "CategoryHandler.CreateCategory"

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, source, err)
		return
	}

	category, err := h.categories.Create(req.Name)
	if err != nil {
		respondError(c, err, source)
		return
	}
	c.JSON(http.StatusCreated, toCategoryResponse(category))
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	const source = "CategoryHandler.UpdateCategory"

	id, err := pathID(c)
	if err != nil {
		respondValidation(c, source, err)
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, source, err)
		return
	}

	category, err := h.categories.Update(id, req.Name)
	if err != nil {
		respondError(c, err, source)
		return
	}
	c.JSON(http.StatusOK, toCategoryResponse(category))
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	const source = "CategoryHandler.DeleteCategory"

	id, err := pathID(c)
	if err != nil {
		respondValidation(c, source, err)
		return
	}

	category, err := h.categories.Delete(id)
	if err != nil {
		respondError(c, err, source)
		return
	}
	c.JSON(http.StatusOK, toCategoryResponse(category))
}
