package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/culina/recipebook-api/internal/apperr"
	"github.com/culina/recipebook-api/internal/service"
)

type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type CreateUserRequest struct {
	Username string `json:"username" binding:"required,max=50"`
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"full_name"`
	Password string `json:"password" binding:"required,min=6"`
	IsActive *bool  `json:"is_active"`
}

type UpdateUserRequest struct {
	Username *string `json:"username" binding:"omitempty,max=50"`
	Email    *string `json:"email" binding:"omitempty,email"`
	FullName *string `json:"full_name"`
	Password *string `json:"password" binding:"omitempty,min=6"`
	IsActive *bool   `json:"is_active"`
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.users.List()
	if err != nil {
		respondError(c, err, "UserHandler.ListUsers")
		return
	}

	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	const source = "UserHandler.GetUser"

	id, err := pathID(c)
	if err != nil {
		respondValidation(c, source, err)
		return
	}

	user, err := h.users.Get(id)
	if err != nil {
		respondError(c, err, source)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	const source = "UserHandler.CreateUser"

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, source, err)
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	user, err := h.users.Create(service.CreateUserParams{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
		IsActive: active,
	})
	if err != nil {
		respondError(c, err, source)
		return
	}
	c.JSON(http.StatusCreated, toUserResponse(user))
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	const source = "UserHandler.UpdateUser"

	id, err := pathID(c)
	if err != nil {
		respondValidation(c, source, err)
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, source, err)
		return
	}

	user, err := h.users.Update(id, service.UpdateUserParams{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
		IsActive: req.IsActive,
	})
	if err != nil {
		respondError(c, err, source)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

// Me returns the user resolved from the bearer token.
func (h *UserHandler) Me(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondError(c, apperr.Unauthorized("UserHandler.Me", "not authenticated"), "UserHandler.Me")
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

// pathID parses the :id path parameter.
func pathID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
