package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/culina/recipebook-api/internal/service"
)

// AuthHandler serves the OAuth2 password-grant style login endpoint.
type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// TokenRequest mirrors the OAuth2 password-grant form fields.
type TokenRequest struct {
	Username  string `form:"username" binding:"required"`
	Password  string `form:"password" binding:"required"`
	GrantType string `form:"grant_type"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login exchanges username/password form credentials for a bearer
// access token.
func (h *AuthHandler) Login(c *gin.Context) {
	const source = "AuthHandler.Login"

	var req TokenRequest
	if err := c.ShouldBind(&req); err != nil {
		respondValidation(c, source, err)
		return
	}

	user, err := h.auth.Authenticate(req.Username, req.Password)
	if err != nil {
		respondError(c, err, source)
		return
	}

	token, err := h.auth.Tokens().IssueAccessToken(user.Username)
	if err != nil {
		respondError(c, err, source)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
}
