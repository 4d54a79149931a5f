package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"venue-service/internal/domain"
	"venue-service/internal/dto"
	"venue-service/internal/service"
	"venue-service/pkg/response"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "username and password are required")
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, dto.LoginFailure{Success: false, Message: "Invalid credentials"})
			return
		}
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Success: true,
		User:    dto.UserFromDomain(user),
		Token:   token,
	})
}
