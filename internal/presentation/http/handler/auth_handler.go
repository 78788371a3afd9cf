package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/smartpos-api/internal/application/service"
	"github.com/sangkips/smartpos-api/internal/presentation/http/dto/request"
	"github.com/sangkips/smartpos-api/internal/presentation/http/dto/response"
)

// AuthHandler handles admin login
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login exchanges the admin password for a bearer token
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	output, err := h.authService.Login(c.Request.Context(), req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", output)
}
