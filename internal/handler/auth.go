package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/teamtrack/backend/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required,max=64"`
		Phone    string `json:"phone" binding:"max=32"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "Invalid request: "+err.Error())
		return
	}

	user, err := h.authService.Signup(req.Name, req.Phone, req.Email, req.Password)
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, gin.H{
		"message": "Signup successful",
		"user":    user.Brief(),
	})
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "Invalid request: "+err.Error())
		return
	}

	token, expireAt, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, gin.H{
		"token":     token,
		"expire_at": expireAt,
	})
}
