package handlers

import (
	"errors"

	"github.com/adrianopellim/sra-educacional/internal/services"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	ID          uint   `json:"id" binding:"required"`
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// Login verifies credentials and returns the minimal profile the front end
// needs. The hash never leaves the service, and the 401 body is identical
// for an unknown login and a wrong password.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	user, err := h.authService.Authenticate(req.Username, req.Password)
	if err != nil {
		c.JSON(401, gin.H{"error": "Utilizador ou senha inválidos"})
		return
	}

	c.JSON(200, gin.H{
		"id":            user.ID,
		"nome_completo": user.NomeCompleto,
		"role":          user.Role,
	})
}

// ChangePassword replaces the caller's password after checking the old one.
// A missing user and a wrong previous password share one response, matching
// the contract the front end was built against.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	if err := h.authService.ChangePassword(req.ID, req.OldPassword, req.NewPassword); err != nil {
		if errors.Is(err, services.ErrUserNotFound) || errors.Is(err, services.ErrWrongPassword) {
			c.JSON(400, gin.H{"error": "Senha anterior incorreta"})
			return
		}
		c.JSON(500, gin.H{"error": "Failed to change password"})
		return
	}

	c.JSON(200, gin.H{"message": "Senha alterada com sucesso"})
}
