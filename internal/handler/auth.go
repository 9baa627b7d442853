package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Ashish-Kumar16/TaskGroove/internal/middleware"
	"github.com/Ashish-Kumar16/TaskGroove/internal/service"
	"github.com/Ashish-Kumar16/TaskGroove/internal/store"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "Name, email and password are required")
		return
	}

	user, token, expireAt, err := h.authService.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if errors.Is(err, store.ErrDuplicateEmail) {
		BadRequest(c, 40002, "Email already exists")
		return
	}
	if err != nil {
		InternalError(c, err)
		return
	}

	Created(c, gin.H{
		"token":    token,
		"expireAt": expireAt,
		"user":     user,
	})
}

// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "Email and password are required")
		return
	}

	user, token, expireAt, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		Unauthorized(c, 40104, "Invalid email or password")
		return
	}
	if err != nil {
		InternalError(c, err)
		return
	}

	Success(c, gin.H{
		"token":    token,
		"expireAt": expireAt,
		"user":     user,
	})
}

// GET /auth/me
func (h *AuthHandler) GetMe(c *gin.Context) {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		Unauthorized(c, 40103, "Not authenticated")
		return
	}
	Success(c, user)
}
