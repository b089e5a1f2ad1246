package handlers

import (
	"context"
	"net/http"

	"innstay/internal/domain/models"
	"innstay/internal/http/middleware"
	"innstay/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthAPI interface {
	Register(ctx context.Context, in services.RegisterInput) (models.User, string, error)
	Login(ctx context.Context, email, password string) (models.User, string, error)
}

type AuthHandler struct {
	Auth AuthAPI
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/register
func (h AuthHandler) Register(c *gin.Context) {
	var req services.RegisterInput
	if !BindJSONOrError(c, &req) {
		return
	}
	user, token, err := h.Auth.Register(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "token": token, "user": user.ToPublic()})
}

// POST /api/auth/login
func (h AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	user, token, err := h.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "token": token, "user": user.ToPublic()})
}

// GET /api/auth/me
func (h AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "user": user.ToPublic()})
}
