package api

import (
	"net/http"

	"github.com/content-comments-api/internal/models"
	"github.com/content-comments-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AuthHandler handles registration, login and session endpoints
type AuthHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(services *service.Services, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{services: services, log: log}
}

// Register handles POST /v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Error: "Invalid request body"})
		return
	}

	resp, err := h.services.Auth.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login handles POST /v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Error: "Invalid request body"})
		return
	}

	resp, err := h.services.Auth.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Me handles GET /v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, errorBody{Error: "Authentication required"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// Logout handles POST /v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, ok := c.Get(ctxKeyCredential); ok {
		if credential, ok := token.(string); ok {
			h.services.Auth.Logout(c.Request.Context(), credential)
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
