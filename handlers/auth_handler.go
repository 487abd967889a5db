package handlers

import (
	"net/http"

	"github.com/bucketlistprince/hpm-tech-solutions/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for registration, login and sessions
type AuthHandler struct {
	responder
	auth *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth *service.AuthService, dev bool) *AuthHandler {
	return &AuthHandler{responder: responder{dev: dev}, auth: auth}
}

// RegisterRequest represents the request body for registration
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, http.StatusBadRequest, "Name, email and password are required", err.Error())
		return
	}

	user, err := h.auth.Register(c.Request.Context(), service.RegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.FromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /api/auth/login. Success sets the session cookie for
// thirty days and returns the user.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, http.StatusBadRequest, "Email and password are required", err.Error())
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.FromError(c, err)
		return
	}

	c.SetCookie(SessionCookie, token, int(service.SessionDuration.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
	})
}

// Logout handles GET /api/auth/logout: clear the cookie, send the browser home.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, "/")
}

// Verify handles GET /api/auth/verify and echoes the decoded session.
func (h *AuthHandler) Verify(c *gin.Context) {
	session, ok := GetSession(c)
	if !ok {
		h.Error(c, http.StatusUnauthorized, "Not authenticated", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": session})
}
