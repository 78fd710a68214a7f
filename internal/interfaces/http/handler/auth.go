package handler

import (
	"github.com/gin-gonic/gin"

	appidentity "github.com/skillswap/backend/internal/application/identity"
	"github.com/skillswap/backend/internal/interfaces/http/dto"
	"github.com/skillswap/backend/internal/interfaces/http/middleware"
)

// AuthHandler serves authentication endpoints
type AuthHandler struct {
	BaseHandler
	authService  *appidentity.AuthService
	userService  *appidentity.UserService
	resetService *appidentity.PasswordResetService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(
	authService *appidentity.AuthService,
	userService *appidentity.UserService,
	resetService *appidentity.PasswordResetService,
) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		userService:  userService,
		resetService: resetService,
	}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Email and password are required.")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), appidentity.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dto.LoginResponse{
		AccessToken: result.AccessToken,
		TokenType:   result.TokenType,
	})
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err, "Invalid registration payload")
		return
	}

	view, err := h.userService.Register(c.Request.Context(), appidentity.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Bio:      req.Bio,
		IsMentor: req.IsMentor,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, view)
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetJWTClaims(c)
	if claims == nil {
		h.Unauthorized(c, "Not authenticated")
		return
	}
	if err := h.authService.Logout(c.Request.Context(), claims); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Not authenticated")
		return
	}
	view, err := h.userService.Get(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, view)
}

// RequestPasswordReset handles POST /auth/password-reset/request
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req dto.PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err, "A valid email is required")
		return
	}
	if err := h.resetService.RequestReset(c.Request.Context(), req.Email); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ConfirmPasswordReset handles POST /auth/password-reset/confirm
func (h *AuthHandler) ConfirmPasswordReset(c *gin.Context) {
	var req dto.PasswordResetConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err, "Token and new password are required")
		return
	}
	if err := h.resetService.ConfirmReset(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
