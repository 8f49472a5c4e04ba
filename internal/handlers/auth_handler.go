package handlers

import (
	"agenda_backend/internal/logger"
	"agenda_backend/internal/services"
	"agenda_backend/internal/services/dto"
	"agenda_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *validator.Validator, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: NewBaseHandler(base),
		authService: authService,
	}
}

// Login authenticates by email/password and issues a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.LoginRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	result, err := h.authService.Login(ctx, h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(ctx, "User logged in", "email", req.Email)
	h.RespondDataMessage(c, gin.H{"token": result.Token}, result.Message)
}

// Register creates a user with its profile.
func (h *AuthHandler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.RegisterRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	if err := h.authService.Register(ctx, h.GetDB(c), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(ctx, "User registered", "email", req.Email)
	h.RespondMessage(c, "Registro exitoso.")
}

// Logout revokes every token the user holds.
func (h *AuthHandler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.authService.Logout(ctx, h.GetDB(c), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondMessage(c, "Sesión cerrada exitosamente.")
}

// ChangePassword verifies the current password and stores a new hash.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	if err := h.authService.ChangePassword(ctx, h.GetDB(c), userID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(ctx, "Password changed", "user_id", userID)
	h.RespondMessage(c, "Contraseña actualizada exitosamente.")
}

// DisableUser soft-deactivates the account without destroying data.
func (h *AuthHandler) DisableUser(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.authService.DisableUser(ctx, h.GetDB(c), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(ctx, "User disabled", "user_id", userID)
	h.RespondMessage(c, "Usuario desactivado exitosamente.")
}

// DeleteUser removes the account with its events, tokens and photos.
func (h *AuthHandler) DeleteUser(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.authService.DeleteUser(ctx, h.GetDB(c), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(ctx, "User deleted", "user_id", userID)
	h.RespondMessage(c, "Usuario eliminado exitosamente.")
}
