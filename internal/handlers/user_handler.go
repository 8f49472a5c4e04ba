package handlers

import (
	"agenda_backend/internal/logger"
	"agenda_backend/internal/services"
	"agenda_backend/internal/services/dto"
	"agenda_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *validator.Validator, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: NewBaseHandler(base),
		userService: userService,
	}
}

// Me returns the authenticated user with its profile.
func (h *UserHandler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.Me(ctx, h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondData(c, user)
}

// UpdateProfile updates name, surname and optionally the photo.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	photo := h.FormFilePhoto(c)

	if err := h.userService.UpdateProfile(ctx, h.GetDB(c), userID, &req, photo); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(ctx, "Profile updated", "user_id", userID)
	h.RespondMessage(c, "Perfil actualizado exitosamente.")
}
