package handlers

import (
	"agenda_backend/internal/logger"
	"agenda_backend/internal/services"
	"agenda_backend/internal/services/dto"
	"agenda_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	*BaseHandler
	eventService services.EventService
}

func NewEventHandler(base *validator.Validator, eventService services.EventService) *EventHandler {
	return &EventHandler{
		BaseHandler: NewBaseHandler(base),
		eventService: eventService,
	}
}

// List returns the owner's active events, newest first.
func (h *EventHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	events, err := h.eventService.List(ctx, h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondData(c, events)
}

// Get returns one active event by slug.
func (h *EventHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	event, err := h.eventService.Get(ctx, h.GetDB(c), userID, c.Param("slug"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondData(c, event)
}

// Create stores a new event, deriving a unique slug from the title.
func (h *EventHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.EventRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	photo := h.FormFilePhoto(c)

	if err := h.eventService.Create(ctx, h.GetDB(c), userID, &req, photo); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(ctx, "Event created", "user_id", userID, "title", req.Title)
	h.RespondMessage(c, "Evento creado exitosamente.")
}

// Update rewrites an event addressed by slug; the slug follows the
// title when it changes.
func (h *EventHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.EventRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	photo := h.FormFilePhoto(c)

	if err := h.eventService.Update(ctx, h.GetDB(c), userID, c.Param("slug"), &req, photo); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(ctx, "Event updated", "user_id", userID, "slug", c.Param("slug"))
	h.RespondMessage(c, "Evento actualizado exitosamente.")
}

// Delete soft-deletes an event; its photo is kept.
func (h *EventHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.eventService.Delete(ctx, h.GetDB(c), userID, c.Param("slug")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(ctx, "Event deleted", "user_id", userID, "slug", c.Param("slug"))
	h.RespondMessage(c, "Evento eliminado exitosamente.")
}
