package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alinamiashalkina/event-creator/internal/services"
	"github.com/alinamiashalkina/event-creator/internal/services/dto"
)

type EventHandler struct {
	*BaseHandler
	eventService      services.EventService
	invitationService services.InvitationService
}

func NewEventHandler(
	base *BaseHandler,
	eventService services.EventService,
	invitationService services.InvitationService,
) *EventHandler {
	return &EventHandler{
		BaseHandler:       base,
		eventService:      eventService,
		invitationService: invitationService,
	}
}

func (h *EventHandler) RegisterRoutes(protected *gin.RouterGroup) {
	events := protected.Group("/events")
	{
		events.GET("", h.ListEvents)
		events.GET("/:event_id", h.GetEvent)
		events.PATCH("/:event_id", h.UpdateEvent)
		events.DELETE("/:event_id", h.DeleteEvent)
		events.POST("/:event_id/organizer", h.ReassignOrganizer)

		invitations := events.Group("/:event_id/invitations")
		{
			invitations.GET("", h.ListInvitations)
			invitations.GET("/:invitation_id", h.GetInvitation)
			invitations.POST("", h.Invite)
			invitations.POST("/:invitation_id/confirm", h.ConfirmInvitation)
			invitations.DELETE("/:invitation_id", h.CancelInvitation)
		}
	}
}

func (h *EventHandler) ListEvents(c *gin.Context) {
	caller, ok := h.RequireUser(c)
	if !ok {
		return
	}
	query, ok := h.ParseListQuery(c)
	if !ok {
		return
	}

	events, err := h.eventService.ListEvents(c.Request.Context(), caller, query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) GetEvent(c *gin.Context) {
	caller, ok := h.RequireUser(c)
	if !ok {
		return
	}
	eventID, err := ParseParamUint(c, "event_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	event, err := h.eventService.GetEvent(c.Request.Context(), caller, eventID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) UpdateEvent(c *gin.Context) {
	caller, ok := h.RequireUser(c)
	if !ok {
		return
	}
	eventID, err := ParseParamUint(c, "event_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateEventRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	event, err := h.eventService.UpdateEvent(c.Request.Context(), caller, eventID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) ReassignOrganizer(c *gin.Context) {
	caller, ok := h.RequireUser(c)
	if !ok {
		return
	}
	eventID, err := ParseParamUint(c, "event_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.ReassignOrganizerRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	event, err := h.eventService.ReassignOrganizer(c.Request.Context(), caller, eventID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) DeleteEvent(c *gin.Context) {
	caller, ok := h.RequireUser(c)
	if !ok {
		return
	}
	eventID, err := ParseParamUint(c, "event_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.eventService.DeleteEvent(c.Request.Context(), caller, eventID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ---------------- Приглашения мероприятия ----------------

func (h *EventHandler) ListInvitations(c *gin.Context) {
	caller, ok := h.RequireUser(c)
	if !ok {
		return
	}
	eventID, err := ParseParamUint(c, "event_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	query, ok := h.ParseListQuery(c)
	if !ok {
		return
	}

	invitations, err := h.invitationService.ListByEvent(c.Request.Context(), caller, eventID, query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, invitations)
}

func (h *EventHandler) GetInvitation(c *gin.Context) {
	caller, ok := h.RequireUser(c)
	if !ok {
		return
	}
	eventID, err := ParseParamUint(c, "event_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	invitationID, err := ParseParamUint(c, "invitation_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	invitation, err := h.invitationService.GetForEvent(c.Request.Context(), caller, eventID, invitationID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, invitation)
}

func (h *EventHandler) Invite(c *gin.Context) {
	caller, ok := h.RequireUser(c)
	if !ok {
		return
	}
	eventID, err := ParseParamUint(c, "event_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.CreateInvitationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	invitation, err := h.invitationService.Invite(c.Request.Context(), caller, eventID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, invitation)
}

func (h *EventHandler) ConfirmInvitation(c *gin.Context) {
	caller, ok := h.RequireUser(c)
	if !ok {
		return
	}
	eventID, err := ParseParamUint(c, "event_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	invitationID, err := ParseParamUint(c, "invitation_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	invitation, err := h.invitationService.Confirm(c.Request.Context(), caller, eventID, invitationID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, invitation)
}

func (h *EventHandler) CancelInvitation(c *gin.Context) {
	caller, ok := h.RequireUser(c)
	if !ok {
		return
	}
	eventID, err := ParseParamUint(c, "event_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	invitationID, err := ParseParamUint(c, "invitation_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.invitationService.Cancel(c.Request.Context(), caller, eventID, invitationID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
