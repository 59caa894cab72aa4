package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alinamiashalkina/event-creator/internal/services"
)

type NotificationHandler struct {
	*BaseHandler
	notificationService services.NotificationService
}

func NewNotificationHandler(base *BaseHandler, notificationService services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		BaseHandler:         base,
		notificationService: notificationService,
	}
}

func (h *NotificationHandler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.GET("/notifications", h.ListNotifications)
}

// ListNotifications - собственная лента уведомлений пользователя
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	caller, ok := h.RequireUser(c)
	if !ok {
		return
	}
	query, ok := h.ParseListQuery(c)
	if !ok {
		return
	}

	notifications, err := h.notificationService.ListNotifications(c.Request.Context(), caller.ID, query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}
