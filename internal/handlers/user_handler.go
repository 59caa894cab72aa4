package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alinamiashalkina/event-creator/internal/services"
	"github.com/alinamiashalkina/event-creator/internal/services/dto"
)

type UserHandler struct {
	*BaseHandler
	userService  services.UserService
	eventService services.EventService
}

func NewUserHandler(base *BaseHandler, userService services.UserService, eventService services.EventService) *UserHandler {
	return &UserHandler{
		BaseHandler:  base,
		userService:  userService,
		eventService: eventService,
	}
}

func (h *UserHandler) RegisterRoutes(protected *gin.RouterGroup) {
	users := protected.Group("/users")
	{
		users.GET("", h.ListUsers)
		users.GET("/:user_id", h.GetUser)
		users.PATCH("/:user_id", h.UpdateUser)
		users.DELETE("/:user_id", h.DeleteUser)

		// Мероприятие создается со страницы пользователя: он становится
		// создателем и организатором
		users.POST("/:user_id/events", h.CreateEvent)
	}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	caller, ok := h.RequireUser(c)
	if !ok {
		return
	}
	query, ok := h.ParseListQuery(c)
	if !ok {
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context(), caller, query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	caller, ok := h.RequireUser(c)
	if !ok {
		return
	}
	userID, err := ParseParamUint(c, "user_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), caller, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	caller, ok := h.RequireUser(c)
	if !ok {
		return
	}
	userID, err := ParseParamUint(c, "user_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), caller, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	caller, ok := h.RequireUser(c)
	if !ok {
		return
	}
	userID, err := ParseParamUint(c, "user_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), caller, userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *UserHandler) CreateEvent(c *gin.Context) {
	caller, ok := h.RequireUser(c)
	if !ok {
		return
	}
	userID, err := ParseParamUint(c, "user_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.CreateEventRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), caller, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}
