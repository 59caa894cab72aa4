package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alinamiashalkina/event-creator/internal/middleware"
	"github.com/alinamiashalkina/event-creator/internal/models"
	"github.com/alinamiashalkina/event-creator/internal/services/dto"
	"github.com/alinamiashalkina/event-creator/pkg/apperrors"
)

// Handler обслуживает админский обзор ресурсов
type Handler struct {
	registry *Registry
}

func NewHandler(registry *Registry) *Handler {
	return &Handler{registry: registry}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	adminGroup := protected.Group("/admin")
	{
		adminGroup.GET("/resources", h.ListResources)
		adminGroup.GET("/resources/:resource", h.ListRows)
	}
}

type resourceInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *Handler) ListResources(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}

	resources := h.registry.Describe()
	infos := make([]resourceInfo, 0, len(resources))
	for _, r := range resources {
		infos = append(infos, resourceInfo{Name: r.Name, Description: r.Description})
	}
	c.JSON(http.StatusOK, infos)
}

func (h *Handler) ListRows(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}

	resource, err := h.registry.Lookup(c.Param("resource"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	var query dto.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid query parameters: "+err.Error()))
		return
	}
	query.Normalize()

	rows, err := resource.List(c.Request.Context(), query.Skip, query.Limit, query.SortOrder)
	if err != nil {
		apperrors.HandleError(c, apperrors.InternalError(err))
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) requireAdmin(c *gin.Context) bool {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("User not authenticated"))
		return false
	}
	if user.Role != models.UserRoleAdmin {
		apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
		return false
	}
	return true
}
