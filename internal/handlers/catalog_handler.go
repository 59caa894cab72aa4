package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alinamiashalkina/event-creator/internal/services"
	"github.com/alinamiashalkina/event-creator/internal/services/dto"
)

type CatalogHandler struct {
	*BaseHandler
	catalogService services.CatalogService
}

func NewCatalogHandler(base *BaseHandler, catalogService services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler:    base,
		catalogService: catalogService,
	}
}

func (h *CatalogHandler) RegisterRoutes(protected *gin.RouterGroup) {
	categories := protected.Group("/categories")
	{
		categories.GET("", h.ListCategories)
		categories.GET("/:category_id", h.GetCategory)
		categories.POST("", h.CreateCategory)
		categories.PATCH("/:category_id", h.UpdateCategory)
		categories.DELETE("/:category_id", h.DeleteCategory)

		servicesGroup := categories.Group("/:category_id/services")
		{
			servicesGroup.GET("", h.ListServices)
			servicesGroup.GET("/:service_id", h.GetService)
			servicesGroup.POST("", h.CreateService)
			servicesGroup.PATCH("/:service_id", h.UpdateService)
			servicesGroup.DELETE("/:service_id", h.DeleteService)
		}
	}
}

// ---------------- Категории ----------------

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	if _, ok := h.RequireUser(c); !ok {
		return
	}
	query, ok := h.ParseListQuery(c)
	if !ok {
		return
	}

	categories, err := h.catalogService.ListCategories(c.Request.Context(), query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CatalogHandler) GetCategory(c *gin.Context) {
	if _, ok := h.RequireUser(c); !ok {
		return
	}
	categoryID, err := ParseParamUint(c, "category_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	category, err := h.catalogService.GetCategory(c.Request.Context(), categoryID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	caller, ok := h.RequireUser(c)
	if !ok {
		return
	}

	var req dto.CreateCategoryRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	category, err := h.catalogService.CreateCategory(c.Request.Context(), caller, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	caller, ok := h.RequireUser(c)
	if !ok {
		return
	}
	categoryID, err := ParseParamUint(c, "category_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateCategoryRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	category, err := h.catalogService.UpdateCategory(c.Request.Context(), caller, categoryID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	caller, ok := h.RequireUser(c)
	if !ok {
		return
	}
	categoryID, err := ParseParamUint(c, "category_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.catalogService.DeleteCategory(c.Request.Context(), caller, categoryID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ---------------- Услуги ----------------

func (h *CatalogHandler) ListServices(c *gin.Context) {
	if _, ok := h.RequireUser(c); !ok {
		return
	}
	categoryID, err := ParseParamUint(c, "category_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	query, ok := h.ParseListQuery(c)
	if !ok {
		return
	}

	list, err := h.catalogService.ListServices(c.Request.Context(), categoryID, query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *CatalogHandler) GetService(c *gin.Context) {
	if _, ok := h.RequireUser(c); !ok {
		return
	}
	categoryID, err := ParseParamUint(c, "category_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	serviceID, err := ParseParamUint(c, "service_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	service, err := h.catalogService.GetService(c.Request.Context(), categoryID, serviceID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, service)
}

func (h *CatalogHandler) CreateService(c *gin.Context) {
	caller, ok := h.RequireUser(c)
	if !ok {
		return
	}
	categoryID, err := ParseParamUint(c, "category_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.CreateServiceRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	service, err := h.catalogService.CreateService(c.Request.Context(), caller, categoryID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, service)
}

func (h *CatalogHandler) UpdateService(c *gin.Context) {
	caller, ok := h.RequireUser(c)
	if !ok {
		return
	}
	categoryID, err := ParseParamUint(c, "category_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	serviceID, err := ParseParamUint(c, "service_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateServiceRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	service, err := h.catalogService.UpdateService(c.Request.Context(), caller, categoryID, serviceID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, service)
}

func (h *CatalogHandler) DeleteService(c *gin.Context) {
	caller, ok := h.RequireUser(c)
	if !ok {
		return
	}
	categoryID, err := ParseParamUint(c, "category_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	serviceID, err := ParseParamUint(c, "service_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.catalogService.DeleteService(c.Request.Context(), caller, categoryID, serviceID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
