package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alinamiashalkina/event-creator/internal/services"
	"github.com/alinamiashalkina/event-creator/internal/services/dto"
)

type ContractorHandler struct {
	*BaseHandler
	contractorService services.ContractorService
	invitationService services.InvitationService
	reviewService     services.ReviewService
}

func NewContractorHandler(
	base *BaseHandler,
	contractorService services.ContractorService,
	invitationService services.InvitationService,
	reviewService services.ReviewService,
) *ContractorHandler {
	return &ContractorHandler{
		BaseHandler:       base,
		contractorService: contractorService,
		invitationService: invitationService,
		reviewService:     reviewService,
	}
}

func (h *ContractorHandler) RegisterRoutes(protected *gin.RouterGroup) {
	contractors := protected.Group("/contractors")
	{
		// Заявки идут до маршрутов с :contractor_id, иначе gin сочтет
		// "applications" идентификатором
		applications := contractors.Group("/applications")
		{
			applications.GET("", h.ListApplications)
			applications.GET("/:contractor_id", h.GetApplication)
			applications.POST("/:contractor_id/approve", h.Approve)
			applications.POST("/:contractor_id/reject", h.Reject)
		}

		contractors.GET("", h.ListContractors)
		contractors.GET("/:contractor_id", h.GetContractor)
		contractors.PATCH("/:contractor_id", h.UpdateContractor)
		contractors.DELETE("/:contractor_id", h.DeleteContractor)

		contractorServices := contractors.Group("/:contractor_id/services")
		{
			contractorServices.GET("", h.ListContractorServices)
			contractorServices.GET("/:service_id", h.GetContractorService)
			contractorServices.POST("", h.AddContractorService)
			contractorServices.PATCH("/:service_id", h.UpdateContractorService)
			contractorServices.DELETE("/:service_id", h.DeleteContractorService)
		}

		portfolio := contractors.Group("/:contractor_id/portfolio")
		{
			portfolio.GET("", h.ListPortfolio)
			portfolio.GET("/:item_id", h.GetPortfolioItem)
			portfolio.POST("", h.AddPortfolioItem)
			portfolio.PATCH("/:item_id", h.UpdatePortfolioItem)
			portfolio.DELETE("/:item_id", h.DeletePortfolioItem)
		}

		invitations := contractors.Group("/:contractor_id/invitations")
		{
			invitations.GET("", h.ListInvitations)
			invitations.GET("/:invitation_id", h.GetInvitation)
			invitations.PATCH("/:invitation_id", h.RespondInvitation)
		}

		reviews := contractors.Group("/:contractor_id/reviews")
		{
			reviews.GET("", h.ListReviews)
			reviews.GET("/:review_id", h.GetReview)
			reviews.POST("", h.CreateReview)
			reviews.DELETE("/:review_id", h.DeleteReview)
		}
	}
}

// ---------------- Заявки ----------------

func (h *ContractorHandler) ListApplications(c *gin.Context) {
	caller, ok := h.RequireUser(c)
	if !ok {
		return
	}
	query, ok := h.ParseListQuery(c)
	if !ok {
		return
	}

	applications, err := h.contractorService.ListApplications(c.Request.Context(), caller, query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, applications)
}

func (h *ContractorHandler) GetApplication(c *gin.Context) {
	caller, ok := h.RequireUser(c)
	if !ok {
		return
	}
	contractorID, err := ParseParamUint(c, "contractor_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	application, err := h.contractorService.GetApplication(c.Request.Context(), caller, contractorID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, application)
}

func (h *ContractorHandler) Approve(c *gin.Context) {
	caller, ok := h.RequireUser(c)
	if !ok {
		return
	}
	contractorID, err := ParseParamUint(c, "contractor_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	contractor, err := h.contractorService.Approve(c.Request.Context(), caller, contractorID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, contractor)
}

func (h *ContractorHandler) Reject(c *gin.Context) {
	caller, ok := h.RequireUser(c)
	if !ok {
		return
	}
	contractorID, err := ParseParamUint(c, "contractor_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.contractorService.Reject(c.Request.Context(), caller, contractorID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ---------------- Профили ----------------

func (h *ContractorHandler) ListContractors(c *gin.Context) {
	if _, ok := h.RequireUser(c); !ok {
		return
	}
	query, ok := h.ParseListQuery(c)
	if !ok {
		return
	}

	contractors, err := h.contractorService.ListContractors(c.Request.Context(), query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, contractors)
}

func (h *ContractorHandler) GetContractor(c *gin.Context) {
	if _, ok := h.RequireUser(c); !ok {
		return
	}
	contractorID, err := ParseParamUint(c, "contractor_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	contractor, err := h.contractorService.GetContractor(c.Request.Context(), contractorID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, contractor)
}

func (h *ContractorHandler) UpdateContractor(c *gin.Context) {
	caller, ok := h.RequireUser(c)
	if !ok {
		return
	}
	contractorID, err := ParseParamUint(c, "contractor_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateContractorRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	contractor, err := h.contractorService.UpdateContractor(c.Request.Context(), caller, contractorID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, contractor)
}

func (h *ContractorHandler) DeleteContractor(c *gin.Context) {
	caller, ok := h.RequireUser(c)
	if !ok {
		return
	}
	contractorID, err := ParseParamUint(c, "contractor_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.contractorService.DeleteContractor(c.Request.Context(), caller, contractorID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ---------------- Услуги подрядчика ----------------

func (h *ContractorHandler) ListContractorServices(c *gin.Context) {
	if _, ok := h.RequireUser(c); !ok {
		return
	}
	contractorID, err := ParseParamUint(c, "contractor_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	list, err := h.contractorService.ListContractorServices(c.Request.Context(), contractorID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ContractorHandler) GetContractorService(c *gin.Context) {
	if _, ok := h.RequireUser(c); !ok {
		return
	}
	contractorID, err := ParseParamUint(c, "contractor_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	serviceID, err := ParseParamUint(c, "service_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	service, err := h.contractorService.GetContractorService(c.Request.Context(), contractorID, serviceID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, service)
}

func (h *ContractorHandler) AddContractorService(c *gin.Context) {
	caller, ok := h.RequireUser(c)
	if !ok {
		return
	}
	contractorID, err := ParseParamUint(c, "contractor_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.ContractorServiceInput
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	service, err := h.contractorService.AddContractorService(c.Request.Context(), caller, contractorID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, service)
}

func (h *ContractorHandler) UpdateContractorService(c *gin.Context) {
	caller, ok := h.RequireUser(c)
	if !ok {
		return
	}
	contractorID, err := ParseParamUint(c, "contractor_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	serviceID, err := ParseParamUint(c, "service_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateContractorServiceRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	service, err := h.contractorService.UpdateContractorService(c.Request.Context(), caller, contractorID, serviceID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, service)
}

func (h *ContractorHandler) DeleteContractorService(c *gin.Context) {
	caller, ok := h.RequireUser(c)
	if !ok {
		return
	}
	contractorID, err := ParseParamUint(c, "contractor_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	serviceID, err := ParseParamUint(c, "service_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.contractorService.DeleteContractorService(c.Request.Context(), caller, contractorID, serviceID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ---------------- Портфолио ----------------

func (h *ContractorHandler) ListPortfolio(c *gin.Context) {
	if _, ok := h.RequireUser(c); !ok {
		return
	}
	contractorID, err := ParseParamUint(c, "contractor_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	query, ok := h.ParseListQuery(c)
	if !ok {
		return
	}

	items, err := h.contractorService.ListPortfolio(c.Request.Context(), contractorID, query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ContractorHandler) GetPortfolioItem(c *gin.Context) {
	if _, ok := h.RequireUser(c); !ok {
		return
	}
	contractorID, err := ParseParamUint(c, "contractor_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	itemID, err := ParseParamUint(c, "item_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	item, err := h.contractorService.GetPortfolioItem(c.Request.Context(), contractorID, itemID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ContractorHandler) AddPortfolioItem(c *gin.Context) {
	caller, ok := h.RequireUser(c)
	if !ok {
		return
	}
	contractorID, err := ParseParamUint(c, "contractor_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.PortfolioItemInput
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	item, err := h.contractorService.AddPortfolioItem(c.Request.Context(), caller, contractorID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *ContractorHandler) UpdatePortfolioItem(c *gin.Context) {
	caller, ok := h.RequireUser(c)
	if !ok {
		return
	}
	contractorID, err := ParseParamUint(c, "contractor_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	itemID, err := ParseParamUint(c, "item_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdatePortfolioItemRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	item, err := h.contractorService.UpdatePortfolioItem(c.Request.Context(), caller, contractorID, itemID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ContractorHandler) DeletePortfolioItem(c *gin.Context) {
	caller, ok := h.RequireUser(c)
	if !ok {
		return
	}
	contractorID, err := ParseParamUint(c, "contractor_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	itemID, err := ParseParamUint(c, "item_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.contractorService.DeletePortfolioItem(c.Request.Context(), caller, contractorID, itemID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ---------------- Приглашения подрядчика ----------------

func (h *ContractorHandler) ListInvitations(c *gin.Context) {
	caller, ok := h.RequireUser(c)
	if !ok {
		return
	}
	contractorID, err := ParseParamUint(c, "contractor_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	query, ok := h.ParseListQuery(c)
	if !ok {
		return
	}

	invitations, err := h.invitationService.ListByContractor(c.Request.Context(), caller, contractorID, query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, invitations)
}

func (h *ContractorHandler) GetInvitation(c *gin.Context) {
	caller, ok := h.RequireUser(c)
	if !ok {
		return
	}
	contractorID, err := ParseParamUint(c, "contractor_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	invitationID, err := ParseParamUint(c, "invitation_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	invitation, err := h.invitationService.GetForContractor(c.Request.Context(), caller, contractorID, invitationID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, invitation)
}

func (h *ContractorHandler) RespondInvitation(c *gin.Context) {
	caller, ok := h.RequireUser(c)
	if !ok {
		return
	}
	contractorID, err := ParseParamUint(c, "contractor_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	invitationID, err := ParseParamUint(c, "invitation_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.RespondInvitationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	invitation, err := h.invitationService.Respond(c.Request.Context(), caller, contractorID, invitationID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, invitation)
}

// ---------------- Отзывы ----------------

func (h *ContractorHandler) ListReviews(c *gin.Context) {
	if _, ok := h.RequireUser(c); !ok {
		return
	}
	contractorID, err := ParseParamUint(c, "contractor_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	query, ok := h.ParseListQuery(c)
	if !ok {
		return
	}

	reviews, err := h.reviewService.ListReviews(c.Request.Context(), contractorID, query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *ContractorHandler) GetReview(c *gin.Context) {
	if _, ok := h.RequireUser(c); !ok {
		return
	}
	contractorID, err := ParseParamUint(c, "contractor_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	reviewID, err := ParseParamUint(c, "review_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	review, err := h.reviewService.GetReview(c.Request.Context(), contractorID, reviewID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

func (h *ContractorHandler) CreateReview(c *gin.Context) {
	caller, ok := h.RequireUser(c)
	if !ok {
		return
	}
	contractorID, err := ParseParamUint(c, "contractor_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.CreateReviewRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	review, err := h.reviewService.CreateReview(c.Request.Context(), caller, contractorID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (h *ContractorHandler) DeleteReview(c *gin.Context) {
	caller, ok := h.RequireUser(c)
	if !ok {
		return
	}
	contractorID, err := ParseParamUint(c, "contractor_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	reviewID, err := ParseParamUint(c, "review_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.reviewService.DeleteReview(c.Request.Context(), caller, contractorID, reviewID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
