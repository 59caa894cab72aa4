package dto

import (
	"time"

	"github.com/alinamiashalkina/event-creator/internal/models"
)

// ======================
// Request DTOs
// ======================

type ContractorServiceInput struct {
	ServiceID   uint   `json:"service_id" validate:"required"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	Price       string `json:"price" validate:"omitempty,max=100"`
}

type PortfolioItemInput struct {
	Type        string `json:"type" validate:"required,max=50"`
	URL         string `json:"url" validate:"required,url"`
	Description string `json:"description" validate:"omitempty,max=2000"`
}

// UpdateContractorRequest - частичное обновление профиля подрядчика;
// вложенный User позволяет менять поля учетной записи тем же запросом
type UpdateContractorRequest struct {
	Photo       *string            `json:"photo,omitempty" validate:"omitempty,url"`
	Description *string            `json:"description,omitempty" validate:"omitempty,max=2000"`
	User        *UpdateUserRequest `json:"user,omitempty"`
}

func (r *UpdateContractorRequest) IsEmpty() bool {
	return r.Photo == nil && r.Description == nil &&
		(r.User == nil || r.User.IsEmpty())
}

type UpdateContractorServiceRequest struct {
	ServiceID   *uint   `json:"service_id,omitempty"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Price       *string `json:"price,omitempty" validate:"omitempty,max=100"`
}

func (r *UpdateContractorServiceRequest) IsEmpty() bool {
	return r.ServiceID == nil && r.Description == nil && r.Price == nil
}

type UpdatePortfolioItemRequest struct {
	Type        *string `json:"type,omitempty" validate:"omitempty,max=50"`
	URL         *string `json:"url,omitempty" validate:"omitempty,url"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
}

func (r *UpdatePortfolioItemRequest) IsEmpty() bool {
	return r.Type == nil && r.URL == nil && r.Description == nil
}

// ======================
// Response DTOs
// ======================

type ContractorResponse struct {
	ID            uint          `json:"id"`
	UserID        uint          `json:"user_id"`
	Photo         string        `json:"photo"`
	Description   string        `json:"description"`
	IsApproved    bool          `json:"is_approved"`
	AverageRating *float64      `json:"average_rating"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	User          *UserResponse `json:"user,omitempty"`
}

type ApplicationResponse struct {
	Contractor     *ContractorResponse         `json:"contractor"`
	Services       []ContractorServiceResponse `json:"services"`
	PortfolioItems []PortfolioItemResponse     `json:"portfolio_items"`
}

type ContractorServiceResponse struct {
	ID           uint   `json:"id"`
	ContractorID uint   `json:"contractor_id"`
	ServiceID    uint   `json:"service_id"`
	Description  string `json:"description"`
	Price        string `json:"price"`
}

type PortfolioItemResponse struct {
	ID           uint      `json:"id"`
	ContractorID uint      `json:"contractor_id"`
	Type         string    `json:"type"`
	URL          string    `json:"url"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewContractorResponse(contractor *models.Contractor) *ContractorResponse {
	resp := &ContractorResponse{
		ID:            contractor.ID,
		UserID:        contractor.UserID,
		Photo:         contractor.Photo,
		Description:   contractor.Description,
		IsApproved:    contractor.IsApproved,
		AverageRating: contractor.AverageRating,
		CreatedAt:     contractor.CreatedAt,
		UpdatedAt:     contractor.UpdatedAt,
	}
	if contractor.User != nil {
		resp.User = NewUserResponse(contractor.User)
	}
	return resp
}

func NewContractorServiceResponse(cs *models.ContractorService) *ContractorServiceResponse {
	return &ContractorServiceResponse{
		ID:           cs.ID,
		ContractorID: cs.ContractorID,
		ServiceID:    cs.ServiceID,
		Description:  cs.Description,
		Price:        cs.Price,
	}
}

func NewPortfolioItemResponse(item *models.PortfolioItem) *PortfolioItemResponse {
	return &PortfolioItemResponse{
		ID:           item.ID,
		ContractorID: item.ContractorID,
		Type:         item.Type,
		URL:          item.URL,
		Description:  item.Description,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}
