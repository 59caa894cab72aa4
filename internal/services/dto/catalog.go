package dto

import "github.com/alinamiashalkina/event-creator/internal/models"

// ======================
// Request DTOs
// ======================

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=2000"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
}

func (r *UpdateCategoryRequest) IsEmpty() bool {
	return r.Name == nil && r.Description == nil
}

type CreateServiceRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type UpdateServiceRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,max=100"`
}

func (r *UpdateServiceRequest) IsEmpty() bool {
	return r.Name == nil
}

// ======================
// Response DTOs
// ======================

type CategoryResponse struct {
	ID          uint              `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Services    []ServiceResponse `json:"services,omitempty"`
}

type ServiceResponse struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	CategoryID uint   `json:"category_id"`
}

func NewCategoryResponse(category *models.Category) *CategoryResponse {
	resp := &CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
	}
	for i := range category.Services {
		resp.Services = append(resp.Services, *NewServiceResponse(&category.Services[i]))
	}
	return resp
}

func NewServiceResponse(service *models.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:         service.ID,
		Name:       service.Name,
		CategoryID: service.CategoryID,
	}
}
