package services

import (
	"context"

	"github.com/alinamiashalkina/event-creator/internal/models"
	"github.com/alinamiashalkina/event-creator/internal/permissions"
	"github.com/alinamiashalkina/event-creator/internal/repositories"
	"github.com/alinamiashalkina/event-creator/internal/services/dto"
	"github.com/alinamiashalkina/event-creator/pkg/apperrors"
)

// CatalogService - справочник категорий и услуг. Чтение доступно всем
// аутентифицированным, изменения только админу.
type CatalogService interface {
	ListCategories(ctx context.Context, query *dto.ListQuery) ([]*dto.CategoryResponse, error)
	GetCategory(ctx context.Context, categoryID uint) (*dto.CategoryResponse, error)
	CreateCategory(ctx context.Context, caller *models.User, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	UpdateCategory(ctx context.Context, caller *models.User, categoryID uint, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	// DeleteCategory удаляет категорию вместе с ее услугами
	DeleteCategory(ctx context.Context, caller *models.User, categoryID uint) error

	ListServices(ctx context.Context, categoryID uint, query *dto.ListQuery) ([]*dto.ServiceResponse, error)
	GetService(ctx context.Context, categoryID, serviceID uint) (*dto.ServiceResponse, error)
	CreateService(ctx context.Context, caller *models.User, categoryID uint, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error)
	UpdateService(ctx context.Context, caller *models.User, categoryID, serviceID uint, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error)
	DeleteService(ctx context.Context, caller *models.User, categoryID, serviceID uint) error
}

type catalogService struct {
	catalogRepo repositories.CatalogRepository
	gate        *permissions.Gate
}

func NewCatalogService(catalogRepo repositories.CatalogRepository, gate *permissions.Gate) CatalogService {
	return &catalogService{catalogRepo: catalogRepo, gate: gate}
}

// ---------------- Категории ----------------

func (s *catalogService) ListCategories(ctx context.Context, query *dto.ListQuery) ([]*dto.CategoryResponse, error) {
	query.Normalize()
	categories, err := s.catalogRepo.ListCategories(ctx, query.Skip, query.Limit, query.SortOrder)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, dto.NewCategoryResponse(&categories[i]))
	}
	return responses, nil
}

func (s *catalogService) GetCategory(ctx context.Context, categoryID uint) (*dto.CategoryResponse, error) {
	category, err := s.findCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return dto.NewCategoryResponse(category), nil
}

func (s *catalogService) CreateCategory(ctx context.Context, caller *models.User, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if err := s.gate.AdminOnly(caller); err != nil {
		return nil, err
	}

	taken, err := s.catalogRepo.CategoryNameExists(ctx, req.Name)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if taken {
		return nil, apperrors.ErrAlreadyExists("catalog", "Category with this name already exists")
	}

	category := &models.Category{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.catalogRepo.CreateCategory(ctx, category); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.ErrAlreadyExists("catalog", "Category with this name already exists")
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewCategoryResponse(category), nil
}

func (s *catalogService) UpdateCategory(ctx context.Context, caller *models.User, categoryID uint, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	if err := s.gate.AdminOnly(caller); err != nil {
		return nil, err
	}
	category, err := s.findCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if req.IsEmpty() {
		return dto.NewCategoryResponse(category), nil
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if err := s.catalogRepo.UpdateCategory(ctx, category); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.ErrAlreadyExists("catalog", "Category with this name already exists")
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewCategoryResponse(category), nil
}

func (s *catalogService) DeleteCategory(ctx context.Context, caller *models.User, categoryID uint) error {
	if err := s.gate.AdminOnly(caller); err != nil {
		return err
	}
	if err := s.catalogRepo.DeleteCategory(ctx, categoryID); err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrNotFound(err, "catalog", "Category not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// ---------------- Услуги ----------------

func (s *catalogService) ListServices(ctx context.Context, categoryID uint, query *dto.ListQuery) ([]*dto.ServiceResponse, error) {
	if _, err := s.findCategory(ctx, categoryID); err != nil {
		return nil, err
	}
	query.Normalize()
	services, err := s.catalogRepo.ListServices(ctx, categoryID, query.Skip, query.Limit, query.SortOrder)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.ServiceResponse, 0, len(services))
	for i := range services {
		responses = append(responses, dto.NewServiceResponse(&services[i]))
	}
	return responses, nil
}

func (s *catalogService) GetService(ctx context.Context, categoryID, serviceID uint) (*dto.ServiceResponse, error) {
	service, err := s.findService(ctx, categoryID, serviceID)
	if err != nil {
		return nil, err
	}
	return dto.NewServiceResponse(service), nil
}

func (s *catalogService) CreateService(ctx context.Context, caller *models.User, categoryID uint, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	if err := s.gate.AdminOnly(caller); err != nil {
		return nil, err
	}
	if _, err := s.findCategory(ctx, categoryID); err != nil {
		return nil, err
	}

	taken, err := s.catalogRepo.ServiceNameExists(ctx, req.Name)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if taken {
		return nil, apperrors.ErrAlreadyExists("catalog", "Service with this name already exists")
	}

	service := &models.Service{
		Name:       req.Name,
		CategoryID: categoryID,
	}
	if err := s.catalogRepo.CreateService(ctx, service); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.ErrAlreadyExists("catalog", "Service with this name already exists")
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewServiceResponse(service), nil
}

func (s *catalogService) UpdateService(ctx context.Context, caller *models.User, categoryID, serviceID uint, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	if err := s.gate.AdminOnly(caller); err != nil {
		return nil, err
	}
	service, err := s.findService(ctx, categoryID, serviceID)
	if err != nil {
		return nil, err
	}
	if req.IsEmpty() {
		return dto.NewServiceResponse(service), nil
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if err := s.catalogRepo.UpdateService(ctx, service); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.ErrAlreadyExists("catalog", "Service with this name already exists")
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewServiceResponse(service), nil
}

func (s *catalogService) DeleteService(ctx context.Context, caller *models.User, categoryID, serviceID uint) error {
	if err := s.gate.AdminOnly(caller); err != nil {
		return err
	}
	if err := s.catalogRepo.DeleteService(ctx, categoryID, serviceID); err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrNotFound(err, "catalog", "Service not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// ---------------- Хелперы ----------------

func (s *catalogService) findCategory(ctx context.Context, categoryID uint) (*models.Category, error) {
	category, err := s.catalogRepo.FindCategory(ctx, categoryID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrNotFound(err, "catalog", "Category not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return category, nil
}

func (s *catalogService) findService(ctx context.Context, categoryID, serviceID uint) (*models.Service, error) {
	service, err := s.catalogRepo.FindService(ctx, categoryID, serviceID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrNotFound(err, "catalog", "Service not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return service, nil
}
