package services

import (
	"context"

	"github.com/alinamiashalkina/event-creator/internal/models"
	"github.com/alinamiashalkina/event-creator/internal/permissions"
	"github.com/alinamiashalkina/event-creator/internal/repositories"
	"github.com/alinamiashalkina/event-creator/internal/services/dto"
	"github.com/alinamiashalkina/event-creator/pkg/apperrors"
)

type ContractorService interface {
	// Заявки подрядчиков (только для админа)
	ListApplications(ctx context.Context, caller *models.User, query *dto.ListQuery) ([]*dto.ContractorResponse, error)
	GetApplication(ctx context.Context, caller *models.User, contractorID uint) (*dto.ApplicationResponse, error)
	// Approve активирует учетную запись и помечает профиль одобренным
	// одной транзакцией, затем ставит в очередь письмо подрядчику
	Approve(ctx context.Context, caller *models.User, contractorID uint) (*dto.ContractorResponse, error)
	// Reject удаляет пользователя; профиль подрядчика и все его
	// дочерние записи снимаются каскадом
	Reject(ctx context.Context, caller *models.User, contractorID uint) error

	ListContractors(ctx context.Context, query *dto.ListQuery) ([]*dto.ContractorResponse, error)
	GetContractor(ctx context.Context, contractorID uint) (*dto.ContractorResponse, error)
	UpdateContractor(ctx context.Context, caller *models.User, contractorID uint, req *dto.UpdateContractorRequest) (*dto.ContractorResponse, error)
	DeleteContractor(ctx context.Context, caller *models.User, contractorID uint) error

	// Услуги подрядчика
	ListContractorServices(ctx context.Context, contractorID uint) ([]*dto.ContractorServiceResponse, error)
	GetContractorService(ctx context.Context, contractorID, serviceID uint) (*dto.ContractorServiceResponse, error)
	AddContractorService(ctx context.Context, caller *models.User, contractorID uint, req *dto.ContractorServiceInput) (*dto.ContractorServiceResponse, error)
	UpdateContractorService(ctx context.Context, caller *models.User, contractorID, serviceID uint, req *dto.UpdateContractorServiceRequest) (*dto.ContractorServiceResponse, error)
	DeleteContractorService(ctx context.Context, caller *models.User, contractorID, serviceID uint) error

	// Портфолио
	ListPortfolio(ctx context.Context, contractorID uint, query *dto.ListQuery) ([]*dto.PortfolioItemResponse, error)
	GetPortfolioItem(ctx context.Context, contractorID, itemID uint) (*dto.PortfolioItemResponse, error)
	AddPortfolioItem(ctx context.Context, caller *models.User, contractorID uint, req *dto.PortfolioItemInput) (*dto.PortfolioItemResponse, error)
	UpdatePortfolioItem(ctx context.Context, caller *models.User, contractorID, itemID uint, req *dto.UpdatePortfolioItemRequest) (*dto.PortfolioItemResponse, error)
	DeletePortfolioItem(ctx context.Context, caller *models.User, contractorID, itemID uint) error
}

type contractorService struct {
	contractorRepo repositories.ContractorRepository
	portfolioRepo  repositories.PortfolioRepository
	userRepo       repositories.UserRepository
	gate           *permissions.Gate
	notifier       Notifier
}

func NewContractorService(
	contractorRepo repositories.ContractorRepository,
	portfolioRepo repositories.PortfolioRepository,
	userRepo repositories.UserRepository,
	gate *permissions.Gate,
	notifier Notifier,
) ContractorService {
	return &contractorService{
		contractorRepo: contractorRepo,
		portfolioRepo:  portfolioRepo,
		userRepo:       userRepo,
		gate:           gate,
		notifier:       notifier,
	}
}

// ---------------- Заявки ----------------

func (s *contractorService) ListApplications(ctx context.Context, caller *models.User, query *dto.ListQuery) ([]*dto.ContractorResponse, error) {
	if err := s.gate.AdminOnly(caller); err != nil {
		return nil, err
	}
	query.Normalize()
	contractors, err := s.contractorRepo.ListApplications(ctx, query.Skip, query.Limit, query.SortOrder)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildContractorResponses(contractors), nil
}

func (s *contractorService) GetApplication(ctx context.Context, caller *models.User, contractorID uint) (*dto.ApplicationResponse, error) {
	if err := s.gate.AdminOnly(caller); err != nil {
		return nil, err
	}
	contractor, err := s.findApplication(ctx, contractorID)
	if err != nil {
		return nil, err
	}

	resp := &dto.ApplicationResponse{
		Contractor:     dto.NewContractorResponse(contractor),
		Services:       make([]dto.ContractorServiceResponse, 0, len(contractor.Services)),
		PortfolioItems: make([]dto.PortfolioItemResponse, 0, len(contractor.PortfolioItems)),
	}
	for i := range contractor.Services {
		resp.Services = append(resp.Services, *dto.NewContractorServiceResponse(&contractor.Services[i]))
	}
	for i := range contractor.PortfolioItems {
		resp.PortfolioItems = append(resp.PortfolioItems, *dto.NewPortfolioItemResponse(&contractor.PortfolioItems[i]))
	}
	return resp, nil
}

func (s *contractorService) Approve(ctx context.Context, caller *models.User, contractorID uint) (*dto.ContractorResponse, error) {
	if err := s.gate.AdminOnly(caller); err != nil {
		return nil, err
	}
	contractor, err := s.findApplication(ctx, contractorID)
	if err != nil {
		return nil, err
	}
	if contractor.IsApproved {
		return nil, apperrors.ErrInvalidOperation("contractor", "Contractor is already approved")
	}

	if err := s.contractorRepo.Approve(ctx, contractor.ID); err != nil {
		return nil, apperrors.InternalError(err)
	}
	contractor.IsApproved = true
	if contractor.User != nil {
		contractor.User.IsActive = true
		s.notifier.Queue(contractor.UserID, contractor.User.Email, "contractor_approved",
			"Your contractor application has been approved", map[string]interface{}{
				"Name": contractor.User.Name,
			})
	}
	return dto.NewContractorResponse(contractor), nil
}

func (s *contractorService) Reject(ctx context.Context, caller *models.User, contractorID uint) error {
	if err := s.gate.AdminOnly(caller); err != nil {
		return err
	}
	contractor, err := s.findApplication(ctx, contractorID)
	if err != nil {
		return err
	}
	if contractor.IsApproved {
		return apperrors.ErrInvalidOperation("contractor", "Cannot reject an approved contractor")
	}

	if err := s.userRepo.Delete(ctx, contractor.UserID); err != nil {
		return apperrors.InternalError(err)
	}
	if contractor.User != nil {
		s.notifier.Queue(contractor.UserID, contractor.User.Email, "contractor_rejected",
			"Your contractor application has been rejected", map[string]interface{}{
				"Name": contractor.User.Name,
			})
	}
	return nil
}

// ---------------- Профили ----------------

func (s *contractorService) ListContractors(ctx context.Context, query *dto.ListQuery) ([]*dto.ContractorResponse, error) {
	query.Normalize()
	contractors, err := s.contractorRepo.List(ctx, query.Skip, query.Limit, query.SortOrder)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildContractorResponses(contractors), nil
}

func (s *contractorService) GetContractor(ctx context.Context, contractorID uint) (*dto.ContractorResponse, error) {
	contractor, err := s.contractorRepo.FindByID(ctx, contractorID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrNotFound(err, "contractor", "Contractor not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewContractorResponse(contractor), nil
}

func (s *contractorService) UpdateContractor(ctx context.Context, caller *models.User, contractorID uint, req *dto.UpdateContractorRequest) (*dto.ContractorResponse, error) {
	contractor, err := s.gate.AdminOrSelfContractor(ctx, caller, contractorID)
	if err != nil {
		return nil, err
	}
	if req.IsEmpty() {
		return dto.NewContractorResponse(contractor), nil
	}

	if req.Photo != nil {
		contractor.Photo = *req.Photo
	}
	if req.Description != nil {
		contractor.Description = *req.Description
	}

	if req.User != nil && !req.User.IsEmpty() {
		user, err := s.userRepo.FindByID(ctx, contractor.UserID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		applyUserUpdate(user, req.User)
		if err := s.contractorRepo.UpdateWithUser(ctx, contractor, user); err != nil {
			if apperrors.Is(err, repositories.ErrDuplicate) {
				return nil, apperrors.ErrUserAlreadyExists
			}
			return nil, apperrors.InternalError(err)
		}
		contractor.User = user
		return dto.NewContractorResponse(contractor), nil
	}

	if err := s.contractorRepo.Update(ctx, contractor); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewContractorResponse(contractor), nil
}

func (s *contractorService) DeleteContractor(ctx context.Context, caller *models.User, contractorID uint) error {
	contractor, err := s.gate.AdminOrSelfContractor(ctx, caller, contractorID)
	if err != nil {
		return err
	}
	// Удаляется владелец; профиль и дочерние записи уходят каскадом
	if err := s.userRepo.Delete(ctx, contractor.UserID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// ---------------- Услуги подрядчика ----------------

func (s *contractorService) ListContractorServices(ctx context.Context, contractorID uint) ([]*dto.ContractorServiceResponse, error) {
	if _, err := s.requireContractor(ctx, contractorID); err != nil {
		return nil, err
	}
	services, err := s.contractorRepo.ListServices(ctx, contractorID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	responses := make([]*dto.ContractorServiceResponse, 0, len(services))
	for i := range services {
		responses = append(responses, dto.NewContractorServiceResponse(&services[i]))
	}
	return responses, nil
}

func (s *contractorService) GetContractorService(ctx context.Context, contractorID, serviceID uint) (*dto.ContractorServiceResponse, error) {
	service, err := s.contractorRepo.FindService(ctx, contractorID, serviceID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrNotFound(err, "contractor", "Contractor service not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewContractorServiceResponse(service), nil
}

func (s *contractorService) AddContractorService(ctx context.Context, caller *models.User, contractorID uint, req *dto.ContractorServiceInput) (*dto.ContractorServiceResponse, error) {
	contractor, err := s.gate.AdminOrSelfContractor(ctx, caller, contractorID)
	if err != nil {
		return nil, err
	}
	service := &models.ContractorService{
		ContractorID: contractor.ID,
		ServiceID:    req.ServiceID,
		Description:  req.Description,
		Price:        req.Price,
	}
	if err := s.contractorRepo.CreateService(ctx, service); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewContractorServiceResponse(service), nil
}

func (s *contractorService) UpdateContractorService(ctx context.Context, caller *models.User, contractorID, serviceID uint, req *dto.UpdateContractorServiceRequest) (*dto.ContractorServiceResponse, error) {
	if _, err := s.gate.AdminOrSelfContractor(ctx, caller, contractorID); err != nil {
		return nil, err
	}
	service, err := s.contractorRepo.FindService(ctx, contractorID, serviceID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrNotFound(err, "contractor", "Contractor service not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if req.IsEmpty() {
		return dto.NewContractorServiceResponse(service), nil
	}

	if req.ServiceID != nil {
		service.ServiceID = *req.ServiceID
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if err := s.contractorRepo.UpdateService(ctx, service); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewContractorServiceResponse(service), nil
}

func (s *contractorService) DeleteContractorService(ctx context.Context, caller *models.User, contractorID, serviceID uint) error {
	if _, err := s.gate.AdminOrSelfContractor(ctx, caller, contractorID); err != nil {
		return err
	}
	if err := s.contractorRepo.DeleteService(ctx, contractorID, serviceID); err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrNotFound(err, "contractor", "Contractor service not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// ---------------- Портфолио ----------------

func (s *contractorService) ListPortfolio(ctx context.Context, contractorID uint, query *dto.ListQuery) ([]*dto.PortfolioItemResponse, error) {
	if _, err := s.requireContractor(ctx, contractorID); err != nil {
		return nil, err
	}
	query.Normalize()
	items, err := s.portfolioRepo.ListByContractor(ctx, contractorID, query.Skip, query.Limit, query.SortOrder)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	responses := make([]*dto.PortfolioItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, dto.NewPortfolioItemResponse(&items[i]))
	}
	return responses, nil
}

func (s *contractorService) GetPortfolioItem(ctx context.Context, contractorID, itemID uint) (*dto.PortfolioItemResponse, error) {
	item, err := s.portfolioRepo.FindByID(ctx, contractorID, itemID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrNotFound(err, "portfolio", "Portfolio item not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewPortfolioItemResponse(item), nil
}

func (s *contractorService) AddPortfolioItem(ctx context.Context, caller *models.User, contractorID uint, req *dto.PortfolioItemInput) (*dto.PortfolioItemResponse, error) {
	contractor, err := s.gate.AdminOrSelfContractor(ctx, caller, contractorID)
	if err != nil {
		return nil, err
	}
	item := &models.PortfolioItem{
		ContractorID: contractor.ID,
		Type:         req.Type,
		URL:          req.URL,
		Description:  req.Description,
	}
	if err := s.portfolioRepo.Create(ctx, item); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewPortfolioItemResponse(item), nil
}

func (s *contractorService) UpdatePortfolioItem(ctx context.Context, caller *models.User, contractorID, itemID uint, req *dto.UpdatePortfolioItemRequest) (*dto.PortfolioItemResponse, error) {
	if _, err := s.gate.AdminOrSelfContractor(ctx, caller, contractorID); err != nil {
		return nil, err
	}
	item, err := s.portfolioRepo.FindByID(ctx, contractorID, itemID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrNotFound(err, "portfolio", "Portfolio item not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if req.IsEmpty() {
		return dto.NewPortfolioItemResponse(item), nil
	}

	if req.Type != nil {
		item.Type = *req.Type
	}
	if req.URL != nil {
		item.URL = *req.URL
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if err := s.portfolioRepo.Update(ctx, item); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewPortfolioItemResponse(item), nil
}

func (s *contractorService) DeletePortfolioItem(ctx context.Context, caller *models.User, contractorID, itemID uint) error {
	if _, err := s.gate.AdminOrSelfContractor(ctx, caller, contractorID); err != nil {
		return err
	}
	if err := s.portfolioRepo.Delete(ctx, contractorID, itemID); err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrNotFound(err, "portfolio", "Portfolio item not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// ---------------- Хелперы ----------------

func (s *contractorService) findApplication(ctx context.Context, contractorID uint) (*models.Contractor, error) {
	contractor, err := s.contractorRepo.FindApplication(ctx, contractorID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrNotFound(err, "contractor", "Contractor application not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return contractor, nil
}

func (s *contractorService) requireContractor(ctx context.Context, contractorID uint) (*models.Contractor, error) {
	contractor, err := s.contractorRepo.FindByID(ctx, contractorID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrNotFound(err, "contractor", "Contractor not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return contractor, nil
}

func buildContractorResponses(contractors []models.Contractor) []*dto.ContractorResponse {
	responses := make([]*dto.ContractorResponse, 0, len(contractors))
	for i := range contractors {
		responses = append(responses, dto.NewContractorResponse(&contractors[i]))
	}
	return responses
}
