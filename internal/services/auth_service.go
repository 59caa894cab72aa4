package services

import (
	"context"

	"github.com/alinamiashalkina/event-creator/internal/auth"
	"github.com/alinamiashalkina/event-creator/internal/models"
	"github.com/alinamiashalkina/event-creator/internal/repositories"
	"github.com/alinamiashalkina/event-creator/internal/services/dto"
	"github.com/alinamiashalkina/event-creator/pkg/apperrors"
)

type AuthService interface {
	// RegisterUser создает активную учетную запись заказчика
	RegisterUser(ctx context.Context, req *dto.RegisterUserRequest) (*dto.UserResponse, error)
	// RegisterAdmin - как RegisterUser, но с ролью админа; доступ
	// ограничивается на уровне маршрута
	RegisterAdmin(ctx context.Context, req *dto.RegisterUserRequest) (*dto.UserResponse, error)
	// RegisterContractor создает неактивного пользователя с профилем
	// подрядчика, услугами и портфолио одной транзакцией. Аккаунт
	// останется неактивным до одобрения админом.
	RegisterContractor(ctx context.Context, req *dto.RegisterContractorRequest) (*dto.ContractorResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenResponse, error)
	// Logout заносит предъявленный access-токен в черный список
	// до истечения его срока
	Logout(ctx context.Context, token string) error
}

type authService struct {
	userRepo       repositories.UserRepository
	contractorRepo repositories.ContractorRepository
	tokenRepo      repositories.TokenRepository
	tokens         *auth.TokenManager
}

func NewAuthService(
	userRepo repositories.UserRepository,
	contractorRepo repositories.ContractorRepository,
	tokenRepo repositories.TokenRepository,
	tokens *auth.TokenManager,
) AuthService {
	return &authService{
		userRepo:       userRepo,
		contractorRepo: contractorRepo,
		tokenRepo:      tokenRepo,
		tokens:         tokens,
	}
}

func (s *authService) RegisterUser(ctx context.Context, req *dto.RegisterUserRequest) (*dto.UserResponse, error) {
	return s.registerWithRole(ctx, req, models.UserRoleUser)
}

func (s *authService) RegisterAdmin(ctx context.Context, req *dto.RegisterUserRequest) (*dto.UserResponse, error) {
	return s.registerWithRole(ctx, req, models.UserRoleAdmin)
}

func (s *authService) registerWithRole(ctx context.Context, req *dto.RegisterUserRequest, role models.UserRole) (*dto.UserResponse, error) {
	exists, err := s.userRepo.ExistsByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrUserAlreadyExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		ContactData:  req.ContactData,
		Role:         role,
		IsActive:     true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.ErrUserAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponse(user), nil
}

func (s *authService) RegisterContractor(ctx context.Context, req *dto.RegisterContractorRequest) (*dto.ContractorResponse, error) {
	exists, err := s.userRepo.ExistsByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrUserAlreadyExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		ContactData:  req.ContactData,
		Role:         models.UserRoleContractor,
		IsActive:     false,
	}
	contractor := &models.Contractor{
		Photo:       req.Photo,
		Description: req.Description,
		IsApproved:  false,
	}

	services := make([]models.ContractorService, 0, len(req.Services))
	for _, in := range req.Services {
		services = append(services, models.ContractorService{
			ServiceID:   in.ServiceID,
			Description: in.Description,
			Price:       in.Price,
		})
	}
	items := make([]models.PortfolioItem, 0, len(req.PortfolioItems))
	for _, in := range req.PortfolioItems {
		items = append(items, models.PortfolioItem{
			Type:        in.Type,
			URL:         in.URL,
			Description: in.Description,
		})
	}

	if err := s.contractorRepo.CreateWithUser(ctx, user, contractor, services, items); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.ErrUserAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	contractor.User = user
	return dto.NewContractorResponse(contractor), nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountInactive
	}

	accessToken, err := s.tokens.GenerateAccessToken(user.ID, user.IsActive)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	refreshToken, err := s.tokens.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
	}, nil
}

func (s *authService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenResponse, error) {
	claims, err := s.tokens.ParseToken(req.RefreshToken)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("Invalid refresh token")
	}
	if claims.TokenType != auth.TokenTypeRefresh {
		return nil, apperrors.NewUnauthorizedError("Invalid token type")
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("Invalid refresh token")
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountInactive
	}

	accessToken, err := s.tokens.GenerateAccessToken(user.ID, user.IsActive)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
	}, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	expiresAt, err := s.tokens.TokenExpiry(token)
	if err != nil {
		return apperrors.NewUnauthorizedError("Invalid token")
	}
	if err := s.tokenRepo.Blacklist(ctx, token, expiresAt); err != nil {
		// повторный logout тем же токеном не ошибка
		if apperrors.Is(err, repositories.ErrDuplicate) {
			return nil
		}
		return apperrors.InternalError(err)
	}
	return nil
}
