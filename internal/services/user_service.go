package services

import (
	"context"

	"github.com/alinamiashalkina/event-creator/internal/models"
	"github.com/alinamiashalkina/event-creator/internal/permissions"
	"github.com/alinamiashalkina/event-creator/internal/repositories"
	"github.com/alinamiashalkina/event-creator/internal/services/dto"
	"github.com/alinamiashalkina/event-creator/pkg/apperrors"
)

type UserService interface {
	// ListUsers возвращает только заказчиков (роль user);
	// админы и подрядчики отдаются своими разделами
	ListUsers(ctx context.Context, caller *models.User, query *dto.ListQuery) ([]*dto.UserResponse, error)
	GetUser(ctx context.Context, caller *models.User, userID uint) (*dto.UserResponse, error)
	UpdateUser(ctx context.Context, caller *models.User, userID uint, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, caller *models.User, userID uint) error
}

type userService struct {
	userRepo repositories.UserRepository
	gate     *permissions.Gate
}

func NewUserService(userRepo repositories.UserRepository, gate *permissions.Gate) UserService {
	return &userService{userRepo: userRepo, gate: gate}
}

func (s *userService) ListUsers(ctx context.Context, caller *models.User, query *dto.ListQuery) ([]*dto.UserResponse, error) {
	if err := s.gate.AdminOnly(caller); err != nil {
		return nil, err
	}
	query.Normalize()
	users, err := s.userRepo.ListByRole(ctx, models.UserRoleUser, query.Skip, query.Limit, query.SortOrder)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, dto.NewUserResponse(&users[i]))
	}
	return responses, nil
}

func (s *userService) GetUser(ctx context.Context, caller *models.User, userID uint) (*dto.UserResponse, error) {
	user, err := s.gate.AdminOrSelfUser(ctx, caller, userID)
	if err != nil {
		return nil, err
	}
	return dto.NewUserResponse(user), nil
}

func (s *userService) UpdateUser(ctx context.Context, caller *models.User, userID uint, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.gate.AdminOrSelfUser(ctx, caller, userID)
	if err != nil {
		return nil, err
	}

	// Пустой набор изменений - запись не трогаем
	if req.IsEmpty() {
		return dto.NewUserResponse(user), nil
	}

	applyUserUpdate(user, req)

	if err := s.userRepo.Update(ctx, user); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.ErrUserAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponse(user), nil
}

func (s *userService) DeleteUser(ctx context.Context, caller *models.User, userID uint) error {
	user, err := s.gate.AdminOrSelfUser(ctx, caller, userID)
	if err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, user.ID); err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrNotFound(err, "user", "User not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// applyUserUpdate переносит в модель только переданные поля
func applyUserUpdate(user *models.User, req *dto.UpdateUserRequest) {
	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.ContactData != nil {
		user.ContactData = *req.ContactData
	}
}
