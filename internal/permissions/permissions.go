package permissions

import (
	"context"

	"github.com/alinamiashalkina/event-creator/internal/models"
	"github.com/alinamiashalkina/event-creator/internal/repositories"
	"github.com/alinamiashalkina/event-creator/pkg/apperrors"
)

/*
Проверки доступа. Каждая проверка - функция от (вызывающий, ссылка на
ресурс): загружает целевой ресурс и возвращает его либо отказ.

Порядок отказов фиксирован: сначала NotFound (id не разрешился),
затем Forbidden (ресурс есть, но роль/связь вызывающего недостаточна).
Это разные виды ошибок, они не взаимозаменяемы.
*/

type Gate struct {
	userRepo       repositories.UserRepository
	contractorRepo repositories.ContractorRepository
	reviewRepo     repositories.ReviewRepository
	eventRepo      repositories.EventRepository
	invitationRepo repositories.InvitationRepository
}

func NewGate(
	userRepo repositories.UserRepository,
	contractorRepo repositories.ContractorRepository,
	reviewRepo repositories.ReviewRepository,
	eventRepo repositories.EventRepository,
	invitationRepo repositories.InvitationRepository,
) *Gate {
	return &Gate{
		userRepo:       userRepo,
		contractorRepo: contractorRepo,
		reviewRepo:     reviewRepo,
		eventRepo:      eventRepo,
		invitationRepo: invitationRepo,
	}
}

// AdminOnly пропускает только админов
func (g *Gate) AdminOnly(caller *models.User) error {
	if caller.Role == models.UserRoleAdmin {
		return nil
	}
	return apperrors.ErrInsufficientPermissions
}

// AdminOrSelfUser загружает пользователя и пропускает админа
// или самого пользователя
func (g *Gate) AdminOrSelfUser(ctx context.Context, caller *models.User, userID uint) (*models.User, error) {
	user, err := g.userRepo.FindByID(ctx, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrNotFound(err, "user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if caller.Role == models.UserRoleAdmin || caller.ID == user.ID {
		return user, nil
	}
	return nil, apperrors.ErrInsufficientPermissions
}

// AdminOrSelfContractor загружает подрядчика, разрешает его владельца
// и пропускает админа или этого владельца
func (g *Gate) AdminOrSelfContractor(ctx context.Context, caller *models.User, contractorID uint) (*models.Contractor, error) {
	contractor, err := g.contractorRepo.FindByID(ctx, contractorID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrNotFound(err, "contractor", "Contractor not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if caller.Role == models.UserRoleAdmin || caller.ID == contractor.UserID {
		return contractor, nil
	}
	return nil, apperrors.ErrInsufficientPermissions
}

// AdminOrReviewOwner загружает отзыв в рамках подрядчика и пропускает
// админа или автора отзыва
func (g *Gate) AdminOrReviewOwner(ctx context.Context, caller *models.User, contractorID, reviewID uint) (*models.Review, error) {
	review, err := g.reviewRepo.FindByID(ctx, contractorID, reviewID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrNotFound(err, "review", "Review not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if caller.Role == models.UserRoleAdmin || caller.ID == review.UserID {
		return review, nil
	}
	return nil, apperrors.ErrInsufficientPermissions
}

// AdminOrCreator загружает мероприятие и пропускает админа или создателя
func (g *Gate) AdminOrCreator(ctx context.Context, caller *models.User, eventID uint) (*models.Event, error) {
	event, err := g.loadEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if caller.Role == models.UserRoleAdmin || caller.ID == event.UserID {
		return event, nil
	}
	return nil, apperrors.ErrInsufficientPermissions
}

// AdminOrCreatorOrOrganizer загружает мероприятие и пропускает админа,
// создателя или организатора
func (g *Gate) AdminOrCreatorOrOrganizer(ctx context.Context, caller *models.User, eventID uint) (*models.Event, error) {
	event, err := g.loadEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if caller.Role == models.UserRoleAdmin ||
		caller.ID == event.UserID ||
		caller.ID == event.OrganizerID {
		return event, nil
	}
	return nil, apperrors.ErrInsufficientPermissions
}

// AdminOrCreatorOrOrganizerOrInvited - как AdminOrCreatorOrOrganizer,
// но дополнительно дает доступ на чтение подрядчику, получившему
// приглашение на это мероприятие. Наличие приглашения проверяется
// индексным запросом существования, а не перебором коллекции.
func (g *Gate) AdminOrCreatorOrOrganizerOrInvited(ctx context.Context, caller *models.User, eventID uint) (*models.Event, error) {
	event, err := g.loadEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if caller.Role == models.UserRoleAdmin ||
		caller.ID == event.UserID ||
		caller.ID == event.OrganizerID {
		return event, nil
	}
	if caller.Role == models.UserRoleContractor {
		contractor, err := g.contractorRepo.FindByUserID(ctx, caller.ID)
		if err == nil {
			invited, err := g.invitationRepo.Exists(ctx, event.ID, contractor.ID)
			if err != nil {
				return nil, apperrors.InternalError(err)
			}
			if invited {
				return event, nil
			}
		} else if !apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.InternalError(err)
		}
	}
	return nil, apperrors.ErrInsufficientPermissions
}

// VisibleEvents - списочный режим проверки admin-or-creator-or-organizer:
// админ видит все мероприятия, остальные - только те, где они создатель
// или организатор
func (g *Gate) VisibleEvents(ctx context.Context, caller *models.User, skip, limit int, sortOrder string) ([]models.Event, error) {
	var (
		events []models.Event
		err    error
	)
	if caller.Role == models.UserRoleAdmin {
		events, err = g.eventRepo.ListAll(ctx, skip, limit, sortOrder)
	} else {
		events, err = g.eventRepo.ListVisible(ctx, caller.ID, skip, limit, sortOrder)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return events, nil
}

func (g *Gate) loadEvent(ctx context.Context, eventID uint) (*models.Event, error) {
	event, err := g.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrNotFound(err, "event", "Event not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return event, nil
}
