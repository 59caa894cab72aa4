package services

import (
	"context"

	"github.com/alinamiashalkina/event-creator/internal/models"
	"github.com/alinamiashalkina/event-creator/internal/permissions"
	"github.com/alinamiashalkina/event-creator/internal/repositories"
	"github.com/alinamiashalkina/event-creator/internal/services/dto"
	"github.com/alinamiashalkina/event-creator/pkg/apperrors"
)

type EventService interface {
	// CreateEvent создает мероприятие от имени targetUserID:
	// он становится и создателем, и организатором
	CreateEvent(ctx context.Context, caller *models.User, targetUserID uint, req *dto.CreateEventRequest) (*dto.EventResponse, error)
	ListEvents(ctx context.Context, caller *models.User, query *dto.ListQuery) ([]*dto.EventResponse, error)
	GetEvent(ctx context.Context, caller *models.User, eventID uint) (*dto.EventResponse, error)
	UpdateEvent(ctx context.Context, caller *models.User, eventID uint, req *dto.UpdateEventRequest) (*dto.EventResponse, error)
	// ReassignOrganizer назначает организатором подрядчика
	// с подтвержденным приглашением на это мероприятие
	ReassignOrganizer(ctx context.Context, caller *models.User, eventID uint, req *dto.ReassignOrganizerRequest) (*dto.EventResponse, error)
	// DeleteEvent удаляет мероприятие вместе с приглашениями; каждому
	// затронутому получателю ставится в очередь уведомление об отмене
	DeleteEvent(ctx context.Context, caller *models.User, eventID uint) error
}

type eventService struct {
	eventRepo      repositories.EventRepository
	invitationRepo repositories.InvitationRepository
	contractorRepo repositories.ContractorRepository
	gate           *permissions.Gate
	notifier       Notifier
}

func NewEventService(
	eventRepo repositories.EventRepository,
	invitationRepo repositories.InvitationRepository,
	contractorRepo repositories.ContractorRepository,
	gate *permissions.Gate,
	notifier Notifier,
) EventService {
	return &eventService{
		eventRepo:      eventRepo,
		invitationRepo: invitationRepo,
		contractorRepo: contractorRepo,
		gate:           gate,
		notifier:       notifier,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, caller *models.User, targetUserID uint, req *dto.CreateEventRequest) (*dto.EventResponse, error) {
	target, err := s.gate.AdminOrSelfUser(ctx, caller, targetUserID)
	if err != nil {
		return nil, err
	}

	event := &models.Event{
		UserID:      target.ID,
		OrganizerID: target.ID,
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewEventResponse(event), nil
}

func (s *eventService) ListEvents(ctx context.Context, caller *models.User, query *dto.ListQuery) ([]*dto.EventResponse, error) {
	query.Normalize()
	events, err := s.gate.VisibleEvents(ctx, caller, query.Skip, query.Limit, query.SortOrder)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.EventResponse, 0, len(events))
	for i := range events {
		responses = append(responses, dto.NewEventResponse(&events[i]))
	}
	return responses, nil
}

func (s *eventService) GetEvent(ctx context.Context, caller *models.User, eventID uint) (*dto.EventResponse, error) {
	event, err := s.gate.AdminOrCreatorOrOrganizerOrInvited(ctx, caller, eventID)
	if err != nil {
		return nil, err
	}
	return dto.NewEventResponse(event), nil
}

func (s *eventService) UpdateEvent(ctx context.Context, caller *models.User, eventID uint, req *dto.UpdateEventRequest) (*dto.EventResponse, error) {
	event, err := s.gate.AdminOrCreatorOrOrganizer(ctx, caller, eventID)
	if err != nil {
		return nil, err
	}
	if req.IsEmpty() {
		return dto.NewEventResponse(event), nil
	}

	if req.Name != nil {
		event.Name = *req.Name
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.StartTime != nil {
		event.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		event.EndTime = *req.EndTime
	}
	if event.EndTime.Before(event.StartTime) {
		return nil, apperrors.ValidationError("end_time must be after start_time")
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewEventResponse(event), nil
}

func (s *eventService) ReassignOrganizer(ctx context.Context, caller *models.User, eventID uint, req *dto.ReassignOrganizerRequest) (*dto.EventResponse, error) {
	event, err := s.gate.AdminOrCreatorOrOrganizer(ctx, caller, eventID)
	if err != nil {
		return nil, err
	}

	contractor, err := s.contractorRepo.FindByID(ctx, req.ContractorID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrNotFound(err, "contractor", "Contractor not found")
		}
		return nil, apperrors.InternalError(err)
	}

	confirmed, err := s.invitationRepo.ExistsWithStatus(ctx, event.ID, contractor.ID, models.InvitationStatusConfirmed)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !confirmed {
		return nil, apperrors.ErrOrganizerNotConfirmed
	}

	// Организатор - пользователь, поэтому назначается учетная запись,
	// стоящая за профилем подрядчика
	if err := s.eventRepo.UpdateOrganizer(ctx, event.ID, contractor.UserID); err != nil {
		return nil, apperrors.InternalError(err)
	}
	event.OrganizerID = contractor.UserID
	return dto.NewEventResponse(event), nil
}

func (s *eventService) DeleteEvent(ctx context.Context, caller *models.User, eventID uint) error {
	event, err := s.gate.AdminOrCreator(ctx, caller, eventID)
	if err != nil {
		return err
	}

	invitations, err := s.eventRepo.DeleteWithInvitations(ctx, event.ID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrNotFound(err, "event", "Event not found")
		}
		return apperrors.InternalError(err)
	}

	// Уведомления ставятся после коммита удаляющей транзакции,
	// по одному на каждое снятое приглашение
	for i := range invitations {
		inv := &invitations[i]
		if inv.Recipient == nil || inv.Recipient.User == nil {
			continue
		}
		s.notifier.Queue(inv.Recipient.UserID, inv.Recipient.User.Email, "event_deleted",
			"Event has been canceled", map[string]interface{}{
				"RecipientName": inv.Recipient.User.Name,
				"EventName":     event.Name,
			})
	}
	return nil
}
