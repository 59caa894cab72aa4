package services

import (
	"context"

	"github.com/alinamiashalkina/event-creator/internal/models"
	"github.com/alinamiashalkina/event-creator/internal/permissions"
	"github.com/alinamiashalkina/event-creator/internal/repositories"
	"github.com/alinamiashalkina/event-creator/internal/services/dto"
	"github.com/alinamiashalkina/event-creator/pkg/apperrors"
)

/*
Жизненный цикл приглашения:

	pending -> accepted | declined   (ответ подрядчика)
	accepted -> confirmed            (подтверждение организатором)
	любой статус -> удаление         (отмена организатором)

Каждый переход сначала коммитится, затем ставит уведомление.
*/

type InvitationService interface {
	// Invite создает приглашение подрядчику на мероприятие; пара
	// (мероприятие, получатель) уникальна независимо от статуса
	Invite(ctx context.Context, caller *models.User, eventID uint, req *dto.CreateInvitationRequest) (*dto.InvitationResponse, error)
	// Respond - ответ подрядчика: accept или decline, безусловно
	Respond(ctx context.Context, caller *models.User, contractorID, invitationID uint, req *dto.RespondInvitationRequest) (*dto.InvitationResponse, error)
	// Confirm переводит accepted -> confirmed; из любого другого
	// статуса операция отклоняется, статус не меняется
	Confirm(ctx context.Context, caller *models.User, eventID, invitationID uint) (*dto.InvitationResponse, error)
	// Cancel удаляет приглашение из любого статуса
	Cancel(ctx context.Context, caller *models.User, eventID, invitationID uint) error

	ListByEvent(ctx context.Context, caller *models.User, eventID uint, query *dto.ListQuery) ([]*dto.InvitationResponse, error)
	ListByContractor(ctx context.Context, caller *models.User, contractorID uint, query *dto.ListQuery) ([]*dto.InvitationResponse, error)
	GetForEvent(ctx context.Context, caller *models.User, eventID, invitationID uint) (*dto.InvitationResponse, error)
	GetForContractor(ctx context.Context, caller *models.User, contractorID, invitationID uint) (*dto.InvitationResponse, error)
}

type invitationService struct {
	invitationRepo repositories.InvitationRepository
	contractorRepo repositories.ContractorRepository
	userRepo       repositories.UserRepository
	gate           *permissions.Gate
	notifier       Notifier
}

func NewInvitationService(
	invitationRepo repositories.InvitationRepository,
	contractorRepo repositories.ContractorRepository,
	userRepo repositories.UserRepository,
	gate *permissions.Gate,
	notifier Notifier,
) InvitationService {
	return &invitationService{
		invitationRepo: invitationRepo,
		contractorRepo: contractorRepo,
		userRepo:       userRepo,
		gate:           gate,
		notifier:       notifier,
	}
}

func (s *invitationService) Invite(ctx context.Context, caller *models.User, eventID uint, req *dto.CreateInvitationRequest) (*dto.InvitationResponse, error) {
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

	exists, err := s.invitationRepo.Exists(ctx, event.ID, contractor.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrContractorAlreadyInvited
	}

	invitation := &models.EventInvitation{
		EventID:     event.ID,
		RecipientID: contractor.ID,
		SenderID:    caller.ID,
		Status:      models.InvitationStatusPending,
	}
	if err := s.invitationRepo.Create(ctx, invitation); err != nil {
		// уникальный индекс - страховка от гонки двух Invite
		if apperrors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.ErrContractorAlreadyInvited
		}
		return nil, apperrors.InternalError(err)
	}

	if contractor.User != nil {
		s.notifier.Queue(contractor.UserID, contractor.User.Email, "invitation_sent",
			"You have been invited to an event", map[string]interface{}{
				"RecipientName": contractor.User.Name,
				"EventName":     event.Name,
				"StartTime":     event.StartTime,
				"Location":      event.Location,
			})
	}
	return dto.NewInvitationResponse(invitation), nil
}

func (s *invitationService) Respond(ctx context.Context, caller *models.User, contractorID, invitationID uint, req *dto.RespondInvitationRequest) (*dto.InvitationResponse, error) {
	contractor, err := s.gate.AdminOrSelfContractor(ctx, caller, contractorID)
	if err != nil {
		return nil, err
	}

	invitation, err := s.findForRecipient(ctx, invitationID, contractor.ID)
	if err != nil {
		return nil, err
	}

	var status models.InvitationStatus
	switch req.Action {
	case "accept":
		status = models.InvitationStatusAccepted
	case "decline":
		status = models.InvitationStatusDeclined
	default:
		return nil, apperrors.ValidationError("action must be accept or decline")
	}

	if err := s.invitationRepo.UpdateStatus(ctx, invitation.ID, status); err != nil {
		return nil, apperrors.InternalError(err)
	}
	invitation.Status = status
	invitation.Recipient = contractor

	s.notifySender(ctx, invitation, string(status))
	return dto.NewInvitationResponse(invitation), nil
}

func (s *invitationService) Confirm(ctx context.Context, caller *models.User, eventID, invitationID uint) (*dto.InvitationResponse, error) {
	event, err := s.gate.AdminOrCreatorOrOrganizer(ctx, caller, eventID)
	if err != nil {
		return nil, err
	}

	invitation, err := s.findForEvent(ctx, invitationID, event.ID)
	if err != nil {
		return nil, err
	}

	// Переход закреплен условием по исходному статусу: из двух
	// конкурирующих операций выигрывает ровно одна
	updated, err := s.invitationRepo.UpdateStatusIf(ctx, invitation.ID,
		models.InvitationStatusAccepted, models.InvitationStatusConfirmed)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !updated {
		return nil, apperrors.ErrInvitationNotAccepted
	}
	invitation.Status = models.InvitationStatusConfirmed

	if invitation.Recipient != nil && invitation.Recipient.User != nil {
		s.notifier.Queue(invitation.Recipient.UserID, invitation.Recipient.User.Email, "invitation_confirmed",
			"Your participation has been confirmed", map[string]interface{}{
				"RecipientName": invitation.Recipient.User.Name,
				"EventName":     event.Name,
				"StartTime":     event.StartTime,
				"Location":      event.Location,
			})
	}
	return dto.NewInvitationResponse(invitation), nil
}

func (s *invitationService) Cancel(ctx context.Context, caller *models.User, eventID, invitationID uint) error {
	event, err := s.gate.AdminOrCreatorOrOrganizer(ctx, caller, eventID)
	if err != nil {
		return err
	}

	invitation, err := s.findForEvent(ctx, invitationID, event.ID)
	if err != nil {
		return err
	}

	if err := s.invitationRepo.Delete(ctx, invitation.ID); err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrNotFound(err, "invitation", "Invitation not found")
		}
		return apperrors.InternalError(err)
	}

	if invitation.Recipient != nil && invitation.Recipient.User != nil {
		s.notifier.Queue(invitation.Recipient.UserID, invitation.Recipient.User.Email, "invitation_canceled",
			"Your invitation has been canceled", map[string]interface{}{
				"RecipientName": invitation.Recipient.User.Name,
				"EventName":     event.Name,
			})
	}
	return nil
}

func (s *invitationService) ListByEvent(ctx context.Context, caller *models.User, eventID uint, query *dto.ListQuery) ([]*dto.InvitationResponse, error) {
	event, err := s.gate.AdminOrCreatorOrOrganizer(ctx, caller, eventID)
	if err != nil {
		return nil, err
	}
	query.Normalize()
	invitations, err := s.invitationRepo.ListByEvent(ctx, event.ID, query.Skip, query.Limit, query.SortOrder)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildInvitationResponses(invitations), nil
}

func (s *invitationService) ListByContractor(ctx context.Context, caller *models.User, contractorID uint, query *dto.ListQuery) ([]*dto.InvitationResponse, error) {
	contractor, err := s.gate.AdminOrSelfContractor(ctx, caller, contractorID)
	if err != nil {
		return nil, err
	}
	query.Normalize()
	invitations, err := s.invitationRepo.ListByRecipient(ctx, contractor.ID, query.Skip, query.Limit, query.SortOrder)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildInvitationResponses(invitations), nil
}

func (s *invitationService) GetForEvent(ctx context.Context, caller *models.User, eventID, invitationID uint) (*dto.InvitationResponse, error) {
	event, err := s.gate.AdminOrCreatorOrOrganizer(ctx, caller, eventID)
	if err != nil {
		return nil, err
	}
	invitation, err := s.findForEvent(ctx, invitationID, event.ID)
	if err != nil {
		return nil, err
	}
	return dto.NewInvitationResponse(invitation), nil
}

func (s *invitationService) GetForContractor(ctx context.Context, caller *models.User, contractorID, invitationID uint) (*dto.InvitationResponse, error) {
	contractor, err := s.gate.AdminOrSelfContractor(ctx, caller, contractorID)
	if err != nil {
		return nil, err
	}
	invitation, err := s.findForRecipient(ctx, invitationID, contractor.ID)
	if err != nil {
		return nil, err
	}
	return dto.NewInvitationResponse(invitation), nil
}

// ---------------- Хелперы ----------------

func (s *invitationService) findForRecipient(ctx context.Context, invitationID, recipientID uint) (*models.EventInvitation, error) {
	invitation, err := s.invitationRepo.FindForRecipient(ctx, invitationID, recipientID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrNotFound(err, "invitation", "Invitation not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return invitation, nil
}

func (s *invitationService) findForEvent(ctx context.Context, invitationID, eventID uint) (*models.EventInvitation, error) {
	invitation, err := s.invitationRepo.FindForEvent(ctx, invitationID, eventID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrNotFound(err, "invitation", "Invitation not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return invitation, nil
}

// notifySender уведомляет отправителя приглашения об ответе подрядчика
func (s *invitationService) notifySender(ctx context.Context, invitation *models.EventInvitation, status string) {
	sender := invitation.Sender
	if sender == nil {
		loaded, err := s.userRepo.FindByID(ctx, invitation.SenderID)
		if err != nil {
			return
		}
		sender = loaded
	}

	var eventName string
	if invitation.Event != nil {
		eventName = invitation.Event.Name
	}
	var contractorName string
	if invitation.Recipient != nil && invitation.Recipient.User != nil {
		contractorName = invitation.Recipient.User.Name
	}

	s.notifier.Queue(sender.ID, sender.Email, "invitation_status_updated",
		"Invitation status has been updated", map[string]interface{}{
			"OrganizerName":  sender.Name,
			"ContractorName": contractorName,
			"EventName":      eventName,
			"Status":         status,
		})
}

func buildInvitationResponses(invitations []models.EventInvitation) []*dto.InvitationResponse {
	responses := make([]*dto.InvitationResponse, 0, len(invitations))
	for i := range invitations {
		responses = append(responses, dto.NewInvitationResponse(&invitations[i]))
	}
	return responses
}
