package dto

import (
	"time"

	"github.com/alinamiashalkina/event-creator/internal/models"
)

// ======================
// Request DTOs
// ======================

type CreateInvitationRequest struct {
	ContractorID uint `json:"contractor_id" validate:"required"`
}

// RespondInvitationRequest - ответ подрядчика на приглашение.
// Любое другое значение action отклоняется валидацией.
type RespondInvitationRequest struct {
	Action string `json:"action" validate:"required,oneof=accept decline"`
}

// ======================
// Response DTOs
// ======================

type InvitationResponse struct {
	ID          uint                    `json:"id"`
	EventID     uint                    `json:"event_id"`
	RecipientID uint                    `json:"recipient_id"`
	SenderID    uint                    `json:"sender_id"`
	Status      models.InvitationStatus `json:"status"`
	CreatedAt   time.Time               `json:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at"`

	Event     *EventResponse      `json:"event,omitempty"`
	Recipient *ContractorResponse `json:"recipient,omitempty"`
}

func NewInvitationResponse(inv *models.EventInvitation) *InvitationResponse {
	resp := &InvitationResponse{
		ID:          inv.ID,
		EventID:     inv.EventID,
		RecipientID: inv.RecipientID,
		SenderID:    inv.SenderID,
		Status:      inv.Status,
		CreatedAt:   inv.CreatedAt,
		UpdatedAt:   inv.UpdatedAt,
	}
	if inv.Event != nil {
		resp.Event = NewEventResponse(inv.Event)
	}
	if inv.Recipient != nil {
		resp.Recipient = NewContractorResponse(inv.Recipient)
	}
	return resp
}
