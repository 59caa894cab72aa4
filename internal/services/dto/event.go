package dto

import (
	"time"

	"github.com/alinamiashalkina/event-creator/internal/models"
)

// ======================
// Request DTOs
// ======================

type CreateEventRequest struct {
	Name        string    `json:"name" validate:"required,max=200"`
	Description string    `json:"description" validate:"omitempty,max=5000"`
	Location    string    `json:"location" validate:"required,max=255"`
	StartTime   time.Time `json:"start_time" validate:"required"`
	EndTime     time.Time `json:"end_time" validate:"required,gtfield=StartTime"`
}

// UpdateEventRequest - частичное обновление; фиксированный набор
// изменяемых полей, остальные атрибуты мероприятия через PATCH
// недоступны
type UpdateEventRequest struct {
	Name        *string    `json:"name,omitempty" validate:"omitempty,max=200"`
	Description *string    `json:"description,omitempty" validate:"omitempty,max=5000"`
	Location    *string    `json:"location,omitempty" validate:"omitempty,max=255"`
	StartTime   *time.Time `json:"start_time,omitempty"`
	EndTime     *time.Time `json:"end_time,omitempty"`
}

func (r *UpdateEventRequest) IsEmpty() bool {
	return r.Name == nil && r.Description == nil && r.Location == nil &&
		r.StartTime == nil && r.EndTime == nil
}

type ReassignOrganizerRequest struct {
	ContractorID uint `json:"contractor_id" validate:"required"`
}

// ======================
// Response DTOs
// ======================

type EventResponse struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	OrganizerID uint      `json:"organizer_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewEventResponse(event *models.Event) *EventResponse {
	return &EventResponse{
		ID:          event.ID,
		UserID:      event.UserID,
		OrganizerID: event.OrganizerID,
		Name:        event.Name,
		Description: event.Description,
		Location:    event.Location,
		StartTime:   event.StartTime,
		EndTime:     event.EndTime,
		CreatedAt:   event.CreatedAt,
		UpdatedAt:   event.UpdatedAt,
	}
}
