package dto

import (
	"time"

	"gorm.io/datatypes"

	"github.com/alinamiashalkina/event-creator/internal/models"
)

type NotificationResponse struct {
	ID        uint           `json:"id"`
	UserID    uint           `json:"user_id"`
	Type      string         `json:"type"`
	Subject   string         `json:"subject"`
	Context   datatypes.JSON `json:"context"`
	CreatedAt time.Time      `json:"created_at"`
}

func NewNotificationResponse(n *models.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:        n.ID,
		UserID:    n.UserID,
		Type:      n.Type,
		Subject:   n.Subject,
		Context:   n.Context,
		CreatedAt: n.CreatedAt,
	}
}
