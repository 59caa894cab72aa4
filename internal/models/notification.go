package models

import (
	"time"

	"gorm.io/datatypes"
)

// Notification - запись о поставленном в очередь уведомлении.
// Само письмо отправляется best-effort после коммита транзакции;
// строка в таблице остается как след для внутренней ленты уведомлений.
type Notification struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	UserID  uint   `gorm:"not null;index" json:"user_id"`
	Type    string `gorm:"not null" json:"type"` // "invitation_sent", "invitation_canceled", ...
	Subject string `gorm:"not null" json:"subject"`
	// Context - данные для шаблона письма, например
	// {"event_name": "...", "user_name": "..."}
	Context   datatypes.JSON `gorm:"type:jsonb" json:"context"`
	CreatedAt time.Time      `json:"created_at"`
}
