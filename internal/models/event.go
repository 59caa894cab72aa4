package models

import "time"

type Event struct {
	BaseModel
	// UserID - создатель мероприятия. OrganizerID при создании равен
	// UserID, позже может быть переназначен на подрядчика
	// с подтвержденным приглашением.
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	OrganizerID uint      `gorm:"not null;index" json:"organizer_id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Location    string    `gorm:"not null" json:"location"`
	StartTime   time.Time `gorm:"not null" json:"start_time"`
	EndTime     time.Time `gorm:"not null" json:"end_time"`

	// Relations
	Creator     *User             `gorm:"foreignKey:UserID" json:"creator,omitempty"`
	Organizer   *User             `gorm:"foreignKey:OrganizerID" json:"organizer,omitempty"`
	Invitations []EventInvitation `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"-"`
}

type EventInvitation struct {
	BaseModel
	EventID uint `gorm:"not null;index;uniqueIndex:idx_event_recipient" json:"event_id"`
	// RecipientID - подрядчик-получатель; SenderID - пользователь,
	// отправивший приглашение (создатель или организатор на момент
	// отправки). Пара (event, recipient) уникальна независимо от статуса.
	RecipientID uint             `gorm:"not null;index;uniqueIndex:idx_event_recipient" json:"recipient_id"`
	SenderID    uint             `gorm:"not null;index" json:"sender_id"`
	Status      InvitationStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`

	// Relations
	Event     *Event      `gorm:"foreignKey:EventID" json:"event,omitempty"`
	Recipient *Contractor `gorm:"foreignKey:RecipientID" json:"recipient,omitempty"`
	Sender    *User       `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
}
