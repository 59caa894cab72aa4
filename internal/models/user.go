package models

import "time"

type User struct {
	BaseModel
	Username     string   `gorm:"uniqueIndex;not null" json:"username"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Name         string   `gorm:"not null" json:"name"`
	ContactData  string   `json:"contact_data"`
	Role         UserRole `gorm:"type:varchar(20);default:'user'" json:"role"`
	IsActive     bool     `gorm:"default:false" json:"is_active"`

	// Relations
	Contractor      *Contractor       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"contractor,omitempty"`
	Reviews         []Review          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedEvents   []Event           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	OrganizedEvents []Event           `gorm:"foreignKey:OrganizerID;constraint:OnDelete:CASCADE" json:"-"`
	SentInvitations []EventInvitation `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE" json:"-"`
}

// BlacklistedToken - отозванный access-токен. Проверяется middleware
// на каждом аутентифицированном запросе, чистится фоновым воркером
// после истечения срока действия.
type BlacklistedToken struct {
	ID        uint      `gorm:"primaryKey"`
	Token     string    `gorm:"uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"not null"`
}
