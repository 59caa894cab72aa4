package models

import "time"

type Review struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ContractorID uint      `gorm:"not null;index" json:"contractor_id"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	Rating       float64   `gorm:"type:decimal(3,2);not null" json:"rating"`
	Comment      string    `gorm:"type:text" json:"comment"`
	CreatedAt    time.Time `json:"created_at"`

	// Relations
	Contractor *Contractor `gorm:"foreignKey:ContractorID" json:"-"`
	Owner      *User       `gorm:"foreignKey:UserID" json:"owner,omitempty"`
}
