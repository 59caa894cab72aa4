package models

type Category struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	Services []Service `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"services,omitempty"`
}

type Service struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"uniqueIndex" json:"name"`
	CategoryID uint   `gorm:"index" json:"category_id"`

	ContractorServices []ContractorService `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE" json:"-"`
}
