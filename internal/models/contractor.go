package models

type Contractor struct {
	BaseModel
	UserID      uint     `gorm:"uniqueIndex;not null" json:"user_id"`
	Photo       string   `gorm:"not null" json:"photo"`
	Description string   `gorm:"not null" json:"description"`
	IsApproved  bool     `gorm:"default:false" json:"is_approved"`
	// Производное поле: среднее арифметическое всех текущих отзывов,
	// NULL пока отзывов нет. Пересчитывается при каждом создании и
	// удалении отзыва, отдельно никогда не изменяется.
	AverageRating *float64 `gorm:"type:decimal(3,2)" json:"average_rating"`

	// Relations
	User           *User               `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Services       []ContractorService `gorm:"foreignKey:ContractorID;constraint:OnDelete:CASCADE" json:"services,omitempty"`
	PortfolioItems []PortfolioItem     `gorm:"foreignKey:ContractorID;constraint:OnDelete:CASCADE" json:"portfolio_items,omitempty"`
	Reviews        []Review            `gorm:"foreignKey:ContractorID;constraint:OnDelete:CASCADE" json:"-"`
	Invitations    []EventInvitation   `gorm:"foreignKey:RecipientID;constraint:OnDelete:CASCADE" json:"-"`
}

type ContractorService struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	ServiceID    uint   `gorm:"not null;index" json:"service_id"`
	ContractorID uint   `gorm:"not null;index" json:"contractor_id"`
	Description  string `gorm:"type:text;not null" json:"description"`
	// Цена хранится строкой: значение может быть указано "по запросу"
	Price string `gorm:"not null" json:"price"`

	Service *Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
}

type PortfolioItem struct {
	BaseModel
	ContractorID uint   `gorm:"not null;index" json:"contractor_id"`
	Type         string `json:"type"`
	URL          string `json:"url"`
	Description  string `gorm:"not null" json:"description"`
}
