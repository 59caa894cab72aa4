package dto

// ======================
// Request DTOs
// ======================

type RegisterUserRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=50"`
	Password    string `json:"password" validate:"required,min=8,max=72"`
	Email       string `json:"email" validate:"required,email"`
	Name        string `json:"name" validate:"required,max=100"`
	ContactData string `json:"contact_data" validate:"omitempty,max=255"`
}

type RegisterContractorRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=50"`
	Password    string `json:"password" validate:"required,min=8,max=72"`
	Email       string `json:"email" validate:"required,email"`
	Name        string `json:"name" validate:"required,max=100"`
	ContactData string `json:"contact_data" validate:"omitempty,max=255"`

	Photo       string `json:"photo" validate:"omitempty,url"`
	Description string `json:"description" validate:"omitempty,max=2000"`

	Services       []ContractorServiceInput `json:"services" validate:"omitempty,dive"`
	PortfolioItems []PortfolioItemInput     `json:"portfolio_items" validate:"omitempty,dive"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// ======================
// Response DTOs
// ======================

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type"`
}
