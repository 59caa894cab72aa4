package dto

import (
	"time"

	"github.com/alinamiashalkina/event-creator/internal/models"
)

// UpdateUserRequest - частичное обновление; затрагиваются только
// переданные поля
type UpdateUserRequest struct {
	Username    *string `json:"username,omitempty" validate:"omitempty,min=3,max=50"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	Name        *string `json:"name,omitempty" validate:"omitempty,max=100"`
	ContactData *string `json:"contact_data,omitempty" validate:"omitempty,max=255"`
}

// IsEmpty сообщает, что запрос не меняет ни одного поля
func (r *UpdateUserRequest) IsEmpty() bool {
	return r.Username == nil && r.Email == nil && r.Name == nil && r.ContactData == nil
}

type UserResponse struct {
	ID          uint            `json:"id"`
	Username    string          `json:"username"`
	Email       string          `json:"email"`
	Name        string          `json:"name"`
	ContactData string          `json:"contact_data"`
	Role        models.UserRole `json:"role"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func NewUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		Name:        user.Name,
		ContactData: user.ContactData,
		Role:        user.Role,
		IsActive:    user.IsActive,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}
