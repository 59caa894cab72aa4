package dto

import (
	"time"

	"github.com/alinamiashalkina/event-creator/internal/models"
)

type CreateReviewRequest struct {
	Rating  float64 `json:"rating" validate:"required,min=1,max=5"`
	Comment string  `json:"comment" validate:"omitempty,max=2000"`
}

type ReviewResponse struct {
	ID           uint      `json:"id"`
	ContractorID uint      `json:"contractor_id"`
	UserID       uint      `json:"user_id"`
	Rating       float64   `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewReviewResponse(review *models.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:           review.ID,
		ContractorID: review.ContractorID,
		UserID:       review.UserID,
		Rating:       review.Rating,
		Comment:      review.Comment,
		CreatedAt:    review.CreatedAt,
	}
}
