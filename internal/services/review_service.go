package services

import (
	"context"

	"github.com/alinamiashalkina/event-creator/internal/logger"
	"github.com/alinamiashalkina/event-creator/internal/models"
	"github.com/alinamiashalkina/event-creator/internal/permissions"
	"github.com/alinamiashalkina/event-creator/internal/repositories"
	"github.com/alinamiashalkina/event-creator/internal/services/dto"
	"github.com/alinamiashalkina/event-creator/pkg/apperrors"
)

type ReviewService interface {
	ListReviews(ctx context.Context, contractorID uint, query *dto.ListQuery) ([]*dto.ReviewResponse, error)
	GetReview(ctx context.Context, contractorID, reviewID uint) (*dto.ReviewResponse, error)
	// CreateReview добавляет отзыв и пересчитывает средний рейтинг
	// подрядчика по всем текущим отзывам
	CreateReview(ctx context.Context, caller *models.User, contractorID uint, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	// DeleteReview удаляет отзыв и так же пересчитывает рейтинг;
	// после удаления последнего отзыва рейтинг становится NULL
	DeleteReview(ctx context.Context, caller *models.User, contractorID, reviewID uint) error
}

type reviewService struct {
	reviewRepo     repositories.ReviewRepository
	contractorRepo repositories.ContractorRepository
	gate           *permissions.Gate
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	contractorRepo repositories.ContractorRepository,
	gate *permissions.Gate,
) ReviewService {
	return &reviewService{
		reviewRepo:     reviewRepo,
		contractorRepo: contractorRepo,
		gate:           gate,
	}
}

func (s *reviewService) ListReviews(ctx context.Context, contractorID uint, query *dto.ListQuery) ([]*dto.ReviewResponse, error) {
	if err := s.requireContractor(ctx, contractorID); err != nil {
		return nil, err
	}
	query.Normalize()
	reviews, err := s.reviewRepo.ListByContractor(ctx, contractorID, query.Skip, query.Limit, query.SortOrder)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, dto.NewReviewResponse(&reviews[i]))
	}
	return responses, nil
}

func (s *reviewService) GetReview(ctx context.Context, contractorID, reviewID uint) (*dto.ReviewResponse, error) {
	review, err := s.reviewRepo.FindByID(ctx, contractorID, reviewID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrNotFound(err, "review", "Review not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewReviewResponse(review), nil
}

func (s *reviewService) CreateReview(ctx context.Context, caller *models.User, contractorID uint, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if err := s.requireContractor(ctx, contractorID); err != nil {
		return nil, err
	}

	review := &models.Review{
		ContractorID: contractorID,
		UserID:       caller.ID,
		Rating:       req.Rating,
		Comment:      req.Comment,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.recomputeRating(ctx, contractorID)
	return dto.NewReviewResponse(review), nil
}

func (s *reviewService) DeleteReview(ctx context.Context, caller *models.User, contractorID, reviewID uint) error {
	review, err := s.gate.AdminOrReviewOwner(ctx, caller, contractorID, reviewID)
	if err != nil {
		return err
	}

	if err := s.reviewRepo.Delete(ctx, contractorID, review.ID); err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrNotFound(err, "review", "Review not found")
		}
		return apperrors.InternalError(err)
	}

	s.recomputeRating(ctx, contractorID)
	return nil
}

// recomputeRating - полный пересчет среднего без инкрементальных
// формул. Сбой пересчета не откатывает уже записанный отзыв:
// следующий пересчет выровняет значение.
func (s *reviewService) recomputeRating(ctx context.Context, contractorID uint) {
	avg, err := s.reviewRepo.AverageRating(ctx, contractorID)
	if err != nil {
		logger.CtxError(ctx, "failed to compute average rating", "contractor_id", contractorID, "error", err)
		return
	}
	if err := s.contractorRepo.UpdateAverageRating(ctx, contractorID, avg); err != nil {
		logger.CtxError(ctx, "failed to store average rating", "contractor_id", contractorID, "error", err)
	}
}

func (s *reviewService) requireContractor(ctx context.Context, contractorID uint) error {
	if _, err := s.contractorRepo.FindByID(ctx, contractorID); err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrNotFound(err, "contractor", "Contractor not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}
