package repositories

import (
	"context"

	"github.com/alinamiashalkina/event-creator/internal/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	FindByID(ctx context.Context, contractorID, reviewID uint) (*models.Review, error)
	ListByContractor(ctx context.Context, contractorID uint, skip, limit int, sortOrder string) ([]models.Review, error)
	Delete(ctx context.Context, contractorID, reviewID uint) error
	// AverageRating считает среднее по всем текущим отзывам подрядчика,
	// nil - если отзывов нет. Всегда полный пересчет, без кэширования.
	AverageRating(ctx context.Context, contractorID uint) (*float64, error)
}

type gormReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &gormReviewRepository{db: db}
}

func (r *gormReviewRepository) Create(ctx context.Context, review *models.Review) error {
	return translate(r.db.WithContext(ctx).Create(review).Error)
}

func (r *gormReviewRepository) FindByID(ctx context.Context, contractorID, reviewID uint) (*models.Review, error) {
	var review models.Review
	err := r.db.WithContext(ctx).
		Where("contractor_id = ? AND id = ?", contractorID, reviewID).
		First(&review).Error
	if err != nil {
		return nil, translate(err)
	}
	return &review, nil
}

// ListByContractor возвращает отзывы на подрядчика,
// сортировка по дате добавления
func (r *gormReviewRepository) ListByContractor(ctx context.Context, contractorID uint, skip, limit int, sortOrder string) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.WithContext(ctx).
		Where("contractor_id = ?", contractorID).
		Order(orderExpr("created_at", sortOrder)).
		Offset(skip).Limit(limit).
		Find(&reviews).Error
	return reviews, err
}

func (r *gormReviewRepository) Delete(ctx context.Context, contractorID, reviewID uint) error {
	result := r.db.WithContext(ctx).
		Where("contractor_id = ? AND id = ?", contractorID, reviewID).
		Delete(&models.Review{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *gormReviewRepository) AverageRating(ctx context.Context, contractorID uint) (*float64, error) {
	var avg *float64
	err := r.db.WithContext(ctx).Model(&models.Review{}).
		Where("contractor_id = ?", contractorID).
		Select("AVG(rating)").
		Scan(&avg).Error
	if err != nil {
		return nil, err
	}
	return avg, nil
}
