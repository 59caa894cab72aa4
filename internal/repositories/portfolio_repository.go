package repositories

import (
	"context"

	"github.com/alinamiashalkina/event-creator/internal/models"

	"gorm.io/gorm"
)

type PortfolioRepository interface {
	ListByContractor(ctx context.Context, contractorID uint, skip, limit int, sortOrder string) ([]models.PortfolioItem, error)
	FindByID(ctx context.Context, contractorID, itemID uint) (*models.PortfolioItem, error)
	Create(ctx context.Context, item *models.PortfolioItem) error
	Update(ctx context.Context, item *models.PortfolioItem) error
	Delete(ctx context.Context, contractorID, itemID uint) error
}

type gormPortfolioRepository struct {
	db *gorm.DB
}

func NewPortfolioRepository(db *gorm.DB) PortfolioRepository {
	return &gormPortfolioRepository{db: db}
}

// ListByContractor возвращает портфолио подрядчика,
// сортировка по дате последнего обновления
func (r *gormPortfolioRepository) ListByContractor(ctx context.Context, contractorID uint, skip, limit int, sortOrder string) ([]models.PortfolioItem, error) {
	var items []models.PortfolioItem
	err := r.db.WithContext(ctx).
		Where("contractor_id = ?", contractorID).
		Order(orderExpr("updated_at", sortOrder)).
		Offset(skip).Limit(limit).
		Find(&items).Error
	return items, err
}

func (r *gormPortfolioRepository) FindByID(ctx context.Context, contractorID, itemID uint) (*models.PortfolioItem, error) {
	var item models.PortfolioItem
	err := r.db.WithContext(ctx).
		Where("contractor_id = ? AND id = ?", contractorID, itemID).
		First(&item).Error
	if err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (r *gormPortfolioRepository) Create(ctx context.Context, item *models.PortfolioItem) error {
	return translate(r.db.WithContext(ctx).Create(item).Error)
}

func (r *gormPortfolioRepository) Update(ctx context.Context, item *models.PortfolioItem) error {
	return translate(r.db.WithContext(ctx).Save(item).Error)
}

func (r *gormPortfolioRepository) Delete(ctx context.Context, contractorID, itemID uint) error {
	result := r.db.WithContext(ctx).
		Where("contractor_id = ? AND id = ?", contractorID, itemID).
		Delete(&models.PortfolioItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
