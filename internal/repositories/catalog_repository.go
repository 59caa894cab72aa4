package repositories

import (
	"context"

	"github.com/alinamiashalkina/event-creator/internal/models"

	"gorm.io/gorm"
)

type CatalogRepository interface {
	// Категории услуг
	ListCategories(ctx context.Context, skip, limit int, sortOrder string) ([]models.Category, error)
	FindCategory(ctx context.Context, id uint) (*models.Category, error)
	CategoryNameExists(ctx context.Context, name string) (bool, error)
	CreateCategory(ctx context.Context, category *models.Category) error
	UpdateCategory(ctx context.Context, category *models.Category) error
	DeleteCategory(ctx context.Context, id uint) error

	// Услуги внутри категории
	ListServices(ctx context.Context, categoryID uint, skip, limit int, sortOrder string) ([]models.Service, error)
	FindService(ctx context.Context, categoryID, serviceID uint) (*models.Service, error)
	ServiceNameExists(ctx context.Context, name string) (bool, error)
	CreateService(ctx context.Context, service *models.Service) error
	UpdateService(ctx context.Context, service *models.Service) error
	DeleteService(ctx context.Context, categoryID, serviceID uint) error
}

type gormCatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &gormCatalogRepository{db: db}
}

func (r *gormCatalogRepository) ListCategories(ctx context.Context, skip, limit int, sortOrder string) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).
		Order(orderExpr("name", sortOrder)).
		Offset(skip).Limit(limit).
		Find(&categories).Error
	return categories, err
}

func (r *gormCatalogRepository) FindCategory(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).First(&category, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &category, nil
}

func (r *gormCatalogRepository) CategoryNameExists(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Category{}).
		Where("name = ?", name).
		Count(&count).Error
	return count > 0, err
}

func (r *gormCatalogRepository) CreateCategory(ctx context.Context, category *models.Category) error {
	return translate(r.db.WithContext(ctx).Create(category).Error)
}

func (r *gormCatalogRepository) UpdateCategory(ctx context.Context, category *models.Category) error {
	return translate(r.db.WithContext(ctx).Save(category).Error)
}

// DeleteCategory удаляет категорию; услуги категории удаляются каскадно
func (r *gormCatalogRepository) DeleteCategory(ctx context.Context, id uint) error {
	return translate(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).
			Delete(&models.Service{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Category{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	}))
}

func (r *gormCatalogRepository) ListServices(ctx context.Context, categoryID uint, skip, limit int, sortOrder string) ([]models.Service, error) {
	var services []models.Service
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order(orderExpr("name", sortOrder)).
		Offset(skip).Limit(limit).
		Find(&services).Error
	return services, err
}

func (r *gormCatalogRepository) FindService(ctx context.Context, categoryID, serviceID uint) (*models.Service, error) {
	var service models.Service
	err := r.db.WithContext(ctx).
		Where("category_id = ? AND id = ?", categoryID, serviceID).
		First(&service).Error
	if err != nil {
		return nil, translate(err)
	}
	return &service, nil
}

func (r *gormCatalogRepository) ServiceNameExists(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Service{}).
		Where("name = ?", name).
		Count(&count).Error
	return count > 0, err
}

func (r *gormCatalogRepository) CreateService(ctx context.Context, service *models.Service) error {
	return translate(r.db.WithContext(ctx).Create(service).Error)
}

func (r *gormCatalogRepository) UpdateService(ctx context.Context, service *models.Service) error {
	return translate(r.db.WithContext(ctx).Save(service).Error)
}

func (r *gormCatalogRepository) DeleteService(ctx context.Context, categoryID, serviceID uint) error {
	result := r.db.WithContext(ctx).
		Where("category_id = ? AND id = ?", categoryID, serviceID).
		Delete(&models.Service{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
