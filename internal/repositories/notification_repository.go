package repositories

import (
	"context"

	"github.com/alinamiashalkina/event-creator/internal/models"

	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	ListByUser(ctx context.Context, userID uint, skip, limit int, sortOrder string) ([]models.Notification, error)
}

type gormNotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &gormNotificationRepository{db: db}
}

func (r *gormNotificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	return translate(r.db.WithContext(ctx).Create(notification).Error)
}

func (r *gormNotificationRepository) ListByUser(ctx context.Context, userID uint, skip, limit int, sortOrder string) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order(orderExpr("created_at", sortOrder)).
		Offset(skip).Limit(limit).
		Find(&notifications).Error
	return notifications, err
}
