package repositories

import (
	"context"
	"time"

	"github.com/alinamiashalkina/event-creator/internal/models"

	"gorm.io/gorm"
)

type TokenRepository interface {
	Blacklist(ctx context.Context, token string, expiresAt time.Time) error
	IsBlacklisted(ctx context.Context, token string) (bool, error)
	// DeleteExpired удаляет записи с истекшим сроком действия;
	// вызывается фоновым воркером
	DeleteExpired(ctx context.Context) (int64, error)
}

type gormTokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &gormTokenRepository{db: db}
}

func (r *gormTokenRepository) Blacklist(ctx context.Context, token string, expiresAt time.Time) error {
	return translate(r.db.WithContext(ctx).Create(&models.BlacklistedToken{
		Token:     token,
		ExpiresAt: expiresAt,
	}).Error)
}

func (r *gormTokenRepository) IsBlacklisted(ctx context.Context, token string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.BlacklistedToken{}).
		Where("token = ?", token).
		Count(&count).Error
	return count > 0, err
}

func (r *gormTokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&models.BlacklistedToken{})
	return result.RowsAffected, result.Error
}
