package repositories

import (
	"context"

	"github.com/alinamiashalkina/event-creator/internal/models"

	"gorm.io/gorm"
)

type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	FindByID(ctx context.Context, id uint) (*models.Event, error)
	ListAll(ctx context.Context, skip, limit int, sortOrder string) ([]models.Event, error)
	// ListVisible возвращает мероприятия, где пользователь выступает
	// создателем или организатором
	ListVisible(ctx context.Context, userID uint, skip, limit int, sortOrder string) ([]models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	UpdateOrganizer(ctx context.Context, eventID, organizerID uint) error
	// DeleteWithInvitations удаляет мероприятие и возвращает снятые
	// каскадом приглашения (с получателями) для постановки уведомлений
	DeleteWithInvitations(ctx context.Context, eventID uint) ([]models.EventInvitation, error)
}

type gormEventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &gormEventRepository{db: db}
}

func (r *gormEventRepository) Create(ctx context.Context, event *models.Event) error {
	return translate(r.db.WithContext(ctx).Create(event).Error)
}

func (r *gormEventRepository) FindByID(ctx context.Context, id uint) (*models.Event, error) {
	var event models.Event
	err := r.db.WithContext(ctx).First(&event, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &event, nil
}

func (r *gormEventRepository) ListAll(ctx context.Context, skip, limit int, sortOrder string) ([]models.Event, error) {
	var events []models.Event
	err := r.db.WithContext(ctx).
		Order(orderExpr("created_at", sortOrder)).
		Offset(skip).Limit(limit).
		Find(&events).Error
	return events, err
}

func (r *gormEventRepository) ListVisible(ctx context.Context, userID uint, skip, limit int, sortOrder string) ([]models.Event, error) {
	var events []models.Event
	err := r.db.WithContext(ctx).
		Where("user_id = ? OR organizer_id = ?", userID, userID).
		Order(orderExpr("created_at", sortOrder)).
		Offset(skip).Limit(limit).
		Find(&events).Error
	return events, err
}

func (r *gormEventRepository) Update(ctx context.Context, event *models.Event) error {
	return translate(r.db.WithContext(ctx).Save(event).Error)
}

func (r *gormEventRepository) UpdateOrganizer(ctx context.Context, eventID, organizerID uint) error {
	return r.db.WithContext(ctx).Model(&models.Event{}).
		Where("id = ?", eventID).
		Update("organizer_id", organizerID).Error
}

func (r *gormEventRepository) DeleteWithInvitations(ctx context.Context, eventID uint) ([]models.EventInvitation, error) {
	var invitations []models.EventInvitation
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("event_id = ?", eventID).
			Preload("Recipient.User").
			Find(&invitations).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", eventID).
			Delete(&models.EventInvitation{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Event{}, eventID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}
	return invitations, nil
}
