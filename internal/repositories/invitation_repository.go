package repositories

import (
	"context"

	"github.com/alinamiashalkina/event-creator/internal/models"

	"gorm.io/gorm"
)

type InvitationRepository interface {
	Create(ctx context.Context, invitation *models.EventInvitation) error
	FindByID(ctx context.Context, id uint) (*models.EventInvitation, error)
	// FindForRecipient и FindForEvent - скоупленные варианты поиска:
	// приглашение, не принадлежащее получателю/мероприятию, неотличимо
	// от несуществующего (NotFound, не Forbidden)
	FindForRecipient(ctx context.Context, id, recipientID uint) (*models.EventInvitation, error)
	FindForEvent(ctx context.Context, id, eventID uint) (*models.EventInvitation, error)
	ListByEvent(ctx context.Context, eventID uint, skip, limit int, sortOrder string) ([]models.EventInvitation, error)
	ListByRecipient(ctx context.Context, recipientID uint, skip, limit int, sortOrder string) ([]models.EventInvitation, error)
	// Exists - индексная проверка наличия приглашения для пары
	// (мероприятие, получатель) независимо от статуса
	Exists(ctx context.Context, eventID, recipientID uint) (bool, error)
	// ExistsWithStatus - индексная проверка наличия приглашения
	// в конкретном статусе
	ExistsWithStatus(ctx context.Context, eventID, recipientID uint, status models.InvitationStatus) (bool, error)
	UpdateStatus(ctx context.Context, id uint, status models.InvitationStatus) error
	// UpdateStatusIf переводит статус только из ожидаемого исходного
	// состояния; возвращает false, если исходный статус уже другой.
	// Так конкурирующие переходы на одном приглашении разрешаются
	// детерминированно на уровне базы.
	UpdateStatusIf(ctx context.Context, id uint, from, to models.InvitationStatus) (bool, error)
	Delete(ctx context.Context, id uint) error
}

type gormInvitationRepository struct {
	db *gorm.DB
}

func NewInvitationRepository(db *gorm.DB) InvitationRepository {
	return &gormInvitationRepository{db: db}
}

func (r *gormInvitationRepository) Create(ctx context.Context, invitation *models.EventInvitation) error {
	return translate(r.db.WithContext(ctx).Create(invitation).Error)
}

func (r *gormInvitationRepository) FindByID(ctx context.Context, id uint) (*models.EventInvitation, error) {
	var invitation models.EventInvitation
	err := r.db.WithContext(ctx).
		Preload("Event").
		Preload("Recipient.User").
		Preload("Sender").
		First(&invitation, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &invitation, nil
}

func (r *gormInvitationRepository) FindForRecipient(ctx context.Context, id, recipientID uint) (*models.EventInvitation, error) {
	var invitation models.EventInvitation
	err := r.db.WithContext(ctx).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		Preload("Event").
		Preload("Sender").
		First(&invitation).Error
	if err != nil {
		return nil, translate(err)
	}
	return &invitation, nil
}

func (r *gormInvitationRepository) FindForEvent(ctx context.Context, id, eventID uint) (*models.EventInvitation, error) {
	var invitation models.EventInvitation
	err := r.db.WithContext(ctx).
		Where("id = ? AND event_id = ?", id, eventID).
		Preload("Event").
		Preload("Recipient.User").
		First(&invitation).Error
	if err != nil {
		return nil, translate(err)
	}
	return &invitation, nil
}

func (r *gormInvitationRepository) ListByEvent(ctx context.Context, eventID uint, skip, limit int, sortOrder string) ([]models.EventInvitation, error) {
	var invitations []models.EventInvitation
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order(orderExpr("created_at", sortOrder)).
		Offset(skip).Limit(limit).
		Find(&invitations).Error
	return invitations, err
}

func (r *gormInvitationRepository) ListByRecipient(ctx context.Context, recipientID uint, skip, limit int, sortOrder string) ([]models.EventInvitation, error) {
	var invitations []models.EventInvitation
	err := r.db.WithContext(ctx).
		Where("recipient_id = ?", recipientID).
		Order(orderExpr("created_at", sortOrder)).
		Offset(skip).Limit(limit).
		Preload("Event").
		Find(&invitations).Error
	return invitations, err
}

func (r *gormInvitationRepository) Exists(ctx context.Context, eventID, recipientID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.EventInvitation{}).
		Where("event_id = ? AND recipient_id = ?", eventID, recipientID).
		Count(&count).Error
	return count > 0, err
}

func (r *gormInvitationRepository) ExistsWithStatus(ctx context.Context, eventID, recipientID uint, status models.InvitationStatus) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.EventInvitation{}).
		Where("event_id = ? AND recipient_id = ? AND status = ?", eventID, recipientID, status).
		Count(&count).Error
	return count > 0, err
}

func (r *gormInvitationRepository) UpdateStatus(ctx context.Context, id uint, status models.InvitationStatus) error {
	result := r.db.WithContext(ctx).Model(&models.EventInvitation{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *gormInvitationRepository) UpdateStatusIf(ctx context.Context, id uint, from, to models.InvitationStatus) (bool, error) {
	result := r.db.WithContext(ctx).Model(&models.EventInvitation{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *gormInvitationRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.EventInvitation{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
