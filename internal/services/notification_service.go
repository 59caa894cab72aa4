package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/alinamiashalkina/event-creator/internal/email"
	"github.com/alinamiashalkina/event-creator/internal/logger"
	"github.com/alinamiashalkina/event-creator/internal/models"
	"github.com/alinamiashalkina/event-creator/internal/repositories"
	"github.com/alinamiashalkina/event-creator/internal/services/dto"
	"github.com/alinamiashalkina/event-creator/pkg/apperrors"
)

// Notifier ставит уведомление в очередь: строка в таблице notifications
// плюс письмо по шаблону. Вызывается ПОСЛЕ коммита изменившей состояние
// транзакции; работает best-effort в отдельной горутине - сбой доставки
// логируется и не влияет на исходный запрос.
type Notifier interface {
	Queue(userID uint, toEmail string, notifType string, subject string, data map[string]interface{})
}

type NotificationService interface {
	Notifier
	ListNotifications(ctx context.Context, userID uint, query *dto.ListQuery) ([]*dto.NotificationResponse, error)
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
	provider         email.Provider
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	provider email.Provider,
) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		provider:         provider,
	}
}

const dispatchTimeout = 30 * time.Second

func (s *notificationService) Queue(userID uint, toEmail string, notifType string, subject string, data map[string]interface{}) {
	go s.dispatch(userID, toEmail, notifType, subject, data)
}

// dispatch выполняется вне запроса, поэтому живет на собственном
// контексте с таймаутом
func (s *notificationService) dispatch(userID uint, toEmail string, notifType string, subject string, data map[string]interface{}) {
	ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
	defer cancel()

	log := logger.GetLogger().With(
		"notification_type", notifType,
		"user_id", userID,
	)

	payload, err := json.Marshal(data)
	if err != nil {
		log.Error("failed to marshal notification context", "error", err)
		payload = []byte("{}")
	}

	notification := &models.Notification{
		UserID:  userID,
		Type:    notifType,
		Subject: subject,
		Context: payload,
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		log.Error("failed to persist notification", "error", err)
	}

	if toEmail == "" {
		return
	}
	if err := s.provider.SendTemplate([]string{toEmail}, subject, notifType, email.TemplateData(data)); err != nil {
		log.Error("failed to send notification email", "error", err)
	}
}

func (s *notificationService) ListNotifications(ctx context.Context, userID uint, query *dto.ListQuery) ([]*dto.NotificationResponse, error) {
	query.Normalize()
	notifications, err := s.notificationRepo.ListByUser(ctx, userID, query.Skip, query.Limit, query.SortOrder)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, dto.NewNotificationResponse(&notifications[i]))
	}
	return responses, nil
}
