package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alinamiashalkina/event-creator/internal/email"
	"github.com/alinamiashalkina/event-creator/internal/services/dto"
)

type sentTemplate struct {
	To       []string
	Subject  string
	Template string
	Data     email.TemplateData
}

type fakeEmailProvider struct {
	sent    []sentTemplate
	sendErr error
}

func (p *fakeEmailProvider) Send(_ *email.Email) error { return p.sendErr }

func (p *fakeEmailProvider) SendTemplate(to []string, subject string, templateName string, data email.TemplateData) error {
	if p.sendErr != nil {
		return p.sendErr
	}
	p.sent = append(p.sent, sentTemplate{To: to, Subject: subject, Template: templateName, Data: data})
	return nil
}

func (p *fakeEmailProvider) Validate() error { return nil }
func (p *fakeEmailProvider) Close() error    { return nil }

func TestNotificationService_DispatchPersistsAndSends(t *testing.T) {
	repo := newFakeNotificationRepo()
	provider := &fakeEmailProvider{}
	svc := &notificationService{notificationRepo: repo, provider: provider}

	svc.dispatch(7, "dj@example.com", "invitation_sent", "You have been invited to an event",
		map[string]interface{}{"EventName": "Summer wedding"})

	require.Len(t, repo.notifications, 1)
	assert.Equal(t, uint(7), repo.notifications[0].UserID)
	assert.Equal(t, "invitation_sent", repo.notifications[0].Type)
	assert.JSONEq(t, `{"EventName": "Summer wedding"}`, string(repo.notifications[0].Context))

	require.Len(t, provider.sent, 1)
	assert.Equal(t, []string{"dj@example.com"}, provider.sent[0].To)
	assert.Equal(t, "invitation_sent", provider.sent[0].Template)
}

func TestNotificationService_DispatchWithoutEmail(t *testing.T) {
	repo := newFakeNotificationRepo()
	provider := &fakeEmailProvider{}
	svc := &notificationService{notificationRepo: repo, provider: provider}

	// Без адреса запись сохраняется, письмо не уходит
	svc.dispatch(7, "", "event_deleted", "Event has been canceled", nil)

	assert.Len(t, repo.notifications, 1)
	assert.Empty(t, provider.sent)
}

func TestNotificationService_SendFailureIsSwallowed(t *testing.T) {
	repo := newFakeNotificationRepo()
	provider := &fakeEmailProvider{sendErr: errors.New("smtp down")}
	svc := &notificationService{notificationRepo: repo, provider: provider}

	// Сбой почты не роняет поток и не откатывает запись
	svc.dispatch(7, "dj@example.com", "invitation_sent", "subject", nil)

	assert.Len(t, repo.notifications, 1)
}

func TestNotificationService_ListNotifications(t *testing.T) {
	repo := newFakeNotificationRepo()
	provider := &fakeEmailProvider{}
	svc := NewNotificationService(repo, provider)

	inner := svc.(*notificationService)
	inner.dispatch(1, "", "invitation_sent", "first", nil)
	inner.dispatch(1, "", "invitation_canceled", "second", nil)
	inner.dispatch(2, "", "invitation_sent", "other user", nil)

	list, err := svc.ListNotifications(context.Background(), 1, &dto.ListQuery{})
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
