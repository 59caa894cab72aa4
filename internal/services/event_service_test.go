package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alinamiashalkina/event-creator/internal/models"
	"github.com/alinamiashalkina/event-creator/internal/services/dto"
	"github.com/alinamiashalkina/event-creator/pkg/apperrors"
)

func newEventService(env *testEnv) EventService {
	return NewEventService(env.events, env.invitations, env.contractors, env.gate, env.notifier)
}

func TestEventService_CreateEvent(t *testing.T) {
	env := newTestEnv()
	svc := newEventService(env)
	ctx := context.Background()

	owner := env.addUser("owner", models.UserRoleUser, true)
	stranger := env.addUser("stranger", models.UserRoleUser, true)
	admin := env.addUser("admin", models.UserRoleAdmin, true)

	req := &dto.CreateEventRequest{
		Name:      "Birthday party",
		Location:  "Main hall",
		StartTime: time.Now().Add(24 * time.Hour),
		EndTime:   time.Now().Add(28 * time.Hour),
	}

	resp, err := svc.CreateEvent(ctx, owner, owner.ID, req)
	require.NoError(t, err)
	// При создании организатор совпадает с создателем
	assert.Equal(t, owner.ID, resp.UserID)
	assert.Equal(t, owner.ID, resp.OrganizerID)

	// Пользователь не может создать мероприятие от чужого имени
	_, err = svc.CreateEvent(ctx, stranger, owner.ID, req)
	require.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	// Админ может
	resp, err = svc.CreateEvent(ctx, admin, owner.ID, req)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, resp.UserID)
}

func TestEventService_ListEvents_Visibility(t *testing.T) {
	env := newTestEnv()
	svc := newEventService(env)
	ctx := context.Background()

	owner := env.addUser("owner", models.UserRoleUser, true)
	other := env.addUser("other", models.UserRoleUser, true)
	admin := env.addUser("admin", models.UserRoleAdmin, true)
	env.addEvent(owner)
	env.addEvent(other)

	// Пользователь видит только свои мероприятия
	mine, err := svc.ListEvents(ctx, owner, &dto.ListQuery{})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, owner.ID, mine[0].UserID)

	// Админ видит все
	all, err := svc.ListEvents(ctx, admin, &dto.ListQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestEventService_GetEvent_InvitedContractorCanView(t *testing.T) {
	env := newTestEnv()
	svc := newEventService(env)
	ctx := context.Background()

	owner := env.addUser("owner", models.UserRoleUser, true)
	contractor := env.addContractor("dj", true)
	outsider := env.addContractor("caterer", true)
	event := env.addEvent(owner)
	env.addInvitation(event, contractor, models.InvitationStatusPending)

	// Приглашенный подрядчик видит мероприятие независимо от статуса
	// приглашения
	resp, err := svc.GetEvent(ctx, contractor.User, event.ID)
	require.NoError(t, err)
	assert.Equal(t, event.ID, resp.ID)

	// Неприглашенный - нет
	_, err = svc.GetEvent(ctx, outsider.User, event.ID)
	require.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	// Несуществующее мероприятие - NotFound, а не Forbidden
	_, err = svc.GetEvent(ctx, outsider.User, 999)
	requireAppErrorCode(t, err, apperrors.CodeNotFound)
}

func TestEventService_UpdateEvent(t *testing.T) {
	env := newTestEnv()
	svc := newEventService(env)
	ctx := context.Background()

	owner := env.addUser("owner", models.UserRoleUser, true)
	event := env.addEvent(owner)

	newName := "Autumn gala"
	resp, err := svc.UpdateEvent(ctx, owner, event.ID, &dto.UpdateEventRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, newName, resp.Name)
	assert.Equal(t, 1, env.events.updateCalls)

	// Пустой PATCH не трогает базу
	_, err = svc.UpdateEvent(ctx, owner, event.ID, &dto.UpdateEventRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, env.events.updateCalls)

	// Конец раньше начала отклоняется с учетом неизмененных полей
	badEnd := event.StartTime.Add(-time.Hour)
	_, err = svc.UpdateEvent(ctx, owner, event.ID, &dto.UpdateEventRequest{EndTime: &badEnd})
	requireAppErrorCode(t, err, apperrors.CodeValidationFailed)
	assert.Equal(t, 1, env.events.updateCalls)
}

func TestEventService_ReassignOrganizer(t *testing.T) {
	env := newTestEnv()
	svc := newEventService(env)
	ctx := context.Background()

	owner := env.addUser("owner", models.UserRoleUser, true)
	contractor := env.addContractor("dj", true)
	event := env.addEvent(owner)
	invitation := env.addInvitation(event, contractor, models.InvitationStatusAccepted)

	// Без подтвержденного приглашения передача невозможна
	_, err := svc.ReassignOrganizer(ctx, owner, event.ID, &dto.ReassignOrganizerRequest{ContractorID: contractor.ID})
	require.ErrorIs(t, err, apperrors.ErrOrganizerNotConfirmed)

	invitation.Status = models.InvitationStatusConfirmed

	resp, err := svc.ReassignOrganizer(ctx, owner, event.ID, &dto.ReassignOrganizerRequest{ContractorID: contractor.ID})
	require.NoError(t, err)
	// Организатором становится учетная запись подрядчика, не профиль
	assert.Equal(t, contractor.UserID, resp.OrganizerID)
	assert.Equal(t, contractor.UserID, env.events.events[event.ID].OrganizerID)

	// Новый организатор видит мероприятие в своем списке
	visible, err := svc.ListEvents(ctx, contractor.User, &dto.ListQuery{})
	require.NoError(t, err)
	assert.Len(t, visible, 1)
}

func TestEventService_ReassignOrganizer_UnknownContractor(t *testing.T) {
	env := newTestEnv()
	svc := newEventService(env)
	ctx := context.Background()

	owner := env.addUser("owner", models.UserRoleUser, true)
	event := env.addEvent(owner)

	_, err := svc.ReassignOrganizer(ctx, owner, event.ID, &dto.ReassignOrganizerRequest{ContractorID: 999})
	requireAppErrorCode(t, err, apperrors.CodeNotFound)
}

func TestEventService_DeleteEvent_NotifiesEveryInvitee(t *testing.T) {
	env := newTestEnv()
	svc := newEventService(env)
	ctx := context.Background()

	owner := env.addUser("owner", models.UserRoleUser, true)
	dj := env.addContractor("dj", true)
	caterer := env.addContractor("caterer", true)
	event := env.addEvent(owner)
	env.addInvitation(event, dj, models.InvitationStatusConfirmed)
	env.addInvitation(event, caterer, models.InvitationStatusPending)

	err := svc.DeleteEvent(ctx, owner, event.ID)
	require.NoError(t, err)
	assert.NotContains(t, env.events.events, event.ID)
	assert.Empty(t, env.invitations.invitations)

	// По одному уведомлению на каждое снятое приглашение
	calls := env.notifier.callsOfType("event_deleted")
	require.Len(t, calls, 2)
	notified := map[uint]bool{}
	for _, call := range calls {
		notified[call.UserID] = true
	}
	assert.True(t, notified[dj.UserID])
	assert.True(t, notified[caterer.UserID])
}

func TestEventService_DeleteEvent_CreatorOnly(t *testing.T) {
	env := newTestEnv()
	svc := newEventService(env)
	ctx := context.Background()

	owner := env.addUser("owner", models.UserRoleUser, true)
	contractor := env.addContractor("dj", true)
	event := env.addEvent(owner)
	env.addInvitation(event, contractor, models.InvitationStatusConfirmed)

	// Переназначаем организатора на подрядчика
	_, err := svc.ReassignOrganizer(ctx, owner, event.ID, &dto.ReassignOrganizerRequest{ContractorID: contractor.ID})
	require.NoError(t, err)

	// Организатор-не-создатель не может удалить мероприятие
	err = svc.DeleteEvent(ctx, contractor.User, event.ID)
	require.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	// Создатель может
	err = svc.DeleteEvent(ctx, owner, event.ID)
	require.NoError(t, err)
}
