package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alinamiashalkina/event-creator/internal/models"
	"github.com/alinamiashalkina/event-creator/internal/services/dto"
	"github.com/alinamiashalkina/event-creator/pkg/apperrors"
)

func newContractorService(env *testEnv) ContractorService {
	return NewContractorService(env.contractors, env.portfolio, env.users, env.gate, env.notifier)
}

func TestContractorService_Approve(t *testing.T) {
	env := newTestEnv()
	svc := newContractorService(env)
	ctx := context.Background()

	admin := env.addUser("admin", models.UserRoleAdmin, true)
	applicant := env.addContractor("dj", false)

	resp, err := svc.Approve(ctx, admin, applicant.ID)
	require.NoError(t, err)
	assert.True(t, resp.IsApproved)

	// Одобрение активирует учетную запись
	user, err := env.users.FindByID(ctx, applicant.UserID)
	require.NoError(t, err)
	assert.True(t, user.IsActive)

	// Подрядчик получает письмо об одобрении
	calls := env.notifier.callsOfType("contractor_approved")
	require.Len(t, calls, 1)
	assert.Equal(t, applicant.UserID, calls[0].UserID)

	// Повторное одобрение отклоняется
	_, err = svc.Approve(ctx, admin, applicant.ID)
	requireAppErrorCode(t, err, apperrors.CodeInvalidOperation)
}

func TestContractorService_Approve_AdminOnly(t *testing.T) {
	env := newTestEnv()
	svc := newContractorService(env)
	ctx := context.Background()

	user := env.addUser("alice", models.UserRoleUser, true)
	applicant := env.addContractor("dj", false)

	_, err := svc.Approve(ctx, user, applicant.ID)
	require.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	// Сам заявитель тоже не может одобрить себя
	_, err = svc.Approve(ctx, applicant.User, applicant.ID)
	require.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
}

func TestContractorService_Reject(t *testing.T) {
	env := newTestEnv()
	svc := newContractorService(env)
	ctx := context.Background()

	admin := env.addUser("admin", models.UserRoleAdmin, true)
	applicant := env.addContractor("dj", false)
	approved := env.addContractor("caterer", true)

	err := svc.Reject(ctx, admin, applicant.ID)
	require.NoError(t, err)

	// Отклонение удаляет учетную запись заявителя
	_, err = env.users.FindByID(ctx, applicant.UserID)
	require.Error(t, err)

	calls := env.notifier.callsOfType("contractor_rejected")
	require.Len(t, calls, 1)

	// Одобренного подрядчика отклонить нельзя
	err = svc.Reject(ctx, admin, approved.ID)
	requireAppErrorCode(t, err, apperrors.CodeInvalidOperation)
}

func TestContractorService_UpdateContractor(t *testing.T) {
	env := newTestEnv()
	svc := newContractorService(env)
	ctx := context.Background()

	contractor := env.addContractor("dj", true)
	stranger := env.addUser("stranger", models.UserRoleUser, true)

	newDescription := "Live sets and lighting"
	newName := "DJ Max"
	resp, err := svc.UpdateContractor(ctx, contractor.User, contractor.ID, &dto.UpdateContractorRequest{
		Description: &newDescription,
		User:        &dto.UpdateUserRequest{Name: &newName},
	})
	require.NoError(t, err)
	assert.Equal(t, newDescription, resp.Description)
	require.NotNil(t, resp.User)
	assert.Equal(t, newName, resp.User.Name)

	// Чужой профиль недоступен
	_, err = svc.UpdateContractor(ctx, stranger, contractor.ID, &dto.UpdateContractorRequest{
		Description: &newDescription,
	})
	require.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
}

func TestContractorService_ServicesCRUD(t *testing.T) {
	env := newTestEnv()
	svc := newContractorService(env)
	ctx := context.Background()

	contractor := env.addContractor("dj", true)

	created, err := svc.AddContractorService(ctx, contractor.User, contractor.ID, &dto.ContractorServiceInput{
		ServiceID:   7,
		Description: "Evening set",
		Price:       "500",
	})
	require.NoError(t, err)
	assert.Equal(t, contractor.ID, created.ContractorID)

	newPrice := "600"
	updated, err := svc.UpdateContractorService(ctx, contractor.User, contractor.ID, created.ID,
		&dto.UpdateContractorServiceRequest{Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, "600", updated.Price)

	list, err := svc.ListContractorServices(ctx, contractor.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	err = svc.DeleteContractorService(ctx, contractor.User, contractor.ID, created.ID)
	require.NoError(t, err)

	_, err = svc.GetContractorService(ctx, contractor.ID, created.ID)
	requireAppErrorCode(t, err, apperrors.CodeNotFound)
}

func TestContractorService_PortfolioCRUD(t *testing.T) {
	env := newTestEnv()
	svc := newContractorService(env)
	ctx := context.Background()

	contractor := env.addContractor("dj", true)
	other := env.addContractor("caterer", true)

	item, err := svc.AddPortfolioItem(ctx, contractor.User, contractor.ID, &dto.PortfolioItemInput{
		Type:        "photo",
		URL:         "https://example.com/set.jpg",
		Description: "Open air set",
	})
	require.NoError(t, err)

	// Элемент чужого портфолио неотличим от несуществующего
	_, err = svc.GetPortfolioItem(ctx, other.ID, item.ID)
	requireAppErrorCode(t, err, apperrors.CodeNotFound)

	// И редактировать чужое портфолио нельзя
	newDescription := "Stolen"
	_, err = svc.UpdatePortfolioItem(ctx, other.User, contractor.ID, item.ID,
		&dto.UpdatePortfolioItemRequest{Description: &newDescription})
	require.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	err = svc.DeletePortfolioItem(ctx, contractor.User, contractor.ID, item.ID)
	require.NoError(t, err)

	list, err := svc.ListPortfolio(ctx, contractor.ID, &dto.ListQuery{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUserService_AdminOrSelf(t *testing.T) {
	env := newTestEnv()
	svc := NewUserService(env.users, env.gate)
	ctx := context.Background()

	admin := env.addUser("admin", models.UserRoleAdmin, true)
	alice := env.addUser("alice", models.UserRoleUser, true)
	bob := env.addUser("bob", models.UserRoleUser, true)

	// Список пользователей доступен только админу
	users, err := svc.ListUsers(ctx, admin, &dto.ListQuery{})
	require.NoError(t, err)
	assert.Len(t, users, 2)

	_, err = svc.ListUsers(ctx, alice, &dto.ListQuery{})
	require.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	// Свой профиль доступен, чужой - нет
	got, err := svc.GetUser(ctx, alice, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.Username, got.Username)

	_, err = svc.GetUser(ctx, alice, bob.ID)
	require.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	// Несуществующий профиль - NotFound, а не Forbidden
	_, err = svc.GetUser(ctx, alice, 999)
	requireAppErrorCode(t, err, apperrors.CodeNotFound)

	newName := "Alice Q"
	updated, err := svc.UpdateUser(ctx, alice, alice.ID, &dto.UpdateUserRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, newName, updated.Name)

	err = svc.DeleteUser(ctx, admin, bob.ID)
	require.NoError(t, err)
	_, err = env.users.FindByID(ctx, bob.ID)
	require.Error(t, err)
}
