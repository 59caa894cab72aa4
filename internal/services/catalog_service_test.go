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

func TestCatalogService_CategoryCRUD(t *testing.T) {
	env := newTestEnv()
	svc := NewCatalogService(env.catalog, env.gate)
	ctx := context.Background()

	admin := env.addUser("admin", models.UserRoleAdmin, true)
	user := env.addUser("alice", models.UserRoleUser, true)

	// Запись в справочник доступна только админу
	_, err := svc.CreateCategory(ctx, user, &dto.CreateCategoryRequest{Name: "Music"})
	require.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	category, err := svc.CreateCategory(ctx, admin, &dto.CreateCategoryRequest{Name: "Music", Description: "Bands and DJs"})
	require.NoError(t, err)

	// Имя категории уникально
	_, err = svc.CreateCategory(ctx, admin, &dto.CreateCategoryRequest{Name: "Music"})
	requireAppErrorCode(t, err, apperrors.CodeAlreadyExists)

	// Чтение открыто любому аутентифицированному
	got, err := svc.GetCategory(ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, "Music", got.Name)

	newName := "Live music"
	updated, err := svc.UpdateCategory(ctx, admin, category.ID, &dto.UpdateCategoryRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, newName, updated.Name)

	err = svc.DeleteCategory(ctx, admin, category.ID)
	require.NoError(t, err)
	_, err = svc.GetCategory(ctx, category.ID)
	requireAppErrorCode(t, err, apperrors.CodeNotFound)
}

func TestCatalogService_ServiceCRUD(t *testing.T) {
	env := newTestEnv()
	svc := NewCatalogService(env.catalog, env.gate)
	ctx := context.Background()

	admin := env.addUser("admin", models.UserRoleAdmin, true)

	category, err := svc.CreateCategory(ctx, admin, &dto.CreateCategoryRequest{Name: "Catering"})
	require.NoError(t, err)
	other, err := svc.CreateCategory(ctx, admin, &dto.CreateCategoryRequest{Name: "Decor"})
	require.NoError(t, err)

	service, err := svc.CreateService(ctx, admin, category.ID, &dto.CreateServiceRequest{Name: "Buffet"})
	require.NoError(t, err)
	assert.Equal(t, category.ID, service.CategoryID)

	// Услуга привязана к своей категории
	_, err = svc.GetService(ctx, other.ID, service.ID)
	requireAppErrorCode(t, err, apperrors.CodeNotFound)

	list, err := svc.ListServices(ctx, category.ID, &dto.ListQuery{})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	// Удаление категории уносит ее услуги
	err = svc.DeleteCategory(ctx, admin, category.ID)
	require.NoError(t, err)
	_, err = svc.GetService(ctx, category.ID, service.ID)
	requireAppErrorCode(t, err, apperrors.CodeNotFound)
}
