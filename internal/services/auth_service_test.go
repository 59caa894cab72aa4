package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alinamiashalkina/event-creator/internal/auth"
	"github.com/alinamiashalkina/event-creator/internal/models"
	"github.com/alinamiashalkina/event-creator/internal/services/dto"
	"github.com/alinamiashalkina/event-creator/pkg/apperrors"
)

func newAuthService(env *testEnv) (AuthService, *auth.TokenManager) {
	tokens := auth.NewTokenManager("test-secret")
	return NewAuthService(env.users, env.contractors, env.tokens, tokens), tokens
}

func TestAuthService_RegisterUser(t *testing.T) {
	env := newTestEnv()
	svc, _ := newAuthService(env)
	ctx := context.Background()

	req := &dto.RegisterUserRequest{
		Username: "alice",
		Password: "password123",
		Email:    "alice@example.com",
		Name:     "Alice",
	}

	resp, err := svc.RegisterUser(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleUser, resp.Role)
	// Обычный пользователь активен сразу, без модерации
	assert.True(t, resp.IsActive)

	// Повторная регистрация с тем же именем
	_, err = svc.RegisterUser(ctx, req)
	require.ErrorIs(t, err, apperrors.ErrUserAlreadyExists)
}

func TestAuthService_RegisterContractor_StartsInactive(t *testing.T) {
	env := newTestEnv()
	svc, _ := newAuthService(env)
	ctx := context.Background()

	resp, err := svc.RegisterContractor(ctx, &dto.RegisterContractorRequest{
		Username:    "dj",
		Password:    "password123",
		Email:       "dj@example.com",
		Name:        "DJ",
		Photo:       "photo.jpg",
		Description: "Wedding DJ",
		Services: []dto.ContractorServiceInput{
			{ServiceID: 1, Description: "Full evening set", Price: "500"},
		},
	})
	require.NoError(t, err)
	assert.False(t, resp.IsApproved)

	// До одобрения админом учетная запись неактивна и вход закрыт
	user, err := env.users.FindByUsername(ctx, "dj")
	require.NoError(t, err)
	assert.False(t, user.IsActive)
	assert.Equal(t, models.UserRoleContractor, user.Role)

	_, err = svc.Login(ctx, &dto.LoginRequest{Username: "dj", Password: "password123"})
	require.ErrorIs(t, err, apperrors.ErrAccountInactive)
}

func TestAuthService_LoginAndRefresh(t *testing.T) {
	env := newTestEnv()
	svc, tokens := newAuthService(env)
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, &dto.RegisterUserRequest{
		Username: "alice",
		Password: "password123",
		Email:    "alice@example.com",
		Name:     "Alice",
	})
	require.NoError(t, err)

	// Неверный пароль и неизвестный пользователь неразличимы
	_, err = svc.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "wrong"})
	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	_, err = svc.Login(ctx, &dto.LoginRequest{Username: "nobody", Password: "password123"})
	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	resp, err := svc.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)

	claims, err := tokens.ParseToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, auth.TokenTypeAccess, claims.TokenType)

	// Обновление выдает новый access-токен
	refreshed, err := svc.Refresh(ctx, &dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Empty(t, refreshed.RefreshToken)

	// Access-токен в роли refresh отклоняется
	_, err = svc.Refresh(ctx, &dto.RefreshRequest{RefreshToken: resp.AccessToken})
	requireAppErrorCode(t, err, apperrors.CodeUnauthorized)
}

func TestAuthService_Logout_BlacklistsToken(t *testing.T) {
	env := newTestEnv()
	svc, tokens := newAuthService(env)
	ctx := context.Background()

	accessToken, err := tokens.GenerateAccessToken(1, true)
	require.NoError(t, err)

	err = svc.Logout(ctx, accessToken)
	require.NoError(t, err)

	blacklisted, err := env.tokens.IsBlacklisted(ctx, accessToken)
	require.NoError(t, err)
	assert.True(t, blacklisted)

	// Повторный выход с тем же токеном не считается ошибкой
	err = svc.Logout(ctx, accessToken)
	require.NoError(t, err)
}
