package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/alinamiashalkina/event-creator/internal/auth"
	"github.com/alinamiashalkina/event-creator/internal/logger"
	"github.com/alinamiashalkina/event-creator/internal/models"
	"github.com/alinamiashalkina/event-creator/internal/repositories"
	"github.com/alinamiashalkina/event-creator/pkg/apperrors"
	"github.com/alinamiashalkina/event-creator/pkg/contextkeys"
)

// AuthMiddleware - middleware проверки JWT. Токен принимается только из
// заголовка Authorization, проверяется на отзыв (черный список), затем
// на подпись и тип, после чего из базы загружается актуальный
// пользователь. Неактивный пользователь получает 403 на любой
// защищенный маршрут.
func AuthMiddleware(tokens *auth.TokenManager, tokenRepo repositories.TokenRepository, userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortWithError(c, apperrors.NewUnauthorizedError("Authorization header missing or invalid"))
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		blacklisted, err := tokenRepo.IsBlacklisted(c.Request.Context(), tokenStr)
		if err != nil {
			abortWithError(c, apperrors.InternalError(err))
			return
		}
		if blacklisted {
			abortWithError(c, apperrors.ErrTokenBlacklisted)
			return
		}

		claims, err := tokens.ParseToken(tokenStr)
		if err != nil {
			abortWithError(c, apperrors.NewUnauthorizedError("Invalid token"))
			return
		}
		if claims.TokenType != auth.TokenTypeAccess {
			abortWithError(c, apperrors.NewUnauthorizedError("Invalid token type"))
			return
		}

		user, err := userRepo.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			abortWithError(c, apperrors.NewUnauthorizedError("Invalid token"))
			return
		}
		if !user.IsActive {
			abortWithError(c, apperrors.ErrAccountInactive)
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), user.ID)
		c.Request = c.Request.WithContext(ctx)
		c.Set(string(contextkeys.CurrentUserKey), user)
		c.Set(string(contextkeys.TokenKey), tokenStr)
		c.Next()
	}
}

// CurrentUser извлекает аутентифицированного пользователя из контекста.
// На маршрутах за AuthMiddleware пользователь присутствует всегда.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	val, exists := c.Get(string(contextkeys.CurrentUserKey))
	if !exists {
		return nil, false
	}
	user, ok := val.(*models.User)
	return user, ok
}

// CurrentToken извлекает сырой access-токен запроса (нужен для logout)
func CurrentToken(c *gin.Context) (string, bool) {
	val, exists := c.Get(string(contextkeys.TokenKey))
	if !exists {
		return "", false
	}
	token, ok := val.(string)
	return token, ok
}

func abortWithError(c *gin.Context, err error) {
	apperrors.HandleError(c, err)
	c.Abort()
}
