package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alinamiashalkina/event-creator/internal/admin"
	"github.com/alinamiashalkina/event-creator/internal/handlers"
	"github.com/alinamiashalkina/event-creator/internal/middleware"
)

// Лимит на попытки входа и регистрации с одного IP.
const (
	loginRequestsPerMinute = 10
	loginBurst             = 5
	limiterVisitorTTL      = 10 * time.Minute
)

// RegisterRoutes регистрирует все HTTP маршруты приложения.
// Публичная часть — регистрация, вход и обновление токена, все
// остальные маршруты требуют аутентификации.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	adminHandler *admin.Handler,
	authMiddleware gin.HandlerFunc,
) {
	api := ginRouter.Group("/api/v1")

	protected := api.Group("")
	protected.Use(authMiddleware)

	loginLimiter := middleware.RateLimitByIP(
		middleware.NewIPRateLimiter(loginRequestsPerMinute, loginBurst, limiterVisitorTTL),
	)

	appHandlers.Auth.RegisterRoutes(api, protected, loginLimiter)
	appHandlers.User.RegisterRoutes(protected)
	appHandlers.Contractor.RegisterRoutes(protected)
	appHandlers.Event.RegisterRoutes(protected)
	appHandlers.Catalog.RegisterRoutes(protected)
	appHandlers.Notification.RegisterRoutes(protected)
	adminHandler.RegisterRoutes(protected)
}
