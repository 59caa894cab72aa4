package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/alinamiashalkina/event-creator/internal/admin"
	"github.com/alinamiashalkina/event-creator/internal/auth"
	"github.com/alinamiashalkina/event-creator/internal/config"
	"github.com/alinamiashalkina/event-creator/internal/email"
	"github.com/alinamiashalkina/event-creator/internal/handlers"
	"github.com/alinamiashalkina/event-creator/internal/logger"
	"github.com/alinamiashalkina/event-creator/internal/middleware"
	"github.com/alinamiashalkina/event-creator/internal/models"
	"github.com/alinamiashalkina/event-creator/internal/permissions"
	"github.com/alinamiashalkina/event-creator/internal/repositories"
	"github.com/alinamiashalkina/event-creator/internal/routes"
	"github.com/alinamiashalkina/event-creator/internal/services"
	"github.com/alinamiashalkina/event-creator/internal/validator"
	"github.com/alinamiashalkina/event-creator/internal/workers"
)

// Run собирает и запускает приложение: конфигурация, база, миграции,
// первый админ, HTTP сервер и фоновый воркер очистки токенов.
func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get underlying sql.DB", "error", err)
	}
	if err := sqlDB.Ping(); err != nil {
		logger.Fatal("Database ping failed", "error", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)
	logger.Info("Database connection established")

	if err := autoMigrate(gormDB); err != nil {
		logger.Fatal("Database migration failed", "error", err)
	}
	logger.Info("Database migrations applied")

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin", "error", err)
	}

	ginRouter := SetupRouter(gormDB, cfg)

	tokenWorker := workers.NewTokenWorker(repositories.NewTokenRepository(gormDB))
	if err := tokenWorker.Start(); err != nil {
		logger.Fatal("Failed to start token cleanup worker", "error", err)
	}
	defer tokenWorker.Stop()

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Starting HTTP server", "address", address, "env", cfg.Server.Env)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("HTTP server stopped", "error", err)
	}
}

// SetupRouter собирает gin-роутер со всеми зависимостями. Вынесен
// отдельно, чтобы интеграционные тесты могли поднять приложение
// поверх своей базы.
func SetupRouter(gormDB *gorm.DB, cfg *config.Config) *gin.Engine {
	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.CORSMiddleware())

	userRepo := repositories.NewUserRepository(gormDB)
	contractorRepo := repositories.NewContractorRepository(gormDB)
	portfolioRepo := repositories.NewPortfolioRepository(gormDB)
	catalogRepo := repositories.NewCatalogRepository(gormDB)
	eventRepo := repositories.NewEventRepository(gormDB)
	invitationRepo := repositories.NewInvitationRepository(gormDB)
	reviewRepo := repositories.NewReviewRepository(gormDB)
	notificationRepo := repositories.NewNotificationRepository(gormDB)
	tokenRepo := repositories.NewTokenRepository(gormDB)

	tokens := auth.NewTokenManager(cfg.JWT.Secret)
	gate := permissions.NewGate(userRepo, contractorRepo, reviewRepo, eventRepo, invitationRepo)
	emailProvider := initializeEmailProvider(cfg)

	serviceContainer := initializeServices(
		userRepo, contractorRepo, portfolioRepo, catalogRepo,
		eventRepo, invitationRepo, reviewRepo, notificationRepo, tokenRepo,
		tokens, gate, emailProvider,
	)
	appHandlers := initializeHandlers(serviceContainer)

	adminHandler := admin.NewHandler(admin.NewRegistry(gormDB))
	authMiddleware := middleware.AuthMiddleware(tokens, tokenRepo, userRepo)

	routes.RegisterRoutes(ginRouter, appHandlers, adminHandler, authMiddleware)
	return ginRouter
}

func initializeServices(
	userRepo repositories.UserRepository,
	contractorRepo repositories.ContractorRepository,
	portfolioRepo repositories.PortfolioRepository,
	catalogRepo repositories.CatalogRepository,
	eventRepo repositories.EventRepository,
	invitationRepo repositories.InvitationRepository,
	reviewRepo repositories.ReviewRepository,
	notificationRepo repositories.NotificationRepository,
	tokenRepo repositories.TokenRepository,
	tokens *auth.TokenManager,
	gate *permissions.Gate,
	emailProvider email.Provider,
) *services.ServiceContainer {
	notificationService := services.NewNotificationService(notificationRepo, emailProvider)

	return &services.ServiceContainer{
		AuthService:         services.NewAuthService(userRepo, contractorRepo, tokenRepo, tokens),
		UserService:         services.NewUserService(userRepo, gate),
		ContractorService:   services.NewContractorService(contractorRepo, portfolioRepo, userRepo, gate, notificationService),
		CatalogService:      services.NewCatalogService(catalogRepo, gate),
		EventService:        services.NewEventService(eventRepo, invitationRepo, contractorRepo, gate, notificationService),
		InvitationService:   services.NewInvitationService(invitationRepo, contractorRepo, userRepo, gate, notificationService),
		ReviewService:       services.NewReviewService(reviewRepo, contractorRepo, gate),
		NotificationService: notificationService,
	}
}

func initializeHandlers(serviceContainer *services.ServiceContainer) *handlers.AppHandlers {
	baseHandler := handlers.NewBaseHandler(validator.New())

	return &handlers.AppHandlers{
		Auth:         handlers.NewAuthHandler(baseHandler, serviceContainer.AuthService),
		User:         handlers.NewUserHandler(baseHandler, serviceContainer.UserService, serviceContainer.EventService),
		Contractor:   handlers.NewContractorHandler(baseHandler, serviceContainer.ContractorService, serviceContainer.InvitationService, serviceContainer.ReviewService),
		Event:        handlers.NewEventHandler(baseHandler, serviceContainer.EventService, serviceContainer.InvitationService),
		Catalog:      handlers.NewCatalogHandler(baseHandler, serviceContainer.CatalogService),
		Notification: handlers.NewNotificationHandler(baseHandler, serviceContainer.NotificationService),
	}
}

func initializeEmailProvider(cfg *config.Config) email.Provider {
	templateManager := email.NewTemplateManager()
	if cfg.Email.TemplatesDir != "" {
		if err := templateManager.LoadTemplates(cfg.Email.TemplatesDir); err != nil {
			logger.Warn("Failed to load email templates from disk, using built-in templates",
				"dir", cfg.Email.TemplatesDir, "error", err)
		}
	}

	provider := email.NewSMTPProvider(&email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
		Timeout:   30 * time.Second,
	}, templateManager)

	if err := provider.Validate(); err != nil {
		logger.Warn("SMTP is not fully configured, email delivery will fail", "error", err)
	}
	return provider
}

func autoMigrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&models.User{},
		&models.Contractor{},
		&models.ContractorService{},
		&models.PortfolioItem{},
		&models.Category{},
		&models.Service{},
		&models.Event{},
		&models.EventInvitation{},
		&models.Review{},
		&models.Notification{},
		&models.BlacklistedToken{},
	)
}

// seedFirstAdmin создает первого админа из конфигурации, если в базе
// еще нет ни одного. Без админа некому одобрять заявки подрядчиков.
func seedFirstAdmin(gormDB *gorm.DB, cfg *config.Config) error {
	if cfg.Admin.Username == "" || cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		logger.Warn("Admin credentials are not configured, skipping admin seeding")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userRepo := repositories.NewUserRepository(gormDB)
	count, err := userRepo.CountByRole(ctx, models.UserRoleAdmin)
	if err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	firstAdmin := &models.User{
		Username:     cfg.Admin.Username,
		Email:        cfg.Admin.Email,
		PasswordHash: hash,
		Name:         cfg.Admin.Username,
		Role:         models.UserRoleAdmin,
		IsActive:     true,
	}
	if err := userRepo.Create(ctx, firstAdmin); err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}

	logger.Info("First admin created", "username", firstAdmin.Username, "email", firstAdmin.Email)
	return nil
}
