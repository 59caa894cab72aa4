package services

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService         AuthService
	UserService         UserService
	ContractorService   ContractorService
	CatalogService      CatalogService
	EventService        EventService
	InvitationService   InvitationService
	ReviewService       ReviewService
	NotificationService NotificationService
}
