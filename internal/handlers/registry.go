package handlers

// AppHandlers содержит все обработчики приложения.
type AppHandlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	Contractor   *ContractorHandler
	Event        *EventHandler
	Catalog      *CatalogHandler
	Notification *NotificationHandler
}
