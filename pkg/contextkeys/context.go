package contextkeys

// Используем кастомный тип, чтобы избежать коллизий при работе с context
type contextKey string

// CurrentUserKey - ключ, по которому middleware сохраняет *models.User
// аутентифицированного пользователя в gin.Context
const CurrentUserKey = contextKey("current_user")

// TokenKey - ключ, по которому middleware сохраняет сырой bearer-токен
// (нужен для logout/blacklist)
const TokenKey = contextKey("access_token")
