package apperrors

import (
	"net/http"
)

/*
Фабрики и предопределенные переменные для доменных ошибок.
NotFound и Forbidden - разные виды отказа: первый означает, что ресурс
не найден по id, второй - что ресурс существует, но у вызывающего нет
нужной роли/связи с ним. Смешивать их нельзя.
*/

// ErrNotFound - фабрика для ошибки "не найдено" (404).
// Используется, когда ошибка репозитория (типа gorm.ErrRecordNotFound)
// должна быть преобразована в AppError.
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrAlreadyExists - фабрика для ошибки "уже существует" (409)
func ErrAlreadyExists(domain, message string) *AppError {
	return New(CodeAlreadyExists, domain, message, http.StatusConflict)
}

// ErrConflict - общая фабрика для конфликтов (409)
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation - фабрика для невалидных операций (400)
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrInvalidStatus - фабрика для недопустимых переходов статуса (400)
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// --- Пользователи и аутентификация ---

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Incorrect username or password",
	http.StatusUnauthorized,
)

var ErrAccountInactive = New(
	CodeForbidden,
	"auth",
	"Account is not active. Please wait for admin approval.",
	http.StatusForbidden,
)

var ErrTokenBlacklisted = New(
	CodeInvalidToken,
	"auth",
	"Token is blacklisted",
	http.StatusUnauthorized,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Not enough permissions",
	http.StatusForbidden,
)

var ErrUserAlreadyExists = New(
	CodeAlreadyExists,
	"user",
	"User with this username or email already exists",
	http.StatusConflict,
)

// --- Мероприятия и приглашения ---

var ErrContractorAlreadyInvited = New(
	CodeConflict,
	"invitation",
	"Contractor already invited to this event",
	http.StatusConflict,
)

var ErrInvitationNotAccepted = New(
	CodeInvalidStatus,
	"invitation",
	"Cannot confirm an invitation that is not accepted by the contractor",
	http.StatusBadRequest,
)

var ErrOrganizerNotConfirmed = New(
	CodeValidationFailed,
	"event",
	"Contractor must have a confirmed invitation to the event",
	http.StatusBadRequest,
)
