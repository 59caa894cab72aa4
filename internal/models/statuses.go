package models

type UserRole string
type InvitationStatus string

const (
	UserRoleAdmin      UserRole = "admin"
	UserRoleContractor UserRole = "contractor"
	UserRoleUser       UserRole = "user"

	InvitationStatusPending   InvitationStatus = "pending"
	InvitationStatusAccepted  InvitationStatus = "accepted"
	InvitationStatusDeclined  InvitationStatus = "declined"
	InvitationStatusConfirmed InvitationStatus = "confirmed"
)

// Valid сообщает, является ли значение роли допустимым.
// Роль - закрытое перечисление, авторизация никогда не сравнивает
// сырые строки из запроса.
func (r UserRole) Valid() bool {
	switch r {
	case UserRoleAdmin, UserRoleContractor, UserRoleUser:
		return true
	}
	return false
}

// Valid сообщает, является ли значение статуса приглашения допустимым
func (s InvitationStatus) Valid() bool {
	switch s {
	case InvitationStatusPending, InvitationStatusAccepted,
		InvitationStatusDeclined, InvitationStatusConfirmed:
		return true
	}
	return false
}
