package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt молча усекает вход после 72 байт, поэтому более длинные
// пароли отклоняем до хеширования
const maxPasswordBytes = 72

var ErrPasswordTooLong = errors.New("password exceeds 72 bytes")

// HashPassword хеширует пароль с стоимостью по умолчанию
func HashPassword(password string) (string, error) {
	if len(password) > maxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash сравнивает пароль с хешем за постоянное время
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
