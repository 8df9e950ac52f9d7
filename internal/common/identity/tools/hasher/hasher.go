// hasher - пакет со вспомогательными функциями для хэширования и проверки паролей.
package hasher

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword - функция, которая вычисляет необратимый хэш пароля и возвращает его в виде строки.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password, %w", err)
	}
	return string(hash), nil
}

// VerifyPassword - функция для проверки соответствия пароля сохраненному хэшу.
// Пароли никогда не сравниваются напрямую, только через одностороннюю проверку хэша.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
