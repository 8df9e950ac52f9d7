// identity - пакет с моделью пользователя и интерфейсом хранилища пользователей.
// Структуры пакета используются и сервером, и клиентом.
package identity

import (
	"context"
	"errors"
)

// ErrEmailAlreadyExists - ошибка регистрации, пользователь с таким email уже зарегистрирован в системе.
var ErrEmailAlreadyExists = errors.New("user email already exists")

// Identifier - интерфейс для реализации процедур регистрации и авторизации пользователя.
type Identifier interface {
	Register(ctx context.Context, name, hash, email string, isAdmin bool) (id int64, err error) // Метод для регистрации пользователя.
	Authorize(ctx context.Context, email string) (data AuthorizationData, ok bool, err error)   // Метод для авторизации пользователя.
}

// User - модель пользователя. Владельцем структуры является хранилище,
// наружу пользователь целиком не передается.
type User struct {
	ID      int64  // идентификатор пользователя, монотонно возрастающая последовательность
	Name    string // имя пользователя
	Hash    string // хэш пароля пользователя
	Email   string // email пользователя, уникальный ключ
	IsAdmin bool   // признак администратора
}

// IdentityData - структура данных для регистрации пользователя.
type IdentityData struct {
	Name     string `json:"name"`     // имя пользователя
	Email    string `json:"email"`    // email пользователя
	Password string `json:"password"` // пароль пользователя в открытом виде
}

// Credentials - структура данных для авторизации пользователя.
// Данные существуют только на время запроса и нигде не сохраняются.
type Credentials struct {
	Email    string `json:"email"`    // email пользователя
	Password string `json:"password"` // пароль пользователя в открытом виде
}

// AuthorizationData - структура для авторизационных данных пользователя.
type AuthorizationData struct {
	ID      int64
	Hash    string
	IsAdmin bool
}
