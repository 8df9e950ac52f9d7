package header

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// GetTokenFromHeader - функция для получения токена из заголовка запроса.
func GetTokenFromHeader(req *http.Request) (string, error) {
	return parseAuthorizationHeader(req.Header.Get("Authorization"))
}

// GetTokenFromResponseHeader извлекает JWT-токен из заголовка в ответе сервера.
// Необходима для тестирования хэндлеров сервера. Имитирую работу клиента и получение им токена из заголовка.
func GetTokenFromResponseHeader(res *http.Response) (string, error) {
	return parseAuthorizationHeader(res.Header.Get("Authorization"))
}

// GetTokenFromRestyResponseHeader извлекает JWT-токен из заголовка ответа сервера на запрос клиента.
func GetTokenFromRestyResponseHeader(res *resty.Response) (string, error) {
	return parseAuthorizationHeader(res.Header().Get("Authorization"))
}

// parseAuthorizationHeader - функция для извлечения токена из значения заголовка Authorization.
func parseAuthorizationHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", fmt.Errorf("missing authorization header")
	}

	// Проверяю, что заголовок начинается с "Bearer "
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", fmt.Errorf("invalid authorization header format")
	}

	jwtToken := parts[1]
	return jwtToken, nil
}
