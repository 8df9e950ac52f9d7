// auth - пакет, который реализует middleware для аутентификации пользователя.
package auth

import (
	"context"
	"fmt"
	"net/http"

	"github.com/abezemskiy/punchclock/internal/common/identity/tools/header"
	"github.com/abezemskiy/punchclock/internal/common/identity/tools/token"
	"github.com/abezemskiy/punchclock/internal/server/logger"

	"go.uber.org/zap"
)

type contextKey string

// ClaimsKey - ключ для установки утверждений пользователя в контекст.
const ClaimsKey = contextKey("claims")

// Middleware - проверяет JWT входящих запросов к серверу.
// Позволит установить доступ к ресурсам только для аутентифицированных пользователей.
// Из полученного токена извлекаются утверждения пользователя и устанавливаются в контекст.
func Middleware(h http.Handler) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {

		getToken, err := header.GetTokenFromHeader(req)
		// В случае ошибки получения токена возвращаю статус 401 - пользователь не аутентифицирован.
		if err != nil {
			logger.ServerLog.Error("failed to get token from request", zap.String("address", req.URL.String()), zap.String("error", error.Error(err)))
			http.Error(res, fmt.Errorf("failed to get token from request, %w", err).Error(), http.StatusUnauthorized)
			return
		}
		claims, err := token.GetClaimsFromToken(getToken)
		if err != nil {
			logger.ServerLog.Error("failed to get user claims from token", zap.String("address", req.URL.String()), zap.String("error", error.Error(err)))
			http.Error(res, fmt.Errorf("failed to get user claims from token, %w", err).Error(), http.StatusUnauthorized)
			return
		}

		// В случае успешного извлечения утверждений пользователя устанавливаю их в контекст для дальнейшей обработки.
		ctx := context.WithValue(req.Context(), ClaimsKey, claims)

		// вызываю основной обработчик
		h.ServeHTTP(res, req.WithContext(ctx))
	}
}
