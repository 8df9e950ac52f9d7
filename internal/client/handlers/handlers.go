package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/abezemskiy/punchclock/internal/client/logger"
	"github.com/abezemskiy/punchclock/internal/common/identity/tools/checker"
	"github.com/abezemskiy/punchclock/internal/common/identity/tools/header"
	"github.com/abezemskiy/punchclock/internal/repositories/attendance"
	"github.com/abezemskiy/punchclock/internal/repositories/identity"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Register - хэндлер для регистрации нового пользователя на сервере.
// При успешной регистрации возвращается идентификатор, который сервер назначил пользователю.
func Register(ctx context.Context, url string, regData *identity.IdentityData, client *resty.Client) (int64, error) {
	// проверяю корректность имени пользователя
	if ok := checker.CheckName(regData.Name); !ok {
		return 0, fmt.Errorf("name is not valid")
	}
	// проверяю корректность email
	if ok := checker.CheckEmail(regData.Email); !ok {
		return 0, fmt.Errorf("email is not valid")
	}
	// проверяю корректность пароля
	if ok := checker.CheckPassword(regData.Password); !ok {
		return 0, fmt.Errorf("password is not valid")
	}

	// Отправляю запрос регистрации пользователя на сервер
	resp, err := client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(*regData).
		Post(url)

	// Не удалось установить соединение с сервером или другая ошибка подобного рода.
	if err != nil {
		logger.ClientLog.Error("sending registration request failed", zap.String("error", error.Error(err)))
		return 0, fmt.Errorf("sending registration request failed, %w", err)
	}

	// пользователь с таким email уже зарегистрирован
	if resp.StatusCode() == http.StatusConflict {
		logger.ClientLog.Error("such user already exist", zap.String("email", regData.Email))
		return 0, identity.ErrEmailAlreadyExists
	}

	if resp.StatusCode() != http.StatusCreated {
		logger.ClientLog.Error("bad server status", zap.String("status", fmt.Sprint(resp.StatusCode())))
		return 0, fmt.Errorf("bad server status %d", resp.StatusCode())
	}

	// Сервер успешно обработал запрос пользователя на регистрацию.
	// Извлекаю из тела ответа идентификатор, назначенный пользователю.
	id, err := strconv.ParseInt(string(resp.Body()), 10, 64)
	if err != nil {
		logger.ClientLog.Error("failed to parse user id from server response", zap.String("error", error.Error(err)))
		return 0, fmt.Errorf("failed to parse user id from server response, %w", err)
	}

	logger.ClientLog.Info("new user successfully has been registered", zap.String("email", regData.Email), zap.Int64("id", id))
	return id, nil
}

// Login - хэндлер для авторизации пользователя на сервере.
// После успешной авторизации возвращается токен, который сервер установил в заголовок ответа.
func Login(ctx context.Context, url string, creds *identity.Credentials, client *resty.Client) (string, error) {
	// проверяю корректность email
	if ok := checker.CheckEmail(creds.Email); !ok {
		return "", fmt.Errorf("email is not valid")
	}
	// проверяю корректность пароля
	if ok := checker.CheckPassword(creds.Password); !ok {
		return "", fmt.Errorf("password is not valid")
	}

	// Отправляю запрос на авторизацию пользователя на сервере
	resp, err := client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(*creds).
		Post(url)

	if err != nil {
		logger.ClientLog.Error("sending login request failed", zap.String("error", error.Error(err)))
		return "", fmt.Errorf("sending login request failed, %w", err)
	}

	// Пользователь не зарегистрирован или пароль не подходит
	if resp.StatusCode() == http.StatusUnauthorized {
		logger.ClientLog.Error("email or password doesn't match", zap.String("email", creds.Email))
		return "", fmt.Errorf("email or password doesn't match")
	}

	if resp.StatusCode() != http.StatusOK {
		logger.ClientLog.Error("bad server status", zap.String("status", fmt.Sprint(resp.StatusCode())))
		return "", fmt.Errorf("bad server status %d", resp.StatusCode())
	}

	// Получаю токен из заголовка, который отправил сервер.
	token, err := header.GetTokenFromRestyResponseHeader(resp)
	if err != nil {
		logger.ClientLog.Error("failed to get JWT from server response", zap.String("error", error.Error(err)))
		return "", fmt.Errorf("failed to get JWT from server response, %w", err)
	}

	logger.ClientLog.Info("user successfully has been logged in", zap.String("email", creds.Email))
	return token, nil
}

// AddPoint - хэндлер для создания новой отметки рабочего времени на сервере.
// При успешном создании возвращается идентификатор новой отметки.
func AddPoint(ctx context.Context, url, token string, pointData *attendance.PointData, client *resty.Client) (int64, error) {
	// Отправляю запрос на создание отметки с установленным токеном пользователя
	resp, err := client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+token).
		SetBody(*pointData).
		Post(url)

	if err != nil {
		logger.ClientLog.Error("sending point request failed", zap.String("error", error.Error(err)))
		return 0, fmt.Errorf("sending point request failed, %w", err)
	}

	if resp.StatusCode() != http.StatusCreated {
		// Сервер отклонил отметку: отметка не прошла проверку правил приема,
		// пользователь не аутентифицирован или не имеет прав на создание отметки.
		logger.ClientLog.Error("point is rejected by server",
			zap.String("status", fmt.Sprint(resp.StatusCode())), zap.String("reason", string(resp.Body())))
		return 0, fmt.Errorf("point is rejected by server, status %d: %s", resp.StatusCode(), string(resp.Body()))
	}

	// Извлекаю из тела ответа идентификатор новой отметки.
	id, err := strconv.ParseInt(string(resp.Body()), 10, 64)
	if err != nil {
		logger.ClientLog.Error("failed to parse point id from server response", zap.String("error", error.Error(err)))
		return 0, fmt.Errorf("failed to parse point id from server response, %w", err)
	}

	logger.ClientLog.Info("new point successfully has been added", zap.Int64("id", id))
	return id, nil
}

// GetPoints - хэндлер для получения всех отметок пользователя с сервера.
func GetPoints(ctx context.Context, url, token string, client *resty.Client) ([]attendance.Point, error) {
	resp, err := client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token).
		Get(url)

	if err != nil {
		logger.ClientLog.Error("sending get points request failed", zap.String("error", error.Error(err)))
		return nil, fmt.Errorf("sending get points request failed, %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		logger.ClientLog.Error("bad server status", zap.String("status", fmt.Sprint(resp.StatusCode())))
		return nil, fmt.Errorf("bad server status %d", resp.StatusCode())
	}

	// Сериализую отметки пользователя из тела ответа
	var points []attendance.Point
	if err := json.Unmarshal(resp.Body(), &points); err != nil {
		logger.ClientLog.Error("failed to parse points from server response", zap.String("error", error.Error(err)))
		return nil, fmt.Errorf("failed to parse points from server response, %w", err)
	}

	logger.ClientLog.Debug("successful get points from server", zap.Int("count", len(points)))
	return points, nil
}
