package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/abezemskiy/punchclock/internal/common/identity/tools/checker"
	"github.com/abezemskiy/punchclock/internal/common/identity/tools/hasher"
	"github.com/abezemskiy/punchclock/internal/common/identity/tools/token"
	"github.com/abezemskiy/punchclock/internal/repositories/attendance"
	"github.com/abezemskiy/punchclock/internal/repositories/identity"
	"github.com/abezemskiy/punchclock/internal/server/identity/access"
	"github.com/abezemskiy/punchclock/internal/server/identity/auth"
	"github.com/abezemskiy/punchclock/internal/server/logger"

	"go.uber.org/zap"
)

// Register - хэндлер для регистрации пользователя в системе. При успешной регистрации
// в тело ответа записывается идентификатор нового пользователя.
// Через данный хэндлер всегда создается обычный пользователь без прав администратора.
func Register(res http.ResponseWriter, req *http.Request, ident identity.Identifier) {
	res.Header().Set("Content-Type", "text/plain")
	defer req.Body.Close()

	var regData identity.IdentityData
	if err := json.NewDecoder(req.Body).Decode(&regData); err != nil {
		logger.ServerLog.Error("failed to parse identity data to structure", zap.String("address", req.URL.String()), zap.String("error", error.Error(err)))
		http.Error(res, fmt.Errorf("failed to parse identity data to structure, %w", err).Error(), http.StatusBadRequest)
		return
	}

	// Проверяю корректность имени пользователя
	if ok := checker.CheckName(regData.Name); !ok {
		logger.ServerLog.Error("name is not valid", zap.String("address", req.URL.String()))
		http.Error(res, "name is not valid", http.StatusBadRequest)
		return
	}
	// Проверяю корректность email
	if ok := checker.CheckEmail(regData.Email); !ok {
		logger.ServerLog.Error("email is not valid", zap.String("address", req.URL.String()))
		http.Error(res, "email is not valid", http.StatusBadRequest)
		return
	}
	// Проверяю корректность пароля
	if ok := checker.CheckPassword(regData.Password); !ok {
		logger.ServerLog.Error("password is not valid", zap.String("address", req.URL.String()))
		http.Error(res, "password is not valid", http.StatusBadRequest)
		return
	}

	// Вычисляю хэш пароля. Хэширование выполняется до обращения к хранилищу,
	// чтобы не выполнять длительную операцию внутри критической секции.
	hash, err := hasher.HashPassword(regData.Password)
	if err != nil {
		logger.ServerLog.Error("failed to hash password", zap.String("address", req.URL.String()), zap.String("error", error.Error(err)))
		http.Error(res, fmt.Errorf("failed to hash password, %w", err).Error(), http.StatusInternalServerError)
		return
	}

	// Регистрирую пользователя в хранилище
	id, err := ident.Register(req.Context(), regData.Name, hash, regData.Email, false)
	if err != nil {
		if errors.Is(err, identity.ErrEmailAlreadyExists) {
			// пользователь с данным email уже зарегистрирован в системе
			logger.ServerLog.Error(fmt.Sprintf("email %s already exists", regData.Email), zap.String("address", req.URL.String()))
			http.Error(res, fmt.Errorf("email %s already exists, %w", regData.Email, err).Error(), http.StatusConflict)
		} else {
			logger.ServerLog.Error("register user error", zap.String("address", req.URL.String()), zap.String("error", error.Error(err)))
			http.Error(res, fmt.Errorf("register user error, %w", err).Error(), http.StatusInternalServerError)
		}
		return
	}

	// При успешной регистрации возвращаю идентификатор нового пользователя
	res.WriteHeader(http.StatusCreated)
	res.Write([]byte(strconv.FormatInt(id, 10)))
}

// RegisterHandler - обертка над функцией Register.
func RegisterHandler(ident identity.Identifier) http.HandlerFunc {
	fn := func(res http.ResponseWriter, req *http.Request) {
		Register(res, req, ident)
	}
	return fn
}

// Login - хэндлер для авторизации пользователя в системе. Если пользователь авторизирован, то в заголовок ответа устанавливается
// токен пользователя.
func Login(res http.ResponseWriter, req *http.Request, ident identity.Identifier) {
	res.Header().Set("Content-Type", "text/plain")
	defer req.Body.Close()

	var creds identity.Credentials
	if err := json.NewDecoder(req.Body).Decode(&creds); err != nil {
		logger.ServerLog.Error("failed to parse credentials to structure", zap.String("address", req.URL.String()), zap.String("error", error.Error(err)))
		http.Error(res, fmt.Errorf("failed to parse credentials to structure, %w", err).Error(), http.StatusBadRequest)
		return
	}

	// Проверяю корректность email
	if ok := checker.CheckEmail(creds.Email); !ok {
		logger.ServerLog.Error("email is not valid", zap.String("address", req.URL.String()))
		http.Error(res, "email is not valid", http.StatusBadRequest)
		return
	}
	// Проверяю корректность пароля
	if ok := checker.CheckPassword(creds.Password); !ok {
		logger.ServerLog.Error("password is not valid", zap.String("address", req.URL.String()))
		http.Error(res, "password is not valid", http.StatusBadRequest)
		return
	}

	// Получаю авторизационные данные пользователя из хранилища
	data, ok, err := ident.Authorize(req.Context(), creds.Email)
	if err != nil {
		// внутренняя ошибка сервера
		logger.ServerLog.Error("authorize user error", zap.String("address", req.URL.String()), zap.String("error", error.Error(err)))
		http.Error(res, fmt.Errorf("authorize user error, %w", err).Error(), http.StatusInternalServerError)
		return
	}
	// Наружу отдаю один и тот же ответ и для незарегистрированного email, и для неверного пароля,
	// чтобы по ответу нельзя было перечислить зарегистрированные email.
	if !ok {
		// не найдено записей по представленному email. Пользователь не зарегистрирован.
		logger.ServerLog.Error("user not register", zap.String("address", req.URL.String()))
		http.Error(res, "email or password doesn't match", http.StatusUnauthorized)
		return
	}

	// проверяю, что пароль отправленный пользователем для авторизации соответствует хэшу, который хранится в хранилище.
	if !hasher.VerifyPassword(creds.Password, data.Hash) {
		logger.ServerLog.Error("password is wrong", zap.String("address", req.URL.String()))
		http.Error(res, "email or password doesn't match", http.StatusUnauthorized)
		return
	}

	// При успешной авторизации создаю токен и устанавливаю токен в заголовок
	// генерирую токен
	token, err := token.BuildJWT(data.ID, data.IsAdmin)
	if err != nil {
		logger.ServerLog.Error("build JWT error", zap.String("address", req.URL.String()), zap.String("error", error.Error(err)))
		http.Error(res, fmt.Errorf("build JWT error, %w", err).Error(), http.StatusInternalServerError)
		return
	}
	// устанавливаю токен в заголовок
	res.Header().Set("Authorization", "Bearer "+token)
	res.WriteHeader(200)
}

// LoginHandler - обертка над функцией Login.
func LoginHandler(ident identity.Identifier) http.HandlerFunc {
	fn := func(res http.ResponseWriter, req *http.Request) {
		Login(res, req, ident)
	}
	return fn
}

// AddPoint - хэндлер для создания новой отметки рабочего времени.
// Пользователь может создавать отметки только от своего имени, администратор - от имени любого пользователя.
func AddPoint(res http.ResponseWriter, req *http.Request, recorder attendance.Recorder) {
	res.Header().Set("Content-Type", "text/plain")

	// получаю утверждения пользователя из контекста
	claims, ok := req.Context().Value(auth.ClaimsKey).(token.Claims)
	if !ok {
		logger.ServerLog.Error("user claims not found in context", zap.String("address", req.URL.String()))
		http.Error(res, "user claims not found in context", http.StatusInternalServerError)
		return
	}
	defer req.Body.Close()

	// Сериализую данные из запроса клиента
	var pointData attendance.PointData
	if err := json.NewDecoder(req.Body).Decode(&pointData); err != nil {
		logger.ServerLog.Error("can't parse data from request", zap.String("address", req.URL.String()), zap.String("error", err.Error()))
		http.Error(res, "can't parse data from request", http.StatusBadRequest)
		return
	}

	// Проверяю право пользователя создавать отметку для пользователя из запроса
	if !access.Allowed(claims, pointData.UserID) {
		logger.ServerLog.Error("access to user points is denied", zap.String("address", req.URL.String()), zap.Int64("user", claims.UserID))
		http.Error(res, "access to user points is denied", http.StatusForbidden)
		return
	}

	// Добавляю новую отметку в хранилище
	id, err := recorder.AddPoint(req.Context(), pointData.UserID, pointData.Instant)
	if err != nil {
		if errors.Is(err, attendance.ErrInstantOutOfRange) || errors.Is(err, attendance.ErrCooldownNotElapsed) {
			// отметка отклонена бизнес-правилами приема
			logger.ServerLog.Error("point is rejected", zap.String("address", req.URL.String()), zap.String("reason", err.Error()))
			http.Error(res, err.Error(), http.StatusBadRequest)
		} else {
			logger.ServerLog.Error("adding point to storage error", zap.String("address", req.URL.String()), zap.String("error", err.Error()))
			http.Error(res, fmt.Errorf("adding point to storage error, %w", err).Error(), http.StatusInternalServerError)
		}
		return
	}

	// При успешном создании отметки возвращаю её идентификатор
	res.WriteHeader(http.StatusCreated)
	res.Write([]byte(strconv.FormatInt(id, 10)))
	logger.ServerLog.Debug("successful add new point to storage", zap.Int64("user", pointData.UserID))
}

// AddPointHandler - обертка над функцией AddPoint.
func AddPointHandler(recorder attendance.Recorder) http.HandlerFunc {
	fn := func(res http.ResponseWriter, req *http.Request) {
		AddPoint(res, req, recorder)
	}
	return fn
}

// GetPoints - хэндлер для отправки пользователю всех его отметок рабочего времени.
func GetPoints(res http.ResponseWriter, req *http.Request, recorder attendance.Recorder) {
	// получаю утверждения пользователя из контекста
	claims, ok := req.Context().Value(auth.ClaimsKey).(token.Claims)
	if !ok {
		logger.ServerLog.Error("user claims not found in context", zap.String("address", req.URL.String()))
		http.Error(res, "user claims not found in context", http.StatusInternalServerError)
		return
	}
	defer req.Body.Close()

	points, err := recorder.GetPoints(req.Context(), claims.UserID)
	if err != nil {
		logger.ServerLog.Error("get points from storage error", zap.String("address", req.URL.String()), zap.String("error", err.Error()))
		http.Error(res, fmt.Errorf("get points from storage error, %w", err).Error(), http.StatusInternalServerError)
		return
	}

	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(http.StatusOK)

	enc := json.NewEncoder(res)
	if err := enc.Encode(points); err != nil {
		logger.ServerLog.Error("encoding response error", zap.String("error", error.Error(err)))
		http.Error(res, fmt.Errorf("encoding response error, %w", err).Error(), http.StatusInternalServerError)
		return
	}
	logger.ServerLog.Debug("successful return all points to client", zap.Int64("user", claims.UserID))
}

// GetPointsHandler - обертка над функцией GetPoints.
func GetPointsHandler(recorder attendance.Recorder) http.HandlerFunc {
	fn := func(res http.ResponseWriter, req *http.Request) {
		GetPoints(res, req, recorder)
	}
	return fn
}

// Health - хэндлер для проверки работоспособности сервиса.
func Health() http.HandlerFunc {
	return func(res http.ResponseWriter, _ *http.Request) {
		res.Header().Set("Content-Type", "text/plain")
		res.WriteHeader(http.StatusOK)
		res.Write([]byte("punchclock is alive"))
	}
}

// HandleOtherRequest - обработка нераспознанных http запросов к сервису.
func HandleOtherRequest() http.HandlerFunc {
	return func(res http.ResponseWriter, _ *http.Request) {
		res.Header().Set("Content-Type", "text/plain")
		res.WriteHeader(http.StatusNotFound)
	}
}
