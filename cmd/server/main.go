package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/abezemskiy/punchclock/internal/server/attendance/rules"
	"github.com/abezemskiy/punchclock/internal/server/handlers"
	"github.com/abezemskiy/punchclock/internal/server/identity/auth"
	"github.com/abezemskiy/punchclock/internal/server/logger"
	"github.com/abezemskiy/punchclock/internal/server/storage"
	"github.com/abezemskiy/punchclock/internal/server/storage/inmemory"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const shutdownWaitPeriod = 20 * time.Second // для установки в контекст для реализации graceful shutdown

func main() {
	err := parseVariables()
	if err != nil {
		log.Fatalf("failed to set global variables, %v", err)
	}

	ctx := context.Background()
	// создаю экземпляр хранилища в оперативной памяти. Все данные существуют только на время жизни процесса.
	stor := inmemory.NewStore(admissionRules())

	run(ctx, stor)
}

// admissionRules - функция для получения допусков приема отметок из конфигурации.
// Для незаданных параметров применяются значения по умолчанию.
func admissionRules() (late, early, cool time.Duration) {
	late = rules.DefaultLateTolerance
	if lateTolerance != 0 {
		late = time.Duration(lateTolerance) * time.Second
	}
	early = rules.DefaultEarlyTolerance
	if earlyTolerance != 0 {
		early = time.Duration(earlyTolerance) * time.Second
	}
	cool = rules.DefaultCooldown
	if cooldown != 0 {
		cool = time.Duration(cooldown) * time.Minute
	}
	return
}

// функция run будет необходима для инициализации зависимостей сервера перед запуском
func run(ctx context.Context, stor storage.IPunchClockStorage) {
	// Инициализация логера
	if err := logger.Initialize(logLevel); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}

	logger.ServerLog.Info("Running punchclock", zap.String("address", netAddr))

	// запускаю сам сервис с проверкой отмены контекста для реализации graceful shutdown--------------
	srv := &http.Server{
		Addr:    netAddr,
		Handler: PunchClockRouter(stor),
	}
	// Канал для получения сигнала прерывания
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Горутина для запуска сервера
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	// Блокирование до тех пор, пока не поступит сигнал о прерывании
	<-quit
	logger.ServerLog.Info("Shutting down server...", zap.String("address", netAddr))

	// Create a context with timeout for graceful shutdown
	ctx, cancel := context.WithTimeout(ctx, shutdownWaitPeriod)
	defer cancel()

	// останавливаю сервер, чтобы он перестал принимать новые запросы
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Stopping server error: %v", err)
	}

	logger.ServerLog.Info("Shutdown the server gracefully", zap.String("address", netAddr))
}

// PunchClockRouter - дирижирует обработкой http запросов к серверу.
func PunchClockRouter(stor storage.IPunchClockStorage) chi.Router {
	r := chi.NewRouter()

	r.Get("/health", logger.RequestLogger(handlers.Health()))

	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", logger.RequestLogger(handlers.RegisterHandler(stor)))
		r.Post("/login", logger.RequestLogger(handlers.LoginHandler(stor)))
	})

	r.Route("/api/point", func(r chi.Router) {
		r.Post("/", logger.RequestLogger(auth.Middleware(handlers.AddPointHandler(stor))))
		r.Get("/", logger.RequestLogger(auth.Middleware(handlers.GetPointsHandler(stor))))
	})

	// Определяем маршрут по умолчанию для некорректных запросов
	r.NotFound(logger.RequestLogger(handlers.HandleOtherRequest()))

	return r
}
