package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/abezemskiy/punchclock/internal/client/handlers"
	"github.com/abezemskiy/punchclock/internal/client/logger"
	"github.com/abezemskiy/punchclock/internal/repositories/attendance"
	"github.com/abezemskiy/punchclock/internal/repositories/identity"

	"github.com/go-resty/resty/v2"
)

const (
	registerPattern = "/api/user/register" // паттерн api для регистрации пользователя
	loginPattern    = "/api/user/login"    // паттерн api для авторизации пользователя
	pointPattern    = "/api/point"         // паттерн api для создания и получения отметок
)

func main() {
	err := parseVariables()
	if err != nil {
		log.Fatalf("failed to set global variables, %v", err)
	}

	// Инициализация логера
	if err := logger.Initialize(logLevel, logFile); err != nil {
		log.Fatalf("failed to initialize logger, %v", err)
	}

	// создаю http-клиент для связи с сервером
	client := resty.New()
	ctx := context.Background()

	// команда определяется первым позиционным аргументом
	command := commandArg()

	switch command {
	case "register":
		id, err := handlers.Register(ctx, serverAddr+registerPattern, &identity.IdentityData{
			Name:     userName,
			Email:    email,
			Password: password,
		}, client)
		if err != nil {
			log.Fatalf("failed to register user, %v", err)
		}
		fmt.Printf("user registered with id %d\n", id)
	case "login":
		token, err := handlers.Login(ctx, serverAddr+loginPattern, &identity.Credentials{
			Email:    email,
			Password: password,
		}, client)
		if err != nil {
			log.Fatalf("failed to login user, %v", err)
		}
		fmt.Println(token)
	case "point":
		pointInstant, err := parseInstant()
		if err != nil {
			log.Fatalf("failed to parse instant, %v", err)
		}
		id, err := handlers.AddPoint(ctx, serverAddr+pointPattern, bearerToken, &attendance.PointData{
			UserID:  userID,
			Instant: pointInstant,
		}, client)
		if err != nil {
			log.Fatalf("failed to add point, %v", err)
		}
		fmt.Printf("point created with id %d\n", id)
	case "points":
		points, err := handlers.GetPoints(ctx, serverAddr+pointPattern, bearerToken, client)
		if err != nil {
			log.Fatalf("failed to get points, %v", err)
		}
		for _, p := range points {
			fmt.Printf("%d\t%s\n", p.ID, p.Instant.Format(time.RFC3339))
		}
	default:
		log.Fatalf("unknown command %q, want one of: register, login, point, points", command)
	}
}

// parseInstant - функция для разбора момента времени отметки из флага.
// Если флаг не установлен, используется текущее время.
func parseInstant() (time.Time, error) {
	if instant == "" {
		return time.Now(), nil
	}
	return time.Parse(time.RFC3339, instant)
}
