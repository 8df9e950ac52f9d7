package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	serverAddr  string // адрес сервера punchclock
	logLevel    string // уровень логирования
	logFile     string // файл для записи логов клиента
	userName    string // имя пользователя для регистрации
	email       string // email пользователя
	password    string // пароль пользователя
	userID      int64  // идентификатор пользователя, для которого создается отметка
	instant     string // момент времени отметки в формате RFC3339, по умолчанию текущее время
	bearerToken string // токен пользователя для аутентифицированных запросов
)

// parseVariables - функция для установки конфигурационных параметров клиента.
// Конфигурирование с приоритетом в порядке убывания: значения флагов, значения переменных окружения.
func parseVariables() error {
	parseFlags()
	parseEnvironment()

	// Проверяю корректность установки глобальных переменных
	err := checkVariables()
	if err != nil {
		return fmt.Errorf("failed to set global variable, %w", err)
	}
	return nil
}

// parseFlags - функция для определения параметров конфигурации из флагов.
func parseFlags() {
	flag.StringVar(&serverAddr, "s", "", "address of punchclock server")
	flag.StringVar(&logLevel, "l", "", "log level")
	flag.StringVar(&logFile, "log-file", "", "file to write client logs")
	flag.StringVar(&userName, "name", "", "user name for registration")
	flag.StringVar(&email, "email", "", "user email")
	flag.StringVar(&password, "password", "", "user password")
	flagUserID := flag.Int64("user", 0, "id of the user the point is created for")
	flag.StringVar(&instant, "instant", "", "point instant in RFC3339 format, server time by default")
	flag.StringVar(&bearerToken, "token", "", "bearer token for authenticated requests")

	// Вызов flag.Parse() для парсинга аргументов
	flag.Parse()
	userID = *flagUserID
}

// commandArg - функция для получения команды клиента из первого позиционного аргумента.
func commandArg() string {
	return flag.Arg(0)
}

// parseEnvironment - функция для переопределения конфигурации из глобальных переменных.
// Переопределяет конфигурацию, если значения не установлены флагами.
func parseEnvironment() {
	if serverAddr == "" {
		serverAddr = os.Getenv("PUNCHCLOCK_CLIENT_ADDRESS")
	}
	if logLevel == "" {
		logLevel = os.Getenv("PUNCHCLOCK_CLIENT_LOG_LEVEL")
	}
	if bearerToken == "" {
		bearerToken = os.Getenv("PUNCHCLOCK_CLIENT_TOKEN")
	}
}

// checkVariables - функция для проверки корректности установки глобальных переменных.
func checkVariables() error {
	if serverAddr == "" {
		return fmt.Errorf("address of punchclock server must be set")
	}
	// уровень логирования по умолчанию
	if logLevel == "" {
		logLevel = "info"
	}
	return nil
}
