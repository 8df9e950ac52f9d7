package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/abezemskiy/punchclock/internal/common/identity/tools/token"
	"github.com/abezemskiy/punchclock/internal/server/config"
)

var (
	netAddr        string // адрес запуска сервиса
	logLevel       string // уровень логирования
	configFile     string // путь к файлу конфигурации
	secretKey      string // секретный ключ для создания JWT
	expireToken    int    // время действия JWT в часах
	lateTolerance  int    // допустимое отставание отметки от серверного времени в секундах
	earlyTolerance int    // допустимое опережение отметки в секундах
	cooldown       int    // минимальный интервал между отметками одного пользователя в минутах
)

// parseVariables - функция для установки конфигурационных параметров приложения.
// Конфигурирование приложения с приоритетом в порядке убывания: значения флагов, значения из файла, значения переменных окружения.
func parseVariables() error {
	parseFlags()
	parseConfigFile()
	parseEnvironment()

	// Проверяю корректность установки глобальных переменных
	err := checkVariables()
	if err != nil {
		return fmt.Errorf("failed to set global variable, %w", err)
	}

	// Устанавливаю полученные значения глобальных переменных
	token.SetSecretKey(secretKey)
	token.SetExpireHour(expireToken)
	return nil
}

// parseFlags - функция для определения параметров конфигурации из флагов.
func parseFlags() {
	flag.StringVar(&netAddr, "a", "", "address and port to run server")
	flag.StringVar(&logLevel, "l", "", "log level")
	flag.StringVar(&configFile, "c", "", "name of configuration file")
	flag.StringVar(&secretKey, "secret-key", "", "secret key for generating JWT")
	flagExpireToken := flag.Int("expire-token", 0, "JWT expiration date in hours")
	flagLateTolerance := flag.Int("late-tolerance", 0, "allowed point lag behind server time in seconds")
	flagEarlyTolerance := flag.Int("early-tolerance", 0, "allowed point lead ahead of server time in seconds")
	flagCooldown := flag.Int("cooldown", 0, "minimal interval between user points in minutes")

	// Вызов flag.Parse() для парсинга аргументов
	flag.Parse()
	expireToken = *flagExpireToken
	lateTolerance = *flagLateTolerance
	earlyTolerance = *flagEarlyTolerance
	cooldown = *flagCooldown
}

// parseConfigFile - функция для переопределения параметров конфигурации из файла конфигурации.
func parseConfigFile() {
	// если не указан файл конфигурации, то оставляю параметры запуска без изменения
	if configFile == "" {
		return
	}
	configs, err := config.ParseConfigFile(configFile)
	if err != nil {
		log.Fatalf("parse config file error: %v\n", err)
	}

	// обновляю параметры запуска если они не определены флагами
	if netAddr == "" {
		netAddr = configs.Address
	}
	if logLevel == "" {
		logLevel = configs.LogLevel
	}
	if secretKey == "" {
		secretKey = configs.SecretKey
	}
	if expireToken == 0 {
		expireToken = configs.ExpireToken
	}
	if lateTolerance == 0 {
		lateTolerance = configs.LateTolerance
	}
	if earlyTolerance == 0 {
		earlyTolerance = configs.EarlyTolerance
	}
	if cooldown == 0 {
		cooldown = configs.Cooldown
	}
}

// parseEnvironment - функция для переопределения конфигурации из глобальных переменных.
// Переопределяет конфигурацию, если значения не установлены флагами или файлом конфигурации.
func parseEnvironment() {
	if netAddr == "" {
		netAddr = os.Getenv("PUNCHCLOCK_SERVER_ADDRESS")
	}
	if logLevel == "" {
		logLevel = os.Getenv("PUNCHCLOCK_SERVER_LOG_LEVEL")
	}
	if secretKey == "" {
		secretKey = os.Getenv("PUNCHCLOCK_SERVER_SECRET_KEY")
	}
	if expireToken == 0 {
		expireToken = parseIntVariable(os.Getenv("PUNCHCLOCK_SERVER_EXPIRE_TOKEN"))
	}
	if lateTolerance == 0 {
		lateTolerance = parseIntVariable(os.Getenv("PUNCHCLOCK_SERVER_LATE_TOLERANCE"))
	}
	if earlyTolerance == 0 {
		earlyTolerance = parseIntVariable(os.Getenv("PUNCHCLOCK_SERVER_EARLY_TOLERANCE"))
	}
	if cooldown == 0 {
		cooldown = parseIntVariable(os.Getenv("PUNCHCLOCK_SERVER_COOLDOWN"))
	}
}

// parseIntVariable - функция для получения целочисленного значения из переменной окружения.
// При ошибке парсинга или пустом значении возвращается ноль.
func parseIntVariable(env string) int {
	if env == "" {
		return 0
	}
	value, err := strconv.Atoi(env)
	if err != nil {
		return 0
	}
	return value
}

// checkVariables - функция для проверки корректности установки глобальных переменных.
func checkVariables() error {
	if netAddr == "" {
		return fmt.Errorf("address and port to run server must be set")
	}
	if logLevel == "" {
		return fmt.Errorf("log level must be set")
	}
	if secretKey == "" {
		return fmt.Errorf("secret key must be set")
	}
	if expireToken == 0 {
		return fmt.Errorf("expire token must be set")
	}
	return nil
}
