package main

import (
	"flag"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetVariables() {
	netAddr = ""
	logLevel = ""
	configFile = ""
	secretKey = ""
	expireToken = 0
	lateTolerance = 0
	earlyTolerance = 0
	cooldown = 0
}

func TestParseFlags(t *testing.T) {
	// Сбрасываю значения переменных перед и после тестирования
	resetVariables()
	defer resetVariables()

	os.Args = []string{"cmd", "-a", ":9000", "-l", "debug", "-c", "/config/file", "-secret-key", "flag key",
		"-expire-token", "5", "-late-tolerance", "20", "-early-tolerance", "3", "-cooldown", "40"}

	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	parseFlags()

	assert.Equal(t, ":9000", netAddr)
	assert.Equal(t, "debug", logLevel)
	assert.Equal(t, "/config/file", configFile)
	assert.Equal(t, "flag key", secretKey)
	assert.Equal(t, 5, expireToken)
	assert.Equal(t, 20, lateTolerance)
	assert.Equal(t, 3, earlyTolerance)
	assert.Equal(t, 40, cooldown)
}

func TestParseFlagsPriority(t *testing.T) {
	// Сбрасываю значения переменных перед и после тестирования
	resetVariables()
	defer resetVariables()

	// Устанавливаю переменные окружения
	os.Setenv("PUNCHCLOCK_SERVER_ADDRESS", "env_url")
	os.Setenv("PUNCHCLOCK_SERVER_LOG_LEVEL", "env_info")
	os.Setenv("PUNCHCLOCK_SERVER_SECRET_KEY", "env_key")
	os.Setenv("PUNCHCLOCK_SERVER_EXPIRE_TOKEN", "7")

	defer func() {
		os.Unsetenv("PUNCHCLOCK_SERVER_ADDRESS")
		os.Unsetenv("PUNCHCLOCK_SERVER_LOG_LEVEL")
		os.Unsetenv("PUNCHCLOCK_SERVER_SECRET_KEY")
		os.Unsetenv("PUNCHCLOCK_SERVER_EXPIRE_TOKEN")
	}()

	// Создаю временный конфигурационный файл
	testConfigFile := "./test_config.json"
	configContent := `{
        "address": "file_url",
		"log_level": "file_debug",
		"secret_key": "file_key",
		"expire_token": 9,
		"cooldown": 25
    }`
	err := os.WriteFile(testConfigFile, []byte(configContent), 0644)
	require.NoError(t, err)
	defer os.Remove(testConfigFile)

	// Устанавливаю значения флагов
	os.Args = []string{"cmd", "-a", "flag_url", "-l", "flag_info", "-c", testConfigFile}

	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	parseFlags()
	parseConfigFile()
	parseEnvironment()

	// Флаги имеют приоритет
	assert.Equal(t, "flag_url", netAddr)
	assert.Equal(t, "flag_info", logLevel)
	assert.Equal(t, configFile, testConfigFile)

	// Параметры, не установленные флагами, берутся из файла конфигурации
	assert.Equal(t, "file_key", secretKey)
	assert.Equal(t, 9, expireToken)
	assert.Equal(t, 25, cooldown)
}

func TestParseEnvironment(t *testing.T) {
	// Сбрасываю значения переменных перед и после тестирования
	resetVariables()
	defer resetVariables()

	// Устанавливаем переменные окружения
	os.Setenv("PUNCHCLOCK_SERVER_ADDRESS", ":8000")
	os.Setenv("PUNCHCLOCK_SERVER_LOG_LEVEL", "test_info")
	os.Setenv("PUNCHCLOCK_SERVER_SECRET_KEY", "env_key")
	os.Setenv("PUNCHCLOCK_SERVER_EXPIRE_TOKEN", "2")
	os.Setenv("PUNCHCLOCK_SERVER_LATE_TOLERANCE", "12")
	os.Setenv("PUNCHCLOCK_SERVER_EARLY_TOLERANCE", "4")
	os.Setenv("PUNCHCLOCK_SERVER_COOLDOWN", "35")

	defer func() {
		os.Unsetenv("PUNCHCLOCK_SERVER_ADDRESS")
		os.Unsetenv("PUNCHCLOCK_SERVER_LOG_LEVEL")
		os.Unsetenv("PUNCHCLOCK_SERVER_SECRET_KEY")
		os.Unsetenv("PUNCHCLOCK_SERVER_EXPIRE_TOKEN")
		os.Unsetenv("PUNCHCLOCK_SERVER_LATE_TOLERANCE")
		os.Unsetenv("PUNCHCLOCK_SERVER_EARLY_TOLERANCE")
		os.Unsetenv("PUNCHCLOCK_SERVER_COOLDOWN")
	}()

	parseEnvironment()

	assert.Equal(t, ":8000", netAddr)
	assert.Equal(t, "test_info", logLevel)
	assert.Equal(t, "env_key", secretKey)
	assert.Equal(t, 2, expireToken)
	assert.Equal(t, 12, lateTolerance)
	assert.Equal(t, 4, earlyTolerance)
	assert.Equal(t, 35, cooldown)
}

func TestParseConfigFile(t *testing.T) {
	// Сбрасываю значения переменных перед и после тестирования
	resetVariables()
	defer resetVariables()

	testFlagNetAddr := "localhost:8082"
	testFlagLogLevel := "info"
	testFlagSecretKey := "file key"
	testFlagExpireToken := 6
	testFlagCooldown := 15

	createFile := func(name string) {
		data := fmt.Sprintf("{\"address\": \"%s\",\"log_level\": \"%s\",\"secret_key\": \"%s\",\"expire_token\": %d,\"cooldown\": %d}",
			testFlagNetAddr, testFlagLogLevel, testFlagSecretKey, testFlagExpireToken, testFlagCooldown)
		f, err := os.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(data))
		require.NoError(t, err)
	}
	nameFile := "./test_config.json"
	createFile(nameFile)

	// Утсанавливаю путь к файлу конфигурации
	configFile = nameFile
	parseConfigFile()

	assert.Equal(t, testFlagNetAddr, netAddr)
	assert.Equal(t, testFlagLogLevel, logLevel)
	assert.Equal(t, testFlagSecretKey, secretKey)
	assert.Equal(t, testFlagExpireToken, expireToken)
	assert.Equal(t, testFlagCooldown, cooldown)

	err := os.Remove(nameFile)
	require.NoError(t, err)
}

func TestParseIntVariable(t *testing.T) {
	assert.Equal(t, 0, parseIntVariable(""))
	assert.Equal(t, 0, parseIntVariable("not a number"))
	assert.Equal(t, 42, parseIntVariable("42"))
}

func TestCheckVariables(t *testing.T) {
	// Сбрасываю значения переменных перед и после тестирования
	resetVariables()
	defer resetVariables()

	err := checkVariables()
	require.Error(t, err)

	netAddr = "some addr"
	err = checkVariables()
	require.Error(t, err)

	logLevel = "some level"
	err = checkVariables()
	require.Error(t, err)

	secretKey = "some key"
	err = checkVariables()
	require.Error(t, err)

	expireToken = 1
	err = checkVariables()
	require.NoError(t, err)
}
