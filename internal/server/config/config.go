package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
)

// Configs представляет структуру конфигурации.
type Configs struct {
	Address        string `json:"address"`         // аналог переменной окружения PUNCHCLOCK_SERVER_ADDRESS или флага -a
	LogLevel       string `json:"log_level"`       // аналог переменной окружения PUNCHCLOCK_SERVER_LOG_LEVEL или флага -l
	SecretKey      string `json:"secret_key"`      // аналог переменной окружения PUNCHCLOCK_SERVER_SECRET_KEY или флага -secret-key
	ExpireToken    int    `json:"expire_token"`    // аналог переменной окружения PUNCHCLOCK_SERVER_EXPIRE_TOKEN или флага -expire-token
	LateTolerance  int    `json:"late_tolerance"`  // допустимое отставание отметки в секундах, аналог флага -late-tolerance
	EarlyTolerance int    `json:"early_tolerance"` // допустимое опережение отметки в секундах, аналог флага -early-tolerance
	Cooldown       int    `json:"cooldown"`        // минимальный интервал между отметками в минутах, аналог флага -cooldown
}

// ParseConfigFile - функция для переопределения параметров конфигурации из файла конфигурации.
func ParseConfigFile(configFileName string) (Configs, error) {
	var configs Configs
	f, err := os.Open(configFileName)
	if err != nil {
		return Configs{}, fmt.Errorf("open cofiguration file error: %w", err)
	}
	reader := bufio.NewReader(f)
	dec := json.NewDecoder(reader)
	err = dec.Decode(&configs)
	if err != nil {
		return Configs{}, fmt.Errorf("parse cofiguration file error: %w", err)
	}

	return configs, nil
}
