package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultEndpoint       = "https://practicum.yandex.ru/api/statuses/homework_statuses/"
	defaultPollInterval   = 10 * time.Minute
	defaultRequestTimeout = 30 * time.Second
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	PracticumToken string
	TelegramToken  string
	TelegramChatID int64
	Endpoint       string
	PollInterval   time.Duration
	RequestTimeout time.Duration
	LogLevel       string
	LogFile        string
	Environment    string
}

// Load reads configuration from environment variables and .env file (if present).
// The three credentials are required; everything else has a default.
func Load() (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}
	var err error

	cfg.PracticumToken = os.Getenv("PRACTICUM_TOKEN")
	if cfg.PracticumToken == "" {
		return nil, fmt.Errorf("PRACTICUM_TOKEN is not set")
	}

	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is not set")
	}

	chatIDStr := os.Getenv("TELEGRAM_CHAT_ID")
	if chatIDStr == "" {
		return nil, fmt.Errorf("TELEGRAM_CHAT_ID is not set")
	}
	cfg.TelegramChatID, err = strconv.ParseInt(chatIDStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
	}

	cfg.Endpoint = os.Getenv("HOMEWORK_ENDPOINT")
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
	}

	cfg.PollInterval, err = durationEnv("POLL_INTERVAL", defaultPollInterval)
	if err != nil {
		return nil, err
	}

	cfg.RequestTimeout, err = durationEnv("REQUEST_TIMEOUT", defaultRequestTimeout)
	if err != nil {
		return nil, err
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.LogFile = os.Getenv("LOG_FILE")
	if cfg.LogFile == "" {
		cfg.LogFile = "main.log"
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	return cfg, nil
}

func durationEnv(name string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", name)
	}
	return d, nil
}
