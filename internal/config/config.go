package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	API APIConfig
	App AppConfig
}

// APIConfig holds HRM API connection configuration
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// AppConfig holds application configuration
type AppConfig struct {
	StatePath string
	Env       string
	LogLevel  string
}

func Load() (*Config, error) {
	// A .env file is optional for a client tool.
	_ = godotenv.Load()

	config := &Config{}

	timeout, err := time.ParseDuration(getEnv("HRM_API_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HRM_API_TIMEOUT: %w", err)
	}

	config.API = APIConfig{
		BaseURL: getEnv("HRM_API_URL", "http://localhost:8000"),
		Timeout: timeout,
	}

	config.App = AppConfig{
		StatePath: getEnv("HRM_STATE_FILE", defaultStatePath()),
		Env:       getEnv("APP_ENV", "development"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("HRM_API_URL is required")
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("HRM_API_TIMEOUT must be positive")
	}
	if c.App.StatePath == "" {
		return fmt.Errorf("HRM_STATE_FILE is required")
	}
	return nil
}

func defaultStatePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".hrm-console/state.json"
	}
	return filepath.Join(home, ".hrm-console", "state.json")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
