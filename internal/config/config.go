// Package config loads runtime configuration from the environment,
// with an optional .env file for development.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds the resolved runtime settings.
type Config struct {
	DBPath   string
	LogLevel string
}

// New loads configuration from the environment.
func New() *Config {
	_ = godotenv.Load()

	return &Config{
		DBPath:   getEnv("MOODFLOW_DB", defaultDBPath()),
		LogLevel: getEnv("MOODFLOW_LOG", "info"),
	}
}

func defaultDBPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".moodflow", "moodflow.db")
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}
