// Package config centralises configuration parsing for the signups service.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config captures runtime configuration values for the signups service.
type Config struct {
	HTTPAddress     string
	SeedFile        string // Optional YAML catalog; empty means the built-in seed.
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
}

// Load reads environment variables into Config, applying sensible defaults for
// local dev. A .env file next to the binary is honoured when present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		HTTPAddress:     getEnv("HTTP_ADDRESS", ":8080"),
		SeedFile:        getEnv("SEED_FILE", ""),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "json"),
		ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 15*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
