package config

import (
	"os"
	"strconv"
	"time"

	"fleetrent-service/internal/pkg/jwt"
)

type AppConfig struct {
	// Server
	HTTPAddr string
	GinMode  string
	LogLevel string

	// JWT
	JWT jwt.Config
}

// Load loads environment variables into AppConfig.
func Load() AppConfig {
	return AppConfig{
		HTTPAddr: getEnv("HTTP_ADDR", ":8000"),
		GinMode:  getEnv("GIN_MODE", "debug"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		JWT: jwt.Config{
			Secret:   getEnv("JWT_SECRET", "dev-only-insecure-secret"),
			Issuer:   getEnv("JWT_ISSUER", "fleetrent"),
			Audience: getEnv("JWT_AUDIENCE", "fleetrent-users"),
			TTL:      getEnvDuration("JWT_TTL_HOURS", 24) * time.Hour,
		},
	}
}

// --- Helper functions ---

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback int64) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return time.Duration(n)
		}
	}
	return time.Duration(fallback)
}
