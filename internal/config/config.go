// Package config provides environment configuration loading and validation.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration for the service.
// It is built once at startup and passed by reference; nothing reads the
// environment after Load returns.
type Config struct {
	Port        int
	DatabaseURL string

	// TokenSecret signs session tokens. Required, no default.
	TokenSecret string
	// TokenTTL is the lifetime of issued session tokens.
	TokenTTL time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	CORSOrigins []string

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Load builds a Config from environment variables.
// It returns an error naming every missing required variable so operators
// can fix the environment in one pass.
func Load() (*Config, error) {
	var missing []string
	for _, name := range []string{"DATABASE_URL", "TOKEN_SECRET"} {
		if os.Getenv(name) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	return &Config{
		Port:          port,
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		TokenSecret:   os.Getenv("TOKEN_SECRET"),
		TokenTTL:      getEnvDuration("TOKEN_TTL", time.Hour),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,
		CORSOrigins:   splitOrigins(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		ReadTimeout:   getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:  getEnvDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:   getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
	}, nil
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration retrieves a duration environment variable or returns a default value
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
