// Package config centralises configuration parsing for the signup service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config captures runtime configuration values for the signup service.
type Config struct {
	HTTPAddress    string
	CatalogPath    string // optional YAML file replacing the built-in activity table
	AllowedOrigins []string

	// Optional roster validation rules; both off unless enabled.
	RejectDuplicateSignups bool
	EnforceCapacity        bool

	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	RequestTimeout time.Duration

	LogEnv     string
	LogBackend string
	LogDebug   bool
}

// Load reads environment variables into Config, applying sensible defaults for local dev.
func Load() Config {
	cfg := Config{
		HTTPAddress:            getEnv("HTTP_ADDRESS", ":8080"),
		CatalogPath:            getEnv("CATALOG_PATH", ""),
		RejectDuplicateSignups: getBoolEnv("REJECT_DUPLICATE_SIGNUPS", false),
		EnforceCapacity:        getBoolEnv("ENFORCE_CAPACITY", false),
		ReadTimeout:            getDurationEnv("HTTP_READ_TIMEOUT", 5*time.Second),
		WriteTimeout:           getDurationEnv("HTTP_WRITE_TIMEOUT", 10*time.Second),
		IdleTimeout:            getDurationEnv("HTTP_IDLE_TIMEOUT", 60*time.Second),
		RequestTimeout:         getDurationEnv("HTTP_REQUEST_TIMEOUT", 30*time.Second),
		LogEnv:                 getEnv("LOG_ENV", "dev"),
		LogBackend:             getEnv("LOG_BACKEND", ""),
		LogDebug:               getBoolEnv("LOG_DEBUG", false),
	}

	origins := getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173")
	cfg.AllowedOrigins = splitAndTrim(origins)
	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getBoolEnv(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
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
