package config

import (
	"os"
	"strings"
)

// Config stores runtime configuration for the API.
type Config struct {
	Port           string
	AllowedOrigins []string
	ConfirmWords   []string
}

// Load resolves configuration from environment variables and sensible
// defaults. An empty ConfirmWords list means the session defaults apply.
func Load() Config {
	return Config{
		Port: envOrDefault("APP_PORT", "8000"),
		AllowedOrigins: envList("CORS_ALLOWED_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}),
		ConfirmWords: envList("DICTEE_CONFIRM_WORDS", nil),
	}
}

func envOrDefault(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	var values []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	if len(values) == 0 {
		return fallback
	}
	return values
}
