package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

const (
	devSessionSecret   = "dev-secret-change-in-production"
	defaultDatabaseDSN = "root:password@tcp(127.0.0.1:3306)/mealtrack?parseTime=true&loc=Local"
)

type Config struct {
	Port        string
	Env         string
	DatabaseDSN string

	SessionSecret string
	SessionMaxAge time.Duration

	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string
	GeminiTimeout time.Duration

	WeeklySmoothing bool
	MigrateOnStart  bool
}

// Production reports whether the service runs with production settings.
func (c Config) Production() bool {
	return c.Env == "production"
}

func Load() Config {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		DatabaseDSN: DatabaseDSN(),

		SessionSecret: getEnv("SESSION_SECRET", devSessionSecret),
		SessionMaxAge: getEnvDuration("SESSION_MAX_AGE", 7*24*time.Hour),

		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		GeminiBaseURL: getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
		GeminiTimeout: getEnvDuration("GEMINI_TIMEOUT", 60*time.Second),

		WeeklySmoothing: getEnvBool("WEEKLY_SMOOTHING", true),
		MigrateOnStart:  getEnvBool("MIGRATE_ON_START", false),
	}

	if cfg.Production() && cfg.SessionSecret == devSessionSecret {
		slog.Error("SESSION_SECRET must be set in production environment")
		os.Exit(1)
	}
	if cfg.GeminiAPIKey == "" {
		slog.Warn("GEMINI_API_KEY is not set, meal analysis will fail")
	}

	return cfg
}

// DatabaseDSN returns the configured MySQL DSN without loading the rest of
// the server configuration.
func DatabaseDSN() string {
	return getEnv("DATABASE_DSN", defaultDatabaseDSN)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid boolean in environment, using default", "key", key, "value", v)
		return fallback
	}
	return b
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration in environment, using default", "key", key, "value", v)
		return fallback
	}
	return d
}
