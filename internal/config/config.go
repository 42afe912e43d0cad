package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Reporting ReportingConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port        string
	CORSOrigins []string
}

// DatabaseConfig holds settings for the backing store.
type DatabaseConfig struct {
	URL string
}

// ReportingConfig holds scheduler-related settings.
type ReportingConfig struct {
	CronSchedule string
}

// Load reads environment variables into a Config. Outside production it first
// loads a local .env file when one exists.
func Load() (Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return Config{}, errors.New("DATABASE_URL is not set")
	}

	cfg := Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		},
		Database: DatabaseConfig{
			URL: dbURL,
		},
		Reporting: ReportingConfig{
			// nightly, 03:00
			CronSchedule: getEnv("REPORT_CRON", "0 3 * * *"),
		},
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
