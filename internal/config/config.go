package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	// Database
	DBDriver string // "sqlite" or "postgres"
	DBDSN    string

	// Server
	ApiPort        string
	AllowedOrigins []string

	// Bootstrap
	SeedOnStartup bool

	// App Defaults
	AppName string
}

// Load configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file, ignoring errors if it doesn't exist
	godotenv.Load()

	cfg := &Config{}

	// Helper function to get env var or default
	getEnv := func(key, defaultValue string) string {
		if value, exists := os.LookupEnv(key); exists {
			return value
		}
		return defaultValue
	}

	cfg.DBDriver = getEnv("DB_DRIVER", "sqlite")
	if cfg.DBDriver != "sqlite" && cfg.DBDriver != "postgres" {
		return nil, fmt.Errorf("invalid DB_DRIVER: %q (expected sqlite or postgres)", cfg.DBDriver)
	}
	cfg.DBDSN = getEnv("DB_DSN", "showcase.db?_foreign_keys=on")
	cfg.ApiPort = getEnv("API_PORT", "8080")
	cfg.AppName = getEnv("APP_NAME", "HomeShowcase")

	// Comma-separated list of origins allowed to call the API from a browser.
	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173")
	for _, origin := range strings.Split(origins, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	var err error
	cfg.SeedOnStartup, err = strconv.ParseBool(getEnv("SEED_ON_STARTUP", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEED_ON_STARTUP: %w", err)
	}

	return cfg, nil
}
