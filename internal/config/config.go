package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Env         string
	Port        string
	JWTSecret   string
	FrontendDir string
	Database    DatabaseConfig
	PolicyAdmin PolicyAdminConfig
	Gemini      GeminiConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Database string
}

// PolicyAdminConfig holds the upstream policy administration system settings
type PolicyAdminConfig struct {
	URL          string
	Database     string
	Username     string
	Password     string
	SyncInterval time.Duration
}

// GeminiConfig holds the optional AI summariser settings
type GeminiConfig struct {
	APIKey string
	Model  string
}

// IsDevelopment reports whether the server runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env != "production"
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	syncInterval := 30 * time.Minute
	if raw := os.Getenv("POLICYADMIN_SYNC_INTERVAL"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			syncInterval = parsed
		}
	}

	return &Config{
		Env:         getEnv("APP_ENV", "development"),
		Port:        getEnv("PORT", "3210"),
		JWTSecret:   jwtSecret,
		FrontendDir: getEnv("FRONTEND_DIR", "./public"),
		Database: DatabaseConfig{
			Host:     getEnv("PG_HOST", "localhost"),
			Port:     getEnv("PG_PORT", "5432"),
			Username: getEnv("PG_USERNAME", "postgres"),
			Password: os.Getenv("PG_PASSWORD"),
			Database: getEnv("PG_DATABASE", "bimadesk"),
		},
		PolicyAdmin: PolicyAdminConfig{
			URL:          os.Getenv("POLICYADMIN_URL"),
			Database:     getEnv("POLICYADMIN_DATABASE", "policyadmin"),
			Username:     os.Getenv("POLICYADMIN_USERNAME"),
			Password:     os.Getenv("POLICYADMIN_PASSWORD"),
			SyncInterval: syncInterval,
		},
		Gemini: GeminiConfig{
			APIKey: os.Getenv("GEMINI_API_KEY"),
			Model:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		},
	}, nil
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
