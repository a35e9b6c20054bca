package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database  DatabaseConfig
	JWT       JWTConfig
	App       AppConfig
	Dashboard DashboardConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// DashboardConfig holds the lookahead horizons for the overview screen,
// in days. The leave horizon bounds "upcoming leaves", the holiday horizon
// bounds "upcoming holidays".
type DashboardConfig struct {
	LeaveLookaheadDays   int
	HolidayLookaheadDays int
}

func Load() (*Config, error) {
	// .env is optional; deployments may set the environment directly.
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "ems"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "12h"),
	}

	leaveLookahead, err := strconv.Atoi(getEnv("DASHBOARD_LEAVE_LOOKAHEAD_DAYS", "14"))
	if err != nil {
		return nil, fmt.Errorf("invalid DASHBOARD_LEAVE_LOOKAHEAD_DAYS: %w", err)
	}
	holidayLookahead, err := strconv.Atoi(getEnv("DASHBOARD_HOLIDAY_LOOKAHEAD_DAYS", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid DASHBOARD_HOLIDAY_LOOKAHEAD_DAYS: %w", err)
	}
	config.Dashboard = DashboardConfig{
		LeaveLookaheadDays:   leaveLookahead,
		HolidayLookaheadDays: holidayLookahead,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Dashboard.LeaveLookaheadDays < 0 {
		return fmt.Errorf("DASHBOARD_LEAVE_LOOKAHEAD_DAYS must not be negative")
	}
	if c.Dashboard.HolidayLookaheadDays < 0 {
		return fmt.Errorf("DASHBOARD_HOLIDAY_LOOKAHEAD_DAYS must not be negative")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
