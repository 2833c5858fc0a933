package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// devSessionSecret signs flash cookies when no secret is configured outside
// production.
const devSessionSecret = "fyyur-development-session-secret-change-me"

// Config holds all application configuration
type Config struct {
	Env string

	Database DatabaseConfig
	Server   ServerConfig
	Session  SessionConfig
	Logging  LoggingConfig

	// AutoMigrate applies pending schema migrations at startup.
	AutoMigrate bool
	// SeedDemo loads the sample venues, artists and shows into an empty database.
	SeedDemo bool
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL      string // Full PostgreSQL URL
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port int
	Host string
}

// Addr is the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SessionConfig holds the cookie session settings used for flash messages.
type SessionConfig struct {
	Secret string
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
	File   string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{Env: strings.ToLower(getEnvOrDefault("ENV", "development"))}

	if err := cfg.loadDatabase(); err != nil {
		return nil, fmt.Errorf("load database config: %w", err)
	}
	if err := cfg.loadServer(); err != nil {
		return nil, fmt.Errorf("load server config: %w", err)
	}
	if err := cfg.loadFlags(); err != nil {
		return nil, fmt.Errorf("load startup flags: %w", err)
	}
	cfg.loadSession()
	cfg.loadLogging()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func (c *Config) loadDatabase() error {
	c.Database.URL = os.Getenv("DATABASE_URL")
	if c.Database.URL != "" {
		return nil
	}

	c.Database.Host = getEnvOrDefault("DB_HOST", "localhost")
	c.Database.User = os.Getenv("DB_USER")
	c.Database.Password = os.Getenv("DB_PASSWORD")
	c.Database.Name = getEnvOrDefault("DB_NAME", "fyyur")
	c.Database.SSLMode = getEnvOrDefault("DB_SSLMODE", "disable")

	port, err := strconv.Atoi(getEnvOrDefault("DB_PORT", "5432"))
	if err != nil {
		return fmt.Errorf("invalid DB_PORT: %w", err)
	}
	c.Database.Port = port

	if c.Database.Host != "" && c.Database.User != "" && c.Database.Name != "" {
		c.Database.URL = fmt.Sprintf(
			"postgresql://%s:%s@%s:%d/%s?sslmode=%s",
			c.Database.User,
			c.Database.Password,
			c.Database.Host,
			c.Database.Port,
			c.Database.Name,
			c.Database.SSLMode,
		)
	}
	return nil
}

func (c *Config) loadServer() error {
	port, err := strconv.Atoi(getEnvOrDefault("PORT", "5001"))
	if err != nil {
		return fmt.Errorf("invalid PORT: %w", err)
	}
	c.Server.Port = port
	c.Server.Host = getEnvOrDefault("HOST", "0.0.0.0")
	return nil
}

func (c *Config) loadFlags() error {
	var err error
	if c.AutoMigrate, err = strconv.ParseBool(getEnvOrDefault("AUTO_MIGRATE", "true")); err != nil {
		return fmt.Errorf("invalid AUTO_MIGRATE: %w", err)
	}
	if c.SeedDemo, err = strconv.ParseBool(getEnvOrDefault("SEED_DEMO", "false")); err != nil {
		return fmt.Errorf("invalid SEED_DEMO: %w", err)
	}
	return nil
}

func (c *Config) loadSession() {
	c.Session.Secret = os.Getenv("SESSION_SECRET")
	if c.Session.Secret == "" && !c.IsProduction() {
		c.Session.Secret = devSessionSecret
	}
}

func (c *Config) loadLogging() {
	c.Logging.Level = getEnvOrDefault("LOG_LEVEL", "info")
	c.Logging.Format = getEnvOrDefault("LOG_FORMAT", "json")
	c.Logging.File = os.Getenv("LOG_FILE")
}

// Validate checks that all required configuration is present and valid
func (c *Config) Validate() error {
	var errors []string

	if c.Database.URL == "" {
		errors = append(errors, "DATABASE_URL is required (or DB_HOST, DB_USER, DB_NAME)")
	}

	if c.Session.Secret == "" {
		errors = append(errors, "SESSION_SECRET is required in production")
	} else if len(c.Session.Secret) < 32 {
		errors = append(errors, "SESSION_SECRET must be at least 32 characters")
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errors = append(errors, "PORT must be between 1 and 65535")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		errors = append(errors, "LOG_LEVEL must be one of: debug, info, warn, error")
	}

	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[c.Logging.Format] {
		errors = append(errors, "LOG_FORMAT must be one of: json, text")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
