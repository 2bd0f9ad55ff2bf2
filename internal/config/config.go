package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Identity IdentityConfig
	Tracing  TracingConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds session-token configuration
type JWTConfig struct {
	Secret        string
	TokenDuration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

// IdentityConfig drives login-identifier issuance and initial credentials
type IdentityConfig struct {
	OrgCode         string
	DefaultPassword string
}

type TracingConfig struct {
	OTLPEndpoint string
}

func Load() (*Config, error) {
	// Missing .env is fine; all values can come from the environment.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "dayflow"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("SERVER_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("ENVIRONMENT", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:        getEnv("JWT_SECRET_KEY", ""),
		TokenDuration: getEnv("JWT_TOKEN_DURATION", "24h"),
	}

	// Identifier issuance and initial credentials
	config.Identity = IdentityConfig{
		OrgCode:         getEnv("ORG_CODE", "DF"),
		DefaultPassword: getEnv("DEFAULT_EMPLOYEE_PASSWORD", "Dayflow@123"),
	}

	// Tracing is optional; leaving the endpoint empty disables the exporter.
	config.Tracing = TracingConfig{
		OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
	}

	// Validate required fields
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
	if len(c.Identity.OrgCode) != 2 {
		return fmt.Errorf("ORG_CODE must be exactly 2 characters")
	}
	if c.Identity.DefaultPassword == "" {
		return fmt.Errorf("DEFAULT_EMPLOYEE_PASSWORD is required")
	}
	if len(c.Identity.DefaultPassword) > 72 {
		return fmt.Errorf("DEFAULT_EMPLOYEE_PASSWORD must not exceed 72 characters, the bcrypt input limit")
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

func getEnvSlice(env, fallback string) []string {
	value := getEnv(env, fallback)
	if value == "" {
		return []string{}
	}
	return strings.Split(value, ",")
}
