package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Session storage backends.
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Credential verifiers.
const (
	VerifierStatic   = "static"
	VerifierPostgres = "postgres"
)

// Catalog sources.
const (
	SourceBuiltin = "builtin"
	SourceFile    = "file"
	SourceS3      = "s3"
)

const minSecretLength = 16

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Logger   LoggerConfig
	Session  SessionConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Catalog  CatalogConfig
	S3       S3Config
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	MaxConnections  int
	MinConnections  int
	MaxConnLifetime int // seconds
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// SessionConfig selects where per-browser values live and how the client
// cookie is signed.
type SessionConfig struct {
	Backend    string
	Secret     string
	CookieName string
}

// RedisConfig holds the redis session backend settings.
type RedisConfig struct {
	Addr   string
	Prefix string
}

// AuthConfig selects the credential verifier. Username and Password are
// the accepted pair for the static verifier.
type AuthConfig struct {
	Verifier string
	Username string
	Password string
}

// CatalogConfig selects where the product catalog is loaded from.
type CatalogConfig struct {
	Source string
	Dir    string
}

// S3Config holds AWS S3 configuration for catalog documents.
type S3Config struct {
	Bucket string
	Region string
	Prefix string // Path prefix within bucket (e.g., "catalog/")
}

// Load reads the environment via FromEnv and validates the result.
func Load() (*Config, error) {
	cfg, err := FromEnv()
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// FromEnv reads an optional .env file and then builds the configuration
// from environment variables without validating it. Variables already set
// in the environment win over the file.
func FromEnv() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}

	return &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvAsInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", ""),
			Database:        getEnv("DB_NAME", "crazycoffee"),
			MaxConnections:  getEnvAsInt("DB_MAX_CONNECTIONS", 10),
			MinConnections:  getEnvAsInt("DB_MIN_CONNECTIONS", 1),
			MaxConnLifetime: getEnvAsInt("DB_MAX_CONN_LIFETIME", 300),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Session: SessionConfig{
			Backend:    getEnv("SESSION_BACKEND", BackendMemory),
			Secret:     getEnv("SESSION_SECRET", ""),
			CookieName: getEnv("SESSION_COOKIE", "cafe_client"),
		},
		Redis: RedisConfig{
			Addr:   getEnv("REDIS_ADDR", "localhost:6379"),
			Prefix: getEnv("REDIS_PREFIX", "cafe:"),
		},
		Auth: AuthConfig{
			Verifier: getEnv("AUTH_VERIFIER", VerifierStatic),
			Username: getEnv("AUTH_USERNAME", "admin"),
			Password: getEnv("AUTH_PASSWORD", "admin"),
		},
		Catalog: CatalogConfig{
			Source: getEnv("CATALOG_SOURCE", SourceBuiltin),
			Dir:    getEnv("CATALOG_DIR", "data/catalog"),
		},
		S3: S3Config{
			Bucket: getEnv("S3_BUCKET", ""),
			Region: getEnv("S3_REGION", "us-east-1"),
			Prefix: getEnv("S3_PREFIX", "catalog/"),
		},
	}, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	switch c.Session.Backend {
	case BackendMemory, BackendRedis, BackendPostgres:
	default:
		return fmt.Errorf("invalid session backend: %s (must be memory, redis, or postgres)", c.Session.Backend)
	}

	if len(c.Session.Secret) < minSecretLength {
		return fmt.Errorf("session secret must be at least %d characters", minSecretLength)
	}

	if c.Session.CookieName == "" {
		return fmt.Errorf("session cookie name is required")
	}

	if c.Session.Backend == BackendRedis && c.Redis.Addr == "" {
		return fmt.Errorf("redis address is required when the redis session backend is used")
	}

	switch c.Auth.Verifier {
	case VerifierStatic:
		if c.Auth.Username == "" || c.Auth.Password == "" {
			return fmt.Errorf("auth username and password are required for the static verifier")
		}
	case VerifierPostgres:
	default:
		return fmt.Errorf("invalid auth verifier: %s (must be static or postgres)", c.Auth.Verifier)
	}

	switch c.Catalog.Source {
	case SourceBuiltin:
	case SourceFile:
		if c.Catalog.Dir == "" {
			return fmt.Errorf("catalog directory is required for the file source")
		}
	case SourceS3:
		if c.S3.Bucket == "" {
			return fmt.Errorf("S3 bucket is required when the catalog source is s3")
		}
		if c.S3.Region == "" {
			return fmt.Errorf("S3 region is required when the catalog source is s3")
		}
	default:
		return fmt.Errorf("invalid catalog source: %s (must be builtin, file, or s3)", c.Catalog.Source)
	}

	if c.UsesPostgres() {
		if err := c.Database.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// UsesPostgres reports whether any component needs a database pool.
func (c *Config) UsesPostgres() bool {
	return c.Session.Backend == BackendPostgres || c.Auth.Verifier == VerifierPostgres
}

// Validate checks the database settings.
func (c *DatabaseConfig) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid database port: %d", c.Port)
	}

	if c.User == "" {
		return fmt.Errorf("database user is required")
	}

	if c.Database == "" {
		return fmt.Errorf("database name is required")
	}

	if c.MaxConnections < 1 {
		return fmt.Errorf("database max connections must be at least 1")
	}

	if c.MinConnections < 1 {
		return fmt.Errorf("database min connections must be at least 1")
	}

	if c.MinConnections > c.MaxConnections {
		return fmt.Errorf("database min connections cannot exceed max connections")
	}

	return nil
}

// ConnectionString returns the PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
