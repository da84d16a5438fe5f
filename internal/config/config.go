package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	// Environment variables
	_ "github.com/joho/godotenv/autoload"

	"stellar-cargo/internal/database"
	"stellar-cargo/internal/store"
)

// SessionBackend selects where login sessions are persisted.
type SessionBackend string

const (
	SessionMemory   SessionBackend = "memory"
	SessionFile     SessionBackend = "file"
	SessionPostgres SessionBackend = "postgres"
	SessionSQLite   SessionBackend = "sqlite"
)

// Config holds the service configuration. Values come from the process
// environment, optionally seeded from a .env file in the working directory.
type Config struct {
	Port     int    `envconfig:"PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	SessionBackend SessionBackend `envconfig:"SESSION_BACKEND" default:"memory"`
	SessionDir     string         `envconfig:"SESSION_DIR" default:"./data/sessions"`

	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBDatabase string `envconfig:"DB_DATABASE" default:"stellar_cargo"`
	DBUsername string `envconfig:"DB_USERNAME" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBSchema   string `envconfig:"DB_SCHEMA" default:"public"`
	SQLitePath string `envconfig:"SQLITE_PATH" default:"./data/sessions.db"`

	MigrationsPath string `envconfig:"MIGRATIONS_PATH" default:"./migrations"`
	MigrateOnStart bool   `envconfig:"MIGRATE_ON_START" default:"true"`

	AuthSecret   string        `envconfig:"AUTH_SECRET"`
	AuthTokenTTL time.Duration `envconfig:"AUTH_TOKEN_TTL" default:"12h"`
	DemoPassword string        `envconfig:"DEMO_PASSWORD" default:"spacehack"`
	LoginDelay   time.Duration `envconfig:"LOGIN_DELAY" default:"800ms"`

	RateLimitRPS   float64 `envconfig:"RATE_LIMIT_RPS" default:"5"`
	RateLimitBurst int     `envconfig:"RATE_LIMIT_BURST" default:"20"`

	ReferencePolicy string `envconfig:"REFERENCE_POLICY" default:"nullify"`

	ExportDir         string `envconfig:"EXPORT_DIR"`
	ExportS3Bucket    string `envconfig:"EXPORT_S3_BUCKET"`
	ExportS3Prefix    string `envconfig:"EXPORT_S3_PREFIX"`
	ExportS3Region    string `envconfig:"EXPORT_S3_REGION" default:"us-east-1"`
	ExportS3Endpoint  string `envconfig:"EXPORT_S3_ENDPOINT"`
	ExportS3PathStyle bool   `envconfig:"EXPORT_S3_PATH_STYLE"`
	ExportS3AccessKey string `envconfig:"EXPORT_S3_ACCESS_KEY_ID"`
	ExportS3SecretKey string `envconfig:"EXPORT_S3_SECRET_ACCESS_KEY"`
}

// Load reads the environment and validates the result.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.SessionBackend {
	case SessionMemory, SessionFile, SessionPostgres, SessionSQLite:
	default:
		return fmt.Errorf("unsupported SESSION_BACKEND: %s", c.SessionBackend)
	}
	if _, err := store.ParseReferencePolicy(c.ReferencePolicy); err != nil {
		return fmt.Errorf("REFERENCE_POLICY: %w", err)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT: %d", c.Port)
	}
	if c.AuthTokenTTL <= 0 {
		return errors.New("AUTH_TOKEN_TTL must be positive")
	}
	if c.LoginDelay < 0 {
		return errors.New("LOGIN_DELAY must not be negative")
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	if c.ExportDir != "" && c.ExportS3Bucket != "" {
		return errors.New("EXPORT_DIR and EXPORT_S3_BUCKET are mutually exclusive")
	}
	return nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Database maps the DB_* keys onto a database.Config for the SQL backends.
func (c *Config) Database() database.Config {
	dialect := database.Postgres
	if c.SessionBackend == SessionSQLite {
		dialect = database.SQLite
	}
	return database.Config{
		Dialect:    dialect,
		Host:       c.DBHost,
		Port:       c.DBPort,
		Database:   c.DBDatabase,
		Username:   c.DBUsername,
		Password:   c.DBPassword,
		Schema:     c.DBSchema,
		SQLitePath: c.SQLitePath,
	}
}

// UsesDatabase reports whether sessions live in a SQL backend.
func (c *Config) UsesDatabase() bool {
	return c.SessionBackend == SessionPostgres || c.SessionBackend == SessionSQLite
}
