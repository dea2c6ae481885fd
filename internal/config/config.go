package config

import (
	"errors"
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Session and catalog backends
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendStatic   = "static"
)

// Config is the server configuration read from the environment
type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	Env      string `env:"ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	SessionBackend string `env:"SESSION_BACKEND" envDefault:"memory"`
	CatalogBackend string `env:"CATALOG_BACKEND" envDefault:"static"`
	RedisURL       string `env:"REDIS_URL"`
	DatabaseURL    string `env:"DATABASE_URL"`

	DefaultAfterLogin string `env:"DEFAULT_AFTER_LOGIN" envDefault:"/dashboard"`
}

// Load reads .env when present, then parses the environment
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}
	return Parse()
}

// Parse reads the configuration from the process environment only
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// IsProduction reports whether ENV is production
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// Validate checks backend selection against the connection settings it needs
func (c Config) Validate() error {
	var errs []error

	switch c.SessionBackend {
	case BackendMemory:
	case BackendRedis:
		if c.RedisURL == "" {
			errs = append(errs, errors.New("SESSION_BACKEND=redis requires REDIS_URL"))
		}
	case BackendPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("SESSION_BACKEND=postgres requires DATABASE_URL"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown SESSION_BACKEND %q", c.SessionBackend))
	}

	switch c.CatalogBackend {
	case BackendStatic:
	case BackendPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("CATALOG_BACKEND=postgres requires DATABASE_URL"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown CATALOG_BACKEND %q", c.CatalogBackend))
	}

	if c.DefaultAfterLogin == "" || c.DefaultAfterLogin[0] != '/' {
		errs = append(errs, fmt.Errorf("DEFAULT_AFTER_LOGIN %q must be an absolute path", c.DefaultAfterLogin))
	}

	return errors.Join(errs...)
}

// NeedsDatabase reports whether any backend uses postgres
func (c Config) NeedsDatabase() bool {
	return c.SessionBackend == BackendPostgres || c.CatalogBackend == BackendPostgres
}
