// Copyright (c) 2026 SomaliTag. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values. A local '.env' file is
merged in first (via 'joho/godotenv') when present, which keeps development setups
free of shell exports.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (catalog source, preference backend) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/taibuivan/somalitag/internal/platform/validate"
)

// Catalog sources.
const (
	CatalogSourceBuiltin  = "builtin"
	CatalogSourceYAML     = "yaml"
	CatalogSourcePostgres = "postgres"
)

// Preference backends.
const (
	PreferenceBackendCookie = "cookie"
	PreferenceBackendMemory = "memory"
	PreferenceBackendRedis  = "redis"
)

// # Configuration Schema

// Config holds all runtime configuration for the SomaliTag server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Catalog source: builtin dataset, a YAML file, or a PostgreSQL snapshot.
	CatalogSource string `env:"CATALOG_SOURCE" envDefault:"builtin"`
	CatalogPath   string `env:"CATALOG_PATH"`

	// Relational Database (PostgreSQL), only for the postgres catalog source.
	DatabaseURL string `env:"DATABASE_URL"`

	// MigrationPath overrides the embedded SQL migrations with a directory on disk.
	MigrationPath string `env:"MIGRATION_PATH"`

	// Preference persistence: browser cookies, or process memory / Redis keyed by a visitor cookie.
	PreferenceBackend string        `env:"PREFERENCE_BACKEND" envDefault:"cookie"`
	PreferenceTTL     time.Duration `env:"PREFERENCE_TTL"     envDefault:"8760h"`

	// Key-Value store (Redis), only for the redis preference backend.
	RedisURL string `env:"REDIS_URL"`

	// Cross-Origin Resource Sharing
	ExtraOrigins []string `env:"EXTRA_ORIGINS" envSeparator:","`
}

// # Configuration Loading

// Load merges an optional '.env' file into the environment and parses it into a [Config].
func Load() (*Config, error) {

	// A missing .env file is the normal case outside development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to read .env file: %w", err)
	}

	return Parse()
}

// Parse maps the current environment onto a [Config] and validates it.
func Parse() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// Validate enforces the requirements that depend on the selected backends.
func (c *Config) Validate() error {
	validator := &validate.Validator{}

	validator.OneOf("CATALOG_SOURCE", c.CatalogSource, CatalogSourceBuiltin, CatalogSourceYAML, CatalogSourcePostgres)
	validator.OneOf("PREFERENCE_BACKEND", c.PreferenceBackend, PreferenceBackendCookie, PreferenceBackendMemory, PreferenceBackendRedis)

	switch c.CatalogSource {
	case CatalogSourceYAML:
		validator.Required("CATALOG_PATH", c.CatalogPath)
	case CatalogSourcePostgres:
		validator.Required("DATABASE_URL", c.DatabaseURL)
	}

	if c.PreferenceBackend == PreferenceBackendRedis {
		validator.Required("REDIS_URL", c.RedisURL)
	}

	validator.Custom("PREFERENCE_TTL", c.PreferenceTTL <= 0, "Must be a positive duration")

	return validator.Err()
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AllowedOrigins returns the extra CORS origins configured for production.
func (c *Config) AllowedOrigins() []string {
	return c.ExtraOrigins
}
