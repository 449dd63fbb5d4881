// Package config loads application configuration from an optional YAML
// file plus AUDIT_* environment overrides.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the full application configuration.
type Config struct {
	App   AppConfig   `mapstructure:"app"`
	Store StoreConfig `mapstructure:"store"`
	Audit AuditConfig `mapstructure:"audit"`
}

// AppConfig covers process-level settings.
type AppConfig struct {
	Name     string `mapstructure:"name"`
	LogLevel string `mapstructure:"log_level"`
}

// StoreConfig selects and parameterizes the data store backend.
type StoreConfig struct {
	Backend string `mapstructure:"backend"` // memory | postgres
	DSN     string `mapstructure:"dsn"`
}

// AuditConfig parameterizes the demo audit run.
type AuditConfig struct {
	AuditorCount int   `mapstructure:"auditor_count"`
	RandomSeed   int64 `mapstructure:"random_seed"`
}

// Load reads configuration. The path may be empty, in which case only
// defaults and environment variables apply (AUDIT_STORE_BACKEND,
// AUDIT_STORE_DSN, and so on).
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("AUDIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("app.name", "cdd-audit")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("store.backend", "memory")
	v.SetDefault("store.dsn", "postgres://localhost:5432/postgres?sslmode=disable")
	v.SetDefault("audit.auditor_count", 3)
	v.SetDefault("audit.random_seed", 1)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the loaded configuration.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case "memory", "postgres":
	default:
		return fmt.Errorf("store.backend must be memory or postgres, got %q", c.Store.Backend)
	}
	if c.Store.Backend == "postgres" && c.Store.DSN == "" {
		return fmt.Errorf("store.dsn is required for the postgres backend")
	}
	if c.Audit.AuditorCount < 1 {
		return fmt.Errorf("audit.auditor_count must be at least 1")
	}
	return nil
}
