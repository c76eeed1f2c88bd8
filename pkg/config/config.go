package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"
)

// ErrMissingJWTSecret is returned by Load when no signing secret is
// configured. The server must refuse to start rather than fall back to a
// built-in secret.
var ErrMissingJWTSecret = errors.New("auth.jwt_secret must be set (config file or JWT_SECRET)")

// Config represents the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Auth     AuthConfig     `yaml:"auth"`
	Reminder ReminderConfig `yaml:"reminder"`
	DataDir  string         `yaml:"data_dir"` // empty keeps all state in memory
	LogLevel string         `yaml:"log_level"`
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// AuthConfig represents authentication configuration
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret"`
	TokenTTL  string `yaml:"token_ttl"`
}

// ReminderConfig represents reminder scanner configuration
type ReminderConfig struct {
	Interval string `yaml:"interval"`
}

// DefaultConfig returns the default configuration. The JWT secret has no
// default on purpose.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Auth: AuthConfig{
			TokenTTL: "1h",
		},
		Reminder: ReminderConfig{
			Interval: "1m",
		},
		LogLevel: "info",
	}
}

// Load loads configuration from a YAML file, applies environment overrides
// and validates the result
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		// No config file: rely on defaults and environment
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides overrides configuration with environment variables
func applyEnvOverrides(cfg *Config) {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}
	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		cfg.Auth.TokenTTL = ttl
	}
	if interval := os.Getenv("REMINDER_INTERVAL"); interval != "" {
		cfg.Reminder.Interval = interval
	}
	if dir := os.Getenv("DATA_DIR"); dir != "" {
		cfg.DataDir = dir
	}
}

func (c *Config) validate() error {
	if c.Auth.JWTSecret == "" {
		return ErrMissingJWTSecret
	}
	if _, err := time.ParseDuration(c.Auth.TokenTTL); err != nil {
		return fmt.Errorf("invalid auth.token_ttl: %w", err)
	}
	if _, err := time.ParseDuration(c.Reminder.Interval); err != nil {
		return fmt.Errorf("invalid reminder.interval: %w", err)
	}
	return nil
}

// TokenTTL returns the parsed token lifetime
func (c *Config) TokenTTL() time.Duration {
	d, _ := time.ParseDuration(c.Auth.TokenTTL)
	return d
}

// ReminderInterval returns the parsed scanner interval
func (c *Config) ReminderInterval() time.Duration {
	d, _ := time.ParseDuration(c.Reminder.Interval)
	return d
}
