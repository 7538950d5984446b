// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Search  SearchConfig
	Session SessionConfig
	Logging LoggingConfig
	App     AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"15s"`
}

// SearchConfig holds settings of the outbound flight search.
type SearchConfig struct {
	Endpoint string `env:"SEARCH_ENDPOINT" envDefault:"https://api.tbp.travel/flights"`

	// Mode is "demo" (always serve synthetic offers) or "live" (serve endpoint data)
	Mode string `env:"SEARCH_MODE" envDefault:"demo"`

	Timeout       time.Duration `env:"SEARCH_TIMEOUT" envDefault:"8s"`
	RetryAttempts int           `env:"SEARCH_RETRY_ATTEMPTS" envDefault:"1"`
}

// SessionConfig holds booking session settings.
type SessionConfig struct {
	// TTL is how long an idle session is kept
	TTL time.Duration `env:"SESSION_TTL" envDefault:"30m"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	u, err := url.Parse(cfg.Search.Endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("SEARCH_ENDPOINT must be an absolute http(s) URL, got %q", cfg.Search.Endpoint)
	}
	validModes := map[string]bool{"demo": true, "live": true}
	if !validModes[cfg.Search.Mode] {
		return fmt.Errorf("SEARCH_MODE must be one of: demo, live; got %q", cfg.Search.Mode)
	}
	if cfg.Search.Timeout <= 0 {
		return fmt.Errorf("SEARCH_TIMEOUT must be positive")
	}
	if cfg.Search.RetryAttempts < 1 || cfg.Search.RetryAttempts > 5 {
		return fmt.Errorf("SEARCH_RETRY_ATTEMPTS must be between 1 and 5, got %d", cfg.Search.RetryAttempts)
	}

	// A write timeout shorter than the search would cut off search responses.
	if cfg.Search.Timeout >= cfg.Server.WriteTimeout {
		return fmt.Errorf("SEARCH_TIMEOUT (%s) should be less than SERVER_WRITE_TIMEOUT (%s)",
			cfg.Search.Timeout, cfg.Server.WriteTimeout)
	}

	if cfg.Session.TTL < time.Minute {
		return fmt.Errorf("SESSION_TTL must be at least 1m, got %s", cfg.Session.TTL)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
