// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Logging  LoggingConfig
	App      AppConfig
	Analysis AnalysisConfig
	AeroAPI  AeroAPIConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
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

// AnalysisConfig holds default analysis parameters. Per-request overrides
// take precedence; these only fill fields the caller left unset.
type AnalysisConfig struct {
	// WindowMinutes is the default window half-width.
	WindowMinutes int `env:"ANALYSIS_WINDOW_MINUTES" envDefault:"180"`

	// NuisanceThreshold is the default lower delay band boundary in minutes.
	NuisanceThreshold int `env:"ANALYSIS_NUISANCE_THRESHOLD" envDefault:"15"`

	// SignificantThreshold is the default upper delay band boundary in minutes.
	SignificantThreshold int `env:"ANALYSIS_SIGNIFICANT_THRESHOLD" envDefault:"45"`

	// ReferenceTimezone is the zone clock-text times are interpreted in.
	ReferenceTimezone string `env:"ANALYSIS_REFERENCE_TIMEZONE" envDefault:"UTC"`
}

// AeroAPIConfig holds settings for the remote flight-history source.
// The API key is injected here and passed explicitly to the client
// constructor; nothing else reads it.
type AeroAPIConfig struct {
	BaseURL  string        `env:"AEROAPI_BASE_URL" envDefault:"https://aeroapi.flightaware.com/aeroapi"`
	APIKey   string        `env:"AEROAPI_KEY"`
	Timeout  time.Duration `env:"AEROAPI_TIMEOUT" envDefault:"10s"`
	MaxPages int           `env:"AEROAPI_MAX_PAGES" envDefault:"3"`
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

	if cfg.Analysis.WindowMinutes <= 0 {
		return fmt.Errorf("ANALYSIS_WINDOW_MINUTES must be positive, got %d", cfg.Analysis.WindowMinutes)
	}
	if cfg.Analysis.NuisanceThreshold <= 0 {
		return fmt.Errorf("ANALYSIS_NUISANCE_THRESHOLD must be positive, got %d", cfg.Analysis.NuisanceThreshold)
	}
	if cfg.Analysis.SignificantThreshold <= 0 {
		return fmt.Errorf("ANALYSIS_SIGNIFICANT_THRESHOLD must be positive, got %d", cfg.Analysis.SignificantThreshold)
	}
	if cfg.Analysis.NuisanceThreshold >= cfg.Analysis.SignificantThreshold {
		return fmt.Errorf("ANALYSIS_NUISANCE_THRESHOLD (%d) must be less than ANALYSIS_SIGNIFICANT_THRESHOLD (%d)",
			cfg.Analysis.NuisanceThreshold, cfg.Analysis.SignificantThreshold)
	}
	if _, err := time.LoadLocation(cfg.Analysis.ReferenceTimezone); err != nil {
		return fmt.Errorf("ANALYSIS_REFERENCE_TIMEZONE is not a valid IANA zone: %q", cfg.Analysis.ReferenceTimezone)
	}

	if cfg.AeroAPI.BaseURL == "" {
		return fmt.Errorf("AEROAPI_BASE_URL must not be empty")
	}
	if cfg.AeroAPI.Timeout <= 0 {
		return fmt.Errorf("AEROAPI_TIMEOUT must be positive")
	}
	if cfg.AeroAPI.MaxPages < 1 {
		return fmt.Errorf("AEROAPI_MAX_PAGES must be at least 1, got %d", cfg.AeroAPI.MaxPages)
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
