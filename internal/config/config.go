// Package config loads service settings from the environment, reading a
// .env file first when one exists.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every setting of the HTTP service.
type Config struct {
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`

	ServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"voice-calculator"`
	OTelEnabled bool   `env:"OTEL_ENABLED" envDefault:"false"`

	Log Log

	SessionCapacity int           `env:"SESSION_CAPACITY" envDefault:"1024"`
	SessionTTL      time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	HistorySize     int           `env:"HISTORY_SIZE" envDefault:"10"`

	Remote Remote
}

// Log configures the logger and its optional rotating file sink.
type Log struct {
	Level      string `env:"LOG_LEVEL" envDefault:"info"`
	File       string `env:"LOG_FILE"`
	MaxSizeMB  int    `env:"LOG_FILE_MAX_SIZE_MB" envDefault:"100"`
	MaxBackups int    `env:"LOG_FILE_MAX_BACKUPS" envDefault:"3"`
	MaxAgeDays int    `env:"LOG_FILE_MAX_AGE_DAYS" envDefault:"28"`
}

// Remote configures the optional fallback evaluator. An empty URL disables it.
type Remote struct {
	URL          string        `env:"REMOTE_EVALUATOR_URL"`
	Timeout      time.Duration `env:"REMOTE_EVALUATOR_TIMEOUT" envDefault:"3s"`
	MaxFailures  uint32        `env:"REMOTE_EVALUATOR_MAX_FAILURES" envDefault:"5"`
	ResetTimeout time.Duration `env:"REMOTE_EVALUATOR_RESET_TIMEOUT" envDefault:"30s"`
}

// Load reads .env (without overriding the process environment) and parses
// the environment into a validated Config.
func Load() (Config, error) {
	if err := loadDotEnv(); err != nil {
		return Config{}, err
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error

	if c.HTTPAddr == "" {
		errs = append(errs, errors.New("HTTP_ADDR must not be empty"))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("SHUTDOWN_TIMEOUT must be positive"))
	}
	if c.SessionCapacity <= 0 {
		errs = append(errs, errors.New("SESSION_CAPACITY must be positive"))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, errors.New("SESSION_TTL must be positive"))
	}
	if c.HistorySize <= 0 {
		errs = append(errs, errors.New("HISTORY_SIZE must be positive"))
	}
	if c.Log.File != "" && c.Log.MaxSizeMB <= 0 {
		errs = append(errs, errors.New("LOG_FILE_MAX_SIZE_MB must be positive"))
	}

	if c.Remote.URL != "" {
		u, err := url.Parse(c.Remote.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, fmt.Errorf("REMOTE_EVALUATOR_URL %q must be an absolute http(s) URL", c.Remote.URL))
		}
		if c.Remote.Timeout <= 0 {
			errs = append(errs, errors.New("REMOTE_EVALUATOR_TIMEOUT must be positive"))
		}
		if c.Remote.MaxFailures == 0 {
			errs = append(errs, errors.New("REMOTE_EVALUATOR_MAX_FAILURES must be positive"))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// loadDotEnv loads environment variables from .env when present.
// Existing process environment variables are not overridden.
func loadDotEnv() error {
	err := godotenv.Load()
	if err == nil {
		return nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("load .env: %w", err)
}
