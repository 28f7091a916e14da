package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the environment configuration of the coursefront server.
type Config struct {
	// APIURL is the base URL of the course catalog API, e.g. "https://shop.example.com".
	APIURL      string        `env:"COURSEFRONT_API_URL,required"`
	ListenAddr  string        `env:"COURSEFRONT_LISTEN_ADDR" envDefault:":1095"`
	HTTPTimeout time.Duration `env:"COURSEFRONT_HTTP_TIMEOUT" envDefault:"10s"`
	JournalSize uint64        `env:"COURSEFRONT_JOURNAL_SIZE" envDefault:"100"`
	LogLevel    slog.Level    `env:"COURSEFRONT_LOG_LEVEL" envDefault:"info"`
}

// Load reads the configuration from environment variables and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return fmt.Errorf("api url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api url %q: scheme must be http or https", c.APIURL)
	}
	if u.Host == "" {
		return fmt.Errorf("api url %q: missing host", c.APIURL)
	}
	if c.HTTPTimeout < 0 {
		return errors.New("http timeout must not be negative")
	}
	if c.JournalSize == 0 {
		return errors.New("journal size must be positive")
	}
	return nil
}

// BaseURL returns the catalog API URL without a trailing slash.
func (c Config) BaseURL() string {
	return strings.TrimSuffix(c.APIURL, "/")
}
