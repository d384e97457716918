// Package config loads the server settings from the environment.
package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Environments accepted by PORTFOLIO_ENV.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	Port            int           `env:"PORT" envDefault:"8080"`
	Host            string        `env:"PORTFOLIO_HOST" envDefault:""`
	Env             string        `env:"PORTFOLIO_ENV" envDefault:"development"`
	LogLevel        string        `env:"PORTFOLIO_LOG_LEVEL" envDefault:"info"`
	SiteURL         string        `env:"PORTFOLIO_SITE_URL" envDefault:"http://localhost:8080"`
	SnapshotDir     string        `env:"PORTFOLIO_SNAPSHOT_DIR"`                     // write a static copy of the site here at startup
	ShutdownTimeout time.Duration `env:"PORTFOLIO_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	MetricsEnabled  bool          `env:"PORTFOLIO_METRICS_ENABLED" envDefault:"true"`
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	if c.Env != EnvDevelopment && c.Env != EnvProduction {
		return fmt.Errorf("PORTFOLIO_ENV must be %q or %q, got %q", EnvDevelopment, EnvProduction, c.Env)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("PORTFOLIO_LOG_LEVEL: %w", err)
	}
	u, err := url.Parse(c.SiteURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("PORTFOLIO_SITE_URL must be an absolute http(s) URL, got %q", c.SiteURL)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("PORTFOLIO_SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout)
	}
	return nil
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// Addr returns the listen address in host:port format.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// GinMode maps the environment onto gin's run modes.
func (c Config) GinMode() string {
	if c.IsDevelopment() {
		return gin.DebugMode
	}
	return gin.ReleaseMode
}
