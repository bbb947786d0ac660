// Package config loads client configuration from config files and
// environment variables.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/invoicing/invoicectl/internal/tokenstore"
)

// Config holds all client configuration
type Config struct {
	API   APIConfig
	Token TokenConfig
	Log   LogConfig
}

// APIConfig holds settings for the remote invoicing API
type APIConfig struct {
	// BaseURL is the base path of the API, e.g. "http://localhost:8000/api".
	BaseURL string
	// Timeout is the overall request timeout. Zero means the transport
	// default applies.
	Timeout time.Duration
}

// TokenConfig holds token persistence settings
type TokenConfig struct {
	// Path is the token file location. Defaults to the user config dir.
	Path string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// Load reads configuration with the following priority (highest to
// lowest):
// 1. Environment variables with INVOICING_ prefix (e.g., INVOICING_API_BASE_URL)
// 2. config.yaml in the working directory
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("INVOICING")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("api.base_url", "http://localhost:8000/api")
	v.SetDefault("api.timeout", 0)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stderr")

	cfg := &Config{
		API: APIConfig{
			BaseURL: v.GetString("api.base_url"),
			Timeout: v.GetDuration("api.timeout"),
		},
		Token: TokenConfig{
			Path: v.GetString("token.path"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
	}

	if cfg.Token.Path == "" {
		path, err := tokenstore.DefaultPath()
		if err != nil {
			return nil, err
		}
		cfg.Token.Path = path
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for obvious mistakes
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("config: api.base_url is required")
	}
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("config: api.base_url %q is not a valid URL", c.API.BaseURL)
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("config: api.timeout must not be negative")
	}
	return nil
}
