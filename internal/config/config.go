// Package config provides configuration management for the application.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/amaumene/tmdbfind/internal/constants"
)

// Config holds the application configuration.
// Priority: flags > environment variables > config file > defaults.
type Config struct {
	TMDB     TMDBConfig     `mapstructure:"tmdb"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	LogLevel string         `mapstructure:"log_level"`
}

// TMDBConfig holds everything the TMDB client needs to build a /find request.
type TMDBConfig struct {
	APIKey         string        `mapstructure:"api_key"`
	BaseURL        string        `mapstructure:"base_url"`
	ExternalSource string        `mapstructure:"external_source"`
	Timeout        time.Duration `mapstructure:"timeout"`
}

// ServerConfig holds HTTP server configuration for serve mode.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// DatabaseConfig holds the lookup history location. Empty disables history.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		TMDB: TMDBConfig{
			BaseURL:        constants.TMDBBaseURL,
			ExternalSource: constants.ExternalSourceIMDB,
			Timeout:        constants.DefaultRequestTimeout,
		},
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: constants.DefaultPort,
		},
		LogLevel: constants.DefaultLogLevel,
	}
}

// Load reads configuration from file, environment variables and flags.
// A missing config file is not an error; flags may be nil.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bare names kept for compatibility with existing deployments
	_ = v.BindEnv("tmdb.api_key", "API_KEY", constants.EnvPrefix+"_TMDB_API_KEY")
	_ = v.BindEnv("log_level", "LOG_LEVEL", constants.EnvPrefix+"_LOG_LEVEL")

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// bindFlags maps known command-line flags onto config keys.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	bindings := map[string]string{
		"port":      "server.port",
		"host":      "server.host",
		"db":        "database.path",
		"log-level": "log_level",
		"timeout":   "tmdb.timeout",
	}
	for flag, key := range bindings {
		f := flags.Lookup(flag)
		// Unset flags must not shadow file and env values with their zero defaults.
		if f == nil || !f.Changed {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return err
		}
	}
	return nil
}

// setDefaults sets default values in viper
func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("tmdb.api_key", "")
	v.SetDefault("tmdb.base_url", d.TMDB.BaseURL)
	v.SetDefault("tmdb.external_source", d.TMDB.ExternalSource)
	v.SetDefault("tmdb.timeout", d.TMDB.Timeout)

	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.port", d.Server.Port)

	v.SetDefault("database.path", "")

	v.SetDefault("log_level", d.LogLevel)
}

// Validate checks if the configuration is valid.
// Fills in defaults for optional fields left empty.
func (c *Config) Validate() error {
	// An empty API key is allowed; TMDB rejects the request with 401.

	c.TMDB.BaseURL = strings.TrimRight(strings.TrimSpace(c.TMDB.BaseURL), "/")
	if c.TMDB.BaseURL == "" {
		c.TMDB.BaseURL = constants.TMDBBaseURL
	}

	if c.TMDB.ExternalSource == "" {
		c.TMDB.ExternalSource = constants.ExternalSourceIMDB
	}

	if c.TMDB.Timeout < 0 {
		return fmt.Errorf("tmdb.timeout must not be negative, got %s", c.TMDB.Timeout)
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}

	if c.LogLevel == "" {
		c.LogLevel = constants.DefaultLogLevel
	}

	return nil
}

// Address returns the server listen address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// HistoryEnabled reports whether lookups should be recorded.
func (c *Config) HistoryEnabled() bool {
	return c.Database.Path != ""
}
