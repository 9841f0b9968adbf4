package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load,
// e.g. PERSONAS_DATABASE_URL for database.url.
const EnvPrefix = "PERSONAS"

// defaults lists every known key. Keys without a meaningful default are
// registered with nil so they are still bound to the environment.
var defaults = map[string]any{
	"server.port":                8080,
	"server.log_level":           "info",
	"server.read_timeout":        10 * time.Second,
	"server.write_timeout":       10 * time.Second,
	"server.idle_timeout":        60 * time.Second,
	"server.shutdown_timeout":    10 * time.Second,
	"database.url":               nil,
	"database.max_open_conns":    10,
	"database.max_idle_conns":    5,
	"database.conn_max_lifetime": 5 * time.Minute,
	"database.auto_migrate":      true,
	"cors.allowed_origins":       []string{"*"},
	"cors.allowed_methods":       []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	"cors.allow_credentials":     false,
	"metrics.enabled":            true,
	"metrics.path":               "/metrics",
}

// Load configuration from environment variables and an optional config.yaml
// in the working directory. Environment variables take precedence over
// values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile is Load with an explicit config file. An empty path searches the
// working directory for config.yaml and tolerates its absence; a non-empty
// path must exist.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// BindEnv derives the variable name from the prefix, so it must follow
	// SetEnvPrefix.
	for key, value := range defaults {
		if value != nil {
			v.SetDefault(key, value)
		}
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
