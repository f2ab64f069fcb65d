// Package config loads client configuration from defaults, an optional
// biblio.yaml file and BIBLIO_-prefixed environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "BIBLIO"

// Config holds everything the client needs at boot.
type Config struct {
	// ServerURL is the base URL of the remote library API.
	ServerURL string
	// DBPath is the local BoltDB file holding the persisted session.
	DBPath string
	// HTTPTimeout bounds every API call.
	HTTPTimeout time.Duration
	// PageSize is the default page size for paginated listings.
	PageSize int
	// Verbose switches debug logging on.
	Verbose bool
}

// Load resolves the configuration. Precedence: environment variables over
// config file over defaults.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server_url", "https://minha1api.duckdns.org")
	v.SetDefault("db_path", "biblio.db")
	v.SetDefault("http_timeout", 30*time.Second)
	v.SetDefault("page_size", 10)
	v.SetDefault("verbose", false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("biblio")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/biblio")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		ServerURL:   v.GetString("server_url"),
		DBPath:      v.GetString("db_path"),
		HTTPTimeout: v.GetDuration("http_timeout"),
		PageSize:    v.GetInt("page_size"),
		Verbose:     v.GetBool("verbose"),
	}

	if cfg.ServerURL == "" {
		return nil, fmt.Errorf("server_url cannot be empty")
	}
	if cfg.PageSize <= 0 {
		return nil, fmt.Errorf("page_size must be positive")
	}

	return cfg, nil
}
