// Package config provides configuration utilities for the application.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds the resolved application settings. Values come from the
// config file or ESTANTE_ environment variables, with sane defaults.
type Config struct {
	APIURL     string
	APITimeout time.Duration
	ExportDir  string
	TopN       int
	Fallback   bool
}

// Load reads the application configuration from Viper.
func Load() (Config, error) {
	viper.SetDefault("api.url", "http://localhost:5000")
	viper.SetDefault("api.timeout", "15s")
	viper.SetDefault("export.dir", ".")
	viper.SetDefault("recommendations.top_n", 6)
	viper.SetDefault("catalog.fallback", true)

	cfg := Config{
		APIURL:     viper.GetString("api.url"),
		APITimeout: viper.GetDuration("api.timeout"),
		ExportDir:  ExpandPath(viper.GetString("export.dir")),
		TopN:       viper.GetInt("recommendations.top_n"),
		Fallback:   viper.GetBool("catalog.fallback"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values that cannot work.
func (c Config) Validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("api.url must not be empty")
	}
	if c.APITimeout <= 0 {
		return fmt.Errorf("api.timeout must be positive, got %s", c.APITimeout)
	}
	if c.TopN <= 0 {
		return fmt.Errorf("recommendations.top_n must be positive, got %d", c.TopN)
	}
	return nil
}
