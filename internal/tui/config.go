package tui

import (
	"github.com/estantelabs/estante/internal/model"
	"github.com/estantelabs/estante/internal/service"
	"github.com/estantelabs/estante/internal/store"
	"github.com/estantelabs/estante/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme           themes.Theme
	Gateway         service.Gateway
	Store           *store.Store
	ExportDir       string
	TopN            int
	Width           int
	Height          int
	FallbackEnabled bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:           themes.Default,
		Store:           store.New(),
		ExportDir:       ".",
		TopN:            model.DefaultTopN,
		Width:           80,
		Height:          24,
		FallbackEnabled: true,
	}
}

// WithGateway sets the remote book service.
func WithGateway(gateway service.Gateway) Option {
	return func(c *Config) {
		c.Gateway = gateway
	}
}

// WithStore sets the state store.
func WithStore(s *store.Store) Option {
	return func(c *Config) {
		c.Store = s
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithFallback controls whether a failed catalog load falls back to the
// bundled collection.
func WithFallback(enabled bool) Option {
	return func(c *Config) {
		c.FallbackEnabled = enabled
	}
}

// WithTopN sets how many recommendations to request.
func WithTopN(n int) Option {
	return func(c *Config) {
		c.TopN = n
	}
}

// WithExportDir sets the chart export directory.
func WithExportDir(dir string) Option {
	return func(c *Config) {
		c.ExportDir = dir
	}
}
