// Package config loads viewer settings from a TOML file.
//
// Everything is optional: Default() is a complete working configuration and
// Load only overrides what the file sets.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/voxview/pkg/errors"
)

// Config collects all tunable viewer settings.
type Config struct {
	// ZoomStep is the multiplier applied per zoom key press.
	ZoomStep float64 `toml:"zoom_step"`

	// BoxZoomThreshold is the minimum drag extent, in pixels per axis,
	// for a box-zoom to commit.
	BoxZoomThreshold float64 `toml:"box_zoom_threshold"`

	// ViewSpacing is the gap between neighboring view canvases in pixels.
	ViewSpacing int `toml:"view_spacing"`

	// ToolbarMargin is the vertical space reserved above the views.
	ToolbarMargin int `toml:"toolbar_margin"`

	// Background is the gray level (0-255) painted behind the views.
	Background int `toml:"background"`

	// SyncColormap broadcasts window commits to every loaded volume.
	SyncColormap bool `toml:"sync_colormap"`

	Cache CacheConfig `toml:"cache"`
}

// CacheConfig controls the on-disk statistics cache.
type CacheConfig struct {
	Enabled bool `toml:"enabled"`

	// Dir overrides the default per-user cache directory.
	Dir string `toml:"dir"`

	// TTL is how long cached statistics stay valid. Zero never expires.
	TTL duration `toml:"ttl"`
}

// duration wraps time.Duration so TOML files can write "24h" style values.
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ZoomStep:         1.2,
		BoxZoomThreshold: 10,
		ViewSpacing:      10,
		ToolbarMargin:    40,
		SyncColormap:     false,
		Cache: CacheConfig{
			Enabled: true,
			TTL:     duration{30 * 24 * time.Hour},
		},
	}
}

// DefaultPath returns the config file location under the user config root.
func DefaultPath() (string, error) {
	root, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, "voxview", "config.toml"), nil
}

// Load reads a TOML file over the defaults. A missing file is not an error
// when it is the default path; an explicitly named file must exist.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit {
			return cfg, errors.New(errors.ErrCodeFileNotFound, "config file not found: %s", path)
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "parsing config %s", path)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.ZoomStep <= 1 {
		return errors.New(errors.ErrCodeInvalidInput, "zoom_step must be greater than 1, got %g", c.ZoomStep)
	}
	if c.BoxZoomThreshold < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "box_zoom_threshold must not be negative")
	}
	if c.ViewSpacing < 0 || c.ToolbarMargin < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "view_spacing and toolbar_margin must not be negative")
	}
	if c.Background < 0 || c.Background > 255 {
		return errors.New(errors.ErrCodeInvalidInput, "background must be a gray level in [0, 255], got %d", c.Background)
	}
	return nil
}
