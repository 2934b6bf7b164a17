package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	DefaultWindowWidth  = 1100
	DefaultWindowHeight = 720
)

// Config is the on-disk shell configuration, stored as TOML under the user
// config directory. It doubles as the window-state store: the last window
// geometry is written back on shutdown and restored on the next launch.
type Config struct {
	LogLevel string         `toml:"log_level"`
	Shortcut ShortcutConfig `toml:"shortcut"`
	Window   WindowState    `toml:"window"`
}

type ShortcutConfig struct {
	// Enabled gates registration of the global focus shortcut.
	Enabled bool `toml:"enabled"`
}

type WindowState struct {
	Width      float32 `toml:"width"`
	Height     float32 `toml:"height"`
	Fullscreen bool    `toml:"fullscreen"`
}

func Default() *Config {
	return &Config{
		LogLevel: "info",
		Shortcut: ShortcutConfig{Enabled: true},
		Window: WindowState{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
		},
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "flack", "config.toml"), nil
}

// Load reads config from the given path. A missing file is not an error:
// defaults are returned so a first launch needs no setup.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		cfg.Window.Width = DefaultWindowWidth
		cfg.Window.Height = DefaultWindowHeight
	}
	return cfg, nil
}

// Save writes config to the given path, creating parent dirs as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	encErr := toml.NewEncoder(f).Encode(cfg)
	if closeErr := f.Close(); closeErr != nil && encErr == nil {
		return closeErr
	}
	return encErr
}
