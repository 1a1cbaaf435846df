// Package config loads the saverctl configuration from file and environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/saverctl/saverctl/pkg/types"
)

// Config holds all configuration for saverctl.
type Config struct {
	// DefaultScreensaver forces a backend instead of auto-detection.
	DefaultScreensaver string `yaml:"default_screensaver" env:"SAVERCTL_SCREENSAVER"`

	// D-Bus transport
	QDBusPath  string `yaml:"qdbus_path" env:"SAVERCTL_QDBUS"`
	NativeDBus bool   `yaml:"native_dbus" env:"SAVERCTL_NATIVE_DBUS"`

	// History storage
	HistoryDB string `yaml:"history_db" env:"SAVERCTL_HISTORY_DB"`

	// Polling loops
	WatchInterval     time.Duration `yaml:"watch_interval" env:"SAVERCTL_WATCH_INTERVAL"`
	KeepaliveInterval time.Duration `yaml:"keepalive_interval" env:"SAVERCTL_KEEPALIVE_INTERVAL"`

	// Backend file path overrides
	XScreensaverFile string `yaml:"xscreensaver_file"`
	KDELegacyFile    string `yaml:"kde_legacy_file"`
	KDEModernFile    string `yaml:"kde_modern_file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		QDBusPath:         "qdbus",
		WatchInterval:     5 * time.Second,
		KeepaliveInterval: 60 * time.Second,
	}
}

// Load loads configuration from file and environment. An empty path falls
// back to $SAVERCTL_CONFIG and then the standard config location.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = getConfigPath()
	}
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := loadFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// getConfigPath returns the config file path.
func getConfigPath() string {
	if path := os.Getenv("SAVERCTL_CONFIG"); path != "" {
		return path
	}

	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "saverctl", "config.yaml")
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "saverctl", "config.yaml")
	}

	return ""
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(cfg *Config, path string) error {
	// #nosec G304 - the config file path comes from trusted sources (flag, env var or standard locations)
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// loadFromEnv loads configuration from environment variables.
func loadFromEnv(cfg *Config) error {
	if backend := os.Getenv("SAVERCTL_SCREENSAVER"); backend != "" {
		cfg.DefaultScreensaver = backend
	}

	if qdbus := os.Getenv("SAVERCTL_QDBUS"); qdbus != "" {
		cfg.QDBusPath = qdbus
	}

	if native := os.Getenv("SAVERCTL_NATIVE_DBUS"); native != "" {
		switch native {
		case "true", "1", "yes":
			cfg.NativeDBus = true
		case "false", "0", "no":
			cfg.NativeDBus = false
		default:
			return fmt.Errorf("invalid SAVERCTL_NATIVE_DBUS value: %q (use true/false)", native)
		}
	}

	if db := os.Getenv("SAVERCTL_HISTORY_DB"); db != "" {
		cfg.HistoryDB = db
	}

	if interval := os.Getenv("SAVERCTL_WATCH_INTERVAL"); interval != "" {
		d, err := time.ParseDuration(interval)
		if err != nil {
			return fmt.Errorf("invalid SAVERCTL_WATCH_INTERVAL: %w", err)
		}
		cfg.WatchInterval = d
	}

	if interval := os.Getenv("SAVERCTL_KEEPALIVE_INTERVAL"); interval != "" {
		d, err := time.ParseDuration(interval)
		if err != nil {
			return fmt.Errorf("invalid SAVERCTL_KEEPALIVE_INTERVAL: %w", err)
		}
		cfg.KeepaliveInterval = d
	}

	return nil
}

// validate validates the configuration.
func validate(cfg *Config) error {
	if cfg.DefaultScreensaver != "" && !types.Backend(cfg.DefaultScreensaver).Known() {
		return fmt.Errorf("default_screensaver must be one of %v, got %q", types.Backends(), cfg.DefaultScreensaver)
	}

	if cfg.QDBusPath == "" {
		return fmt.Errorf("qdbus_path must not be empty")
	}

	if cfg.WatchInterval <= 0 {
		return fmt.Errorf("watch_interval must be positive")
	}

	if cfg.KeepaliveInterval <= 0 {
		return fmt.Errorf("keepalive_interval must be positive")
	}

	return nil
}
