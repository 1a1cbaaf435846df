package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// clearEnv removes every SAVERCTL_* variable for the duration of the test so
// the developer's own environment cannot leak into expectations.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SAVERCTL_CONFIG",
		"SAVERCTL_SCREENSAVER",
		"SAVERCTL_QDBUS",
		"SAVERCTL_NATIVE_DBUS",
		"SAVERCTL_HISTORY_DB",
		"SAVERCTL_WATCH_INTERVAL",
		"SAVERCTL_KEEPALIVE_INTERVAL",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.QDBusPath != "qdbus" {
		t.Errorf("QDBusPath = %q, want %q", cfg.QDBusPath, "qdbus")
	}
	if cfg.WatchInterval != 5*time.Second {
		t.Errorf("WatchInterval = %v, want 5s", cfg.WatchInterval)
	}
	if cfg.KeepaliveInterval != 60*time.Second {
		t.Errorf("KeepaliveInterval = %v, want 60s", cfg.KeepaliveInterval)
	}
	if cfg.DefaultScreensaver != "" {
		t.Errorf("DefaultScreensaver = %q, want auto-detection", cfg.DefaultScreensaver)
	}
	if cfg.NativeDBus {
		t.Error("NativeDBus = true, want false")
	}
}

func TestLoad_FromFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `default_screensaver: kde
qdbus_path: /usr/lib/qt6/bin/qdbus
native_dbus: true
history_db: /tmp/history.db
watch_interval: 10s
keepalive_interval: 2m
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.DefaultScreensaver != "kde" {
		t.Errorf("DefaultScreensaver = %q, want %q", cfg.DefaultScreensaver, "kde")
	}
	if cfg.QDBusPath != "/usr/lib/qt6/bin/qdbus" {
		t.Errorf("QDBusPath = %q", cfg.QDBusPath)
	}
	if !cfg.NativeDBus {
		t.Error("NativeDBus = false, want true")
	}
	if cfg.HistoryDB != "/tmp/history.db" {
		t.Errorf("HistoryDB = %q", cfg.HistoryDB)
	}
	if cfg.WatchInterval != 10*time.Second {
		t.Errorf("WatchInterval = %v, want 10s", cfg.WatchInterval)
	}
	if cfg.KeepaliveInterval != 2*time.Minute {
		t.Errorf("KeepaliveInterval = %v, want 2m", cfg.KeepaliveInterval)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.QDBusPath != "qdbus" || cfg.WatchInterval != 5*time.Second {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("default_screensaver: kde\nqdbus_path: from-file\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	t.Setenv("SAVERCTL_SCREENSAVER", "gnome")
	t.Setenv("SAVERCTL_QDBUS", "from-env")
	t.Setenv("SAVERCTL_NATIVE_DBUS", "yes")
	t.Setenv("SAVERCTL_WATCH_INTERVAL", "30s")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.DefaultScreensaver != "gnome" {
		t.Errorf("DefaultScreensaver = %q, want env override", cfg.DefaultScreensaver)
	}
	if cfg.QDBusPath != "from-env" {
		t.Errorf("QDBusPath = %q, want env override", cfg.QDBusPath)
	}
	if !cfg.NativeDBus {
		t.Error("NativeDBus = false, want true from env")
	}
	if cfg.WatchInterval != 30*time.Second {
		t.Errorf("WatchInterval = %v, want 30s", cfg.WatchInterval)
	}
}

func TestLoad_ConfigPathFromEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "alt.yaml")
	if err := os.WriteFile(path, []byte("default_screensaver: xscreensaver\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	t.Setenv("SAVERCTL_CONFIG", path)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DefaultScreensaver != "xscreensaver" {
		t.Errorf("DefaultScreensaver = %q, want %q", cfg.DefaultScreensaver, "xscreensaver")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		env     map[string]string
		errPart string
	}{
		{
			name:    "unknown backend",
			yaml:    "default_screensaver: mate\n",
			errPart: "default_screensaver",
		},
		{
			name:    "empty qdbus path",
			yaml:    `qdbus_path: ""` + "\n",
			errPart: "qdbus_path",
		},
		{
			name:    "non-positive watch interval",
			yaml:    "watch_interval: 0s\n",
			errPart: "watch_interval",
		},
		{
			name:    "non-positive keepalive interval",
			yaml:    "keepalive_interval: -1m\n",
			errPart: "keepalive_interval",
		},
		{
			name:    "bad native dbus env value",
			env:     map[string]string{"SAVERCTL_NATIVE_DBUS": "maybe"},
			errPart: "SAVERCTL_NATIVE_DBUS",
		},
		{
			name:    "bad watch interval env value",
			env:     map[string]string{"SAVERCTL_WATCH_INTERVAL": "fast"},
			errPart: "SAVERCTL_WATCH_INTERVAL",
		},
		{
			name:    "malformed yaml",
			yaml:    "default_screensaver: [\n",
			errPart: "config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			path := filepath.Join(t.TempDir(), "config.yaml")
			if tt.yaml != "" {
				if err := os.WriteFile(path, []byte(tt.yaml), 0o644); err != nil {
					t.Fatalf("writing config: %v", err)
				}
			}

			_, err := Load(path)
			if err == nil {
				t.Fatal("Load() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.errPart) {
				t.Errorf("error %q does not mention %q", err, tt.errPart)
			}
		})
	}
}
