// ABOUTME: Configuration for jotpad loaded from a TOML file.
// ABOUTME: Handles XDG config/data/state paths and defaults.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const appName = "jotpad"

// Config holds user settings for the app shell and CLI.
type Config struct {
	// DataDir holds notes.json, settings.json and notes.seq.json.
	DataDir string `toml:"data_dir"`

	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`

	// PreviewLength is how many runes of content stand in for a missing title.
	PreviewLength int `toml:"preview_length"`

	RowPreviewLength int `toml:"row_preview_length"`

	// Device is "simulated" or "none".
	Device string `toml:"device"`

	// Watch reloads notes when the file changes on disk.
	Watch bool `toml:"watch"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		DataDir:          DefaultDataDir(),
		LogLevel:         "info",
		LogFile:          filepath.Join(StateDir(), appName+".log"),
		PreviewLength:    50,
		RowPreviewLength: 100,
		Device:           "simulated",
		Watch:            true,
	}
}

// ConfigDir returns the configuration directory path.
func ConfigDir() string {
	return filepath.Join(xdgDir("XDG_CONFIG_HOME", ".config"), appName)
}

// Path returns the default config file path.
func Path() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

func DefaultDataDir() string {
	return filepath.Join(xdgDir("XDG_DATA_HOME", ".local", "share"), appName)
}

func StateDir() string {
	return filepath.Join(xdgDir("XDG_STATE_HOME", ".local", "state"), appName)
}

func xdgDir(env string, fallback ...string) string {
	if dir := os.Getenv(env); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(append([]string{home}, fallback...)...)
}

// Load reads the config at path, or the default path when empty. A missing
// file yields defaults.
func Load(path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		path = Path()
	}
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.DataDir = expandHome(cfg.DataDir)
	cfg.LogFile = expandHome(cfg.LogFile)
	if cfg.PreviewLength <= 0 {
		cfg.PreviewLength = 50
	}
	if cfg.RowPreviewLength <= 0 {
		cfg.RowPreviewLength = 100
	}
	return cfg, nil
}

// Save writes cfg to path, or the default path when empty.
func Save(cfg *Config, path string) error {
	if strings.TrimSpace(path) == "" {
		path = Path()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// Exists returns true if a config file exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
