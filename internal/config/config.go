// Package config loads taskai settings from TOML files.
//
// Sources are merged in priority order: built-in defaults, then the user
// config file (~/.config/taskai/taskai.toml or the OS equivalent), then a
// project-local .taskai.toml. CLI flags override everything and are applied
// by the cli layer; nothing below that layer reads these files or the
// process environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds all taskai settings.
type Config struct {
	Gen GenConfig `toml:"gen"`
}

// GenConfig holds the generation collaborator's knobs.
type GenConfig struct {
	Model   string   `toml:"model"`
	Lang    string   `toml:"lang"`
	Style   string   `toml:"style"`
	Timeout Duration `toml:"timeout"`
}

// Duration wraps time.Duration so TOML values like "2m" decode directly.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Gen: GenConfig{
			Lang:    "en",
			Style:   "standard",
			Timeout: Duration{5 * time.Minute},
		},
	}
}

// Load returns configuration merged from defaults, the user config file, and
// a project-local config file, in that order.
func Load() (Config, error) {
	cfg := Default()

	if path := userConfigFile(); path != "" {
		if err := loadFile(&cfg, path); err != nil {
			return Config{}, fmt.Errorf("loading user config file %s: %w", path, err)
		}
	}
	if path := projectConfigFile(); path != "" {
		if err := loadFile(&cfg, path); err != nil {
			return Config{}, fmt.Errorf("loading project config file %s: %w", path, err)
		}
	}

	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	_, err := toml.DecodeFile(path, cfg)
	return err
}

func userConfigFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(dir, "taskai", "taskai.toml")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

func projectConfigFile() string {
	for _, name := range []string{".taskai.toml", "taskai.toml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}
