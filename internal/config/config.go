package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "wavedeck"

type Config struct {
	DefaultFolder string `koanf:"default_folder"`
	Theme         string `koanf:"theme"`       // "default", "ocean" or "mono"
	Icons         string `koanf:"icons"`       // "nerd", "unicode" or "none" (default: unicode)
	Volume        int    `koanf:"volume"`      // initial volume in percent (0-100, default: 80)
	VolumeStep    int    `koanf:"volume_step"` // percent per volume key/scroll step (1-50, default: 5)

	Log LogConfig `koanf:"log"`

	Session SessionConfig `koanf:"session"`

	// Dispatch core tuning
	Dispatch DispatchConfig `koanf:"dispatch"`
}

// LogConfig holds log file settings.
type LogConfig struct {
	File  string `koanf:"file"`  // default: $XDG_STATE_HOME/wavedeck/wavedeck.log
	Level string `koanf:"level"` // "debug", "info", "warn", "error" (default: "info")
}

// SessionConfig controls where the session is saved between runs.
type SessionConfig struct {
	File     string `koanf:"file"`     // default: $XDG_DATA_HOME/wavedeck/wavedeck.db
	Disabled bool   `koanf:"disabled"` // skip restoring and saving the session
}

// DispatchConfig holds dispatcher limits.
type DispatchConfig struct {
	MaxCascade int `koanf:"max_cascade"` // distinct actions per input (default: 1024)
}

// Load reads the user and working-directory config files.
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given config files in order (last wins). Missing files
// are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		DefaultFolder: "", // empty means use cwd
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	// Expand ~ in default_folder
	if cfg.DefaultFolder != "" {
		cfg.DefaultFolder = expandPath(cfg.DefaultFolder)
	}

	// Expand ~ in log file
	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}

	if cfg.Session.File != "" {
		cfg.Session.File = expandPath(cfg.Session.File)
	}

	cfg.Theme = strings.ToLower(strings.TrimSpace(cfg.Theme))
	cfg.Icons = strings.ToLower(strings.TrimSpace(cfg.Icons))
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/wavedeck/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// InitialVolume returns the configured start volume with defaults applied.
func (c *Config) InitialVolume() uint8 {
	if c.Volume <= 0 || c.Volume > 100 {
		return 80
	}
	return uint8(c.Volume)
}

// GetVolumeStep returns the volume step with defaults applied.
func (c *Config) GetVolumeStep() uint8 {
	if c.VolumeStep <= 0 || c.VolumeStep > 50 {
		return 5
	}
	return uint8(c.VolumeStep)
}

// LogFile returns the log file path with defaults applied.
func (c *Config) LogFile() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	return filepath.Join(xdg.StateHome, appName, appName+".log")
}

// SessionFile returns the session database path with defaults applied.
func (c *Config) SessionFile() string {
	if c.Session.File != "" {
		return c.Session.File
	}
	return filepath.Join(xdg.DataHome, appName, appName+".db")
}

// MaxCascade returns the dispatcher cascade bound, or 0 for the default.
func (c *Config) MaxCascade() int {
	if c.Dispatch.MaxCascade < 0 {
		return 0
	}
	return c.Dispatch.MaxCascade
}
