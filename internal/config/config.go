// Package config loads the tracknote configuration file.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Database DatabaseConfig `koanf:"database"`
	Player   PlayerConfig   `koanf:"player"`
	Lyrics   LyricsConfig   `koanf:"lyrics"`
}

// DatabaseConfig holds the track cache location.
type DatabaseConfig struct {
	Path string `koanf:"path"`
}

// PlayerConfig selects which media player to read "now playing" from.
type PlayerConfig struct {
	BusName string `koanf:"bus_name"` // MPRIS bus name or suffix, empty = auto-detect
}

// LyricsConfig controls lyrics fetching.
type LyricsConfig struct {
	Enabled *bool `koanf:"enabled"` // default: true
}

// LyricsEnabled returns whether lyrics fetching is on (default true).
func (c *Config) LyricsEnabled() bool {
	return c.Lyrics.Enabled == nil || *c.Lyrics.Enabled
}

// Load reads the configuration. With an explicit path only that file is
// read; otherwise the default locations are tried in order (last wins) and
// a missing file just yields defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	paths := []string{path}
	if path == "" {
		paths = defaultConfigPaths()
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			if err := k.Load(file.Provider(p), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.Database.Path == "" {
		cfg.Database.Path = DefaultDatabasePath()
	} else {
		cfg.Database.Path = expandPath(cfg.Database.Path)
	}

	return cfg, nil
}

// DefaultDatabasePath returns the track cache location under XDG data home.
func DefaultDatabasePath() string {
	return filepath.Join(xdg.DataHome, "tracknote", "tracks.db")
}

func defaultConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/tracknote/config.toml
		filepath.Join(xdg.ConfigHome, "tracknote", "config.toml"),
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
