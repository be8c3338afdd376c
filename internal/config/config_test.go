package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tracknote/internal/config"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
[database]
path = "/tmp/test-tracknote/tracks.db"

[player]
bus_name = "spotify"

[lyrics]
enabled = false
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}

	if cfg.Database.Path != "/tmp/test-tracknote/tracks.db" {
		t.Errorf("unexpected database path: %q", cfg.Database.Path)
	}
	if cfg.Player.BusName != "spotify" {
		t.Errorf("unexpected bus name: %q", cfg.Player.BusName)
	}
	if cfg.LyricsEnabled() {
		t.Error("expected lyrics to be disabled")
	}
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}

	if cfg.Database.Path == "" {
		t.Error("expected default database path")
	}
	if !strings.HasSuffix(cfg.Database.Path, filepath.Join("tracknote", "tracks.db")) {
		t.Errorf("unexpected default database path: %q", cfg.Database.Path)
	}
	if cfg.Player.BusName != "" {
		t.Errorf("expected empty bus name, got %q", cfg.Player.BusName)
	}
	if !cfg.LyricsEnabled() {
		t.Error("expected lyrics enabled by default")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.Database.Path == "" {
		t.Error("expected defaults for missing file")
	}
}

func TestLoad_TildeExpansion(t *testing.T) {
	path := writeConfig(t, `
[database]
path = "~/music/tracks.db"
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}
	want := filepath.Join(home, "music", "tracks.db")
	if cfg.Database.Path != want {
		t.Errorf("expected %q, got %q", want, cfg.Database.Path)
	}
}
