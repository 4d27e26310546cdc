package store

import (
	"path/filepath"
	"testing"
)

func TestDefaultDir_EnvOverride(t *testing.T) {
	t.Setenv("BREWSTOCK_DIR", "/tmp/custom-data")
	dir, err := DefaultDir()
	if err != nil {
		t.Fatalf("default dir: %v", err)
	}
	if dir != "/tmp/custom-data" {
		t.Fatalf("expected env override, got %q", dir)
	}
}

func TestDefaultDir_UnderConfigDir(t *testing.T) {
	cfgDir := t.TempDir()
	t.Setenv("BREWSTOCK_DIR", "")
	t.Setenv("BREWSTOCK_CONFIG_DIR", cfgDir)
	dir, err := DefaultDir()
	if err != nil {
		t.Fatalf("default dir: %v", err)
	}
	if dir != filepath.Join(cfgDir, "data") {
		t.Fatalf("expected data dir under config dir, got %q", dir)
	}
}

func TestLoadConfig_MissingFileIsEmptyConfig(t *testing.T) {
	t.Setenv("BREWSTOCK_CONFIG_DIR", t.TempDir())
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg == nil || cfg.TUI != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestSaveLoadConfig_RoundTrip(t *testing.T) {
	t.Setenv("BREWSTOCK_CONFIG_DIR", t.TempDir())

	in := &GlobalConfig{TUI: &TUIConfig{Theme: "dark", Glyphs: "ascii"}}
	if err := SaveConfig(in); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out.TUI == nil || out.TUI.Theme != "dark" || out.TUI.Glyphs != "ascii" {
		t.Fatalf("unexpected config after round trip: %+v", out)
	}
}
