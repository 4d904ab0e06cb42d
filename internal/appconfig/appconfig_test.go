// internal/appconfig/appconfig_test.go
package appconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadReadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	raw := `{"data": "exports/latest.json", "theme": "light", "pageSize": 25, "debug": true}`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("unable to write fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if cfg.DataPathOrDefault() != "exports/latest.json" {
		t.Fatalf("unexpected data path %q", cfg.DataPathOrDefault())
	}
	if cfg.ThemeOrDefault() != ThemeLight {
		t.Fatalf("unexpected theme %q", cfg.ThemeOrDefault())
	}
	if cfg.PageSizeOrDefault() != 25 {
		t.Fatalf("unexpected page size %d", cfg.PageSizeOrDefault())
	}
	if cfg.ConfigPath != path {
		t.Fatalf("expected ConfigPath recorded, got %q", cfg.ConfigPath)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadRejectsInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("unable to write fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed config")
	}
}

func TestDefaults(t *testing.T) {
	var cfg Config
	if cfg.DataPathOrDefault() != DefaultDataPath {
		t.Fatalf("unexpected default data path %q", cfg.DataPathOrDefault())
	}
	if cfg.PageSizeOrDefault() != defaultPageSize {
		t.Fatalf("unexpected default page size %d", cfg.PageSizeOrDefault())
	}
	if cfg.ThemeOrDefault() != ThemeDark {
		t.Fatalf("unexpected default theme %q", cfg.ThemeOrDefault())
	}
	if cfg.LogFilePath() != "scorecard.log" {
		t.Fatalf("unexpected default log path %q", cfg.LogFilePath())
	}
}

func TestThemeNormalization(t *testing.T) {
	cfg := Config{Theme: "  LIGHT "}
	if cfg.ThemeOrDefault() != ThemeLight {
		t.Fatalf("expected normalized light theme, got %q", cfg.ThemeOrDefault())
	}
	cfg.Theme = "solarized"
	if cfg.ThemeOrDefault() != ThemeDark {
		t.Fatalf("expected unknown theme to fall back to dark, got %q", cfg.ThemeOrDefault())
	}
}
