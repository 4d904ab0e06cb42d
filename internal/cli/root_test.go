// internal/cli/root_test.go
package scorecard

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mwiater/scorecard/internal/appconfig"
	"github.com/spf13/viper"
)

// chdir changes the working directory for the duration of a test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("restore wd: %v", err)
		}
	})
}

// resetViper isolates a test from the package's global viper state.
func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	old := cfgFile
	cfgFile = appconfig.DefaultConfigPath
	t.Cleanup(func() { cfgFile = old })
	viper.SetConfigFile(cfgFile)
}

func TestEnsureConfigLoadedFallsBackToLegacyPath(t *testing.T) {
	dir := t.TempDir()
	legacy := filepath.Join(dir, "config.json")
	raw := []byte(`{"data":"exports/latest.json","theme":"light","pageSize":25}`)
	if err := os.WriteFile(legacy, raw, 0o644); err != nil {
		t.Fatalf("write legacy config: %v", err)
	}
	chdir(t, dir)
	resetViper(t)

	if err := ensureConfigLoaded(); err != nil {
		t.Fatalf("ensureConfigLoaded: %v", err)
	}
	if got := viper.GetString("data"); got != "exports/latest.json" {
		t.Fatalf("expected data path from legacy config, got %q", got)
	}
	if got := viper.GetString("theme"); got != appconfig.ThemeLight {
		t.Fatalf("expected theme from legacy config, got %q", got)
	}
	if got := viper.GetInt("pageSize"); got != 25 {
		t.Fatalf("expected page size 25, got %d", got)
	}
	if got := configPathUsed(); got != "config.json" {
		t.Fatalf("expected legacy config path recorded, got %q", got)
	}
}

func TestEnsureConfigLoadedToleratesMissingFile(t *testing.T) {
	chdir(t, t.TempDir())
	resetViper(t)

	if err := ensureConfigLoaded(); err != nil {
		t.Fatalf("expected missing config to be tolerated, got %v", err)
	}
	if got := viper.GetString("data"); got != appconfig.DefaultDataPath {
		t.Fatalf("expected default data path, got %q", got)
	}
	if got := viper.GetString("theme"); got != appconfig.ThemeDark {
		t.Fatalf("expected default theme, got %q", got)
	}
}
