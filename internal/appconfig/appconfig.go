// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// legacyConfigPath is the path to the configuration file used in previous versions.
	legacyConfigPath = "config.json"
	// DefaultDataPath is where the exporter drops the benchmark document.
	DefaultDataPath = "data/benchmark-export.json"
	// defaultPageSize is the table page size when the config omits one.
	defaultPageSize = 15
)

// Theme names accepted by the dashboard.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Config represents the top-level application configuration.
type Config struct {
	DataPath   string `json:"data"`
	Theme      string `json:"theme,omitempty"`
	PageSize   int    `json:"pageSize,omitempty"`
	Debug      bool   `json:"debug"`
	LogFile    string `json:"logFile,omitempty"`
	ConfigPath string `json:"-"`
}

// DataPathOrDefault returns the export document path, applying the default
// when the config omits it.
func (c Config) DataPathOrDefault() string {
	if path := strings.TrimSpace(c.DataPath); path != "" {
		return path
	}
	return DefaultDataPath
}

// PageSizeOrDefault returns the configured table page size, falling back to
// the default for missing or nonsensical values.
func (c Config) PageSizeOrDefault() int {
	if c.PageSize <= 0 {
		return defaultPageSize
	}
	return c.PageSize
}

// ThemeOrDefault returns the configured theme name, defaulting to dark.
func (c Config) ThemeOrDefault() string {
	switch strings.ToLower(strings.TrimSpace(c.Theme)) {
	case ThemeLight:
		return ThemeLight
	case ThemeDark:
		return ThemeDark
	default:
		return ThemeDark
	}
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return "scorecard.log"
}

// Load reads the application configuration from the specified path, with fallback to a legacy path.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	config, err := loadFromPath(path)
	if err == nil {
		config.ConfigPath = path
		return config, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		if path == DefaultConfigPath {
			config, legacyErr := loadFromPath(legacyConfigPath)
			if legacyErr == nil {
				config.ConfigPath = legacyConfigPath
				return config, nil
			}
			if errors.Is(legacyErr, os.ErrNotExist) {
				return Config{}, fmt.Errorf("no configuration file found (searched %q and %q)", DefaultConfigPath, legacyConfigPath)
			}
			return Config{}, fmt.Errorf("could not read config file %q: %w", legacyConfigPath, legacyErr)
		}
		return Config{}, fmt.Errorf("no configuration file found at %q", path)
	}

	return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
}

// loadFromPath is a helper function that loads the configuration from a specific file path.
func loadFromPath(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var config Config
	if err := json.NewDecoder(file).Decode(&config); err != nil {
		return Config{}, err
	}
	return config, nil
}
