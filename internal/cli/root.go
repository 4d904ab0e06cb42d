// internal/cli/root.go
// Package scorecard defines the cobra command tree for the scorecard CLI.
package scorecard

import (
	"fmt"
	"os"

	"github.com/k0kubun/pp"
	"github.com/mwiater/scorecard/internal/appconfig"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile       string
	currentConfig *appconfig.Config
)

var rootCmd = &cobra.Command{
	Use:   "scorecard",
	Short: "scorecard — terminal dashboard for LLM benchmark run exports",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// 1) Load config (file or defaults)
		if err := ensureConfigLoaded(); err != nil {
			return err
		}

		// 2) If user did NOT set a flag, copy the config value into the flag so
		//    both pflags and viper reflect the same, final value.
		if !cmd.Flags().Changed("debug") {
			_ = cmd.Flags().Set("debug", fmt.Sprintf("%t", viper.GetBool("debug")))
		}
		for _, name := range []string{"data", "theme"} {
			if !cmd.Flags().Changed(name) {
				_ = cmd.Flags().Set(name, viper.GetString(name))
			}
		}

		// 3) Materialize the fully merged configuration into currentConfig
		//    (flags > config > defaults). This gives other packages a stable snapshot.
		cfg := appconfig.Config{
			DataPath:   viper.GetString("data"),
			Theme:      viper.GetString("theme"),
			PageSize:   viper.GetInt("pageSize"),
			Debug:      viper.GetBool("debug"),
			LogFile:    viper.GetString("logFile"),
			ConfigPath: configPathUsed(),
		}
		currentConfig = &cfg

		if cfg.Debug {
			pp.Println(cfg)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard(cmd, args)
	},
}

// Execute runs the root command and exits nonzero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (e.g., config/config.json)")

	// Persistent flags available to all commands
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("data", appconfig.DefaultDataPath, "path to the benchmark export JSON")
	rootCmd.PersistentFlags().String("theme", appconfig.ThemeDark, "dashboard theme (light or dark)")

	// Bind flags to Viper keys (flags override config)
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("data", rootCmd.PersistentFlags().Lookup("data"))
	_ = viper.BindPFlag("theme", rootCmd.PersistentFlags().Lookup("theme"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

// ensureConfigLoaded reads the config and sets safe defaults.
func ensureConfigLoaded() error {
	viper.SetDefault("debug", false)
	viper.SetDefault("data", appconfig.DefaultDataPath)
	viper.SetDefault("theme", appconfig.ThemeDark)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return loadFallbackConfig()
		}
		if os.IsNotExist(err) {
			return loadFallbackConfig()
		}
		return fmt.Errorf("failed to load config: %w", err)
	}
	return nil
}

// loadFallbackConfig runs the JSON config loader when viper finds no file at
// the configured path; it also checks the legacy config.json location. Values
// merge at config precedence, so explicitly set flags still win. A missing
// file everywhere is fine: defaults and flags apply.
func loadFallbackConfig() error {
	cfg, err := appconfig.Load(cfgFile)
	if err != nil {
		return nil
	}

	merged := map[string]any{"debug": cfg.Debug}
	if cfg.DataPath != "" {
		merged["data"] = cfg.DataPath
	}
	if cfg.Theme != "" {
		merged["theme"] = cfg.Theme
	}
	if cfg.PageSize > 0 {
		merged["pageSize"] = cfg.PageSize
	}
	if cfg.LogFile != "" {
		merged["logFile"] = cfg.LogFile
	}
	if err := viper.MergeConfigMap(merged); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}
	viper.Set("configPath", cfg.ConfigPath)
	return nil
}

// configPathUsed reports which config file actually loaded. The fallback
// loader records its path explicitly; viper's ConfigFileUsed reflects the
// configured path even when no file was read there.
func configPathUsed() string {
	if p := viper.GetString("configPath"); p != "" {
		return p
	}
	return viper.ConfigFileUsed()
}

// getConfig returns the loaded application configuration for other packages.
func getConfig() *appconfig.Config {
	if currentConfig == nil {
		return &appconfig.Config{}
	}
	return currentConfig
}
