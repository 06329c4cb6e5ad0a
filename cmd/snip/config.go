package main

import (
	"fmt"
	"strings"

	"github.com/matsen/snip/internal/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Get or set configuration values",
	Long: `Get or set values in the global config file (~/.config/snip/config.yml).

Usage:
  snip config                            # Show all config and effective settings
  snip config db-path                    # Get specific value
  snip config db-path ~/sync/snips.db    # Set value
  snip config log-level debug

Keys:
  db-path     Path to the snippets SQLite database
  icon-path   Icon path reported to the launcher
  log-level   debug, info, warn, error or disabled

SNIP_DB, SNIP_ICON and SNIP_LOG_LEVEL override the file; --db and --icon
override both.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

// ConfigResponse is the response for config show.
type ConfigResponse struct {
	ConfigPath string                `json:"config_path"`
	File       config.GlobalConfig   `json:"file"`
	Effective  effectiveSettingsJSON `json:"effective"`
}

type effectiveSettingsJSON struct {
	DBPath   string `json:"db_path"`
	IconPath string `json:"icon_path,omitempty"`
	LogLevel string `json:"log_level,omitempty"`
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadGlobalConfig()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	// No args: show all config
	if len(args) == 0 {
		eff, err := config.Resolve(config.Settings{DBPath: dbFlag, IconPath: iconFlag})
		if err != nil {
			exitWithError(ExitConfigError, "resolving settings: %v", err)
		}
		if humanOutput {
			fmt.Printf("config:     %s\n", config.GlobalConfigPath())
			fmt.Printf("db-path:    %s\n", eff.DBPath)
			fmt.Printf("icon-path:  %s\n", eff.IconPath)
			fmt.Printf("log-level:  %s\n", eff.LogLevel)
		} else {
			outputJSON(ConfigResponse{
				ConfigPath: config.GlobalConfigPath(),
				File:       *cfg,
				Effective:  effectiveSettingsJSON{DBPath: eff.DBPath, IconPath: eff.IconPath, LogLevel: eff.LogLevel},
			})
		}
		return nil
	}

	key := normalizeKey(args[0])
	field, ok := configField(cfg, key)
	if !ok {
		exitWithError(ExitError, "unknown configuration key: %s", args[0])
	}

	// One arg: get specific value
	if len(args) == 1 {
		if humanOutput {
			fmt.Println(*field)
		} else {
			outputJSON(map[string]string{strings.ReplaceAll(key, "-", "_"): *field})
		}
		return nil
	}

	// Two args: set value
	value := args[1]
	switch key {
	case "db-path", "icon-path":
		value = config.ExpandPath(value)
	case "log-level":
		value = strings.ToLower(value)
		if !validLogLevel(value) {
			exitWithError(ExitError, "invalid log-level: %s", args[1])
		}
	}
	*field = value

	if err := cfg.Save(); err != nil {
		exitWithError(ExitError, "saving config: %v", err)
	}

	if humanOutput {
		fmt.Printf("Updated %s to %s\n", key, value)
	} else {
		outputJSON(StatusResponse{Status: "updated", Key: key, Value: value})
	}
	return nil
}

// validLogLevel reports whether name is a zerolog level name.
// The empty name parses as NoLevel and is rejected.
func validLogLevel(name string) bool {
	level, err := zerolog.ParseLevel(name)
	return err == nil && level != zerolog.NoLevel
}

// configField returns a pointer to the config field named by key.
func configField(cfg *config.GlobalConfig, key string) (*string, bool) {
	switch key {
	case "db-path":
		return &cfg.DBPath, true
	case "icon-path":
		return &cfg.IconPath, true
	case "log-level":
		return &cfg.LogLevel, true
	default:
		return nil, false
	}
}

// normalizeKey converts key formats (db-path, db_path, DB-Path) to consistent format
func normalizeKey(key string) string {
	key = strings.ToLower(key)
	key = strings.ReplaceAll(key, "_", "-")
	return key
}
