package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GlobalConfig represents configuration stored in ~/.config/snip/config.yml.
type GlobalConfig struct {
	DBPath   string `yaml:"db_path,omitempty" json:"db_path,omitempty"`
	IconPath string `yaml:"icon_path,omitempty" json:"icon_path,omitempty"`
	LogLevel string `yaml:"log_level,omitempty" json:"log_level,omitempty"`
}

// GlobalConfigFile is the config file name.
const GlobalConfigFile = "config.yml"

// globalConfigCache caches the loaded global config.
var globalConfigCache *GlobalConfig

// GlobalConfigPath returns the path to the global config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/snip/config.yml.
func GlobalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, AppDir, GlobalConfigFile)
}

// LoadGlobalConfig loads the global configuration file.
// Returns an empty config (not an error) if the file doesn't exist.
func LoadGlobalConfig() (*GlobalConfig, error) {
	if globalConfigCache != nil {
		return globalConfigCache, nil
	}

	path := GlobalConfigPath()
	if path == "" {
		return &GlobalConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &GlobalConfig{}, nil
		}
		return nil, fmt.Errorf("reading global config: %w", err)
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing global config: %w", err)
	}

	cfg.DBPath = ExpandPath(cfg.DBPath)
	cfg.IconPath = ExpandPath(cfg.IconPath)

	globalConfigCache = &cfg
	return &cfg, nil
}

// ResetGlobalConfigCache clears the cached global config.
// Useful for testing.
func ResetGlobalConfigCache() {
	globalConfigCache = nil
}

// Save writes the config to GlobalConfigPath, creating its directory.
func (c *GlobalConfig) Save() error {
	path := GlobalConfigPath()
	if path == "" {
		return fmt.Errorf("cannot determine config path")
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding global config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing global config: %w", err)
	}

	globalConfigCache = c
	return nil
}

// Settings are the effective runtime settings after applying overrides.
type Settings struct {
	DBPath   string
	IconPath string
	LogLevel string
}

// Resolve merges, lowest to highest precedence: defaults, the global config
// file, environment variables, then the non-empty fields of flags.
func Resolve(flags Settings) (Settings, error) {
	cfg, err := LoadGlobalConfig()
	if err != nil {
		return Settings{}, err
	}

	s := Settings{DBPath: DefaultDBPath()}
	override(&s, Settings{DBPath: cfg.DBPath, IconPath: cfg.IconPath, LogLevel: cfg.LogLevel})
	override(&s, Settings{
		DBPath:   ExpandPath(os.Getenv(EnvDBPath)),
		IconPath: ExpandPath(os.Getenv(EnvIconPath)),
		LogLevel: os.Getenv(EnvLogLevel),
	})
	override(&s, Settings{DBPath: ExpandPath(flags.DBPath), IconPath: ExpandPath(flags.IconPath), LogLevel: flags.LogLevel})
	return s, nil
}

func override(dst *Settings, src Settings) {
	if src.DBPath != "" {
		dst.DBPath = src.DBPath
	}
	if src.IconPath != "" {
		dst.IconPath = src.IconPath
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
}
