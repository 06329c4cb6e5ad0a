// Package config handles snip configuration: the global YAML file,
// environment overrides and path defaults.
package config

import (
	"os"
	"path/filepath"
)

const (
	// AppDir is the directory name under XDG config and data homes.
	AppDir = "snip"
	// DBFile is the default database file name.
	DBFile = "snippets.db"
)

// Environment variables that override the config file.
const (
	EnvDBPath   = "SNIP_DB"
	EnvIconPath = "SNIP_ICON"
	EnvLogLevel = "SNIP_LOG_LEVEL"
)

// DefaultDBPath returns $XDG_DATA_HOME/snip/snippets.db,
// defaulting XDG_DATA_HOME to ~/.local/share.
// Falls back to DBFile in the working directory if home is unknown.
func DefaultDBPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return DBFile
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, AppDir, DBFile)
}

// ExpandPath expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path // Return original if we can't get home directory
	}

	return filepath.Join(home, path[1:])
}
