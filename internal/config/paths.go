package config

import (
	"os"
	"path/filepath"
)

// StoreSuffix is appended to the repository's base name to form the store file name
const StoreSuffix = ".gitwalk.db"

// GetGitwalkHome returns GITWALK_HOME or ~/.gitwalk default
func GetGitwalkHome() string {
	home := os.Getenv("GITWALK_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".gitwalk"
		}
		return filepath.Join(homeDir, ".gitwalk")
	}
	return ExpandPath(home)
}

// GetSettingsPath returns $GITWALK_HOME/settings.yaml
func GetSettingsPath() string {
	return filepath.Join(GetGitwalkHome(), "settings.yaml")
}

// GetLogDir returns $GITWALK_HOME/logs, where per-run debug logs are written
func GetLogDir() string {
	return filepath.Join(GetGitwalkHome(), "logs")
}

// GetStateDir returns $GITWALK_HOME/state, the default location of store files
func GetStateDir() string {
	return filepath.Join(GetGitwalkHome(), "state")
}

// StoreFileName derives the store file name from the repository's base directory name
func StoreFileName(repoPath string) string {
	base := filepath.Base(filepath.Clean(repoPath))
	if base == "." || base == string(filepath.Separator) {
		if abs, err := filepath.Abs(repoPath); err == nil {
			base = filepath.Base(abs)
		}
	}
	return base + StoreSuffix
}

// StorePath returns the full path of the store file for repoPath inside stateDir
func StorePath(stateDir, repoPath string) string {
	return filepath.Join(ExpandPath(stateDir), StoreFileName(repoPath))
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
