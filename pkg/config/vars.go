package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "emdb"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/emdb by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/emdb/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}
