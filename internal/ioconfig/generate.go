package ioconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/emannotation/emdb/pkg/config"
	"github.com/emannotation/emdb/pkg/templates"
	"gopkg.in/yaml.v3"
)

// GetConfigDir returns the configuration directory for emdb.
// Uses ~/.config/emdb/ on all platforms for consistency.
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf(
			"failed to get user home directory: %w", err)
	}
	return config.ConfigDir(homeDir), nil
}

// GetDefaultConfigPath returns the full path to the default config
// file.
func GetDefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf(
			"failed to get user home directory: %w", err)
	}
	return config.ConfigFilePath(homeDir), nil
}

// ConfigFileExists checks if a config file exists at the default
// location.
func ConfigFileExists() (bool, error) {
	configPath, err := GetDefaultConfigPath()
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(configPath); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// GenerateDefaultConfig writes the documented default config.yaml to
// the default location. Existing files are never overwritten. Returns
// the path the file was written to.
func GenerateDefaultConfig() (string, error) {
	configPath, err := GetDefaultConfigPath()
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(configPath); err == nil {
		return "", fmt.Errorf(
			"config file already exists at %s", configPath)
	}

	// The embedded template must stay parseable; catching drift here
	// beats a confusing viper error on the next start.
	var check config.Config
	if err := yaml.Unmarshal(
		[]byte(templates.ConfigYAML), &check); err != nil {
		return "", fmt.Errorf("default config template is broken: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf(
			"failed to create config directory: %w", err)
	}

	if err := os.WriteFile(
		configPath, []byte(templates.ConfigYAML), 0644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return configPath, nil
}
