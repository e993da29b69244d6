// Package ioconfig provides I/O operations for loading configuration
// from files and the environment. This is an impure package wrapping
// viper.
package ioconfig

import (
	"fmt"
	"os"
	"strings"

	"github.com/emannotation/emdb/pkg/config"
	"github.com/spf13/viper"
)

// LoadResult contains the loaded configuration and metadata about its
// source.
type LoadResult struct {
	Config     *config.Config
	SourcePath string // path to config file used, empty for defaults
	Source     string // "file", "defaults", or "defaults+env"
}

// Load reads configuration from a YAML file and returns a validated
// Config with source info. If configPath is empty, the default
// location (~/.config/emdb/config.yaml) is tried.
//
// Precedence: env vars (EMDB_*) > config file > defaults. CLI flags
// are applied by the command layer on top of the result.
func Load(configPath string) (*LoadResult, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// Environment variable overrides: EMDB_DATABASE_HOST etc.
	v.SetEnvPrefix("EMDB")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Defaults are set before reading the file so viper knows which
	// keys to consult for env vars even when the file omits them.
	defaults := config.New()
	v.SetDefault("database.host", defaults.Database.Host)
	v.SetDefault("database.port", defaults.Database.Port)
	v.SetDefault("database.user", defaults.Database.User)
	v.SetDefault("database.password", defaults.Database.Password)
	v.SetDefault("database.database", defaults.Database.Database)
	v.SetDefault("database.ssl_mode", defaults.Database.SSLMode)
	v.SetDefault("log.format", defaults.Log.Format)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("jobs_number", defaults.JobsNumber)

	res := &LoadResult{Source: "defaults"}

	path := configPath
	if path == "" {
		def, err := GetDefaultConfigPath()
		if err == nil {
			if _, statErr := os.Stat(def); statErr == nil {
				path = def
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf(
				"failed to read config file %s: %w", path, err)
		}
		res.Source = "file"
		res.SourcePath = path
	} else if hasEnvOverrides() {
		res.Source = "defaults+env"
	}

	var raw config.Config
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	// Route all values through options so invalid entries are
	// rejected and the result stays valid.
	cfg := config.New()
	cfg.Update(raw.ToOptions())
	res.Config = cfg

	return res, nil
}

func hasEnvOverrides() bool {
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "EMDB_") {
			return true
		}
	}
	return false
}
