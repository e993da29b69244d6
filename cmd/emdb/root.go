package main

import (
	"fmt"
	"log/slog"

	"github.com/emannotation/emdb/internal/ioconfig"
	pkgconfig "github.com/emannotation/emdb/pkg/config"
	"github.com/emannotation/emdb/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *pkgconfig.Config
)

func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "emdb",
		Short: "emdb materializes annotation schemas as database tables",
		Long: `emdb compiles typed annotation schemas into versioned PostgreSQL
table definitions and materializes them, indexes and foreign keys included.

The tool provides three main commands:
  - create:  Compile a dataset's schemas and create its tables
  - version: Show the next free version number for a dataset
  - schemas: List the annotation schemas known to this build

Configuration precedence (highest to lowest):
  1. CLI flags (--host, --port, etc.)
  2. Environment variables (EMDB_*)
  3. Config file (config.yaml)
  4. Built-in defaults

Environment Variables:
  All configuration can be set via EMDB_* environment variables.
  Nested fields use underscores (database.host → EMDB_DATABASE_HOST).

  Examples:
    EMDB_DATABASE_HOST              PostgreSQL host
    EMDB_DATABASE_PORT              PostgreSQL port
    EMDB_DATABASE_USER              PostgreSQL user
    EMDB_DATABASE_PASSWORD          PostgreSQL password
    EMDB_DATABASE_DATABASE          Database name
    EMDB_LOG_LEVEL                  Log level (debug/info/warn/error)

  See 'go doc github.com/emannotation/emdb/pkg/config' for complete list.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Auto-generate config file on first run if it doesn't exist
			if cfgFile == "" {
				exists, err := ioconfig.ConfigFileExists()
				if err != nil {
					return fmt.Errorf("failed to check config file: %w", err)
				}

				if !exists {
					generatedPath, err := ioconfig.GenerateDefaultConfig()
					if err != nil {
						// Only warn, don't fail - can use defaults
						fmt.Printf("Warning: could not generate config file: %v\n", err)
					} else {
						fmt.Printf("Generated default config at: %s\n", generatedPath)
					}
				}
			}

			// Load configuration
			result, err := ioconfig.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			cfg = result.Config

			slog.SetDefault(logger.New(&cfg.Log))

			// Display config source
			switch result.Source {
			case "file":
				fmt.Printf("Using config from: %s\n", result.SourcePath)
			case "defaults+env":
				fmt.Println("Using built-in defaults with environment variable overrides")
			case "defaults":
				fmt.Println("Using built-in defaults (no config file)")
			}

			return nil
		},
	}

	// Persistent flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ~/.config/emdb/config.yaml)")

	rootCmd.Flags().BoolP("version", "V", false, "version for emdb")

	rootCmd.AddCommand(getCreateCmd())
	rootCmd.AddCommand(getVersionCmd())
	rootCmd.AddCommand(getSchemasCmd())

	return rootCmd
}

// getConfig returns the loaded configuration (for use in subcommands)
func getConfig() *pkgconfig.Config {
	return cfg
}
