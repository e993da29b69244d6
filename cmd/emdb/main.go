// Package main provides the emdb CLI application.
// emdb compiles annotation schemas into versioned PostgreSQL tables.
package main

import (
	"os"
)

var (
	// Version is set by build flags
	Version = "dev"
)

func main() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
