package internal

import (
	"log"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

var (
	// DefaultAppName is used for config lookup paths and CLI branding
	DefaultAppName          = "dirindex"
	DefaultConfigPath       = filepath.Join(getHomeDir(), ".config", DefaultAppName)
	DefaultGlobalConfigFile = filepath.Join(DefaultConfigPath, "config.yaml")

	// DefaultOutputDirPrefix is prepended to the indexed folder name when
	// artifacts are written to disk, e.g. "Items_in_photos"
	DefaultOutputDirPrefix = "Items_in_"

	// Default progress cadences. The builder yields more often than the
	// serializers because per-entry work is heavier.
	DefaultBuilderBatchSize    = 100
	DefaultSerializerBatchSize = 500

	DefaultServerAddr = ":8080"
)

func getHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current working directory if home directory is unavailable
		cwd, cwdErr := os.Getwd()
		if cwdErr != nil {
			// Last resort - use tmp directory
			log.Printf("Unable to get home or working directory, using /tmp: %v", err)
			return "/tmp"
		}
		log.Printf("Unable to get home directory, using current working directory: %v", err)
		return cwd
	}
	return homeDir
}

// GetLogger returns a properly configured zerolog logger instance
func GetLogger() zerolog.Logger {
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}
