// Package config handles application configuration and setup
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/retroenv/retrogolib/log"
)

// cartridgeSubPath is the location of the TIC-80 configuration cartridge
// relative to the home directory.
const cartridgeSubPath = ".local/share/com.nesbox.tic/TIC-80/.local/b09c50c/config.tic"

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// DefaultCartridgePath returns the path of the TIC-80 config.tic of the
// current user.
func DefaultCartridgePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, filepath.FromSlash(cartridgeSubPath)), nil
}
