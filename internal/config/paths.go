// Package config resolves the fixed on-disk locations and runtime limits
// used by every other component. Paths are resolved once at startup and
// handed around by value; no other package touches the home directory.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// Defaults shared across the application.
const (
	DefaultTimeout      = 500 * time.Millisecond
	DefaultPollInterval = 100 * time.Millisecond
	DefaultGrace        = 100 * time.Millisecond
	DefaultLogCap       = 100
)

// Config carries the resolved file locations and execution limits.
type Config struct {
	CommandsPath string
	LogPath      string

	Timeout      time.Duration
	PollInterval time.Duration
	Grace        time.Duration
	LogCap       int
}

// DataDir returns the directory used to store gucli data. The GUCLI_HOME
// environment variable overrides the default (used by tests).
func DataDir() (string, error) {
	if override := os.Getenv("GUCLI_HOME"); override != "" {
		return override, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gucli"), nil
}

// New resolves the data directory and returns a fully populated Config.
func New() (Config, error) {
	dir, err := DataDir()
	if err != nil {
		return Config{}, err
	}
	return Config{
		CommandsPath: filepath.Join(dir, "commands.yaml"),
		LogPath:      filepath.Join(dir, "gucli.log"),
		Timeout:      DefaultTimeout,
		PollInterval: DefaultPollInterval,
		Grace:        DefaultGrace,
		LogCap:       DefaultLogCap,
	}, nil
}
