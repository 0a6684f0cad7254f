package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mrz1836/bidclock/internal/constants"
	"github.com/mrz1836/bidclock/internal/errors"
)

// HomeDir returns the bidclock home directory. BIDCLOCK_HOME wins when set;
// otherwise it is ~/.bidclock.
func HomeDir() (string, error) {
	if home := os.Getenv(constants.HomeEnvVar); home != "" {
		return home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}
	return filepath.Join(home, constants.AppHome), nil
}

// GlobalConfigPath returns the full path to the global configuration file.
func GlobalConfigPath() (string, error) {
	dir, err := HomeDir()
	if err != nil {
		return "", fmt.Errorf("get global config path: %w", err)
	}
	return filepath.Join(dir, constants.ConfigFileName), nil
}

// ProjectConfigPath returns the relative path to the project configuration file.
// This is always .bidclock/config.yaml relative to the working directory.
func ProjectConfigPath() string {
	return filepath.Join(constants.AppHome, constants.ConfigFileName)
}

// LogFilePath returns the path to the rotating CLI log file.
func LogFilePath() (string, error) {
	dir, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, constants.LogsDir, constants.CLILogFileName), nil
}
