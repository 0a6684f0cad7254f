package config

import (
	stderrors "errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mrz1836/bidclock/internal/errors"
	"github.com/mrz1836/bidclock/internal/flock"
)

// lockSuffix names the sidecar lock file held while a config file is written.
const lockSuffix = ".lock"

// Save writes cfg as YAML to path, creating parent directories as needed.
// An existing file is only replaced when force is true. Concurrent saves to
// the same path fail with ErrConfigLocked.
func Save(path string, cfg *Config, force bool) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}
	if err := Validate(cfg); err != nil {
		return errors.Wrap(err, "refusing to save invalid configuration")
	}

	if !force && fileExists(path) {
		return errors.Wrapf(errors.ErrConfigExists, "%s", path)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	release, err := flock.Acquire(path + lockSuffix)
	if err != nil {
		if stderrors.Is(err, flock.ErrLocked) {
			return errors.Wrapf(errors.ErrConfigLocked, "%s", path)
		}
		return errors.Wrap(err, "failed to lock config")
	}
	defer func() { _ = release() }()

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return errors.Wrapf(err, "failed to write config: %s", path)
	}
	return nil
}
