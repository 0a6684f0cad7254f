package cli

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mrz1836/bidclock/internal/config"
)

// loadConfig resolves the layered configuration and applies the command's
// game flags on top.
func loadConfig(ctx context.Context, logger zerolog.Logger, flags *GameFlags) (*config.Config, error) {
	ctx = logger.WithContext(ctx)

	var overrides *config.Config
	if flags != nil {
		overrides = flags.overrides()
	}

	cfg, err := config.LoadWithOverrides(ctx, overrides)
	if err != nil {
		return nil, err
	}

	if flags != nil && flags.NoBell {
		cfg.Notifications.Bell = false
	}
	return cfg, nil
}
