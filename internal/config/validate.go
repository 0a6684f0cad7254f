package config

import (
	"slices"

	"github.com/mrz1836/bidclock/internal/constants"
	"github.com/mrz1836/bidclock/internal/errors"
)

// Validate checks the configuration for invalid or inconsistent values.
// It returns an error describing the first validation failure found.
//
// Validation rules:
//   - Match time must be between 1 and 1000 minutes
//   - Rounds must be between 1 and 60000
//   - Starting bid and round exponent must be positive
//   - Bid multiplier must be at least 2
//   - Chip denomination must be at least 1
//   - Tick interval must be between 1ms and 1s
//   - Notification events must be known event names
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}

	if err := ValidateGame(&cfg.Game); err != nil {
		return err
	}

	if err := validateTimerConfig(&cfg.Timer); err != nil {
		return err
	}

	return validateNotificationsConfig(&cfg.Notifications)
}

// ValidateGame checks the game settings on their own. The settings form and
// the match session use it before applying a change.
func ValidateGame(cfg *GameConfig) error {
	if cfg.MatchTimeMinutes < constants.MinMatchTimeMinutes || cfg.MatchTimeMinutes > constants.MaxMatchTimeMinutes {
		return errors.Wrapf(errors.ErrConfigInvalidGame,
			"game.match_time_minutes must be between %d and %d, got %d",
			constants.MinMatchTimeMinutes, constants.MaxMatchTimeMinutes, cfg.MatchTimeMinutes)
	}

	if cfg.Rounds < 1 || cfg.Rounds > constants.MaxRounds {
		return errors.Wrapf(errors.ErrConfigInvalidGame,
			"game.rounds must be between 1 and %d, got %d", constants.MaxRounds, cfg.Rounds)
	}

	if cfg.StartingBid <= 0 {
		return errors.Wrapf(errors.ErrConfigInvalidGame,
			"game.starting_bid must be positive, got %g", cfg.StartingBid)
	}

	if cfg.BidMultiplier < constants.MinBidMultiplier {
		return errors.Wrapf(errors.ErrConfigInvalidGame,
			"game.bid_multiplier must be at least %g, got %g", constants.MinBidMultiplier, cfg.BidMultiplier)
	}

	if cfg.RoundExponent <= 0 {
		return errors.Wrapf(errors.ErrConfigInvalidGame,
			"game.round_exponent must be positive, got %g", cfg.RoundExponent)
	}

	if cfg.ChipDenomination < 1 {
		return errors.Wrapf(errors.ErrConfigInvalidGame,
			"game.chip_denomination must be at least 1, got %d", cfg.ChipDenomination)
	}

	return nil
}

// validateTimerConfig checks timer-specific configuration values.
func validateTimerConfig(cfg *TimerConfig) error {
	if cfg.TickInterval < constants.MinTickInterval || cfg.TickInterval > constants.MaxTickInterval {
		return errors.Wrapf(errors.ErrConfigInvalidTimer,
			"timer.tick_interval must be between %s and %s, got %s",
			constants.MinTickInterval, constants.MaxTickInterval, cfg.TickInterval)
	}
	return nil
}

// validateNotificationsConfig checks that every configured event is known.
func validateNotificationsConfig(cfg *NotificationsConfig) error {
	known := NotificationEvents()
	for _, event := range cfg.Events {
		if !slices.Contains(known, event) {
			return errors.Wrapf(errors.ErrConfigInvalidNotifications,
				"notifications.events contains unknown event %q", event)
		}
	}
	return nil
}
