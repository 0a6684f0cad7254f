package config

import "github.com/mrz1836/bidclock/internal/constants"

// DefaultConfig returns a new Config with the built-in defaults.
// These defaults are the base layer that config files, environment
// variables and CLI flags override.
func DefaultConfig() *Config {
	return &Config{
		Game: DefaultGame(),
		Timer: TimerConfig{
			TickInterval: constants.DefaultTickInterval,
		},
		Notifications: NotificationsConfig{
			Bell:   true,
			Events: []string{constants.NotifyRoundStarted, constants.NotifyMatchOver},
		},
	}
}

// DefaultGame returns the settings a fresh table starts with:
// a 30 minute match in 3 rounds, starting bid 10, large bid 2x, linear growth,
// bids rounded to chips of 10.
func DefaultGame() GameConfig {
	return GameConfig{
		MatchTimeMinutes: constants.DefaultMatchTimeMinutes,
		Rounds:           constants.DefaultRounds,
		StartingBid:      constants.DefaultStartingBid,
		BidMultiplier:    constants.DefaultBidMultiplier,
		RoundExponent:    constants.DefaultRoundExponent,
		ChipDenomination: constants.DefaultChipDenomination,
	}
}

// NotificationEvents returns every event name accepted in notifications.events.
func NotificationEvents() []string {
	return []string{
		constants.NotifyRoundStarted,
		constants.NotifyMatchOver,
		constants.NotifyRestarted,
		constants.NotifyReset,
	}
}
