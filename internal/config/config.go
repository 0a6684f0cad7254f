// Package config provides configuration management for bidclock with layered precedence.
//
// Configuration sources are loaded in the following order (highest precedence first):
//  1. CLI flags (passed via LoadWithOverrides)
//  2. Environment variables (BIDCLOCK_* prefix, "." replaced by "_")
//  3. A .env file in the working directory
//  4. Project config (.bidclock/config.yaml)
//  5. Global config (~/.bidclock/config.yaml, or $BIDCLOCK_HOME/config.yaml)
//  6. Built-in defaults
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import other internal packages.
package config

import (
	"encoding/json"
	"slices"
	"time"
)

// Config is the root configuration structure for bidclock.
type Config struct {
	// Game holds the match and bid-growth settings.
	Game GameConfig `yaml:"game" mapstructure:"game" json:"game"`

	// Timer holds the sampling cadence of the match clock.
	Timer TimerConfig `yaml:"timer" mapstructure:"timer" json:"timer"`

	// Notifications controls which match events ring the terminal bell.
	Notifications NotificationsConfig `yaml:"notifications" mapstructure:"notifications" json:"notifications"`
}

// GameConfig contains the settings that shape a match.
type GameConfig struct {
	// MatchTimeMinutes is the total match duration.
	// Default: 30, Valid range: 1-1000
	MatchTimeMinutes int `yaml:"match_time_minutes" mapstructure:"match_time_minutes" json:"match_time_minutes"`

	// Rounds is the number of equal-length rounds partitioning the match.
	// Default: 3, must be at least 1
	Rounds int `yaml:"rounds" mapstructure:"rounds" json:"rounds"`

	// StartingBid is the base bid unit.
	// Default: 10, must be positive
	StartingBid float64 `yaml:"starting_bid" mapstructure:"starting_bid" json:"starting_bid"`

	// BidMultiplier is the ratio of the large bid to the small bid.
	// Default: 2, must be at least 2
	BidMultiplier float64 `yaml:"bid_multiplier" mapstructure:"bid_multiplier" json:"bid_multiplier"`

	// RoundExponent is applied to the starting bid before round scaling.
	// Values above 1 make later rounds disproportionately expensive.
	// Default: 1.0, must be positive
	RoundExponent float64 `yaml:"round_exponent" mapstructure:"round_exponent" json:"round_exponent"`

	// ChipDenomination is the rounding unit for displayed bids.
	// Default: 10, must be at least 1
	ChipDenomination int `yaml:"chip_denomination" mapstructure:"chip_denomination" json:"chip_denomination"`
}

// MatchDuration returns the match length as a duration.
func (g GameConfig) MatchDuration() time.Duration {
	return time.Duration(g.MatchTimeMinutes) * time.Minute
}

// TotalSeconds returns the match length in whole seconds.
func (g GameConfig) TotalSeconds() int {
	return g.MatchTimeMinutes * 60
}

// DegenerateRounds reports whether rounds would be shorter than one second.
// Such a configuration is accepted; the calculator pins the match to round 1.
func (g GameConfig) DegenerateRounds() bool {
	return g.Rounds > g.TotalSeconds()
}

// RequiresRestart reports whether switching from g to next must restart the
// match clock. Changes to match time, round count, starting bid or bid
// multiplier restart; exponent and chip denomination apply in place.
func (g GameConfig) RequiresRestart(next GameConfig) bool {
	return g.MatchTimeMinutes != next.MatchTimeMinutes ||
		g.Rounds != next.Rounds ||
		g.StartingBid != next.StartingBid || //nolint:gosec // exact comparison of user input is intended
		g.BidMultiplier != next.BidMultiplier
}

// TimerConfig contains settings for the match clock.
type TimerConfig struct {
	// TickInterval is how often the match clock is sampled.
	// Default: 25ms, Valid range: 1ms-1s
	TickInterval time.Duration `yaml:"tick_interval" mapstructure:"tick_interval" json:"tick_interval"`
}

// timerDocument is the on-disk shape of TimerConfig with a readable duration.
type timerDocument struct {
	TickInterval string `yaml:"tick_interval" json:"tick_interval"`
}

// MarshalYAML writes the tick interval as a duration string ("25ms").
func (t TimerConfig) MarshalYAML() (any, error) {
	return timerDocument{TickInterval: t.TickInterval.String()}, nil
}

// MarshalJSON writes the tick interval as a duration string ("25ms").
func (t TimerConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(timerDocument{TickInterval: t.TickInterval.String()})
}

// NotificationsConfig contains settings for user notifications.
type NotificationsConfig struct {
	// Bell enables the terminal bell for the configured events.
	// Default: true
	Bell bool `yaml:"bell" mapstructure:"bell" json:"bell"`

	// Events lists the match events that ring the bell.
	// Default: ["round_started", "match_over"]
	Events []string `yaml:"events" mapstructure:"events" json:"events"`
}

// Enabled reports whether the bell should ring for event.
func (n NotificationsConfig) Enabled(event string) bool {
	return n.Bell && slices.Contains(n.Events, event)
}
