// Package constants provides centralized constant values used throughout bidclock.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

import "time"

// AppName is the binary and environment prefix root.
const AppName = "bidclock"

// EnvPrefix is the prefix for environment variable overrides (BIDCLOCK_GAME_ROUNDS, ...).
const EnvPrefix = "BIDCLOCK"

// HomeEnvVar overrides the location of the bidclock home directory.
const HomeEnvVar = "BIDCLOCK_HOME"

// Directory names used by bidclock for configuration and logs.
const (
	// AppHome is the hidden directory name where bidclock stores its data.
	// It is created in the user's home directory and also used for project config.
	AppHome = ".bidclock"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"
)

// Game defaults, matching the values a fresh table starts with.
const (
	// DefaultMatchTimeMinutes is the total match duration.
	DefaultMatchTimeMinutes = 30

	// DefaultRounds is the number of equal-length bid rounds.
	DefaultRounds = 3

	// DefaultStartingBid is the base small bid before round scaling.
	DefaultStartingBid = 10.0

	// DefaultBidMultiplier is the ratio of large bid to small bid.
	DefaultBidMultiplier = 2.0

	// DefaultRoundExponent is applied to the starting bid before round scaling.
	DefaultRoundExponent = 1.0

	// DefaultChipDenomination is the rounding unit for displayed bids.
	DefaultChipDenomination = 10
)

// Game limits enforced at the configuration boundary.
const (
	// MinMatchTimeMinutes is the shortest allowed match.
	MinMatchTimeMinutes = 1

	// MaxMatchTimeMinutes is the longest allowed match.
	MaxMatchTimeMinutes = 1000

	// MaxRounds allows one round per second in the longest match.
	MaxRounds = MaxMatchTimeMinutes * 60

	// MinBidMultiplier is the smallest allowed large/small bid ratio.
	MinBidMultiplier = 2.0
)

// Timer cadence.
const (
	// DefaultTickInterval is how often the match clock is sampled.
	DefaultTickInterval = 25 * time.Millisecond

	// MinTickInterval is the fastest allowed sampling cadence.
	MinTickInterval = time.Millisecond

	// MaxTickInterval is the slowest allowed sampling cadence.
	MaxTickInterval = time.Second

	// DefaultStatusInterval is how often the headless runner prints a status line.
	DefaultStatusInterval = 10 * time.Second
)

// Log rotation settings for the CLI log file.
const (
	// LogMaxSizeMB is the maximum size in megabytes before rotation.
	LogMaxSizeMB = 10

	// LogMaxBackups is the number of rotated files to keep.
	LogMaxBackups = 3

	// LogMaxAgeDays is the maximum number of days to retain old log files.
	LogMaxAgeDays = 28

	// LogCompress enables gzip compression of rotated files.
	LogCompress = true
)
