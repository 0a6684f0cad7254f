package constants

// CLILogFileName is the name of the global CLI log file.
// This file is located in ~/.bidclock/logs/bidclock.log
const CLILogFileName = "bidclock.log"

// Configuration file names.
const (
	// ConfigFileName is the name of both the global and the project configuration file.
	ConfigFileName = "config.yaml"

	// DotEnvFileName is the optional dotenv file read from the working directory.
	DotEnvFileName = ".env"
)

// Notification event names accepted in notifications.events.
const (
	// NotifyRoundStarted fires when a new bid round begins.
	NotifyRoundStarted = "round_started"

	// NotifyMatchOver fires when the total match time has elapsed.
	NotifyMatchOver = "match_over"

	// NotifyRestarted fires when the match is restarted.
	NotifyRestarted = "restarted"

	// NotifyReset fires when settings are reset to defaults.
	NotifyReset = "reset"
)
