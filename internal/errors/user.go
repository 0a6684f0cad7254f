package errors

import "errors"

// ErrorInfo holds user-facing message and suggested action for an error.
type ErrorInfo struct {
	// Message is the user-friendly error description.
	Message string
	// Action is a suggested action to resolve the issue (empty if none).
	Action string
}

// errorEntry pairs a sentinel error with its user-facing info.
type errorEntry struct {
	err  error
	info ErrorInfo
}

// errorInfoEntries maps sentinel errors to user-facing messages.
// A slice rather than a map because wrapped errors need errors.Is() traversal.
//
//nolint:gochecknoglobals // Pre-built mapping
var errorInfoEntries = []errorEntry{
	{
		err: ErrConfigNil,
		info: ErrorInfo{
			Message: "Configuration is not loaded.",
			Action:  "Run 'bidclock config init' to write a default configuration.",
		},
	},
	{
		err: ErrConfigInvalidGame,
		info: ErrorInfo{
			Message: "Invalid game settings.",
			Action:  "Check the 'game' section of your config or run 'bidclock config edit'.",
		},
	},
	{
		err: ErrConfigInvalidTimer,
		info: ErrorInfo{
			Message: "Invalid timer settings.",
			Action:  "timer.tick_interval must be between 1ms and 1s (for example '25ms').",
		},
	},
	{
		err: ErrConfigInvalidNotifications,
		info: ErrorInfo{
			Message: "Invalid notification settings.",
			Action:  "Valid events are 'round_started', 'match_over', 'restarted' and 'reset'.",
		},
	},
	{
		err: ErrConfigExists,
		info: ErrorInfo{
			Message: "A configuration file already exists.",
			Action:  "Use --force to overwrite it.",
		},
	},
	{
		err: ErrConfigLocked,
		info: ErrorInfo{
			Message: "Another bidclock process is saving this configuration.",
			Action:  "Wait for it to finish and try again.",
		},
	},
	{
		err: ErrValueOutOfRange,
		info: ErrorInfo{
			Message: "Value is outside the allowed range.",
			Action:  "Check 'bidclock --help' for valid value ranges.",
		},
	},
	{
		err: ErrInvalidOutputFormat,
		info: ErrorInfo{
			Message: "Invalid output format.",
			Action:  "Use --output text or --output json.",
		},
	},
	{
		err: ErrInteractiveRequired,
		info: ErrorInfo{
			Message: "This command requires an interactive terminal.",
			Action:  "Use 'bidclock run' for a headless timer.",
		},
	},
	{
		err: ErrOperationCanceled,
		info: ErrorInfo{
			Message: "Operation was canceled.",
		},
	},
	{
		err: ErrClockNotReady,
		info: ErrorInfo{
			Message: "The match clock has not been initialized yet.",
			Action:  "Restart the match to set a finish time.",
		},
	},
}

// getErrorInfo looks up the ErrorInfo for a given error.
// Returns an ErrorInfo with the original error message if not found.
func getErrorInfo(err error) ErrorInfo {
	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info
		}
	}
	return ErrorInfo{Message: err.Error()}
}

// UserMessage returns a user-friendly message for common errors.
// For unrecognized errors, it returns the error's original message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return getErrorInfo(err).Message
}

// Actionable returns a user-friendly error message along with a suggested action.
// The action is empty when there is nothing useful to suggest.
func Actionable(err error) (message, action string) {
	if err == nil {
		return "", ""
	}
	info := getErrorInfo(err)
	return info.Message, info.Action
}
