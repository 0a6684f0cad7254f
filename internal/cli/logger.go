package cli

import (
	"github.com/rs/zerolog"

	"github.com/mrz1836/bidclock/internal/config"
	"github.com/mrz1836/bidclock/internal/logging"
)

// matchHook stamps log entries with the match in play.
var matchHook = logging.NewMatchHook() //nolint:gochecknoglobals // shared by logger and match session

// InitLogger creates the CLI logger.
//
// Log levels: verbose is Debug, quiet is Warn, otherwise Info.
// Entries are always written to the rotating log file under the bidclock
// home directory. terminal suppresses console output for commands that draw
// on the screen.
func InitLogger(verbose, quiet, terminal bool) zerolog.Logger {
	opts := logging.Options{
		Verbose:  verbose,
		Quiet:    quiet,
		FileOnly: terminal,
		Hooks:    []zerolog.Hook{matchHook},
	}
	if path, err := config.LogFilePath(); err == nil {
		opts.LogPath = path
	}

	logger, err := logging.Init(opts)
	if err != nil {
		logger.Debug().Err(err).Msg("log file unavailable, continuing without it")
	}
	return logger
}

// CloseLogFile closes the log file writer if it was opened.
func CloseLogFile() {
	logging.Close()
}
