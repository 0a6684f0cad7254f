// Package logging builds the zerolog logger shared by every bidclock command.
//
// Entries always go to a rotating file under the bidclock home directory.
// Console output is added for headless commands and suppressed while the
// interactive timer owns the terminal.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/mrz1836/bidclock/internal/constants"
)

// logFileWriter holds the log file writer for cleanup purposes.
var logFileWriter io.WriteCloser //nolint:gochecknoglobals // Needed for cleanup

// logFileMu guards logFileWriter.
var logFileMu sync.Mutex //nolint:gochecknoglobals // Protects logFileWriter

// zerologConfigOnce ensures zerolog global settings are configured exactly once.
var zerologConfigOnce sync.Once //nolint:gochecknoglobals // One-time configuration

// zerologGlobalMu protects concurrent writes to the zerolog global logger.
var zerologGlobalMu sync.Mutex //nolint:gochecknoglobals // Protects zerolog global

// Options controls how Init assembles the logger.
type Options struct {
	// Verbose enables debug level.
	Verbose bool

	// Quiet restricts output to warnings and errors.
	Quiet bool

	// FileOnly suppresses console output. The interactive timer sets this.
	FileOnly bool

	// LogPath is the rotating log file. Empty disables file output.
	LogPath string

	// Console overrides the console writer. Nil selects one from the terminal.
	Console io.Writer

	// Hooks are attached to the logger in order.
	Hooks []zerolog.Hook
}

// configureZerologGlobals sets zerolog global field names used in every log entry.
func configureZerologGlobals() {
	zerologConfigOnce.Do(func() {
		zerolog.TimestampFieldName = "ts"
		zerolog.MessageFieldName = "event"
	})
}

// Init creates the process logger, installs it as the zerolog global logger
// and returns it.
//
// Log levels are set as follows:
//   - Verbose: Debug level
//   - Quiet: Warn level
//   - default: Info level
//
// A log file that cannot be opened is reported on the returned error, but
// the logger still works with whatever writers remain.
func Init(opts Options) (zerolog.Logger, error) {
	configureZerologGlobals()

	var writers []io.Writer
	if !opts.FileOnly {
		console := opts.Console
		if console == nil {
			console = SelectOutput()
		}
		writers = append(writers, console)
	}

	var fileErr error
	if opts.LogPath != "" {
		fw, err := createLogFileWriter(opts.LogPath)
		if err != nil {
			fileErr = err
		} else {
			setLogFile(fw)
			writers = append(writers, fw)
		}
	}

	var writer io.Writer
	switch len(writers) {
	case 0:
		writer = io.Discard
	case 1:
		writer = writers[0]
	default:
		writer = zerolog.MultiLevelWriter(writers...)
	}

	logger := build(writer, SelectLevel(opts.Verbose, opts.Quiet), opts.Hooks)
	setGlobalLogger(logger)
	return logger, fileErr
}

// InitWithWriter creates a logger writing only to w.
// This is primarily intended for testing purposes.
func InitWithWriter(verbose, quiet bool, w io.Writer, hooks ...zerolog.Hook) zerolog.Logger {
	configureZerologGlobals()

	logger := build(w, SelectLevel(verbose, quiet), hooks)
	setGlobalLogger(logger)
	return logger
}

func build(w io.Writer, level zerolog.Level, hooks []zerolog.Hook) zerolog.Logger {
	logger := zerolog.New(w).Level(level)
	for _, h := range hooks {
		logger = logger.Hook(h)
	}
	return logger.With().Timestamp().Logger()
}

// setGlobalLogger points log.Logger at logger so package-level
// log.Debug()/log.Info() calls share its configuration.
func setGlobalLogger(logger zerolog.Logger) {
	zerologGlobalMu.Lock()
	defer zerologGlobalMu.Unlock()
	log.Logger = logger
}

func setLogFile(w io.WriteCloser) {
	logFileMu.Lock()
	defer logFileMu.Unlock()
	if logFileWriter != nil {
		_ = logFileWriter.Close()
	}
	logFileWriter = w
}

// Close closes the log file writer if one was opened.
// This should be called during application shutdown.
func Close() {
	logFileMu.Lock()
	defer logFileMu.Unlock()
	if logFileWriter != nil {
		_ = logFileWriter.Close()
		logFileWriter = nil
	}
}

// SelectLevel determines the appropriate log level based on flags.
func SelectLevel(verbose, quiet bool) zerolog.Level {
	switch {
	case verbose:
		return zerolog.DebugLevel
	case quiet:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

// SelectOutput picks the console writer: human-readable on a color TTY,
// JSON on stderr otherwise.
func SelectOutput() io.Writer {
	if term.IsTerminal(int(os.Stderr.Fd())) && os.Getenv("NO_COLOR") == "" {
		return zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.Kitchen,
		}
	}
	return os.Stderr
}

// createLogFileWriter creates a rotating file writer at path.
func createLogFileWriter(path string) (io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    constants.LogMaxSizeMB,
		MaxBackups: constants.LogMaxBackups,
		MaxAge:     constants.LogMaxAgeDays,
		Compress:   constants.LogCompress,
	}, nil
}
