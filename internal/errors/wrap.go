package errors

import "fmt"

// Wrap adds context to errors at package boundaries.
// It returns nil if err is nil, allowing for safe inline usage:
//
//	if err := config.Save(path, cfg); err != nil {
//	    return errors.Wrap(err, "failed to save settings")
//	}
//
// The original chain is preserved, so errors.Is(err, ErrConfigInvalidGame)
// keeps working after wrapping.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf adds formatted context to errors at package boundaries.
// It returns nil if err is nil.
//
//	return errors.Wrapf(ErrConfigInvalidGame, "game.rounds must be at least 1, got %d", n)
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
