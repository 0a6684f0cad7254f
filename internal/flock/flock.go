package flock

import (
	"errors"
	"fmt"
	"os"
)

// ErrLocked is returned by Acquire when another holder has the lock.
var ErrLocked = errors.New("file is locked by another process")

// Acquire creates path if needed and locks it exclusively. The returned
// release function unlocks and closes the file; it does not remove it.
func Acquire(path string) (release func() error, err error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o600) //nolint:gosec // G304: path is built by the caller from known config locations
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := Exclusive(f.Fd()); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s", ErrLocked, path)
	}

	return func() error {
		unlockErr := Unlock(f.Fd())
		closeErr := f.Close()
		return errors.Join(unlockErr, closeErr)
	}, nil
}
