//go:build unix

package flock

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquire(t *testing.T) {
	t.Parallel()

	t.Run("creates and locks a new file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "config.yaml.lock")

		release, err := Acquire(path)
		require.NoError(t, err)
		assert.FileExists(t, path)
		require.NoError(t, release())
	})

	t.Run("second holder is refused", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "config.yaml.lock")

		release, err := Acquire(path)
		require.NoError(t, err)

		_, err = Acquire(path)
		require.ErrorIs(t, err, ErrLocked)

		require.NoError(t, release())

		again, err := Acquire(path)
		require.NoError(t, err)
		require.NoError(t, again())
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()
		_, err := Acquire(filepath.Join(t.TempDir(), "nope", "x.lock"))
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrLocked)
	})
}

func TestExclusive_Unlock(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "raw.lock")
	f1, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o600) //nolint:gosec // temp dir
	require.NoError(t, err)
	defer func() { _ = f1.Close() }()
	f2, err := os.OpenFile(path, os.O_RDWR, 0o600) //nolint:gosec // temp dir
	require.NoError(t, err)
	defer func() { _ = f2.Close() }()

	require.NoError(t, Exclusive(f1.Fd()))
	require.Error(t, Exclusive(f2.Fd()))
	require.NoError(t, Unlock(f1.Fd()))
	require.NoError(t, Exclusive(f2.Fd()))
	require.NoError(t, Unlock(f2.Fd()))
}
