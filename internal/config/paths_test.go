package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomeDir_DefaultsUnderUserHome(t *testing.T) {
	t.Setenv("BIDCLOCK_HOME", "")

	dir, err := HomeDir()
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(dir), "home dir should be absolute")
	assert.True(t, strings.HasSuffix(dir, ".bidclock"))
}

func TestHomeDir_HonorsEnvOverride(t *testing.T) {
	custom := t.TempDir()
	t.Setenv("BIDCLOCK_HOME", custom)

	dir, err := HomeDir()
	require.NoError(t, err)
	assert.Equal(t, custom, dir)

	cfgPath, err := GlobalConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(custom, "config.yaml"), cfgPath)

	logPath, err := LogFilePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(custom, "logs", "bidclock.log"), logPath)
}

func TestProjectConfigPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, filepath.Join(".bidclock", "config.yaml"), ProjectConfigPath())
}
