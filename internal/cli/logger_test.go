package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger_TerminalWritesFileOnly(t *testing.T) {
	home, _ := isolate(t)

	matchHook.SetMatchID("match-under-test")
	t.Cleanup(func() { matchHook.SetMatchID("") })

	logger := InitLogger(false, false, true)
	logger.Info().Msg("hello from the timer")
	CloseLogFile()

	data, err := os.ReadFile(filepath.Join(home, "logs", "bidclock.log")) //nolint:gosec // temp dir
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from the timer")
	assert.Contains(t, string(data), `"match_id":"match-under-test"`)
}

func TestInitLogger_QuietDropsInfo(t *testing.T) {
	home, _ := isolate(t)

	logger := InitLogger(false, true, true)
	logger.Info().Msg("not written")
	logger.Warn().Msg("written")
	CloseLogFile()

	data, err := os.ReadFile(filepath.Join(home, "logs", "bidclock.log")) //nolint:gosec // temp dir
	require.NoError(t, err)
	assert.NotContains(t, string(data), "not written")
	assert.Contains(t, string(data), "written")
}
