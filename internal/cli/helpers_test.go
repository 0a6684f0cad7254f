package cli

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// isolate points BIDCLOCK_HOME and the working directory at fresh temp dirs
// and clears every BIDCLOCK_ variable so the host environment cannot leak in.
func isolate(t *testing.T) (home, work string) {
	t.Helper()

	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, "BIDCLOCK_") {
			t.Setenv(name, "")
			require.NoError(t, os.Unsetenv(name))
		}
	}

	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("BIDCLOCK_HOME", home)
	t.Chdir(work)
	return home, work
}

// stubInteractive forces the terminal check for the duration of the test.
func stubInteractive(t *testing.T, interactive bool) {
	t.Helper()
	orig := isInteractive
	isInteractive = func() bool { return interactive }
	t.Cleanup(func() { isInteractive = orig })
}
