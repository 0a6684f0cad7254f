package cli

import (
	stderrors "errors"
	"fmt"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/bidclock/internal/errors"
)

func TestExitCodes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, ExitSuccess)
	assert.Equal(t, 1, ExitError)
	assert.Equal(t, 2, ExitInvalidInput)
}

func TestIsValidOutputFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		valid  bool
	}{
		{"text", true},
		{"json", true},
		{"yaml", false},
		{"", false},
		{"JSON", false},
	}

	for _, tc := range tests {
		t.Run(tc.format, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.valid, IsValidOutputFormat(tc.format))
		})
	}
}

func TestAddGlobalFlags(t *testing.T) {
	t.Parallel()

	cmd := &cobra.Command{Use: "test"}
	flags := &GlobalFlags{}
	AddGlobalFlags(cmd, flags)

	output := cmd.PersistentFlags().Lookup("output")
	require.NotNil(t, output)
	assert.Equal(t, "o", output.Shorthand)
	assert.Equal(t, "text", output.DefValue)

	assert.NotNil(t, cmd.PersistentFlags().Lookup("verbose"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("quiet"))
}

func TestBindGlobalFlags_ReadsFlagValues(t *testing.T) {
	t.Parallel()

	cmd := &cobra.Command{Use: "test"}
	flags := &GlobalFlags{}
	AddGlobalFlags(cmd, flags)
	require.NoError(t, cmd.PersistentFlags().Set("output", "json"))
	require.NoError(t, cmd.PersistentFlags().Set("verbose", "true"))

	require.NoError(t, BindGlobalFlags(viper.New(), cmd, flags))

	assert.Equal(t, "json", flags.Output)
	assert.True(t, flags.Verbose)
	assert.False(t, flags.Quiet)
}

func TestBindGlobalFlags_Environment(t *testing.T) {
	t.Setenv("BIDCLOCK_OUTPUT", "json")
	t.Setenv("BIDCLOCK_QUIET", "true")

	cmd := &cobra.Command{Use: "test"}
	flags := &GlobalFlags{}
	AddGlobalFlags(cmd, flags)

	require.NoError(t, BindGlobalFlags(viper.New(), cmd, flags))

	assert.Equal(t, "json", flags.Output)
	assert.True(t, flags.Quiet)
}

func TestGameFlags_Overrides(t *testing.T) {
	t.Parallel()

	cmd := &cobra.Command{Use: "test"}
	game := &GameFlags{}
	AddGameFlags(cmd, game)
	require.NoError(t, cmd.ParseFlags([]string{
		"--match-time", "45",
		"--rounds", "5",
		"--starting-bid", "25",
		"--multiplier", "3",
		"--exponent", "1.5",
		"--chip", "5",
		"--tick-interval", "50ms",
		"--no-bell",
	}))

	o := game.overrides()
	assert.Equal(t, 45, o.Game.MatchTimeMinutes)
	assert.Equal(t, 5, o.Game.Rounds)
	assert.InDelta(t, 25.0, o.Game.StartingBid, 1e-9)
	assert.InDelta(t, 3.0, o.Game.BidMultiplier, 1e-9)
	assert.InDelta(t, 1.5, o.Game.RoundExponent, 1e-9)
	assert.Equal(t, 5, o.Game.ChipDenomination)
	assert.Equal(t, 50*time.Millisecond, o.Timer.TickInterval)
	assert.True(t, game.NoBell)
}

func TestExitCodeForError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"generic", stderrors.New("boom"), ExitError},
		{"exit code 2 wrapper", errors.NewExitCode2Error(stderrors.New("bad")), ExitInvalidInput},
		{"invalid output format", fmt.Errorf("%w: yaml", errors.ErrInvalidOutputFormat), ExitInvalidInput},
		{"invalid game", fmt.Errorf("load: %w", errors.ErrConfigInvalidGame), ExitInvalidInput},
		{"value out of range", fmt.Errorf("rounds: %w", errors.ErrValueOutOfRange), ExitInvalidInput},
		{"unknown flag", stderrors.New("unknown flag: --nope"), ExitInvalidInput},
		{"unknown command", stderrors.New(`unknown command "nope" for "bidclock"`), ExitInvalidInput},
		{"flag group", stderrors.New("if any flags in the group [verbose quiet] are set none of the others can be"), ExitInvalidInput},
		{"config exists", errors.ErrConfigExists, ExitError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ExitCodeForError(tc.err))
		})
	}
}
