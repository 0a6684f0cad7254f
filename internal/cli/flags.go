package cli

import (
	stderrors "errors"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrz1836/bidclock/internal/config"
	"github.com/mrz1836/bidclock/internal/constants"
	"github.com/mrz1836/bidclock/internal/errors"
)

// Exit codes for the CLI.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0
	// ExitError indicates a general error.
	ExitError = 1
	// ExitInvalidInput indicates invalid user input.
	ExitInvalidInput = 2
)

// Output format constants.
const (
	// OutputText is the default human-readable output format.
	OutputText = "text"
	// OutputJSON is the machine-readable JSON output format.
	OutputJSON = "json"
)

// GlobalFlags holds flags available to all commands.
type GlobalFlags struct {
	// Output specifies the output format (text or json).
	Output string
	// Verbose enables debug-level logging.
	Verbose bool
	// Quiet suppresses non-essential output (warn level only) and the bell.
	Quiet bool
}

// AddGlobalFlags adds global flags to a command.
func AddGlobalFlags(cmd *cobra.Command, flags *GlobalFlags) {
	cmd.PersistentFlags().StringVarP(&flags.Output, "output", "o", OutputText, "output format (text|json)")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "enable verbose output")
	cmd.PersistentFlags().BoolVarP(&flags.Quiet, "quiet", "q", false, "suppress non-essential output")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
}

// BindGlobalFlags binds global flags to Viper so BIDCLOCK_OUTPUT,
// BIDCLOCK_VERBOSE and BIDCLOCK_QUIET apply when the flag is not given,
// then copies the resolved values back into flags.
func BindGlobalFlags(v *viper.Viper, cmd *cobra.Command, flags *GlobalFlags) error {
	rootFlags := cmd.Root().PersistentFlags()

	for _, name := range []string{"output", "verbose", "quiet"} {
		if err := v.BindPFlag(name, rootFlags.Lookup(name)); err != nil {
			return err
		}
	}

	v.SetEnvPrefix(constants.EnvPrefix)
	v.AutomaticEnv()

	flags.Output = v.GetString("output")
	flags.Verbose = v.GetBool("verbose")
	flags.Quiet = v.GetBool("quiet")
	if flags.Verbose && flags.Quiet {
		flags.Quiet = false
	}
	return nil
}

// ValidOutputFormats returns the list of valid output format values.
func ValidOutputFormats() []string {
	return []string{OutputText, OutputJSON}
}

// IsValidOutputFormat checks if the given format is a valid output format.
func IsValidOutputFormat(format string) bool {
	return slices.Contains(ValidOutputFormats(), format)
}

// GameFlags holds the per-run game overrides shared by play, run, schedule
// and config init. Zero values mean "not set".
type GameFlags struct {
	MatchTime        int
	Rounds           int
	StartingBid      float64
	BidMultiplier    float64
	RoundExponent    float64
	ChipDenomination int
	TickInterval     time.Duration
	NoBell           bool
}

// AddGameFlags registers the game override flags on cmd.
func AddGameFlags(cmd *cobra.Command, flags *GameFlags) {
	f := cmd.Flags()
	f.IntVar(&flags.MatchTime, "match-time", 0, "match length in minutes (1-1000)")
	f.IntVar(&flags.Rounds, "rounds", 0, "number of equal-length rounds")
	f.Float64Var(&flags.StartingBid, "starting-bid", 0, "base bid unit")
	f.Float64Var(&flags.BidMultiplier, "multiplier", 0, "large bid as a multiple of the small bid (>= 2)")
	f.Float64Var(&flags.RoundExponent, "exponent", 0, "exponent applied to the starting bid")
	f.IntVar(&flags.ChipDenomination, "chip", 0, "round bids up to a multiple of this")
	f.DurationVar(&flags.TickInterval, "tick-interval", 0, "how often the clock is sampled (1ms-1s)")
	f.BoolVar(&flags.NoBell, "no-bell", false, "never ring the terminal bell")
}

// overrides converts the flags into a config overlay for LoadWithOverrides.
func (g *GameFlags) overrides() *config.Config {
	return &config.Config{
		Game: config.GameConfig{
			MatchTimeMinutes: g.MatchTime,
			Rounds:           g.Rounds,
			StartingBid:      g.StartingBid,
			BidMultiplier:    g.BidMultiplier,
			RoundExponent:    g.RoundExponent,
			ChipDenomination: g.ChipDenomination,
		},
		Timer: config.TimerConfig{TickInterval: g.TickInterval},
	}
}

// ExitCodeForError returns the appropriate exit code for the given error.
// Returns ExitSuccess (0) for nil errors, ExitInvalidInput (2) for user input
// errors (invalid flags, bad arguments, out-of-range settings), and
// ExitError (1) for all other errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.IsExitCode2Error(err) {
		return ExitInvalidInput
	}

	for _, sentinel := range []error{
		errors.ErrInvalidOutputFormat,
		errors.ErrConfigInvalidGame,
		errors.ErrValueOutOfRange,
	} {
		if stderrors.Is(err, sentinel) {
			return ExitInvalidInput
		}
	}

	if isInvalidInputError(err.Error()) {
		return ExitInvalidInput
	}

	return ExitError
}

// isInvalidInputError checks if an error message indicates invalid user input.
// This catches Cobra's built-in flag validation errors.
func isInvalidInputError(errMsg string) bool {
	invalidInputPatterns := []string{
		"unknown flag",
		"unknown shorthand flag",
		"flag needs an argument",
		"invalid argument",
		"if any flags in the group",
		"required flag",
		"unknown command",
	}

	for _, pattern := range invalidInputPatterns {
		if strings.Contains(errMsg, pattern) {
			return true
		}
	}
	return false
}
