package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mrz1836/bidclock/internal/clock"
	"github.com/mrz1836/bidclock/internal/errors"
	"github.com/mrz1836/bidclock/internal/match"
	"github.com/mrz1836/bidclock/internal/tui"
)

// programRunner abstracts tea.Program for testing.
type programRunner interface {
	Run() (tea.Model, error)
}

// newProgram builds the bubbletea program. Tests replace it.
//
//nolint:gochecknoglobals // Injectable for tests
var newProgram = func(m tea.Model, opts ...tea.ProgramOption) programRunner {
	return tea.NewProgram(m, opts...)
}

// isInteractive reports whether stdin and stdout are both terminals.
//
//nolint:gochecknoglobals // Injectable for tests
var isInteractive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) //nolint:gosec // G115: fd fits in int
}

type playOptions struct {
	game      GameFlags
	autoStart bool
}

// AddPlayCommand adds the play command to the root command.
func AddPlayCommand(root *cobra.Command, flags *GlobalFlags) {
	opts := &playOptions{}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Open the interactive match timer",
		Long: `Open the full-screen match timer.

Keys:
  space, p   start or pause the match
  r          pause and restart the match (asks to confirm)
  s          edit the game settings; match time, rounds, starting bid and
             multiplier changes restart the match
  x          reset settings to defaults (asks to confirm)
  q, ctrl+c  quit`,
		Annotations: map[string]string{annotationTerminal: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd.Context(), flags, opts)
		},
	}

	AddGameFlags(cmd, &opts.game)
	cmd.Flags().BoolVar(&opts.autoStart, "start", false, "start the match as soon as the timer opens")

	root.AddCommand(cmd)
}

func runPlay(ctx context.Context, flags *GlobalFlags, opts *playOptions) error {
	if !isInteractive() {
		return errors.NewExitCode2Error(fmt.Errorf("%w: use 'bidclock run' for headless output", errors.ErrInteractiveRequired))
	}

	logger := GetLogger()

	cfg, err := loadConfig(ctx, logger, &opts.game)
	if err != nil {
		return err
	}

	clk := clock.New()
	session := match.NewSession(clk, cfg.Game,
		match.WithLogger(logger),
		match.WithMatchIDListener(matchHook.SetMatchID),
	)

	model := tui.NewTimerModel(session, clk, tui.NewNotifier(cfg.Notifications, flags.Quiet), tui.TimerConfig{
		Interval:  cfg.Timer.TickInterval,
		AutoStart: opts.autoStart,
	})
	model.OnEvent(func(ev match.Event) {
		logger.Info().
			Str("event_kind", ev.Kind.String()).
			Str("match_id", ev.MatchID).
			Msg(ev.Message())
	})

	logger.Debug().
		Int("rounds", cfg.Game.Rounds).
		Int("match_time_minutes", cfg.Game.MatchTimeMinutes).
		Msg("opening match timer")

	_, err = newProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && !stderrors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("timer screen failed: %w", err)
	}
	return nil
}
