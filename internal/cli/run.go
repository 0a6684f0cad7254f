package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mrz1836/bidclock/internal/clock"
	"github.com/mrz1836/bidclock/internal/config"
	"github.com/mrz1836/bidclock/internal/constants"
	"github.com/mrz1836/bidclock/internal/errors"
	"github.com/mrz1836/bidclock/internal/match"
	"github.com/mrz1836/bidclock/internal/signal"
	"github.com/mrz1836/bidclock/internal/tui"
)

type runOptions struct {
	game        GameFlags
	statusEvery time.Duration
}

// AddRunCommand adds the run command to the root command.
func AddRunCommand(root *cobra.Command, flags *GlobalFlags) {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a match without the interactive screen",
		Long: `Run a match headless. The match starts immediately; events and a periodic
status line are printed until the match is over or the process is interrupted.

With --output json every line is a JSON document.`,
		Example: `  bidclock run --match-time 5 --rounds 5
  bidclock run -o json --status-every 30s`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRun(cmd.Context(), cmd.OutOrStdout(), flags, opts)
		},
	}

	AddGameFlags(cmd, &opts.game)
	cmd.Flags().DurationVar(&opts.statusEvery, "status-every", constants.DefaultStatusInterval, "match time between status lines (0 disables)")

	root.AddCommand(cmd)
}

func runRun(ctx context.Context, w io.Writer, flags *GlobalFlags, opts *runOptions) error {
	logger := GetLogger()

	cfg, err := loadConfig(ctx, logger, &opts.game)
	if err != nil {
		return err
	}

	handler := signal.NewHandler(ctx)
	defer handler.Stop()

	out := tui.NewOutput(w, flags.Output)
	// The bell would corrupt a JSON stream.
	notifier := tui.NewNotifierWithWriter(cfg.Notifications, flags.Quiet || flags.Output == OutputJSON, w)

	err = runHeadless(handler.Context(), out, cfg, clock.New(), headlessOptions{
		statusEvery: opts.statusEvery,
		json:        flags.Output == OutputJSON,
		notifier:    notifier,
		logger:      logger,
	})
	if err != nil {
		return err
	}

	if cause := context.Cause(handler.Context()); stderrors.Is(cause, signal.ErrInterrupted) {
		logger.Info().Str("signal", handler.Signal().String()).Msg("match interrupted")
		if flags.Output != OutputJSON {
			out.Warning("Match interrupted.")
		}
	}
	return nil
}

type headlessOptions struct {
	statusEvery time.Duration
	json        bool
	notifier    *tui.Notifier
	logger      zerolog.Logger
}

// update carries one runner callback to the printer.
type update struct {
	frame *match.Frame
	event *match.Event
}

// statusLine is the JSON shape of a periodic status line.
type statusLine struct {
	Type  string      `json:"type"`
	Clock string      `json:"clock"`
	Frame match.Frame `json:"frame"`
}

// eventLine is the JSON shape of a match event.
type eventLine struct {
	Type    string      `json:"type"`
	Message string      `json:"message"`
	Event   match.Event `json:"event"`
}

// runHeadless drives a match until it is over or ctx is canceled. The runner
// and the printer run in an errgroup; either failing stops both.
// Cancellation is not an error.
func runHeadless(ctx context.Context, out tui.Output, cfg *config.Config, clk clock.Clock, opts headlessOptions) error {
	session := match.NewSession(clk, cfg.Game,
		match.WithLogger(opts.logger),
		match.WithMatchIDListener(matchHook.SetMatchID),
	)

	updates := make(chan update, 64)
	g, gctx := errgroup.WithContext(ctx)

	send := func(u update) {
		select {
		case updates <- u:
		case <-gctx.Done():
		}
	}

	g.Go(func() error {
		defer close(updates)
		runner := match.NewRunner(session, clk, match.SinkFuncs{
			Frame: func(f match.Frame) { send(update{frame: &f}) },
			Event: func(ev match.Event) { send(update{event: &ev}) },
		}, match.RunnerOptions{
			Interval:        cfg.Timer.TickInterval,
			AutoStart:       true,
			StopOnMatchOver: true,
		}, opts.logger)

		if err := runner.Run(gctx); err != nil && !stderrors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		p := &printer{out: out, opts: opts}
		for u := range updates {
			if err := p.handle(u); err != nil {
				return err
			}
		}
		return p.flush()
	})

	return g.Wait()
}

// printer writes events as they happen and a status line every statusEvery
// of match time.
type printer struct {
	out  tui.Output
	opts headlessOptions

	last       match.Frame
	haveFrame  bool
	nextStatus time.Duration
}

func (p *printer) handle(u update) error {
	switch {
	case u.event != nil:
		return p.event(*u.event)
	case u.frame != nil:
		p.last, p.haveFrame = *u.frame, true
		if p.opts.statusEvery > 0 && u.frame.HasGameStarted && u.frame.Elapsed >= p.nextStatus {
			for p.nextStatus <= u.frame.Elapsed {
				p.nextStatus += p.opts.statusEvery
			}
			return p.status(*u.frame)
		}
	}
	return nil
}

func (p *printer) event(ev match.Event) error {
	p.opts.logger.Info().
		Str("event_kind", ev.Kind.String()).
		Int("round", ev.To).
		Msg(ev.Message())

	if ev.Notifiable() {
		p.opts.notifier.Notify(ev.Kind.String())
	}

	if p.opts.json {
		return p.out.JSON(eventLine{Type: "event", Message: ev.Message(), Event: ev})
	}
	if ev.Kind == match.EventMatchOver {
		p.out.Success(ev.Message())
		return nil
	}
	p.out.Info(ev.Message())
	return nil
}

func (p *printer) status(f match.Frame) error {
	if p.opts.json {
		return p.out.JSON(statusLine{Type: "status", Clock: f.Clock(), Frame: f})
	}
	p.out.Info(formatStatus(f))
	return nil
}

// flush prints the final frame once the runner has stopped.
func (p *printer) flush() error {
	if !p.haveFrame {
		return nil
	}
	if !p.last.Ready {
		return errors.ErrClockNotReady
	}
	return p.status(p.last)
}

// formatStatus renders a frame as a single status line.
func formatStatus(f match.Frame) string {
	return fmt.Sprintf("%s remaining  round %d/%d (%.0f%%)  small bid %d  large bid %d",
		f.Clock(), f.CurrentRound, f.RoundCount, f.RoundProgress*100, f.SmallBid, f.LargeBid)
}
