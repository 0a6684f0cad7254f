package match

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/mrz1836/bidclock/internal/clock"
	"github.com/mrz1836/bidclock/internal/constants"
	"github.com/mrz1836/bidclock/internal/ctxutil"
)

// Sink receives the output of a Runner. Both methods are called on the
// runner goroutine.
type Sink interface {
	OnFrame(Frame)
	OnEvent(Event)
}

// SinkFuncs adapts a pair of functions to Sink. Nil functions are skipped.
type SinkFuncs struct {
	Frame func(Frame)
	Event func(Event)
}

// OnFrame implements Sink.
func (f SinkFuncs) OnFrame(fr Frame) {
	if f.Frame != nil {
		f.Frame(fr)
	}
}

// OnEvent implements Sink.
func (f SinkFuncs) OnEvent(ev Event) {
	if f.Event != nil {
		f.Event(ev)
	}
}

// RunnerOptions controls a Runner.
type RunnerOptions struct {
	// Interval is the tick cadence. Zero uses constants.DefaultTickInterval.
	Interval time.Duration

	// AutoStart starts the match before the first tick.
	AutoStart bool

	// StopOnMatchOver makes Run return nil once the match-over event fires.
	StopOnMatchOver bool
}

// Runner drives a Session from a clock ticker. The Session must not be used
// by other goroutines while Run is active.
type Runner struct {
	session *Session
	clock   clock.Clock
	sink    Sink
	opts    RunnerOptions
	logger  zerolog.Logger
}

// NewRunner creates a runner for session.
func NewRunner(session *Session, clk clock.Clock, sink Sink, opts RunnerOptions, logger zerolog.Logger) *Runner {
	if opts.Interval <= 0 {
		opts.Interval = constants.DefaultTickInterval
	}
	return &Runner{session: session, clock: clk, sink: sink, opts: opts, logger: logger}
}

// Run ticks until ctx is canceled, returning ctx.Err(), or until the match is
// over when StopOnMatchOver is set, returning nil.
//
// Each tick samples clock.Now() rather than the tick timestamp, so dropped
// or delayed ticks never lag the elapsed time.
func (r *Runner) Run(ctx context.Context) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}

	if r.opts.AutoStart {
		r.emit(r.session.Start())
	}

	ticker := r.clock.NewTicker(r.opts.Interval)
	defer ticker.Stop()

	r.logger.Debug().Dur("interval", r.opts.Interval).Msg("match runner started")

	if r.step() {
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			r.logger.Debug().Err(ctx.Err()).Msg("match runner stopped")
			return ctx.Err()
		case <-ticker.Chan():
			if r.step() {
				return nil
			}
		}
	}
}

// step runs one tick and reports whether the runner should stop.
func (r *Runner) step() bool {
	frame, events := r.session.Tick(r.clock.Now())
	r.sink.OnFrame(frame)
	over := false
	for _, ev := range events {
		r.sink.OnEvent(ev)
		if ev.Kind == EventMatchOver {
			over = true
		}
	}
	return over && r.opts.StopOnMatchOver
}

func (r *Runner) emit(events []Event) {
	for _, ev := range events {
		r.sink.OnEvent(ev)
	}
}
