package match

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/bidclock/internal/config"
)

type recordingSink struct {
	mu     sync.Mutex
	frames []Frame
	events []Event
}

func (r *recordingSink) OnFrame(f Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, f)
}

func (r *recordingSink) OnEvent(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recordingSink) snapshot() ([]Frame, []Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Frame(nil), r.frames...), append([]Event(nil), r.events...)
}

func TestRunner_StopsAfterMatchOver(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	fc := clockwork.NewFakeClockAt(start)
	s := NewSession(fc, config.DefaultGame(), WithIDGenerator(sequentialIDs()))
	sink := &recordingSink{}
	r := NewRunner(s, fc, sink, RunnerOptions{
		Interval:        time.Second,
		AutoStart:       true,
		StopOnMatchOver: true,
	}, zerolog.Nop())

	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	require.NoError(t, fc.BlockUntilContext(ctx, 1))
	fc.Advance(31 * time.Minute)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-ctx.Done():
		t.Fatal("runner did not stop after match over")
	}

	frames, events := sink.snapshot()
	require.NotEmpty(t, frames)
	assert.True(t, frames[len(frames)-1].HasFinished)
	assert.Equal(t, []EventKind{EventStarted, EventRoundStarted, EventMatchOver}, kinds(events))
}

func TestRunner_ReturnsOnCancel(t *testing.T) {
	t.Parallel()

	fc := clockwork.NewFakeClockAt(start)
	s := NewSession(fc, config.DefaultGame())
	var frames int
	var mu sync.Mutex
	sink := SinkFuncs{Frame: func(Frame) {
		mu.Lock()
		frames++
		mu.Unlock()
	}}
	r := NewRunner(s, fc, sink, RunnerOptions{}, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	waitCtx, waitCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer waitCancel()
	require.NoError(t, fc.BlockUntilContext(waitCtx, 1))

	cancel()

	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-waitCtx.Done():
		t.Fatal("runner ignored cancellation")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.GreaterOrEqual(t, frames, 1, "initial frame is emitted before the first tick")
	assert.False(t, s.IsRunning(), "runner without AutoStart leaves the clock paused")
}

func TestSinkFuncs_NilSafe(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		SinkFuncs{}.OnFrame(Frame{})
		SinkFuncs{}.OnEvent(Event{})
	})
}

func TestRunner_CanceledBeforeStart(t *testing.T) {
	t.Parallel()

	fc := clockwork.NewFakeClockAt(start)
	s := NewSession(fc, config.DefaultGame())
	sink := &recordingSink{}
	r := NewRunner(s, fc, sink, RunnerOptions{AutoStart: true}, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, r.Run(ctx), context.Canceled)
	frames, events := sink.snapshot()
	assert.Empty(t, frames)
	assert.Empty(t, events)
	assert.False(t, s.HasGameStarted())
}
