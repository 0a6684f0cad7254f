package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/bidclock/internal/config"
	"github.com/mrz1836/bidclock/internal/errors"
	"github.com/mrz1836/bidclock/internal/match"
	"github.com/mrz1836/bidclock/internal/tui"
)

var epoch = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC) //nolint:gochecknoglobals // test fixture

func headlessConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Timer.TickInterval = time.Second
	return cfg
}

type jsonLine struct {
	Type  string      `json:"type"`
	Clock string      `json:"clock"`
	Frame match.Frame `json:"frame"`
	Event struct {
		Kind string `json:"kind"`
		To   int    `json:"to"`
	} `json:"event"`
}

func decodeLines(t *testing.T, s string) []jsonLine {
	t.Helper()
	var lines []jsonLine
	for _, raw := range strings.Split(strings.TrimSpace(s), "\n") {
		var l jsonLine
		require.NoError(t, json.Unmarshal([]byte(raw), &l), raw)
		lines = append(lines, l)
	}
	return lines
}

func TestRunHeadless_JSONUntilMatchOver(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	fc := clockwork.NewFakeClockAt(epoch)
	var buf bytes.Buffer
	bell := &bytes.Buffer{}

	done := make(chan error, 1)
	go func() {
		done <- runHeadless(ctx, tui.NewJSONOutput(&buf), headlessConfig(), fc, headlessOptions{
			statusEvery: 10 * time.Second,
			json:        true,
			notifier:    tui.NewNotifierWithWriter(config.DefaultConfig().Notifications, true, bell),
			logger:      zerolog.Nop(),
		})
	}()

	require.NoError(t, fc.BlockUntilContext(ctx, 1))
	fc.Advance(31 * time.Minute)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-ctx.Done():
		t.Fatal("headless run did not stop after match over")
	}

	lines := decodeLines(t, buf.String())
	require.GreaterOrEqual(t, len(lines), 4)

	assert.Equal(t, "event", lines[0].Type)
	assert.Equal(t, "started", lines[0].Event.Kind)

	assert.Equal(t, "status", lines[1].Type)
	assert.Equal(t, "30:00", lines[1].Clock)
	assert.Equal(t, 1, lines[1].Frame.CurrentRound)

	var kinds []string
	for _, l := range lines {
		if l.Type == "event" {
			kinds = append(kinds, l.Event.Kind)
		}
	}
	assert.Equal(t, []string{"started", "round_started", "match_over"}, kinds)

	last := lines[len(lines)-1]
	assert.Equal(t, "status", last.Type)
	assert.True(t, last.Frame.HasFinished)
	assert.Equal(t, "00:00", last.Clock)

	assert.Empty(t, bell.String(), "quiet notifier must not ring")
}

func TestRunHeadless_TextRingsBell(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	fc := clockwork.NewFakeClockAt(epoch)
	var buf bytes.Buffer
	bell := &bytes.Buffer{}

	done := make(chan error, 1)
	go func() {
		done <- runHeadless(ctx, tui.NewTTYOutput(&buf), headlessConfig(), fc, headlessOptions{
			statusEvery: time.Minute,
			notifier:    tui.NewNotifierWithWriter(config.DefaultConfig().Notifications, false, bell),
			logger:      zerolog.Nop(),
		})
	}()

	require.NoError(t, fc.BlockUntilContext(ctx, 1))
	fc.Advance(31 * time.Minute)
	require.NoError(t, <-done)

	out := buf.String()
	assert.Contains(t, out, "Match started.")
	assert.Contains(t, out, "Round 3 started")
	assert.Contains(t, out, "Game over – total time has elapsed")
	assert.Contains(t, out, "round 1/3")

	// round_started and match_over are both enabled by default.
	assert.Equal(t, "\a\a", bell.String())
}

func TestRunHeadless_CancelIsNotAnError(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	fc := clockwork.NewFakeClockAt(epoch)
	var buf bytes.Buffer

	done := make(chan error, 1)
	go func() {
		done <- runHeadless(ctx, tui.NewJSONOutput(&buf), headlessConfig(), fc, headlessOptions{
			json:     true,
			notifier: tui.NewNotifierWithWriter(config.DefaultConfig().Notifications, true, &bytes.Buffer{}),
			logger:   zerolog.Nop(),
		})
	}()

	waitCtx, waitCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer waitCancel()
	require.NoError(t, fc.BlockUntilContext(waitCtx, 1))
	fc.Advance(5 * time.Minute)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-waitCtx.Done():
		t.Fatal("headless run did not stop on cancel")
	}

	lines := decodeLines(t, buf.String())
	last := lines[len(lines)-1]
	assert.Equal(t, "status", last.Type)
	assert.False(t, last.Frame.HasFinished)
}

func TestFormatStatus(t *testing.T) {
	t.Parallel()

	f := match.Frame{
		Ready:          true,
		CurrentRound:   2,
		RoundCount:     3,
		RoundProgress:  0.5,
		MinutesDisplay: "15",
		SecondsDisplay: "00",
		SmallBid:       20,
		LargeBid:       40,
	}
	assert.Equal(t, "15:00 remaining  round 2/3 (50%)  small bid 20  large bid 40", formatStatus(f))
}

func TestPrinter_FlushRejectsUnreadyFrame(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := &printer{out: tui.NewJSONOutput(&buf), opts: headlessOptions{json: true, logger: zerolog.Nop()}}
	require.NoError(t, p.flush(), "no frames, nothing to print")

	require.NoError(t, p.handle(update{frame: &match.Frame{}}))
	require.ErrorIs(t, p.flush(), errors.ErrClockNotReady)
	assert.Empty(t, buf.String())
}
