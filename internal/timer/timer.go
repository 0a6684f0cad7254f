// Package timer tracks elapsed and remaining match time against an absolute
// finish timestamp.
//
// Elapsed time is always derived from the finish timestamp, never accumulated
// from tick deltas, so bursty or skipped ticks do not skew it. A Timer is not
// safe for concurrent use; callers serialize Start, Pause, Reset and Sample on
// the same goroutine that drives the ticks.
package timer

import (
	"fmt"
	"time"
)

// finishTolerance absorbs float drift when deciding that the match is over.
const finishTolerance = 1e-9

// Sample is the derived view of the timer at one instant.
// When Ready is false the finish timestamp is unset and every other field
// is zero; callers must treat that as "not ready" rather than real progress.
type Sample struct {
	Ready   bool
	Running bool

	Elapsed   time.Duration
	Remaining time.Duration
	Total     time.Duration

	ElapsedSeconds  float64
	TotalSeconds    float64
	ElapsedFraction float64

	// MinutesDisplay and SecondsDisplay break the remaining time into
	// floor-rounded, zero-padded parts ("05", "09").
	MinutesDisplay string
	SecondsDisplay string

	HasFinished bool
}

// Timer owns the finish timestamp and the running flag of a match.
type Timer struct {
	total   time.Duration
	finish  time.Time
	running bool
	// elapsed is the last sampled value; it is frozen while paused.
	elapsed time.Duration
}

// New creates a paused timer for a match of the given length.
// The finish timestamp is unset until SetFinishTimestamp or Reset is called.
func New(total time.Duration) *Timer {
	if total < 0 {
		total = 0
	}
	return &Timer{total: total}
}

// Reset reinitializes the timer in place for a fresh match: new total, new
// finish timestamp, paused, nothing elapsed.
func (t *Timer) Reset(total time.Duration, finish time.Time) {
	if total < 0 {
		total = 0
	}
	t.total = total
	t.running = false
	t.SetFinishTimestamp(finish)
}

// SetFinishTimestamp replaces the target finish instant. The new timestamp
// describes a fresh match, so the frozen elapsed time is cleared. The running
// flag is left unchanged.
func (t *Timer) SetFinishTimestamp(finish time.Time) {
	t.finish = finish
	t.elapsed = 0
}

// Start marks the timer as running. It returns false and does nothing when
// the timer is already running, the finish timestamp is unset, or the match
// has already finished.
//
// Resuming rebases the finish timestamp to now plus the remaining time so the
// elapsed time continues from the value frozen at Pause.
func (t *Timer) Start(now time.Time) bool {
	if t.running || t.finish.IsZero() || t.elapsed >= t.total {
		return false
	}
	t.finish = now.Add(t.total - t.elapsed)
	t.running = true
	return true
}

// Pause stops the timer. Elapsed time freezes at its last sampled value.
// It returns false when the timer was not running.
func (t *Timer) Pause() bool {
	if !t.running {
		return false
	}
	t.running = false
	return true
}

// IsRunning reports whether the timer is advancing.
func (t *Timer) IsRunning() bool { return t.running }

// Ready reports whether a finish timestamp has been set.
func (t *Timer) Ready() bool { return !t.finish.IsZero() }

// Total returns the configured match length.
func (t *Timer) Total() time.Duration { return t.total }

// FinishTimestamp returns the instant the match ends while running.
func (t *Timer) FinishTimestamp() time.Time { return t.finish }

// Sample derives the elapsed and remaining time at now.
//
// While running, elapsed is clamped to [0, total] and never decreases, even if
// now is earlier than a previous sample. While paused the frozen values are
// returned. Sampling twice with the same now yields identical output.
func (t *Timer) Sample(now time.Time) Sample {
	if t.finish.IsZero() {
		return Sample{}
	}

	if t.running {
		left := t.finish.Sub(now)
		if left < 0 {
			left = 0
		}
		elapsed := t.total - left
		if elapsed < 0 {
			elapsed = 0
		}
		if elapsed < t.elapsed {
			elapsed = t.elapsed
		}
		t.elapsed = elapsed
	}

	return t.snapshot()
}

func (t *Timer) snapshot() Sample {
	remaining := t.total - t.elapsed
	s := Sample{
		Ready:          true,
		Running:        t.running,
		Elapsed:        t.elapsed,
		Remaining:      remaining,
		Total:          t.total,
		ElapsedSeconds: t.elapsed.Seconds(),
		TotalSeconds:   t.total.Seconds(),
	}

	if t.total > 0 {
		s.ElapsedFraction = float64(t.elapsed) / float64(t.total)
		s.HasFinished = s.ElapsedFraction >= 1-finishTolerance
	} else {
		s.HasFinished = true
	}

	s.MinutesDisplay, s.SecondsDisplay = DisplayParts(remaining)
	return s
}

// DisplayParts splits d into floor-rounded, two-digit minutes and seconds.
// Negative durations display as "00", "00".
func DisplayParts(d time.Duration) (minutes, seconds string) {
	if d < 0 {
		d = 0
	}
	whole := int64(d / time.Second)
	return fmt.Sprintf("%02d", whole/60), fmt.Sprintf("%02d", whole%60)
}
