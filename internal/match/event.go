package match

import (
	"fmt"
	"time"

	"github.com/mrz1836/bidclock/internal/constants"
)

// EventKind identifies a one-shot match event.
type EventKind int

// Event kinds in the order they typically occur.
const (
	EventStarted EventKind = iota + 1
	EventPaused
	EventRoundStarted
	EventMatchOver
	EventRestarted
	EventReset
)

// String returns the event name used in logs and JSON output.
func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventPaused:
		return "paused"
	case EventRoundStarted:
		return constants.NotifyRoundStarted
	case EventMatchOver:
		return constants.NotifyMatchOver
	case EventRestarted:
		return constants.NotifyRestarted
	case EventReset:
		return constants.NotifyReset
	default:
		return "unknown"
	}
}

// MarshalText lets EventKind appear by name in JSON.
func (k EventKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Event is emitted once per state transition.
type Event struct {
	Kind    EventKind `json:"kind"`
	MatchID string    `json:"match_id"`
	At      time.Time `json:"at"`

	// From and To are set on EventRoundStarted. When ticks are bursty and
	// several boundaries are crossed at once, From..To spans all of them.
	From int `json:"from,omitempty"`
	To   int `json:"to,omitempty"`

	// Resumed is set on EventStarted when the match continues after a pause.
	Resumed bool `json:"resumed,omitempty"`
}

// Notifiable reports whether the event can ring the bell; only events with a
// configurable notification name qualify.
func (e Event) Notifiable() bool {
	switch e.Kind {
	case EventRoundStarted, EventMatchOver, EventRestarted, EventReset:
		return true
	default:
		return false
	}
}

// Message is the user-facing notification text for the event.
func (e Event) Message() string {
	switch e.Kind {
	case EventStarted:
		if e.Resumed {
			return "Match resumed."
		}
		return "Match started."
	case EventPaused:
		return "Match paused."
	case EventRoundStarted:
		return fmt.Sprintf("Round %d started – bids have been multiplied.", e.To)
	case EventMatchOver:
		return "Game over – total time has elapsed"
	case EventRestarted:
		return "Match restarted."
	case EventReset:
		return "Game reset!"
	default:
		return ""
	}
}
