package logging

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

// MatchHook stamps every log entry with the identifier of the match in play.
// The identifier changes on restart; SetMatchID is safe to call from the
// clock goroutine while other goroutines log.
type MatchHook struct {
	id atomic.Pointer[string]
}

// NewMatchHook creates a hook with no match assigned.
func NewMatchHook() *MatchHook {
	return &MatchHook{}
}

// SetMatchID records the current match. An empty id stops stamping.
func (h *MatchHook) SetMatchID(id string) {
	h.id.Store(&id)
}

// MatchID returns the current match identifier.
func (h *MatchHook) MatchID() string {
	if p := h.id.Load(); p != nil {
		return *p
	}
	return ""
}

// Run implements zerolog.Hook.
func (h *MatchHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	if id := h.MatchID(); id != "" {
		e.Str("match_id", id)
	}
}
