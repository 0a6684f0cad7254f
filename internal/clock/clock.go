// Package clock provides an abstraction for time operations to improve testability.
// Instead of calling time.Now() or time.NewTicker() directly, code uses the Clock
// interface, which is satisfied by clockwork's real and fake clocks.
package clock

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Clock is the subset of time operations the match loop depends on.
// In production use New(); in tests use clockwork.NewFakeClock().
type Clock interface {
	// Now returns the current time.
	Now() time.Time
	// NewTicker returns a ticker that fires every d.
	NewTicker(d time.Duration) clockwork.Ticker
}

// New returns a Clock backed by the system clock.
func New() Clock {
	return clockwork.NewRealClock()
}

// Ensure both clockwork implementations satisfy Clock.
var (
	_ Clock = clockwork.NewRealClock()
	_ Clock = (*clockwork.FakeClock)(nil)
)
