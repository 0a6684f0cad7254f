package clock

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Now(t *testing.T) {
	t.Parallel()

	c := New()

	before := time.Now()
	got := c.Now()
	after := time.Now()

	assert.False(t, got.Before(before), "Now() should not return time before actual time.Now()")
	assert.False(t, got.After(after), "Now() should not return time after actual time.Now()")
}

func TestFakeClock_Ticker(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)
	fc := clockwork.NewFakeClockAt(start)
	var c Clock = fc

	assert.Equal(t, start, c.Now())

	ticker := c.NewTicker(25 * time.Millisecond)
	defer ticker.Stop()

	fc.Advance(25 * time.Millisecond)

	select {
	case got := <-ticker.Chan():
		assert.Equal(t, start.Add(25*time.Millisecond), got)
	case <-time.After(time.Second):
		require.Fail(t, "ticker did not fire after advancing the fake clock")
	}
}
