package constants

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGameDefaults(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 30, DefaultMatchTimeMinutes)
	assert.Equal(t, 3, DefaultRounds)
	assert.InDelta(t, 10.0, DefaultStartingBid, 0)
	assert.InDelta(t, 2.0, DefaultBidMultiplier, 0)
	assert.InDelta(t, 1.0, DefaultRoundExponent, 0)
	assert.Equal(t, 10, DefaultChipDenomination)
	assert.GreaterOrEqual(t, DefaultBidMultiplier, MinBidMultiplier)
}

func TestTickInterval(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 25*time.Millisecond, DefaultTickInterval)
	assert.GreaterOrEqual(t, DefaultTickInterval, MinTickInterval)
	assert.LessOrEqual(t, DefaultTickInterval, MaxTickInterval)
}
