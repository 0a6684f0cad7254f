package bidding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const matchSeconds = 30 * 60

func defaultParams() Params {
	return Params{
		RoundCount:       3,
		StartingBid:      10,
		BidMultiplier:    2,
		RoundExponent:    1,
		ChipDenomination: 10,
	}
}

func TestDerive_Scenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		params  Params
		elapsed float64
		round   int
		small   int64
		large   int64
	}{
		{name: "start of match", params: defaultParams(), elapsed: 0, round: 1, small: 10, large: 20},
		{name: "just past first boundary", params: defaultParams(), elapsed: 601, round: 2, small: 20, large: 40},
		{name: "end of match", params: defaultParams(), elapsed: 1800, round: 3, small: 30, large: 60},
		{
			name:    "fractional exponent",
			params:  Params{RoundCount: 3, StartingBid: 10, BidMultiplier: 2, RoundExponent: 1.5, ChipDenomination: 10},
			elapsed: 900,
			round:   2,
			small:   70,
			large:   140,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c := NewCalculator(tc.params)

			res := c.Derive(tc.elapsed, tc.elapsed/matchSeconds, matchSeconds)

			assert.Equal(t, tc.round, res.Round)
			assert.Equal(t, tc.small, res.Bids.Small)
			assert.Equal(t, tc.large, res.Bids.Large)
			assert.False(t, res.Degenerate)
		})
	}
}

func TestCurrentRound_Boundaries(t *testing.T) {
	t.Parallel()

	c := NewCalculator(defaultParams())

	assert.Equal(t, 600, c.TimePerRound(matchSeconds))
	assert.Equal(t, 1, c.CurrentRound(0, matchSeconds))
	assert.Equal(t, 1, c.CurrentRound(599.999, matchSeconds))
	assert.Equal(t, 2, c.CurrentRound(600, matchSeconds), "boundary belongs to the next round")
	assert.Equal(t, 3, c.CurrentRound(1200, matchSeconds))
	assert.Equal(t, 3, c.CurrentRound(1800, matchSeconds), "final round stays active at the end")
	assert.Equal(t, 3, c.CurrentRound(99999, matchSeconds))
	assert.Equal(t, 1, c.CurrentRound(-5, matchSeconds))
}

func TestCurrentRound_RemainderGoesToLastRound(t *testing.T) {
	t.Parallel()

	// 100s across 3 rounds: 33s each, the last round absorbs the extra second.
	c := NewCalculator(Params{RoundCount: 3, StartingBid: 10, BidMultiplier: 2, RoundExponent: 1, ChipDenomination: 10})

	assert.Equal(t, 33, c.TimePerRound(100))
	assert.Equal(t, 3, c.CurrentRound(99.5, 100))
	assert.InDelta(t, 1.0, c.RoundProgress(99.5/100, 3, 100), 0)
}

func TestSingleRound_TracksOverallProgress(t *testing.T) {
	t.Parallel()

	c := NewCalculator(Params{RoundCount: 1, StartingBid: 10, BidMultiplier: 2, RoundExponent: 1, ChipDenomination: 10})

	for _, elapsed := range []float64{0, 1, 450, 900, 1799, 1800} {
		fraction := elapsed / matchSeconds
		res := c.Derive(elapsed, fraction, matchSeconds)
		assert.Equal(t, 1, res.Round)
		assert.InDelta(t, fraction, res.RoundProgress, 1e-12)
	}
}

func TestDerive_DegenerateInterval(t *testing.T) {
	t.Parallel()

	// 60 seconds cannot hold 100 rounds: every round would be zero seconds long.
	c := NewCalculator(Params{RoundCount: 100, StartingBid: 10, BidMultiplier: 2, RoundExponent: 1, ChipDenomination: 10})

	res := c.Derive(30, 0.5, 60)

	assert.True(t, res.Degenerate)
	assert.Equal(t, 1, res.Round)
	assert.InDelta(t, 0.0, res.RoundProgress, 0)
	assert.Equal(t, BidPair{Small: 10, Large: 20}, res.Bids)

	zero := c.Derive(0, 0, 0)
	assert.True(t, zero.Degenerate)
}

func TestRoundProgress(t *testing.T) {
	t.Parallel()

	c := NewCalculator(defaultParams())

	assert.InDelta(t, 0.0, c.RoundProgress(0, 1, matchSeconds), 1e-12)
	assert.InDelta(t, 0.5, c.RoundProgress(300.0/matchSeconds, 1, matchSeconds), 1e-12)
	assert.InDelta(t, 0.25, c.RoundProgress(750.0/matchSeconds, 2, matchSeconds), 1e-12)
	assert.InDelta(t, 1.0, c.RoundProgress(1.0, 3, matchSeconds), 1e-12)
	assert.InDelta(t, 0.0, c.RoundProgress(0.1, 3, matchSeconds), 0, "clamped below")
	assert.InDelta(t, 1.0, c.RoundProgress(0.9, 1, matchSeconds), 0, "clamped above")
}

func TestProperties_AcrossMatch(t *testing.T) {
	t.Parallel()

	paramSets := []Params{
		defaultParams(),
		{RoundCount: 7, StartingBid: 25, BidMultiplier: 2.5, RoundExponent: 1.2, ChipDenomination: 5},
		{RoundCount: 12, StartingBid: 3, BidMultiplier: 3, RoundExponent: 2, ChipDenomination: 25},
		{RoundCount: 1, StartingBid: 1, BidMultiplier: 2, RoundExponent: 0.5, ChipDenomination: 1},
	}

	for _, p := range paramSets {
		c := NewCalculator(p)
		prevRound := 1
		for elapsed := 0; elapsed <= matchSeconds; elapsed += 7 {
			res := c.Derive(float64(elapsed), float64(elapsed)/matchSeconds, matchSeconds)

			require.GreaterOrEqual(t, res.Round, 1)
			require.LessOrEqual(t, res.Round, p.RoundCount)
			require.GreaterOrEqual(t, res.Round, prevRound, "round must be non-decreasing")
			require.GreaterOrEqual(t, res.RoundProgress, 0.0)
			require.LessOrEqual(t, res.RoundProgress, 1.0)
			require.Zero(t, res.Bids.Small%int64(p.ChipDenomination), "small bid must be a chip multiple")
			require.Equal(t, int64(float64(res.Bids.Small)*p.BidMultiplier), res.Bids.Large)

			prevRound = res.Round
		}
	}
}

func TestBids(t *testing.T) {
	t.Parallel()

	t.Run("rounds up to the chip denomination", func(t *testing.T) {
		t.Parallel()
		c := NewCalculator(Params{RoundCount: 5, StartingBid: 12, BidMultiplier: 2, RoundExponent: 1, ChipDenomination: 10})
		assert.Equal(t, BidPair{Small: 20, Large: 40}, c.Bids(1))
		assert.Equal(t, BidPair{Small: 40, Large: 80}, c.Bids(3))
	})

	t.Run("large bid floors fractional multipliers", func(t *testing.T) {
		t.Parallel()
		c := NewCalculator(Params{RoundCount: 3, StartingBid: 5, BidMultiplier: 2.75, RoundExponent: 1, ChipDenomination: 5})
		assert.Equal(t, BidPair{Small: 5, Large: 13}, c.Bids(1))
	})

	t.Run("float drift does not bump a whole chip", func(t *testing.T) {
		t.Parallel()
		// 0.07 * 100 evaluates to 7.000000000000001 in float64.
		c := NewCalculator(Params{RoundCount: 100, StartingBid: 0.07, BidMultiplier: 2, RoundExponent: 1, ChipDenomination: 7})
		assert.Equal(t, int64(7), c.Bids(100).Small)
	})

	t.Run("non-positive denomination falls back to default", func(t *testing.T) {
		t.Parallel()
		c := NewCalculator(Params{RoundCount: 0, StartingBid: 10, BidMultiplier: 2, RoundExponent: 1, ChipDenomination: 0})
		assert.Equal(t, 10, c.Params().ChipDenomination)
		assert.Equal(t, 1, c.Params().RoundCount)
		assert.Equal(t, BidPair{Small: 10, Large: 20}, c.Bids(0))
	})

	t.Run("huge exponent saturates instead of wrapping", func(t *testing.T) {
		t.Parallel()
		c := NewCalculator(Params{RoundCount: 3, StartingBid: 10, BidMultiplier: 2, RoundExponent: 30, ChipDenomination: 10})
		for round := 1; round <= 3; round++ {
			bids := c.Bids(round)
			assert.Equal(t, int64(9223372036854775800), bids.Small, "round %d", round)
			assert.Equal(t, int64(math.MaxInt64), bids.Large, "round %d", round)
			assert.Zero(t, bids.Small%10)
		}
	})

	t.Run("bids stay ordered across the int64 boundary", func(t *testing.T) {
		t.Parallel()
		c := NewCalculator(Params{RoundCount: 10, StartingBid: 10, BidMultiplier: 2, RoundExponent: 18, ChipDenomination: 10})
		assert.Equal(t, BidPair{Small: 1_000_000_000_000_000_000, Large: 2_000_000_000_000_000_000}, c.Bids(1))

		prev := c.Bids(1)
		for round := 2; round <= 10; round++ {
			bids := c.Bids(round)
			assert.Positive(t, bids.Small, "round %d", round)
			assert.GreaterOrEqual(t, bids.Small, prev.Small, "round %d", round)
			assert.GreaterOrEqual(t, bids.Large, bids.Small, "round %d", round)
			prev = bids
		}
	})
}

func TestRounds_Schedule(t *testing.T) {
	t.Parallel()

	c := NewCalculator(defaultParams())

	rounds := c.Rounds(matchSeconds)

	require.Len(t, rounds, 3)
	assert.Equal(t, RoundInfo{
		Number: 1, StartSeconds: 0, EndSeconds: 600,
		StartFraction: 0, EndFraction: 600.0 / matchSeconds,
		Bids: BidPair{Small: 10, Large: 20},
	}, rounds[0])
	assert.Equal(t, 1800, rounds[2].EndSeconds)
	assert.InDelta(t, 1.0, rounds[2].EndFraction, 0)

	for i := 1; i < len(rounds); i++ {
		assert.Equal(t, rounds[i-1].EndSeconds, rounds[i].StartSeconds, "rounds are contiguous")
	}
}
