// Package bidding partitions a match into equal rounds and derives the active
// round, the progress through it, and the small/large bid pair for that round.
//
// Everything here is a pure function of elapsed time and Params. The
// calculator assumes validated input but stays total: degenerate values
// resolve to deterministic defaults instead of NaN or a panic.
package bidding

import "math"

// roundingTolerance absorbs float drift before rounding bids up, so that
// 3.0000000000000004 chips still rounds to 3.
const roundingTolerance = 1e-9

// defaultChipDenomination is used when a non-positive denomination slips through.
const defaultChipDenomination = 10

// Params are the bid-growth settings of a match.
type Params struct {
	RoundCount       int
	StartingBid      float64
	BidMultiplier    float64
	RoundExponent    float64
	ChipDenomination int
}

// RoundInfo describes one round of the schedule.
type RoundInfo struct {
	Number        int     `json:"number"`
	StartSeconds  int     `json:"start_seconds"`
	EndSeconds    int     `json:"end_seconds"`
	StartFraction float64 `json:"start_fraction"`
	EndFraction   float64 `json:"end_fraction"`
	Bids          BidPair `json:"bids"`
}

// BidPair holds the two simultaneous bid tiers.
type BidPair struct {
	Small int64 `json:"small"`
	Large int64 `json:"large"`
}

// Result is the per-tick derivation.
type Result struct {
	Round         int
	RoundProgress float64
	Bids          BidPair
	// Degenerate is set when rounds have zero length (more rounds than
	// seconds in the match). Round is then 1 and RoundProgress 0.
	Degenerate bool
}

// Calculator derives rounds and bids for fixed Params.
type Calculator struct {
	p Params
}

// NewCalculator creates a Calculator. A round count below 1 is treated as 1
// and a non-positive chip denomination as 10.
func NewCalculator(p Params) Calculator {
	if p.RoundCount < 1 {
		p.RoundCount = 1
	}
	if p.ChipDenomination < 1 {
		p.ChipDenomination = defaultChipDenomination
	}
	return Calculator{p: p}
}

// Params returns the normalized parameters.
func (c Calculator) Params() Params { return c.p }

// TimePerRound returns floor(totalSeconds / RoundCount).
func (c Calculator) TimePerRound(totalSeconds int) int {
	if totalSeconds <= 0 {
		return 0
	}
	return totalSeconds / c.p.RoundCount
}

// CurrentRound returns the first round whose end boundary lies strictly after
// elapsedSeconds, clamped to [1, RoundCount]. Elapsed time past the final
// boundary keeps the last round active.
func (c Calculator) CurrentRound(elapsedSeconds float64, totalSeconds int) int {
	perRound := c.TimePerRound(totalSeconds)
	if perRound == 0 || elapsedSeconds <= 0 || math.IsNaN(elapsedSeconds) {
		return 1
	}
	round := int(math.Floor(elapsedSeconds/float64(perRound))) + 1
	if round > c.p.RoundCount {
		return c.p.RoundCount
	}
	return round
}

// roundEndFraction is the share of the match elapsed when round i ends.
func (c Calculator) roundEndFraction(i, perRound, totalSeconds int) float64 {
	if i <= 0 || totalSeconds <= 0 {
		return 0
	}
	return float64(perRound*i) / float64(totalSeconds)
}

// RoundProgress returns how far through round the match is, in [0, 1].
// A zero-length round reports 0.
func (c Calculator) RoundProgress(elapsedFraction float64, round, totalSeconds int) float64 {
	perRound := c.TimePerRound(totalSeconds)
	if perRound == 0 {
		return 0
	}
	start := c.roundEndFraction(round-1, perRound, totalSeconds)
	end := c.roundEndFraction(round, perRound, totalSeconds)
	if end <= start {
		return 0
	}
	return clamp01((elapsedFraction - start) / (end - start))
}

// Bids returns the bid pair for a round. The small bid is
// startingBid^exponent * round rounded up to the chip denomination; the large
// bid is floor(small * multiplier). Bids too large for int64 saturate: the
// small bid at the largest chip multiple, the large bid at math.MaxInt64.
func (c Calculator) Bids(round int) BidPair {
	if round < 1 {
		round = 1
	}
	chip := float64(c.p.ChipDenomination)
	raw := math.Pow(c.p.StartingBid, c.p.RoundExponent) * float64(round) / chip
	if math.IsNaN(raw) || math.IsInf(raw, 0) || raw < 0 {
		raw = 0
	}
	chips := math.Ceil(raw - roundingTolerance)
	if chips < 0 {
		chips = 0
	}

	maxChips := math.MaxInt64 / int64(c.p.ChipDenomination)
	var small int64
	if chips >= float64(maxChips) {
		small = maxChips * int64(c.p.ChipDenomination)
	} else {
		small = int64(chips) * int64(c.p.ChipDenomination)
	}

	return BidPair{Small: small, Large: saturatingFloor(float64(small) * c.p.BidMultiplier)}
}

// saturatingFloor converts v to int64, pinning values past the int64 range
// to math.MaxInt64.
func saturatingFloor(v float64) int64 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= math.MaxInt64:
		return math.MaxInt64
	default:
		return int64(math.Floor(v))
	}
}

// Derive computes the round, round progress and bids for one sample.
func (c Calculator) Derive(elapsedSeconds, elapsedFraction float64, totalSeconds int) Result {
	if c.TimePerRound(totalSeconds) == 0 {
		return Result{Round: 1, Bids: c.Bids(1), Degenerate: true}
	}
	round := c.CurrentRound(elapsedSeconds, totalSeconds)
	return Result{
		Round:         round,
		RoundProgress: c.RoundProgress(elapsedFraction, round, totalSeconds),
		Bids:          c.Bids(round),
	}
}

// Rounds returns the full schedule. Round boundaries fall on multiples of
// TimePerRound; any remainder from the floor division belongs to the last
// round, which always ends at the end of the match.
func (c Calculator) Rounds(totalSeconds int) []RoundInfo {
	perRound := c.TimePerRound(totalSeconds)
	rounds := make([]RoundInfo, 0, c.p.RoundCount)
	for i := 1; i <= c.p.RoundCount; i++ {
		start := perRound * (i - 1)
		end := perRound * i
		if i == c.p.RoundCount && totalSeconds > end {
			end = totalSeconds
		}
		info := RoundInfo{
			Number:       i,
			StartSeconds: start,
			EndSeconds:   end,
			Bids:         c.Bids(i),
		}
		if totalSeconds > 0 {
			info.StartFraction = float64(start) / float64(totalSeconds)
			info.EndFraction = float64(end) / float64(totalSeconds)
		}
		rounds = append(rounds, info)
	}
	return rounds
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
