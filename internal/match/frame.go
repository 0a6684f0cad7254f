package match

import "time"

// Frame is everything a presentation layer needs for one tick.
// When Ready is false the clock has no finish timestamp and the numeric
// fields must not be shown as real progress.
type Frame struct {
	MatchID string `json:"match_id"`
	Ready   bool   `json:"ready"`

	CurrentRound  int     `json:"current_round"`
	RoundCount    int     `json:"round_count"`
	RoundProgress float64 `json:"round_progress"`

	OverallElapsed float64       `json:"overall_elapsed"`
	Elapsed        time.Duration `json:"elapsed_ns"`
	Remaining      time.Duration `json:"remaining_ns"`
	MinutesDisplay string        `json:"minutes_display"`
	SecondsDisplay string        `json:"seconds_display"`

	SmallBid      int64   `json:"small_bid"`
	LargeBid      int64   `json:"large_bid"`
	BidMultiplier float64 `json:"bid_multiplier"`

	IsRunning      bool `json:"is_running"`
	HasFinished    bool `json:"has_finished"`
	HasGameStarted bool `json:"has_game_started"`

	// Degenerate is set when rounds are shorter than one second; the match
	// then stays in round 1 with zero round progress.
	Degenerate bool `json:"degenerate,omitempty"`
}

// Clock returns the remaining time as "MM:SS".
func (f Frame) Clock() string {
	if !f.Ready {
		return "--:--"
	}
	return f.MinutesDisplay + ":" + f.SecondsDisplay
}
