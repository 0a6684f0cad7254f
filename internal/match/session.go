// Package match drives a bidclock match: it owns the timer, the bid
// calculator and the current game settings, turns clock samples into frames,
// and detects round and match-end transitions.
//
// A Session is single-threaded. Commands and Tick must be called from the
// same goroutine, normally the bubbletea update loop or a Runner.
package match

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mrz1836/bidclock/internal/bidding"
	"github.com/mrz1836/bidclock/internal/clock"
	"github.com/mrz1836/bidclock/internal/config"
	"github.com/mrz1836/bidclock/internal/errors"
	"github.com/mrz1836/bidclock/internal/timer"
)

// Session is one table's match state.
type Session struct {
	clock  clock.Clock
	game   config.GameConfig
	timer  *timer.Timer
	calc   bidding.Calculator
	logger zerolog.Logger
	newID  func() string

	matchID   string
	started   bool
	overFired bool
	lastRound int
	onMatchID func(string)
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger. The default discards output.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithIDGenerator replaces the uuid match ID source.
func WithIDGenerator(fn func() string) Option {
	return func(s *Session) { s.newID = fn }
}

// WithMatchIDListener is called with every new match ID, including the first.
func WithMatchIDListener(fn func(id string)) Option {
	return func(s *Session) { s.onMatchID = fn }
}

// NewSession creates a paused session with its finish timestamp set to
// now plus the match time. game is assumed to have passed config.ValidateGame.
func NewSession(clk clock.Clock, game config.GameConfig, opts ...Option) *Session {
	s := &Session{
		clock:  clk,
		logger: zerolog.Nop(),
		newID:  uuid.NewString,
		timer:  timer.New(game.MatchDuration()),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.apply(game)
	s.restart()
	return s
}

// BidParams converts game settings into calculator parameters.
func BidParams(g config.GameConfig) bidding.Params {
	return bidding.Params{
		RoundCount:       g.Rounds,
		StartingBid:      g.StartingBid,
		BidMultiplier:    g.BidMultiplier,
		RoundExponent:    g.RoundExponent,
		ChipDenomination: g.ChipDenomination,
	}
}

func (s *Session) apply(game config.GameConfig) {
	s.game = game
	s.calc = bidding.NewCalculator(BidParams(game))
	if game.DegenerateRounds() {
		s.logger.Warn().
			Int("rounds", game.Rounds).
			Int("total_seconds", game.TotalSeconds()).
			Msg("rounds shorter than one second, match stays in round 1")
	}
}

// restart re-derives the finish timestamp and clears per-match state.
func (s *Session) restart() {
	now := s.clock.Now()
	s.timer.Reset(s.game.MatchDuration(), now.Add(s.game.MatchDuration()))
	s.started = false
	s.overFired = false
	s.lastRound = 1
	s.matchID = s.newID()
	if s.onMatchID != nil {
		s.onMatchID(s.matchID)
	}
	s.logger.Debug().
		Str("match_id", s.matchID).
		Time("finish", s.timer.FinishTimestamp()).
		Msg("match clock armed")
}

func (s *Session) event(kind EventKind) Event {
	return Event{Kind: kind, MatchID: s.matchID, At: s.clock.Now()}
}

// Game returns the settings in effect.
func (s *Session) Game() config.GameConfig { return s.game }

// MatchID returns the identifier of the current match.
func (s *Session) MatchID() string { return s.matchID }

// IsRunning reports whether the clock is advancing.
func (s *Session) IsRunning() bool { return s.timer.IsRunning() }

// HasGameStarted reports whether Start succeeded since the last restart and
// the match is not over.
func (s *Session) HasGameStarted() bool { return s.started }

// Schedule returns the round table for the current settings.
func (s *Session) Schedule() []bidding.RoundInfo {
	return s.calc.Rounds(s.game.TotalSeconds())
}

// Start begins or resumes the match. It returns no events when the clock is
// already running or the match is over.
func (s *Session) Start() []Event {
	now := s.clock.Now()
	resumed := s.timer.Sample(now).Elapsed > 0
	if !s.timer.Start(now) {
		return nil
	}
	s.started = true

	ev := s.event(EventStarted)
	ev.Resumed = resumed
	s.logger.Info().Str("match_id", s.matchID).Bool("resumed", resumed).Msg("match started")
	return []Event{ev}
}

// Pause freezes the clock. It returns no events when the clock was not running.
func (s *Session) Pause() []Event {
	s.timer.Sample(s.clock.Now())
	if !s.timer.Pause() {
		return nil
	}
	s.logger.Info().Str("match_id", s.matchID).Msg("match paused")
	return []Event{s.event(EventPaused)}
}

// Toggle pauses a running clock and starts a paused one.
func (s *Session) Toggle() []Event {
	if s.timer.IsRunning() {
		return s.Pause()
	}
	return s.Start()
}

// Restart arms a fresh match from the current settings, paused.
func (s *Session) Restart() []Event {
	s.restart()
	s.logger.Info().Str("match_id", s.matchID).Msg("match restarted")
	return []Event{s.event(EventRestarted)}
}

// ResetToDefaults restores the default game settings and restarts.
func (s *Session) ResetToDefaults() []Event {
	s.apply(config.DefaultGame())
	s.restart()
	s.logger.Info().Str("match_id", s.matchID).Msg("settings reset to defaults")
	return []Event{s.event(EventReset)}
}

// Reconfigure applies new game settings. Changing match time, rounds,
// starting bid or multiplier restarts the match; exponent and chip
// denomination take effect on the next tick without a restart.
func (s *Session) Reconfigure(next config.GameConfig) ([]Event, error) {
	if err := config.ValidateGame(&next); err != nil {
		return nil, errors.Wrap(err, "reconfigure match")
	}

	needsRestart := s.game.RequiresRestart(next)
	s.apply(next)
	if !needsRestart {
		s.logger.Debug().Str("match_id", s.matchID).Msg("bid settings updated in place")
		return nil, nil
	}
	return s.Restart(), nil
}

// Tick samples the clock at now and returns the frame plus any transitions
// observed since the previous tick. now must not decrease between calls.
func (s *Session) Tick(now time.Time) (Frame, []Event) {
	sample := s.timer.Sample(now)
	frame := s.frame(sample)
	if !sample.Ready {
		return frame, nil
	}

	var events []Event
	if s.started && frame.CurrentRound != s.lastRound {
		ev := s.event(EventRoundStarted)
		ev.From, ev.To = s.lastRound, frame.CurrentRound
		events = append(events, ev)
		s.logger.Info().
			Str("match_id", s.matchID).
			Int("round", frame.CurrentRound).
			Int64("small_bid", frame.SmallBid).
			Int64("large_bid", frame.LargeBid).
			Msg("round started")
	}
	s.lastRound = frame.CurrentRound

	if s.started && sample.HasFinished && !s.overFired {
		s.overFired = true
		s.started = false
		s.timer.Pause()
		frame.IsRunning = false
		frame.HasGameStarted = false
		events = append(events, s.event(EventMatchOver))
		s.logger.Info().Str("match_id", s.matchID).Msg("match over")
	}

	return frame, events
}

func (s *Session) frame(sample timer.Sample) Frame {
	f := Frame{
		MatchID:        s.matchID,
		Ready:          sample.Ready,
		RoundCount:     s.calc.Params().RoundCount,
		BidMultiplier:  s.game.BidMultiplier,
		IsRunning:      sample.Running,
		HasGameStarted: s.started,
	}
	if !sample.Ready {
		return f
	}

	total := int(sample.TotalSeconds)
	res := s.calc.Derive(sample.ElapsedSeconds, sample.ElapsedFraction, total)

	f.CurrentRound = res.Round
	f.RoundProgress = res.RoundProgress
	f.Degenerate = res.Degenerate
	f.SmallBid = res.Bids.Small
	f.LargeBid = res.Bids.Large
	f.OverallElapsed = sample.ElapsedFraction
	f.Elapsed = sample.Elapsed
	f.Remaining = sample.Remaining
	f.MinutesDisplay = sample.MinutesDisplay
	f.SecondsDisplay = sample.SecondsDisplay
	f.HasFinished = sample.HasFinished
	return f
}
