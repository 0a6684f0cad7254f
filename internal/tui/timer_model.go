package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mrz1836/bidclock/internal/clock"
	"github.com/mrz1836/bidclock/internal/constants"
	"github.com/mrz1836/bidclock/internal/match"
)

// noticeDuration is how long an event notice stays on screen.
const noticeDuration = 5 * time.Second

// defaultBarWidth is used until the first WindowSizeMsg arrives.
const defaultBarWidth = 40

// TimerConfig holds configuration for the live timer screen.
type TimerConfig struct {
	// Interval is the tick cadence.
	Interval time.Duration
	// AutoStart starts the match as soon as the screen opens.
	AutoStart bool
}

// pendingAction is a destructive command awaiting y/n confirmation.
type pendingAction int

const (
	actionNone pendingAction = iota
	actionRestart
	actionReset
)

// TickMsg signals time to sample the match clock.
type TickMsg time.Time

// TimerModel is the Bubble Tea model for the live match timer.
// All session access happens inside Update, which bubbletea serializes.
type TimerModel struct {
	session  *match.Session
	clock    clock.Clock
	notifier *Notifier
	config   TimerConfig
	styles   *TimerStyles

	frame  match.Frame
	round  *ProgressBar
	total  *ProgressBar
	notice string
	until  time.Time

	caser    cases.Caser
	confirm  pendingAction
	settings *huh.Form
	values   *SettingsValues
	width    int
	height   int
	quitting bool

	// onEvent observes every event, for logging and the match-id hook.
	onEvent func(match.Event)
}

// NewTimerModel creates the timer screen for session.
func NewTimerModel(session *match.Session, clk clock.Clock, notifier *Notifier, cfg TimerConfig) *TimerModel {
	if cfg.Interval <= 0 {
		cfg.Interval = constants.DefaultTickInterval
	}
	CheckNoColor()
	m := &TimerModel{
		session:  session,
		clock:    clk,
		notifier: notifier,
		config:   cfg,
		styles:   NewTimerStyles(),
		caser:    cases.Title(language.English),
		round:    NewRoundProgressBar(defaultBarWidth),
		total:    NewMatchProgressBar(defaultBarWidth),
		width:    80,
		height:   24,
	}
	m.frame, _ = session.Tick(clk.Now())
	return m
}

// OnEvent registers fn to observe every match event.
func (m *TimerModel) OnEvent(fn func(match.Event)) {
	m.onEvent = fn
}

// Init starts the tick loop and, when configured, the match.
func (m *TimerModel) Init() tea.Cmd {
	if m.config.AutoStart {
		return tea.Batch(m.handle(m.session.Start()), m.tick())
	}
	return m.tick()
}

// Update handles messages and returns the updated model and any commands.
func (m *TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.settings != nil {
		if cmd, handled := m.updateSettings(msg); handled {
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg.String())

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		barWidth := min(max(msg.Width-12, 10), 80)
		m.round.SetWidth(barWidth)
		m.total.SetWidth(barWidth)
		return m, nil

	case TickMsg:
		frame, events := m.session.Tick(m.clock.Now())
		m.frame = frame
		return m, tea.Batch(m.notify(events), m.tick())

	case BellMsg:
		return m, nil
	}

	return m, nil
}

func (m *TimerModel) handleKey(key string) tea.Cmd {
	if key == "ctrl+c" {
		m.quitting = true
		return tea.Quit
	}

	if m.confirm != actionNone {
		action := m.confirm
		m.confirm = actionNone
		switch key {
		case "y", "Y":
			if action == actionReset {
				return m.handle(m.session.ResetToDefaults())
			}
			return m.handle(m.session.Restart())
		default:
			return nil
		}
	}

	switch key {
	case "q":
		m.quitting = true
		return tea.Quit
	case " ", "space", "p":
		return m.handle(m.session.Toggle())
	case "r":
		m.confirm = actionRestart
		return m.handle(m.session.Pause())
	case "s":
		return m.openSettings()
	case "x":
		m.confirm = actionReset
	}
	return nil
}

// openSettings shows the game settings form, prefilled from the session.
// The match keeps running while the form is open.
func (m *TimerModel) openSettings() tea.Cmd {
	values := SettingsFromGame(m.session.Game())
	m.values = &values
	m.settings = NewSettingsForm(m.values).WithWidth(min(max(m.width-8, 30), 72))
	return m.settings.Init()
}

func (m *TimerModel) closeSettings() {
	m.settings = nil
	m.values = nil
}

// updateSettings routes input to the open settings form. Ticks, bells and
// resizes are left to the timer so the clock keeps moving.
func (m *TimerModel) updateSettings(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case TickMsg, BellMsg, tea.WindowSizeMsg:
		return nil, false
	case tea.KeyMsg:
		if k := msg.String(); k == "esc" || k == "ctrl+c" {
			m.closeSettings()
			return nil, true
		}
	}

	model, cmd := m.settings.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		m.settings = form
	}

	// The form's own submit and cancel commands would quit the program.
	switch m.settings.State {
	case huh.StateCompleted:
		return m.applySettings(), true
	case huh.StateAborted:
		m.closeSettings()
		return nil, true
	default:
		return cmd, true
	}
}

// applySettings hands the submitted form to the session. Changes to match
// time, rounds, starting bid or multiplier restart the match; the rest
// update the bids in place.
func (m *TimerModel) applySettings() tea.Cmd {
	values := m.values
	m.closeSettings()
	if values == nil {
		return nil
	}

	now := m.clock.Now()
	game, err := values.ToGame()
	var events []match.Event
	if err == nil {
		events, err = m.session.Reconfigure(game)
	}
	if err != nil {
		m.notice = err.Error()
		m.until = now.Add(noticeDuration)
		return nil
	}

	frame, more := m.session.Tick(now)
	m.frame = frame
	if len(events) == 0 {
		m.notice = "Bid settings updated."
		m.until = now.Add(noticeDuration)
	}
	return m.notify(append(events, more...))
}

// handle refreshes the frame after a command, then notifies.
func (m *TimerModel) handle(events []match.Event) tea.Cmd {
	if len(events) == 0 {
		return nil
	}
	now := m.clock.Now()
	frame, more := m.session.Tick(now)
	m.frame = frame
	return m.notify(append(events, more...))
}

// notify turns events into on-screen notices and bells.
func (m *TimerModel) notify(events []match.Event) tea.Cmd {
	if len(events) == 0 {
		return nil
	}
	now := m.clock.Now()
	var cmds []tea.Cmd
	for _, ev := range events {
		if m.onEvent != nil {
			m.onEvent(ev)
		}
		m.notice = ev.Message()
		m.until = now.Add(noticeDuration)
		if ev.Notifiable() && m.notifier != nil {
			if cmd := m.notifier.BellCmd(ev.Kind.String()); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}

func (m *TimerModel) tick() tea.Cmd {
	return tea.Tick(m.config.Interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// View renders the current state to a string.
func (m *TimerModel) View() string {
	if m.quitting {
		return ""
	}

	f := m.frame
	s := m.styles
	var b strings.Builder

	b.WriteString(s.Title.Render("bidclock"))
	b.WriteString(s.Label.Render("  match " + shortID(f.MatchID)))
	b.WriteString("\n\n")

	if !f.Ready {
		b.WriteString(s.Label.Render("Waiting for the match clock…"))
		return s.Box.Render(b.String())
	}

	b.WriteString(m.clockStyle().Render(f.Clock()))
	b.WriteString("  ")
	b.WriteString(s.Label.Render(m.stateLabel()))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "%s %s\n", s.Label.Render(fmt.Sprintf("Round %d/%d", f.CurrentRound, f.RoundCount)), m.round.Render(f.RoundProgress))
	fmt.Fprintf(&b, "%s %s\n\n", s.Label.Render("Match    "), m.total.Render(f.OverallElapsed))

	fmt.Fprintf(&b, "%s %s   %s %s   %s\n",
		s.Label.Render("Small bid"), s.Bid.Render(fmt.Sprint(f.SmallBid)),
		s.Label.Render("Large bid"), s.Bid.Render(fmt.Sprint(f.LargeBid)),
		s.Label.Render(fmt.Sprintf("(x%g)", f.BidMultiplier)))

	if f.Degenerate {
		b.WriteString(s.Notice.Render("Rounds are shorter than one second; staying in round 1."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.settings != nil {
		b.WriteString(m.settings.View())
		b.WriteString("\n")
		b.WriteString(s.Hint.Render("enter next · esc cancel"))
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Left, s.Box.Render(b.String()))
	}

	switch {
	case m.confirm == actionRestart:
		b.WriteString(s.Confirm.Render("Restart the match? (y/n)"))
	case m.confirm == actionReset:
		b.WriteString(s.Confirm.Render("Reset all settings to defaults? (y/n)"))
	case m.notice != "" && m.clock.Now().Before(m.until):
		b.WriteString(s.Notice.Render(m.notice))
	}
	b.WriteString("\n")
	b.WriteString(s.Hint.Render("space start/pause · r restart · s settings · x reset · q quit"))

	return lipgloss.PlaceHorizontal(m.width, lipgloss.Left, s.Box.Render(b.String()))
}

func (m *TimerModel) clockStyle() lipgloss.Style {
	switch {
	case m.frame.HasFinished:
		return m.styles.Finished
	case m.frame.IsRunning:
		return m.styles.Running
	default:
		return m.styles.Paused
	}
}

func (m *TimerModel) stateLabel() string {
	state := "ready"
	switch {
	case m.frame.HasFinished:
		state = "finished"
	case m.frame.IsRunning:
		state = "running"
	case m.frame.HasGameStarted:
		state = "paused"
	}
	return m.caser.String(state)
}

// Frame returns the last rendered frame.
func (m *TimerModel) Frame() match.Frame { return m.frame }

// Notice returns the current notice text, which may have expired.
func (m *TimerModel) Notice() string { return m.notice }

// SettingsOpen reports whether the settings form is on screen.
func (m *TimerModel) SettingsOpen() bool { return m.settings != nil }

// IsQuitting returns true if the model is in quitting state.
func (m *TimerModel) IsQuitting() bool { return m.quitting }

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
