// Package tui provides the terminal components for bidclock: the live match
// timer, the round schedule view, the settings form and plain command output.
//
// All colors use AdaptiveColor for light/dark terminal support. Call
// CheckNoColor() at the start of commands to respect NO_COLOR and TERM=dumb.
package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

//nolint:gochecknoglobals // Intentional package-level constants for TUI styling API
var (
	// ColorPrimary is blue, used for the running clock and active elements.
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#0087AF", Dark: "#00D7FF"}

	// ColorSuccess is green, used for bids and confirmations.
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#008700", Dark: "#00FF87"}

	// ColorWarning is yellow, used for the paused clock and notices.
	ColorWarning = lipgloss.AdaptiveColor{Light: "#AF8700", Dark: "#FFD700"}

	// ColorError is red, used for a finished match and errors.
	ColorError = lipgloss.AdaptiveColor{Light: "#AF0000", Dark: "#FF5F5F"}

	// ColorMuted is gray, used for secondary text and key hints.
	ColorMuted = lipgloss.AdaptiveColor{Light: "#585858", Dark: "#6C6C6C"}
)

// OutputStyles holds common output styles.
type OutputStyles struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Dim     lipgloss.Style
}

// NewOutputStyles creates common output styles.
func NewOutputStyles() *OutputStyles {
	return &OutputStyles{
		Success: lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(ColorError).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(ColorWarning),
		Info:    lipgloss.NewStyle().Foreground(ColorPrimary),
		Dim:     lipgloss.NewStyle().Foreground(ColorMuted),
	}
}

// TimerStyles holds the styles of the live timer screen.
type TimerStyles struct {
	Title    lipgloss.Style
	Running  lipgloss.Style
	Paused   lipgloss.Style
	Finished lipgloss.Style
	Label    lipgloss.Style
	Bid      lipgloss.Style
	Notice   lipgloss.Style
	Confirm  lipgloss.Style
	Hint     lipgloss.Style
	Box      lipgloss.Style
}

// NewTimerStyles creates the timer screen styles.
func NewTimerStyles() *TimerStyles {
	return &TimerStyles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary),
		Running:  lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary),
		Paused:   lipgloss.NewStyle().Bold(true).Foreground(ColorWarning),
		Finished: lipgloss.NewStyle().Bold(true).Foreground(ColorError),
		Label:    lipgloss.NewStyle().Foreground(ColorMuted),
		Bid:      lipgloss.NewStyle().Bold(true).Foreground(ColorSuccess),
		Notice:   lipgloss.NewStyle().Foreground(ColorWarning),
		Confirm:  lipgloss.NewStyle().Bold(true).Foreground(ColorError),
		Hint:     lipgloss.NewStyle().Faint(true),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(1, 3),
	}
}

// CheckNoColor disables colors when the terminal should not get them.
func CheckNoColor() {
	if !HasColorSupport() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// HasColorSupport returns false if NO_COLOR is set (any value, including
// empty) or TERM=dumb. See https://no-color.org/
func HasColorSupport() bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}
	return os.Getenv("TERM") != "dumb"
}
