package tui

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mrz1836/bidclock/internal/config"
)

// BellMsg reports that a bell was emitted.
type BellMsg struct{}

// Notifier rings the terminal bell for the configured match events.
type Notifier struct {
	cfg    config.NotificationsConfig
	quiet  bool
	writer io.Writer
}

// NewNotifier creates a notifier writing to os.Stdout.
func NewNotifier(cfg config.NotificationsConfig, quiet bool) *Notifier {
	return NewNotifierWithWriter(cfg, quiet, os.Stdout)
}

// NewNotifierWithWriter creates a notifier with a custom writer.
func NewNotifierWithWriter(cfg config.NotificationsConfig, quiet bool, w io.Writer) *Notifier {
	return &Notifier{cfg: cfg, quiet: quiet, writer: w}
}

// Wants reports whether event should ring the bell.
func (n *Notifier) Wants(event string) bool {
	return !n.quiet && n.cfg.Enabled(event)
}

// Bell emits the BEL character.
func (n *Notifier) Bell() {
	if n.quiet || !n.cfg.Bell {
		return
	}
	_, _ = fmt.Fprint(n.writer, "\a")
}

// Notify rings the bell when event is enabled and reports whether it did.
func (n *Notifier) Notify(event string) bool {
	if !n.Wants(event) {
		return false
	}
	n.Bell()
	return true
}

// BellCmd returns a bubbletea command that rings the bell for event, or nil
// when the event is not enabled.
func (n *Notifier) BellCmd(event string) tea.Cmd {
	if !n.Wants(event) {
		return nil
	}
	return func() tea.Msg {
		n.Bell()
		return BellMsg{}
	}
}
