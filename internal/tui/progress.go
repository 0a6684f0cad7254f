package tui

import (
	"math"

	"github.com/charmbracelet/bubbles/progress"
)

// ProgressBar wraps the bubbles progress bar with bidclock styling.
// It renders statically with ViewAs; the match clock drives the value.
type ProgressBar struct {
	bar   progress.Model
	width int
}

// NewProgressBar creates a progress bar. fromColor and toColor define the
// gradient; NO_COLOR falls back to a solid gray fill.
func NewProgressBar(width int, fromColor, toColor string) *ProgressBar {
	var bar progress.Model
	if HasColorSupport() {
		bar = progress.New(
			progress.WithWidth(width),
			progress.WithScaledGradient(fromColor, toColor),
		)
	} else {
		bar = progress.New(
			progress.WithWidth(width),
			progress.WithSolidFill("#808080"),
		)
	}
	return &ProgressBar{bar: bar, width: width}
}

// NewRoundProgressBar is the bar for progress through the current round.
func NewRoundProgressBar(width int) *ProgressBar {
	return NewProgressBar(width, "#008700", "#00FF87")
}

// NewMatchProgressBar is the bar for progress through the whole match.
func NewMatchProgressBar(width int) *ProgressBar {
	return NewProgressBar(width, "#0087AF", "#00D7FF")
}

// Render returns the bar for a fraction in [0, 1]; out-of-range values clamp.
func (pb *ProgressBar) Render(percent float64) string {
	switch {
	case percent < 0 || math.IsNaN(percent):
		percent = 0
	case percent > 1:
		percent = 1
	}
	return pb.bar.ViewAs(percent)
}

// Width returns the current width of the progress bar.
func (pb *ProgressBar) Width() int {
	return pb.width
}

// SetWidth updates the progress bar width.
func (pb *ProgressBar) SetWidth(w int) {
	pb.width = w
	pb.bar.Width = w
}
