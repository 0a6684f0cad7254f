package tui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"

	"github.com/mrz1836/bidclock/internal/bidding"
	"github.com/mrz1836/bidclock/internal/config"
)

var (
	glamourRenderer     *glamour.TermRenderer //nolint:gochecknoglobals // cached renderer for performance
	glamourRendererOnce sync.Once             //nolint:gochecknoglobals // sync.Once for renderer initialization
)

// getGlamourRenderer returns a cached glamour renderer, or nil if one could
// not be built.
func getGlamourRenderer() *glamour.TermRenderer {
	glamourRendererOnce.Do(func() {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		)
		if err == nil {
			glamourRenderer = r
		}
	})
	return glamourRenderer
}

// ScheduleMarkdown describes the round table as a markdown document.
func ScheduleMarkdown(game config.GameConfig, rounds []bidding.RoundInfo) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Match schedule\n\n")
	fmt.Fprintf(&b, "%d minutes in %d rounds. Starting bid %g, large bid x%g, exponent %g, chips of %d.\n\n",
		game.MatchTimeMinutes, game.Rounds, game.StartingBid, game.BidMultiplier,
		game.RoundExponent, game.ChipDenomination)

	if game.DegenerateRounds() {
		b.WriteString("> Rounds are shorter than one second. The match stays in round 1.\n\n")
	}

	b.WriteString("| Round | Starts | Ends | Small bid | Large bid |\n")
	b.WriteString("|------:|-------:|-----:|----------:|----------:|\n")
	for _, r := range rounds {
		fmt.Fprintf(&b, "| %d | %s | %s | %d | %d |\n",
			r.Number, formatOffset(r.StartSeconds), formatOffset(r.EndSeconds), r.Bids.Small, r.Bids.Large)
	}
	return b.String()
}

// formatOffset renders seconds from the start of the match as M:SS or H:MM:SS.
func formatOffset(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h, m, s := seconds/3600, (seconds%3600)/60, seconds%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// RenderMarkdown writes markdown through glamour, falling back to the raw
// text when no renderer is available.
func RenderMarkdown(w io.Writer, markdown string) {
	if renderer := getGlamourRenderer(); renderer != nil {
		if rendered, err := renderer.Render(markdown); err == nil {
			_, _ = io.WriteString(w, rendered)
			return
		}
	}
	_, _ = io.WriteString(w, markdown)
}
