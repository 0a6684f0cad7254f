package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/mrz1836/bidclock/internal/config"
	"github.com/mrz1836/bidclock/internal/constants"
	bcerrors "github.com/mrz1836/bidclock/internal/errors"
)

// SettingsValues holds the text fields of the settings form.
// huh inputs work with strings; ToGame parses them back.
type SettingsValues struct {
	MatchTime        string
	Rounds           string
	StartingBid      string
	BidMultiplier    string
	RoundExponent    string
	ChipDenomination string
}

// SettingsFromGame fills form values from game settings.
func SettingsFromGame(g config.GameConfig) SettingsValues {
	return SettingsValues{
		MatchTime:        strconv.Itoa(g.MatchTimeMinutes),
		Rounds:           strconv.Itoa(g.Rounds),
		StartingBid:      strconv.FormatFloat(g.StartingBid, 'g', -1, 64),
		BidMultiplier:    strconv.FormatFloat(g.BidMultiplier, 'g', -1, 64),
		RoundExponent:    strconv.FormatFloat(g.RoundExponent, 'g', -1, 64),
		ChipDenomination: strconv.Itoa(g.ChipDenomination),
	}
}

// ToGame parses the form values and validates the result.
func (v SettingsValues) ToGame() (config.GameConfig, error) {
	var (
		g    config.GameConfig
		errs []error
	)
	var err error
	if g.MatchTimeMinutes, err = parseInt(v.MatchTime, "match time"); err != nil {
		errs = append(errs, err)
	}
	if g.Rounds, err = parseInt(v.Rounds, "rounds"); err != nil {
		errs = append(errs, err)
	}
	if g.StartingBid, err = parseFloat(v.StartingBid, "starting bid"); err != nil {
		errs = append(errs, err)
	}
	if g.BidMultiplier, err = parseFloat(v.BidMultiplier, "bid multiplier"); err != nil {
		errs = append(errs, err)
	}
	if g.RoundExponent, err = parseFloat(v.RoundExponent, "round exponent"); err != nil {
		errs = append(errs, err)
	}
	if g.ChipDenomination, err = parseInt(v.ChipDenomination, "chip denomination"); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return config.GameConfig{}, errors.Join(errs...)
	}
	if err := config.ValidateGame(&g); err != nil {
		return config.GameConfig{}, err
	}
	return g, nil
}

func parseInt(s, field string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a whole number", bcerrors.ErrValueOutOfRange, field)
	}
	return n, nil
}

func parseFloat(s, field string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number", bcerrors.ErrValueOutOfRange, field)
	}
	return f, nil
}

// intInRange returns a huh validator for whole numbers in [lo, hi].
// hi <= 0 means no upper bound.
func intInRange(field string, lo, hi int) func(string) error {
	return func(s string) error {
		n, err := parseInt(s, field)
		if err != nil {
			return err
		}
		if n < lo || (hi > 0 && n > hi) {
			if hi > 0 {
				return fmt.Errorf("%w: %s must be between %d and %d", bcerrors.ErrValueOutOfRange, field, lo, hi)
			}
			return fmt.Errorf("%w: %s must be at least %d", bcerrors.ErrValueOutOfRange, field, lo)
		}
		return nil
	}
}

// floatAbove returns a huh validator for numbers > lo (or >= lo when inclusive).
func floatAbove(field string, lo float64, inclusive bool) func(string) error {
	return func(s string) error {
		f, err := parseFloat(s, field)
		if err != nil {
			return err
		}
		if f < lo || (!inclusive && f == lo) {
			if inclusive {
				return fmt.Errorf("%w: %s must be at least %g", bcerrors.ErrValueOutOfRange, field, lo)
			}
			return fmt.Errorf("%w: %s must be greater than %g", bcerrors.ErrValueOutOfRange, field, lo)
		}
		return nil
	}
}

// NewSettingsForm creates the game settings form bound to v.
func NewSettingsForm(v *SettingsValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Match time (minutes)").
				Description("Total length of the match").
				Value(&v.MatchTime).
				Validate(intInRange("match time", constants.MinMatchTimeMinutes, constants.MaxMatchTimeMinutes)),
			huh.NewInput().
				Title("Rounds").
				Description("Number of equal-length rounds").
				Value(&v.Rounds).
				Validate(intInRange("rounds", 1, constants.MaxRounds)),
			huh.NewInput().
				Title("Starting bid").
				Value(&v.StartingBid).
				Validate(floatAbove("starting bid", 0, false)),
			huh.NewInput().
				Title("Bid multiplier").
				Description("Large bid as a multiple of the small bid (at least 2)").
				Value(&v.BidMultiplier).
				Validate(floatAbove("bid multiplier", constants.MinBidMultiplier, true)),
			huh.NewInput().
				Title("Round exponent").
				Description("Above 1 makes later rounds disproportionately expensive").
				Value(&v.RoundExponent).
				Validate(floatAbove("round exponent", 0, false)),
			huh.NewInput().
				Title("Chip denomination").
				Description("Bids are rounded up to a multiple of this").
				Value(&v.ChipDenomination).
				Validate(intInRange("chip denomination", 1, 0)),
		),
	).WithTheme(Theme())
}

// Theme returns the huh theme in bidclock colors.
func Theme() *huh.Theme {
	CheckNoColor()

	t := huh.ThemeCharm()
	t.Focused.Base = t.Focused.Base.BorderForeground(ColorPrimary)
	t.Focused.Title = t.Focused.Title.Foreground(ColorPrimary)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(ColorPrimary)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(ColorError)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(ColorError)
	t.Focused.Description = t.Focused.Description.Foreground(ColorMuted)
	t.Blurred.Title = t.Blurred.Title.Foreground(ColorMuted)
	return t
}
