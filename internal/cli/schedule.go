package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/mrz1836/bidclock/internal/bidding"
	"github.com/mrz1836/bidclock/internal/config"
	"github.com/mrz1836/bidclock/internal/match"
	"github.com/mrz1836/bidclock/internal/tui"
)

// scheduleDocument is the JSON form of the schedule command.
type scheduleDocument struct {
	Game       config.GameConfig   `json:"game"`
	Degenerate bool                `json:"degenerate"`
	Rounds     []bidding.RoundInfo `json:"rounds"`
}

// AddScheduleCommand adds the schedule command to the root command.
func AddScheduleCommand(root *cobra.Command, flags *GlobalFlags) {
	game := &GameFlags{}

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print when each round starts and what it bids",
		Example: `  bidclock schedule
  bidclock schedule --match-time 60 --rounds 6 --exponent 1.5
  bidclock schedule -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSchedule(cmd.Context(), cmd.OutOrStdout(), flags, game)
		},
	}

	AddGameFlags(cmd, game)
	root.AddCommand(cmd)
}

func runSchedule(ctx context.Context, w io.Writer, flags *GlobalFlags, game *GameFlags) error {
	cfg, err := loadConfig(ctx, GetLogger(), game)
	if err != nil {
		return err
	}

	calc := bidding.NewCalculator(match.BidParams(cfg.Game))
	rounds := calc.Rounds(cfg.Game.TotalSeconds())

	if flags.Output == OutputJSON {
		return tui.NewJSONOutput(w).JSON(scheduleDocument{
			Game:       cfg.Game,
			Degenerate: cfg.Game.DegenerateRounds(),
			Rounds:     rounds,
		})
	}

	tui.RenderMarkdown(w, tui.ScheduleMarkdown(cfg.Game, rounds))
	return nil
}
