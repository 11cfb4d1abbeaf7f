package cmd

import (
	"fmt"
	"time"

	"github.com/markusmobius/go-dateparser"
	"github.com/spf13/cobra"

	"github.com/mfields/tally/internal/config"
	"github.com/mfields/tally/internal/errors"
)

// History command flags.
var (
	historyFlagSince string
	historyFlagLimit int
)

// historyCmd lists recorded milestones.
var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"milestones"},
	Short:   "Show reached targets",
	Long: `List the milestones recorded each time a target was reached.

The --since filter accepts natural language time expressions.

Examples:
  tally history
  tally history --since yesterday
  tally history --since "last week" --limit 5`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().StringVarP(&historyFlagSince, "since", "s", "", "Only show milestones since this time (e.g. 'yesterday')")
	historyCmd.Flags().IntVarP(&historyFlagLimit, "limit", "n", 0, "Maximum number of milestones to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	var since time.Time
	if historyFlagSince != "" {
		cfg := &dateparser.Configuration{CurrentTime: time.Now()}
		parsed, err := dateparser.Parse(cfg, historyFlagSince)
		if err != nil {
			return fmt.Errorf("%w: '%s'", errors.ErrInvalidSince, historyFlagSince)
		}
		since = parsed.Time
	}

	limit := historyFlagLimit
	if limit <= 0 {
		limit = config.Global.History.DefaultLimit
	}

	milestones, err := ctx.MilestoneRepo.ListSince(since, limit)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintMilestones(milestones)
	}

	ctx.CLIFormatter().PrintMilestones(milestones)
	return nil
}
