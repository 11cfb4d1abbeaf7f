package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mfields/tally/internal/validate"
)

// addCmd increments the counter.
var addCmd = &cobra.Command{
	Use:     "add [COUNT]",
	Aliases: []string{"inc", "bump"},
	Short:   "Count up by 1 (or by COUNT)",
	Long: `Increment the tally. Without an argument the count goes up by 1;
with one it goes up by that many.

Examples:
  tally add
  tally add 10`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	step := 1
	if len(args) == 1 {
		n, err := validate.Step(args[0])
		if err != nil {
			return err
		}
		step = n
	}

	st := ctx.Machine.IncrementBy(step)

	// Notification and persistence are detached; drain before the
	// process exits so one-shot invocations do not lose them.
	ctx.Machine.Drain()

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintStatus(st)
	}

	cli := ctx.CLIFormatter()
	cli.Printf("Count: %s\n", cli.CountValue(fmt.Sprintf("%d", st.Count)))
	if st.HasTarget() && !st.Reached {
		cli.Muted(fmt.Sprintf("%d to go", st.Target-st.Count))
	}
	return nil
}
