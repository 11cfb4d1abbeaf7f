package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var targetClearFlagYes bool

// targetCmd shows or sets the target.
var targetCmd = &cobra.Command{
	Use:   "target [NUMBER]",
	Short: "Show or set the target",
	Long: `Show the current target, or set a new one.

Setting a target always starts a fresh epoch: if the count is already
at or past the new target, the reached notification fires immediately.

Examples:
  tally target        show the target
  tally target 108    set the target to 108
  tally target clear  remove the target`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTarget,
}

// targetClearCmd removes the target.
var targetClearCmd = &cobra.Command{
	Use:     "clear",
	Aliases: []string{"unset", "rm"},
	Short:   "Remove the target",
	Args:    cobra.NoArgs,
	RunE:    runTargetClear,
}

func init() {
	targetClearCmd.Flags().BoolVarP(&targetClearFlagYes, "yes", "y", false, "Skip the confirmation prompt")
	targetCmd.AddCommand(targetClearCmd)
	rootCmd.AddCommand(targetCmd)
}

func runTarget(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return showTarget()
	}

	st, err := ctx.Machine.SetTarget(args[0])
	if err != nil {
		return err
	}
	ctx.Machine.Drain()

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintStatus(st)
	}

	cli := ctx.CLIFormatter()
	if !st.HasTarget() {
		cli.Success("Target cleared.")
		return nil
	}
	cli.Success(fmt.Sprintf("Target set to %d.", st.Target))
	if st.Reached {
		cli.Muted("Count is already there.")
	}
	return nil
}

func showTarget() error {
	st := ctx.Machine.State()

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintStatus(st)
	}

	cli := ctx.CLIFormatter()
	if !st.HasTarget() {
		cli.Muted("No target set.")
		cli.Muted("Use 'tally target <number>' to set one.")
		return nil
	}

	cli.Printf("Target: %s (count %s, %.0f%%)\n",
		cli.TargetValue(fmt.Sprintf("%d", st.Target)),
		cli.CountValue(fmt.Sprintf("%d", st.Count)),
		st.Progress())
	return nil
}

func runTargetClear(cmd *cobra.Command, args []string) error {
	if !ctx.Machine.State().HasTarget() {
		ctx.CLIFormatter().Muted("No target set.")
		return nil
	}

	if !targetClearFlagYes {
		ok, err := confirm("Clear the target?")
		if err != nil {
			return err
		}
		if !ok {
			ctx.CLIFormatter().Muted("Aborted.")
			return nil
		}
	}

	st := ctx.Machine.ClearTarget()
	ctx.Machine.Drain()

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintStatus(st)
	}

	ctx.CLIFormatter().Success("Target cleared.")
	return nil
}
