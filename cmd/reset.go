package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetFlagYes bool

// resetCmd resets the counter to zero.
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the count to 0",
	Long: `Reset the count back to 0. The target, if set, is kept; reaching it
again will notify again.

Asks for confirmation unless --yes is given.`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&resetFlagYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, args []string) error {
	if !resetFlagYes {
		ok, err := confirm(fmt.Sprintf("Reset count from %d to 0?", ctx.Machine.State().Count))
		if err != nil {
			return err
		}
		if !ok {
			ctx.CLIFormatter().Muted("Aborted.")
			return nil
		}
	}

	st := ctx.Machine.Reset()
	ctx.Machine.Drain()

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintStatus(st)
	}

	ctx.CLIFormatter().Success("Count reset to 0.")
	return nil
}

// confirm asks a yes/no question on the terminal.
func confirm(question string) (bool, error) {
	fmt.Fprintf(os.Stderr, "%s [y/N] ", question)

	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}
