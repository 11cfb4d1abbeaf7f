package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mfields/tally/internal/config"
	"github.com/mfields/tally/internal/notify"
	"github.com/mfields/tally/internal/tui"
)

// uiCmd opens the interactive counter screen.
var uiCmd = &cobra.Command{
	Use:     "ui",
	Aliases: []string{"counter", "screen"},
	Short:   "Open the interactive counter screen",
	Long: `Open the full-screen counter. Keys:

  space  +1
  b      +10
  t      set target (empty input clears it)
  c      clear target
  r      reset count
  q      quit`,
	Args: cobra.NoArgs,
	RunE: runUI,
}

func init() {
	rootCmd.AddCommand(uiCmd)
}

func runUI(cmd *cobra.Command, args []string) error {
	// The screen draws its own flash and alert, so the runtime was
	// opened without the terminal sinks. Register the screen's channel
	// sink, plus a bell on stderr so the sound capability survives the
	// alternate screen buffer.
	sink := notify.NewChannelSink("screen")
	ctx.Dispatcher.Register(sink)
	if config.Global.Notify.Sound {
		ctx.Dispatcher.Register(notify.NewBellSink(os.Stderr))
	}

	return tui.Run(ctx.Machine, sink)
}
