// Package cmd provides the CLI commands for tally.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mfields/tally/internal/errors"
	"github.com/mfields/tally/internal/logging"
	"github.com/mfields/tally/internal/output"
	"github.com/mfields/tally/internal/runtime"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat string
	flagColor  string
	flagDebug  bool
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "tally",
	Short: "A persistent tally counter for your terminal",
	Long: `Tally is a tally counter that lives in your terminal. Count toward an
optional target, get notified the moment you reach it, and pick up where
you left off after a restart.

Examples:
  tally              show the current count and target
  tally ui           open the counter screen
  tally add          count one up
  tally add 10
  tally target 108   set a target
  tally reset --yes`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for completion and help commands
		if cmd.Name() == "completion" || cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		if flagDebug {
			logging.InitDebug()
		}

		var format output.Format
		switch flagFormat {
		case "json":
			format = output.FormatJSON
		case "plain":
			format = output.FormatPlain
		default:
			format = output.FormatCLI
		}

		var colorMode output.ColorMode
		switch flagColor {
		case "always":
			colorMode = output.ColorAlways
		case "never":
			colorMode = output.ColorNever
		default:
			colorMode = output.ColorAuto
		}

		opts := runtime.DefaultOptions()
		opts.Format = format
		opts.ColorMode = colorMode
		opts.Debug = flagDebug
		opts.Silent = cmd.Name() == "ui"

		var err error
		ctx, err = runtime.New(opts)
		if err != nil {
			return err
		}

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeContext()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: show current status
		return runStatus(cmd, args)
	},
}

// runStatus shows the current counter state.
func runStatus(cmd *cobra.Command, args []string) error {
	st := ctx.Machine.State()

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintStatus(st)
	}

	ctx.CLIFormatter().PrintStatus(st)
	return nil
}

// closeContext closes the shared runtime context once.
func closeContext() error {
	if ctx == nil {
		return nil
	}
	err := ctx.Close()
	ctx = nil
	return err
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Cobra skips PersistentPostRunE when a command errors,
// so the context is closed here as well to release the database lock.
func Execute() error {
	err := rootCmd.Execute()
	if cerr := closeContext(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli",
		"Output format: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug output")

	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("tally %s\n", Version)
		cmd.Printf("  commit: %s\n", Commit)
		cmd.Printf("  built: %s\n", BuildTime)
	},
}

// Die prints an error and exits.
func Die(err error) {
	if ctx != nil && ctx.IsJSON() {
		ctx.JSONFormatter().PrintError("error", err.Error(), errors.GetSuggestion(err))
	} else {
		os.Stderr.WriteString("Error: " + errors.FormatError(err) + "\n")
	}
	os.Exit(1)
}
