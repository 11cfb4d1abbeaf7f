// Package runtime provides the application runtime context for tally.
package runtime

import (
	"os"

	"github.com/mfields/tally/internal/config"
	"github.com/mfields/tally/internal/notify"
	"github.com/mfields/tally/internal/output"
	"github.com/mfields/tally/internal/storage"
	"github.com/mfields/tally/internal/tally"
)

// Context holds the application runtime context shared by commands.
type Context struct {
	DB        *storage.DB
	Formatter *output.Formatter

	// Repositories
	TallyRepo     *storage.TallyRepo
	MilestoneRepo *storage.MilestoneRepo

	// Core
	Machine    *tally.Machine
	Dispatcher *notify.Dispatcher

	// Debug mode
	Debug bool
}

// Options configures the runtime context.
type Options struct {
	DBPath    string
	InMemory  bool
	Format    output.Format
	ColorMode output.ColorMode
	Debug     bool

	// Silent disables the terminal sinks; the TUI sets it and
	// registers its own channel sink instead.
	Silent bool
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		DBPath:    storage.DefaultPath(),
		InMemory:  false,
		Format:    output.FormatCLI,
		ColorMode: output.ColorAuto,
	}
}

// New creates a new runtime context.
func New(opts Options) (*Context, error) {
	// Environment variable override for the database location.
	if envPath := os.Getenv("TALLY_DATABASE"); envPath != "" {
		if envPath == ":memory:" {
			opts.InMemory = true
		} else {
			opts.DBPath = envPath
		}
	}

	db, err := storage.Open(storage.Options{
		Path:     opts.DBPath,
		InMemory: opts.InMemory,
	})
	if err != nil {
		return nil, err
	}

	tallyRepo := storage.NewTallyRepo(db)
	milestoneRepo := storage.NewMilestoneRepo(db)

	dispatcher := notify.NewDispatcher()
	if !opts.Silent {
		if config.Global.Notify.Sound {
			dispatcher.Register(notify.NewBellSink(os.Stdout))
		}
		if config.Global.Notify.Alert {
			dispatcher.Register(notify.NewAlertSink(os.Stderr))
		}
	}

	machine, err := tally.Load(tally.Deps{
		Repo:       tallyRepo,
		Milestones: milestoneRepo,
		Dispatcher: dispatcher,
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	formatter := output.NewFormatter()
	formatter.Format = opts.Format
	formatter.ColorMode = opts.ColorMode

	return &Context{
		DB:            db,
		Formatter:     formatter,
		TallyRepo:     tallyRepo,
		MilestoneRepo: milestoneRepo,
		Machine:       machine,
		Dispatcher:    dispatcher,
		Debug:         opts.Debug,
	}, nil
}

// Close drains detached work and closes the database.
func (c *Context) Close() error {
	if c.Machine != nil {
		c.Machine.Drain()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// JSONFormatter returns a JSON formatter.
func (c *Context) JSONFormatter() *output.JSONFormatter {
	return output.NewJSONFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}
