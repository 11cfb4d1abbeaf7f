// Package output provides output formatting for tally.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Format represents the output format type.
type Format string

const (
	FormatCLI   Format = "cli"
	FormatJSON  Format = "json"
	FormatPlain Format = "plain"
)

// ColorMode represents the color output mode.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Formatter handles output formatting.
type Formatter struct {
	Writer    io.Writer
	Format    Format
	ColorMode ColorMode
}

// NewFormatter creates a new formatter with default settings.
func NewFormatter() *Formatter {
	return &Formatter{
		Writer:    os.Stdout,
		Format:    FormatCLI,
		ColorMode: ColorAuto,
	}
}

// IsColorEnabled returns true if color output is enabled.
func (f *Formatter) IsColorEnabled() bool {
	switch f.ColorMode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		if w, ok := f.Writer.(*os.File); ok {
			return isatty.IsTerminal(w.Fd()) || isatty.IsCygwinTerminal(w.Fd())
		}
		return false
	}
}

// Width returns the terminal width, or a sane default when the writer
// is not a terminal.
func (f *Formatter) Width() int {
	if w, ok := f.Writer.(*os.File); ok {
		if cols, _, err := term.GetSize(int(w.Fd())); err == nil && cols > 0 {
			return cols
		}
	}
	return 80
}

// Printf writes formatted output.
func (f *Formatter) Printf(format string, args ...any) {
	fmt.Fprintf(f.Writer, format, args...)
}

// Println writes a line of output.
func (f *Formatter) Println(args ...any) {
	fmt.Fprintln(f.Writer, args...)
}

// JSON writes v as indented JSON.
func (f *Formatter) JSON(v any) error {
	enc := json.NewEncoder(f.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
