// Package tui provides the terminal user interface for tally.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette for the counter screen.
var (
	ColorPrimary = lipgloss.Color("#7C3AED") // Purple
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
	ColorWarning = lipgloss.Color("#F59E0B") // Yellow
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorSuccess = lipgloss.Color("#10B981") // Green
	ColorBorder  = lipgloss.Color("#4B5563") // Dark gray
)

// Base styles.
var (
	// StyleTitle is used for the screen title.
	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	// StyleCount is used for the big count value.
	StyleCount = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// StyleCountReached is the count style once the target is reached.
	StyleCountReached = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSuccess)

	// StyleTarget is used for the target line.
	StyleTarget = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// StyleMuted is used for secondary information.
	StyleMuted = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleWarning is used for transient messages.
	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// StyleError is used for error messages.
	StyleError = lipgloss.NewStyle().
			Foreground(ColorError)

	// StyleReached is used for the reached banner.
	StyleReached = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess)

	// StyleHelpKey is used for keyboard shortcut keys.
	StyleHelpKey = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess)

	// StyleHelpDesc is used for keyboard shortcut descriptions.
	StyleHelpDesc = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Box styles.
var (
	// StyleCounterBox frames the count.
	StyleCounterBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 4).
			MarginBottom(1)

	// StyleCounterReachedBox frames the count once the target is hit.
	StyleCounterReachedBox = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorSuccess).
				Padding(1, 4).
				MarginBottom(1)

	// StyleOverlayBox frames the input and confirm overlays.
	StyleOverlayBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorWarning).
			Padding(1, 2).
			MarginBottom(1)
)

// ProgressBar creates a progress bar string.
func ProgressBar(percentage float64, width int) string {
	if percentage > 100 {
		percentage = 100
	}
	if percentage < 0 {
		percentage = 0
	}

	filled := int(float64(width) * percentage / 100)
	empty := width - filled

	filledStyle := lipgloss.NewStyle().Foreground(ColorSuccess)
	emptyStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	bar := ""
	for i := 0; i < filled; i++ {
		bar += filledStyle.Render("█")
	}
	for i := 0; i < empty; i++ {
		bar += emptyStyle.Render("░")
	}

	return bar
}

// HelpBar renders the keyboard shortcut help line.
func HelpBar() string {
	entries := []struct {
		key  string
		desc string
	}{
		{"space", "+1"},
		{"b", "+10"},
		{"t", "target"},
		{"c", "clear target"},
		{"r", "reset"},
		{"q", "quit"},
	}

	out := ""
	for i, e := range entries {
		if i > 0 {
			out += StyleHelpDesc.Render("  ·  ")
		}
		out += StyleHelpKey.Render(e.key) + " " + StyleHelpDesc.Render(e.desc)
	}
	return out
}
