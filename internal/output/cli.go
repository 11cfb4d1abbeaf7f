package output

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mfields/tally/internal/model"
	"github.com/mfields/tally/internal/tally"
)

// Styles for CLI output.
var (
	colorPrimary = lipgloss.Color("#7C3AED") // Purple
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorWarning = lipgloss.Color("#F59E0B") // Yellow
	colorError   = lipgloss.Color("#EF4444") // Red
	colorSuccess = lipgloss.Color("#10B981") // Green

	styleCount = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleTarget = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	if c.IsColorEnabled() {
		c.Println(styleSuccess.Render("✓ " + text))
	} else {
		c.Println("✓ " + text)
	}
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	if c.IsColorEnabled() {
		c.Println(styleWarning.Render("⚠ " + text))
	} else {
		c.Println("⚠ " + text)
	}
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	if c.IsColorEnabled() {
		c.Println(styleError.Render("✗ " + text))
	} else {
		c.Println("✗ " + text)
	}
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	if c.IsColorEnabled() {
		c.Println(styleMuted.Render(text))
	} else {
		c.Println(text)
	}
}

// CountValue formats a count for display.
func (c *CLIFormatter) CountValue(text string) string {
	if c.IsColorEnabled() {
		return styleCount.Render(text)
	}
	return text
}

// TargetValue formats a target for display.
func (c *CLIFormatter) TargetValue(text string) string {
	if c.IsColorEnabled() {
		return styleTarget.Render(text)
	}
	return text
}

// PrintStatus prints the counter state.
func (c *CLIFormatter) PrintStatus(st tally.State) {
	c.Printf("Count: %s\n", c.CountValue(itoa(st.Count)))

	if !st.HasTarget() {
		c.Muted("No target set.")
		c.Muted("Use 'tally target <number>' to set one.")
		return
	}

	barWidth := 24
	if w := c.Width() - 16; w < barWidth {
		if w < 8 {
			w = 8
		}
		barWidth = w
	}

	c.Printf("Target: %s\n", c.TargetValue(itoa(st.Target)))
	c.Printf("  %s %.0f%%\n", ProgressBar(st.Progress(), barWidth), st.Progress())
	if st.Reached {
		c.Success("Target reached!")
	} else {
		c.Printf("  %s to go\n", itoa(st.Target-st.Count))
	}
}

// PrintMilestones prints the milestone history.
func (c *CLIFormatter) PrintMilestones(milestones []*model.Milestone) {
	if len(milestones) == 0 {
		c.Muted("No milestones yet.")
		c.Muted("Set a target and keep counting.")
		return
	}

	for _, m := range milestones {
		c.Printf("%s  target %s reached at count %s\n",
			c.MutedText(m.ReachedAt.Format("2006-01-02 15:04")),
			c.TargetValue(itoa(m.Target)),
			c.CountValue(itoa(m.Count)))
	}
}

// MutedText returns muted text without printing it.
func (c *CLIFormatter) MutedText(text string) string {
	if c.IsColorEnabled() {
		return styleMuted.Render(text)
	}
	return text
}

// ProgressBar creates a simple progress bar.
func ProgressBar(percentage float64, width int) string {
	if percentage > 100 {
		percentage = 100
	}
	if percentage < 0 {
		percentage = 0
	}

	filled := int(float64(width) * percentage / 100)
	empty := width - filled

	return strings.Repeat("█", filled) + strings.Repeat("░", empty)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
