// Package styles provides reusable lipgloss-based TUI components shared by
// the CLI and the devtool TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme holds lipgloss colors and pre-built styles. swellgo's CLI is
// dark-only; there is no light-palette variant to select between.
type Theme struct {
	Background lipgloss.Color
	Surface    lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color
	Error      lipgloss.Color
	Warning    lipgloss.Color
	Success    lipgloss.Color

	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	Box       lipgloss.Style
	BoxHeader lipgloss.Style
}

// NewTheme builds the default swellgo CLI theme.
func NewTheme() *Theme {
	t := &Theme{
		Background: lipgloss.Color("#0a0a0b"),
		Surface:    lipgloss.Color("#1a1a1b"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#909090"),
		Accent:     lipgloss.Color("#4ade80"),
		Border:     lipgloss.Color("#333333"),
		Error:      lipgloss.Color("#f87171"),
		Warning:    lipgloss.Color("#fbbf24"),
		Success:    lipgloss.Color("#4ade80"),
	}

	t.Title = lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	t.Subtitle = lipgloss.NewStyle().Foreground(t.Muted)
	t.Normal = lipgloss.NewStyle().Foreground(t.Text)
	t.Subtle = lipgloss.NewStyle().Foreground(t.Muted)
	t.ErrorStyle = lipgloss.NewStyle().Foreground(t.Error).Bold(true)
	t.WarningStyle = lipgloss.NewStyle().Foreground(t.Warning)
	t.SuccessStyle = lipgloss.NewStyle().Foreground(t.Success).Bold(true)

	t.BoxHeader = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	return t
}
