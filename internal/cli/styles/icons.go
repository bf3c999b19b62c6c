// Package styles provides reusable lipgloss-based TUI components.
package styles

// Nerd Font icons (requires a Nerd Font to display correctly).
const (
	IconCheck   = "" // check
	IconX       = "" // x
	IconWarning = "" // warning
	IconInfo    = "" // info
	IconWrench  = "" // wrench
	IconWindow  = "" // window
	IconLayout  = "" // grid
	IconClock   = "" // clock
	IconSocket  = "" // plug
)
