package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Terminal palette colors so output adapts to the user's theme.
	ColorSuccess = lipgloss.AdaptiveColor{Light: "2", Dark: "2"}
	ColorError   = lipgloss.AdaptiveColor{Light: "1", Dark: "1"}
	ColorAccent  = lipgloss.AdaptiveColor{Light: "4", Dark: "4"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "8", Dark: "8"}

	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError)
	StyleAccent  = lipgloss.NewStyle().Foreground(ColorAccent)
	StyleMuted   = lipgloss.NewStyle().Foreground(ColorMuted)

	StyleTableHeader = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	StyleTableBorder = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleTableRow    = lipgloss.NewStyle()
	StyleTableRowAlt = lipgloss.NewStyle().Foreground(ColorMuted)
)

// RenderKeyValue renders a key-value pair for detail output.
func RenderKeyValue(key, value string) string {
	return StyleAccent.Render(key) + ": " + value
}
