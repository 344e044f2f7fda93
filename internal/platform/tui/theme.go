package tui

import "github.com/charmbracelet/lipgloss"

// Theme contains the visual styles of the HUD and the level summary.
type Theme struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Won      lipgloss.Style
	Lost     lipgloss.Style
	Running  lipgloss.Style
	Paused   lipgloss.Style
	Frame    lipgloss.Style
	HelpLine lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51")),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14),
		Value:    lipgloss.NewStyle().Bold(true),
		Won:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46")),
		Lost:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		Running:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		Paused:   lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		Frame:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		HelpLine: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}
