// Package ui renders the console pages: login, the menu and the CRUD pages
// for seed productions and farmers. Pages translate key events into
// controller intents and run controller effects as bubbletea commands.
package ui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles shared by all pages.
type Styles struct {
	Title    lipgloss.Style
	Subtle   lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Label    lipgloss.Style
	Focused  lipgloss.Style
	Help     lipgloss.Style
	Box      lipgloss.Style
	Selected lipgloss.Style
}

// DefaultStyles returns the console's default color scheme.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("70")),
		Subtle:   lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("76")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Focused:  lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Box:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
	}
}
