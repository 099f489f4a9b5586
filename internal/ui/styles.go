package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the launcher UI
type Styles struct {
	Input       lipgloss.Style
	Row         lipgloss.Style
	SelectedRow lipgloss.Style
	Category    lipgloss.Style
	Title       lipgloss.Style
	Description lipgloss.Style
	Empty       lipgloss.Style
	Help        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		Row: lipgloss.NewStyle().
			Padding(0, 1),
		SelectedRow: lipgloss.NewStyle().
			Padding(0, 1).
			Background(lipgloss.Color("57")).
			Foreground(lipgloss.Color("231")),
		Category:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Title:       lipgloss.NewStyle().Bold(true),
		Description: lipgloss.NewStyle().Faint(true),
		Empty:       lipgloss.NewStyle().Faint(true).Padding(1, 2),
		Help:        lipgloss.NewStyle().Faint(true).MarginTop(1),
	}
}
