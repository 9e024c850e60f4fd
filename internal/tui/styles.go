package tui

import "github.com/charmbracelet/lipgloss"

// Color choices follow the web version: teal for learned cards, tomato for
// cards still being studied, green for the translation side.
type Styles struct {
	Title       lipgloss.Style
	Counter     lipgloss.Style
	CardBox     lipgloss.Style
	WordLearned lipgloss.Style
	WordNew     lipgloss.Style
	Translation lipgloss.Style
	GridCell    lipgloss.Style
	GridHover   lipgloss.Style
	StatusOn    lipgloss.Style
	Subtle      lipgloss.Style
	FormLabel   lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:       lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Counter:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		CardBox:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 4).Align(lipgloss.Center),
		WordLearned: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		WordNew:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		Translation: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		GridCell:    lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
		GridHover:   lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Padding(0, 1).BorderForeground(lipgloss.Color("14")),
		StatusOn:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Subtle:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		FormLabel:   lipgloss.NewStyle().Bold(true),
	}
}
