package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/studyflow/studyflow/internal/models"
)

var (
	docStyle = lipgloss.NewStyle().Padding(1, 2)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Bold(true)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	dangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	statusStyles = map[models.DayStatus]lipgloss.Style{
		models.DayFree:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		models.DayLight:      lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		models.DayBalanced:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		models.DayHeavy:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		models.DayOverloaded: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
)

func renderDayStatus(status models.DayStatus) string {
	if style, ok := statusStyles[status]; ok {
		return style.Render(string(status))
	}
	return string(status)
}
