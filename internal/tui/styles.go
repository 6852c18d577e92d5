package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/studyplanhq/studyplan-cli/internal/constants"
)

var (
	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Bold(true)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 1)

	dangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	hoursStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Padding(0, 1)

	docStyle = lipgloss.NewStyle().Padding(1, 2)
)

func notificationStyle(severity constants.Severity) lipgloss.Style {
	switch severity {
	case constants.SeveritySuccess:
		return successStyle
	case constants.SeverityError:
		return dangerStyle
	default:
		return infoStyle
	}
}
