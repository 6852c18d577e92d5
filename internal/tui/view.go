package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/studyplanhq/studyplan-cli/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateForm:
		content = docStyle.Render(m.subjectList.View())
	case constants.StateChapters:
		content = docStyle.Render(m.viewChapters())
	case constants.StatePlan:
		content = docStyle.Render(m.viewPlan())
	case constants.StateEditSubject, constants.StateEditChapter, constants.StateEditHours:
		content = m.form.View()
	case constants.StateConfirmReset:
		content = m.viewConfirmReset()
	}

	ui := lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		m.viewStatus(),
		content,
		m.help.View(m.keys),
	)
	return ui
}

func (m Model) viewTabs() string {
	formTab := inactiveTabStyle.Render("Form")
	planTab := inactiveTabStyle.Render("Plan")
	switch m.state {
	case constants.StatePlan:
		planTab = activeTabStyle.Render("Plan")
	default:
		formTab = activeTabStyle.Render("Form")
	}
	hours := hoursStyle.Render("daily hours: " + strconv.Itoa(m.builder.DailyHours()))
	return lipgloss.JoinHorizontal(lipgloss.Top, formTab, planTab, hours)
}

// viewStatus renders the transient toast, or the loading indicator while a
// submission is in flight.
func (m Model) viewStatus() string {
	if m.lifecycle.Loading() {
		return loadingStyle.Render(m.spinner.View() + " Generating plan...")
	}
	if note := m.lifecycle.Notification(); note != nil {
		return notificationStyle(note.Severity).Render(note.Message)
	}
	return ""
}

func (m Model) viewChapters() string {
	header := fmt.Sprintf("Chapters of %s\n\n", m.chapterList.SubjectName())
	return header + m.chapterList.View()
}

func (m Model) viewPlan() string {
	if m.viewMode == constants.ViewCalendar {
		return m.calModel.View()
	}
	return m.tableModel.View()
}

func (m Model) viewConfirmReset() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Discard all subjects and start over?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
