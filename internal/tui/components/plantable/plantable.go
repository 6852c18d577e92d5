package plantable

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/studyplanhq/studyplan-cli/internal/models"
	"github.com/studyplanhq/studyplan-cli/internal/projection"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(14)

	chapterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	urgentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	subtotalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))
)

// Model renders the chronological table view of a plan. The date label is
// written once per day group, spanning its chapter rows; a subtotal row
// terminates every group. Priority-1 chapters get distinct emphasis but are
// never reordered.
type Model struct {
	viewport viewport.Model
	table    projection.Table
	plan     *models.StudyPlanResponse
	width    int
	height   int
}

func New(width, height int) Model {
	return Model{viewport: viewport.New(width, height)}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.plan == nil {
		return "No plan yet. Press 's' on the Form tab to generate one."
	}
	return m.viewport.View()
}

// SetPlan points the table at a (possibly nil) plan and re-renders.
func (m *Model) SetPlan(plan *models.StudyPlanResponse) {
	m.plan = plan
	m.render()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.render()
}

func (m *Model) render() {
	if m.plan == nil {
		m.viewport.SetContent("")
		return
	}

	var b strings.Builder
	b.WriteString(summaryStyle.Render(Summary(m.plan)) + "\n\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-14s %-18s %-28s %8s", "Date", "Subject", "Chapter", "Hours")) + "\n")

	for _, group := range m.table.Rows(m.plan) {
		label := group.Date.Format("Jan 02, 2006")
		for i, ch := range group.Chapters {
			dateCell := ""
			if i == 0 {
				dateCell = label
			}
			style := chapterStyle
			if ch.Urgent() {
				style = urgentStyle
			}
			b.WriteString(fmt.Sprintf("%s %s %8s\n",
				dateStyle.Render(dateCell),
				style.Render(fmt.Sprintf("%-18s %-28s", ch.Subject, ch.Name)),
				fmt.Sprintf("%.1f", ch.EstimatedHours),
			))
		}
		b.WriteString(subtotalStyle.Render(fmt.Sprintf("Daily Total: %.1f hours", group.Subtotal)) + "\n\n")
	}

	m.viewport.SetContent(b.String())
}

// Summary is the one-line totals header shown above both plan views.
func Summary(plan *models.StudyPlanResponse) string {
	return fmt.Sprintf("Total Days: %d | Total Hours: %.1f | Subjects: %s",
		plan.TotalDays, plan.TotalHours, strings.Join(plan.SubjectsCovered, ", "))
}
