package plancal

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/studyplanhq/studyplan-cli/internal/models"
	"github.com/studyplanhq/studyplan-cli/internal/projection"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	weekdayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(10)

	dayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Width(10)

	plannedDayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true).
			Width(10)

	selectedDayStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Background(lipgloss.Color("236")).
				Bold(true).
				Width(10)

	detailTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252")).
				Bold(true)

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("248"))

	urgentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)
)

type KeyMap struct {
	PrevDay   key.Binding
	NextDay   key.Binding
	PrevWeek  key.Binding
	NextWeek  key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		PrevDay: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "prev day"),
		),
		NextDay: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "next day"),
		),
		PrevWeek: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "prev week"),
		),
		NextWeek: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "next week"),
		),
		PrevMonth: key.NewBinding(
			key.WithKeys("pgup", "["),
			key.WithHelp("[", "prev month"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("pgdown", "]"),
			key.WithHelp("]", "next month"),
		),
	}
}

// Model renders the calendar view: a month grid with planned days
// highlighted and a detail pane for the selected day. Day contents come
// exclusively from the date index; days without an entry render empty.
type Model struct {
	cal      projection.Calendar
	plan     *models.StudyPlanResponse
	keys     KeyMap
	month    time.Time // first day of the displayed month
	selected time.Time
	width    int
	height   int
}

func New(width, height int) Model {
	now := time.Now()
	return Model{
		keys:     DefaultKeyMap(),
		month:    firstOfMonth(now),
		selected: now,
		width:    width,
		height:   height,
	}
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// SetPlan points the calendar at a (possibly nil) plan. The displayed month
// and selection jump to the plan's first day so the user lands on content.
func (m *Model) SetPlan(plan *models.StudyPlanResponse) {
	m.plan = plan
	m.cal.Index(plan)
	if plan != nil && len(plan.DailyPlans) > 0 {
		first := plan.DailyPlans[0].Date.Time
		m.month = firstOfMonth(first)
		m.selected = first
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.PrevDay):
		m.selected = m.selected.AddDate(0, 0, -1)
	case key.Matches(keyMsg, m.keys.NextDay):
		m.selected = m.selected.AddDate(0, 0, 1)
	case key.Matches(keyMsg, m.keys.PrevWeek):
		m.selected = m.selected.AddDate(0, 0, -7)
	case key.Matches(keyMsg, m.keys.NextWeek):
		m.selected = m.selected.AddDate(0, 0, 7)
	case key.Matches(keyMsg, m.keys.PrevMonth):
		m.month = m.month.AddDate(0, -1, 0)
		m.selected = m.selected.AddDate(0, -1, 0)
		return m, nil
	case key.Matches(keyMsg, m.keys.NextMonth):
		m.month = m.month.AddDate(0, 1, 0)
		m.selected = m.selected.AddDate(0, 1, 0)
		return m, nil
	default:
		return m, nil
	}

	// Follow the selection across month boundaries.
	m.month = firstOfMonth(m.selected)
	return m, nil
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) View() string {
	if m.plan == nil {
		return "No plan yet. Press 's' on the Form tab to generate one."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.month.Format("January 2006")) + "\n\n")

	for _, wd := range []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"} {
		b.WriteString(weekdayStyle.Render(wd))
	}
	b.WriteString("\n")

	// Leading blanks up to the weekday of the 1st.
	col := int(m.month.Weekday())
	b.WriteString(strings.Repeat(" ", col*10))

	daysInMonth := m.month.AddDate(0, 1, -1).Day()
	for day := 1; day <= daysInMonth; day++ {
		date := m.month.AddDate(0, 0, day-1)
		cell := fmt.Sprintf("%2d", day)
		if dp, ok := m.cal.Lookup(date.Format(models.DateFormat)); ok {
			cell = fmt.Sprintf("%2d •%.1fh", day, dp.TotalHours)
		}

		style := dayStyle
		switch {
		case sameDay(date, m.selected):
			style = selectedDayStyle
		case m.isPlanned(date):
			style = plannedDayStyle
		}
		b.WriteString(style.Render(cell))

		col++
		if col == 7 {
			col = 0
			b.WriteString("\n")
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}

	b.WriteString("\n" + m.viewDetail())
	return b.String()
}

func (m Model) isPlanned(date time.Time) bool {
	_, ok := m.cal.Lookup(date.Format(models.DateFormat))
	return ok
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// viewDetail shows the selected day's chapters, the calendar-side
// equivalent of the table's day group.
func (m Model) viewDetail() string {
	header := detailTitleStyle.Render(m.selected.Format("Monday, Jan 02, 2006"))

	dp, ok := m.cal.Lookup(m.selected.Format(models.DateFormat))
	if !ok {
		return header + "\n" + detailStyle.Render("No study scheduled.")
	}

	var b strings.Builder
	b.WriteString(header + "\n")
	for _, ch := range dp.Chapters {
		line := fmt.Sprintf("• %s: %s (%.1fh)", ch.Subject, ch.Name, ch.EstimatedHours)
		if ch.Urgent() {
			b.WriteString(urgentStyle.Render(line) + "\n")
		} else {
			b.WriteString(detailStyle.Render(line) + "\n")
		}
	}
	b.WriteString(detailStyle.Render(fmt.Sprintf("Total: %.1fh", dp.TotalHours)))
	return b.String()
}
