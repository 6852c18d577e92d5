package tui

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/studyplanhq/studyplan-cli/internal/constants"
	"github.com/studyplanhq/studyplan-cli/internal/models"
	"github.com/studyplanhq/studyplan-cli/internal/planner"
	"github.com/studyplanhq/studyplan-cli/internal/tui/components/chapterlist"
	"github.com/studyplanhq/studyplan-cli/internal/tui/components/subjectlist"
)

// planResultMsg carries the outcome of the single in-flight submission.
type planResultMsg struct {
	resp *models.StudyPlanResponse
	err  error
}

// notificationTimeoutMsg auto-dismisses the toast it was scheduled for. The
// sequence number keeps a superseded toast's timer from dismissing a newer
// one.
type notificationTimeoutMsg struct {
	seq int
}

func generatePlan(client planner.PlanService, req models.PlanRequest) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.GeneratePlan(context.Background(), req)
		return planResultMsg{resp: resp, err: err}
	}
}

func (m Model) scheduleDismiss() tea.Cmd {
	note := m.lifecycle.Notification()
	if note == nil {
		return nil
	}
	seq := note.Seq
	return tea.Tick(constants.NotificationDuration, func(time.Time) tea.Msg {
		return notificationTimeoutMsg{seq: seq}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		contentHeight := msg.Height - 6 // tabs, status line, help
		m.subjectList.SetSize(msg.Width-4, contentHeight)
		m.chapterList.SetSize(msg.Width-4, contentHeight)
		m.tableModel.SetSize(msg.Width-4, contentHeight)
		m.calModel.SetSize(msg.Width-4, contentHeight)
		return m, nil

	case planResultMsg:
		m.lifecycle.Resolve(msg.resp, msg.err)
		plan := m.lifecycle.Plan()
		m.tableModel.SetPlan(plan)
		m.calModel.SetPlan(plan)
		if m.lifecycle.Phase() == planner.PhaseSucceeded {
			m.state = constants.StatePlan
		}
		return m, m.scheduleDismiss()

	case notificationTimeoutMsg:
		m.lifecycle.DismissNotification(msg.seq)
		return m, nil

	case spinner.TickMsg:
		if !m.lifecycle.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case subjectlist.AddSubjectMsg:
		idx := m.builder.AddSubject()
		m.subjectList.SetSubjects(m.builder.Subjects())
		m.subjectList.Select(idx)
		return m, m.openSubjectForm(idx)

	case subjectlist.EditSubjectMsg:
		return m, m.openSubjectForm(msg.Index)

	case subjectlist.DeleteSubjectMsg:
		if m.builder.RemoveSubject(msg.Index) {
			m.subjectList.SetSubjects(m.builder.Subjects())
		}
		return m, nil

	case subjectlist.OpenChaptersMsg:
		m.subjectIndex = msg.Index
		m.chapterList.SetSubject(m.builder.Subject(msg.Index))
		m.state = constants.StateChapters
		return m, nil

	case chapterlist.AddChapterMsg:
		idx := m.builder.AddChapter(m.subjectIndex)
		m.chapterList.SetSubject(m.builder.Subject(m.subjectIndex))
		return m, m.openChapterForm(idx)

	case chapterlist.EditChapterMsg:
		return m, m.openChapterForm(msg.Index)

	case chapterlist.DeleteChapterMsg:
		if m.builder.RemoveChapter(m.subjectIndex, msg.Index) {
			m.chapterList.SetSubject(m.builder.Subject(m.subjectIndex))
		}
		return m, nil

	case chapterlist.BackMsg:
		m.subjectList.SetSubjects(m.builder.Subjects())
		m.state = constants.StateForm
		return m, nil
	}

	// Handle Edit Subject State
	if m.state == constants.StateEditSubject {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = constants.StateForm
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			m.builder.SetName(m.subjectIndex, m.subjectForm.Name)
			dateStr := strings.TrimSpace(m.subjectForm.ExamDate)
			if dateStr == "" {
				m.builder.SetExamDate(m.subjectIndex, nil)
			} else if date, err := time.Parse(models.DateFormat, dateStr); err == nil {
				m.builder.SetExamDate(m.subjectIndex, &date)
			}
			m.subjectList.SetSubjects(m.builder.Subjects())
			m.state = constants.StateForm
		case huh.StateAborted:
			m.state = constants.StateForm
		}
		return m, tea.Batch(cmds...)
	}

	// Handle Edit Chapter State
	if m.state == constants.StateEditChapter {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = constants.StateChapters
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			m.builder.SetChapter(m.subjectIndex, m.chapterIndex, m.chapterForm.Text)
			m.chapterList.SetSubject(m.builder.Subject(m.subjectIndex))
			m.state = constants.StateChapters
		case huh.StateAborted:
			m.state = constants.StateChapters
		}
		return m, tea.Batch(cmds...)
	}

	// Handle Edit Hours State
	if m.state == constants.StateEditHours {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = constants.StateForm
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			if hours, err := strconv.Atoi(strings.TrimSpace(m.hoursForm.Hours)); err == nil {
				m.builder.SetDailyHours(hours)
			}
			m.state = constants.StateForm
		case huh.StateAborted:
			m.state = constants.StateForm
		}
		return m, tea.Batch(cmds...)
	}

	// Handle Confirm Reset State
	if m.state == constants.StateConfirmReset {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "y", "Y":
				m.builder.Reset()
				m.subjectList.SetSubjects(m.builder.Subjects())
				m.state = constants.StateForm
			case "n", "N", "esc":
				m.state = constants.StateForm
			}
		}
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		filtering := m.state == constants.StateForm && m.subjectList.Filtering()
		if !filtering {
			switch {
			case key.Matches(keyMsg, m.keys.Quit):
				m.quitting = true
				return m, tea.Quit
			case key.Matches(keyMsg, m.keys.Tab), key.Matches(keyMsg, m.keys.ShiftTab):
				if m.state == constants.StateForm || m.state == constants.StateChapters {
					m.state = constants.StatePlan
				} else {
					m.state = constants.StateForm
				}
				return m, nil
			case key.Matches(keyMsg, m.keys.Help):
				m.help.ShowAll = !m.help.ShowAll
				return m, nil
			case key.Matches(keyMsg, m.keys.Submit):
				return m, m.submit()
			case key.Matches(keyMsg, m.keys.Hours):
				if m.state == constants.StateForm {
					return m, m.openHoursForm()
				}
			case key.Matches(keyMsg, m.keys.Reset):
				if m.state == constants.StateForm {
					m.state = constants.StateConfirmReset
					return m, nil
				}
			case key.Matches(keyMsg, m.keys.View):
				// Pure view routing: toggling never touches the lifecycle or
				// the held response.
				if m.state == constants.StatePlan {
					if m.viewMode == constants.ViewTable {
						m.viewMode = constants.ViewCalendar
					} else {
						m.viewMode = constants.ViewTable
					}
					return m, nil
				}
			}
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case constants.StateForm:
		m.subjectList, cmd = m.subjectList.Update(msg)
	case constants.StateChapters:
		m.chapterList, cmd = m.chapterList.Update(msg)
	case constants.StatePlan:
		if m.viewMode == constants.ViewTable {
			m.tableModel, cmd = m.tableModel.Update(msg)
		} else {
			m.calModel, cmd = m.calModel.Update(msg)
		}
	}
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submit runs the submission sequence: ignore when a request is already in
// flight, reject duplicate subject names before building a payload, then
// enter Loading and dispatch the client call.
func (m *Model) submit() tea.Cmd {
	if m.lifecycle.Loading() {
		return nil
	}
	req, err := m.builder.BuildRequest()
	if err != nil {
		m.lifecycle.Reject(err.Error())
		return m.scheduleDismiss()
	}
	m.lifecycle.Begin()
	return tea.Batch(m.spinner.Tick, generatePlan(m.client, req))
}

func (m *Model) openSubjectForm(idx int) tea.Cmd {
	s := m.builder.Subject(idx)
	fm := &SubjectFormModel{Name: s.Name}
	if s.ExamDate != nil {
		fm.ExamDate = s.ExamDate.Format(models.DateFormat)
	}
	m.subjectForm = fm
	m.subjectIndex = idx
	m.form = NewSubjectForm(fm)
	m.state = constants.StateEditSubject
	return m.form.Init()
}

func (m *Model) openChapterForm(idx int) tea.Cmd {
	s := m.builder.Subject(m.subjectIndex)
	fm := &ChapterFormModel{Text: s.Chapters[idx]}
	m.chapterForm = fm
	m.chapterIndex = idx
	m.form = NewChapterForm(fm)
	m.state = constants.StateEditChapter
	return m.form.Init()
}

func (m *Model) openHoursForm() tea.Cmd {
	fm := &HoursFormModel{Hours: strconv.Itoa(m.builder.DailyHours())}
	m.hoursForm = fm
	m.form = NewHoursForm(fm)
	m.state = constants.StateEditHours
	return m.form.Init()
}
