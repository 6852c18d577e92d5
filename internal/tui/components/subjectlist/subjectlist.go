package subjectlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/studyplanhq/studyplan-cli/internal/models"
)

type AddSubjectMsg struct{}

type EditSubjectMsg struct {
	Index int
}

type DeleteSubjectMsg struct {
	Index int
}

type OpenChaptersMsg struct {
	Index int
}

type Item struct {
	Index   int
	Subject models.Subject
}

func (i Item) Title() string {
	if i.Subject.Name == "" {
		return "(unnamed subject)"
	}
	return i.Subject.Name
}

func (i Item) Description() string {
	n := 0
	for _, c := range i.Subject.Chapters {
		if c != "" {
			n++
		}
	}
	desc := fmt.Sprintf("%d chapter(s)", n)
	if i.Subject.ExamDate != nil {
		desc += " | exam " + i.Subject.ExamDate.Format(models.DateFormat)
	}
	return desc
}

func (i Item) FilterValue() string { return i.Subject.Name }

type KeyMap struct {
	Add      key.Binding
	Edit     key.Binding
	Delete   key.Binding
	Chapters key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add subject"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit subject"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete subject"),
		),
		Chapters: key.NewBinding(
			key.WithKeys("c", "enter"),
			key.WithHelp("c", "chapters"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
	size int // subject count, for the last-subject delete guard
}

func New(subjects []models.Subject, width, height int) Model {
	l := list.New(toItems(subjects), list.NewDefaultDelegate(), width, height)
	l.Title = "Subjects"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // help is handled globally in the main model

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Edit, keys.Delete, keys.Chapters}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Edit, keys.Delete, keys.Chapters}
	}

	return Model{list: l, keys: keys, size: len(subjects)}
}

func toItems(subjects []models.Subject) []list.Item {
	items := make([]list.Item, len(subjects))
	for i, s := range subjects {
		items[i] = Item{Index: i, Subject: s}
	}
	return items
}

// SetSubjects replaces the rendered subjects, keeping the cursor in range.
func (m *Model) SetSubjects(subjects []models.Subject) {
	m.list.SetItems(toItems(subjects))
	m.size = len(subjects)
	if m.list.Index() >= len(subjects) && len(subjects) > 0 {
		m.list.Select(len(subjects) - 1)
	}
}

// Select moves the cursor to index i.
func (m *Model) Select(i int) {
	m.list.Select(i)
}

// Filtering reports whether the list filter input is capturing keys.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddSubjectMsg{} }
		case key.Matches(msg, m.keys.Edit):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return EditSubjectMsg{Index: i.Index} }
			}
		case key.Matches(msg, m.keys.Delete):
			// Removing the last remaining subject is refused; swallow the
			// keypress so the guard is visible at the UI boundary.
			if i, ok := m.list.SelectedItem().(Item); ok && m.size > 1 {
				return m, func() tea.Msg { return DeleteSubjectMsg{Index: i.Index} }
			}
		case key.Matches(msg, m.keys.Chapters):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return OpenChaptersMsg{Index: i.Index} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
