package chapterlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/studyplanhq/studyplan-cli/internal/models"
)

type AddChapterMsg struct{}

type EditChapterMsg struct {
	Index int
}

type DeleteChapterMsg struct {
	Index int
}

type BackMsg struct{}

type Item struct {
	Index int
	Text  string
}

func (i Item) Title() string {
	if i.Text == "" {
		return "(empty chapter)"
	}
	return i.Text
}

func (i Item) Description() string { return fmt.Sprintf("Chapter %d", i.Index+1) }
func (i Item) FilterValue() string { return i.Text }

type KeyMap struct {
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Back   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add chapter"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e", "edit chapter"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete chapter"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back to subjects"),
		),
	}
}

// Model lists the chapters of one subject while it is being edited.
type Model struct {
	list    list.Model
	keys    KeyMap
	subject string
	size    int
}

func New(width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Edit, keys.Delete, keys.Back}
	}

	return Model{list: l, keys: keys}
}

// SetSubject loads the chapters of the subject under edit.
func (m *Model) SetSubject(subject models.Subject) {
	m.subject = subject.Name
	items := make([]list.Item, len(subject.Chapters))
	for i, c := range subject.Chapters {
		items[i] = Item{Index: i, Text: c}
	}
	m.list.SetItems(items)
	m.size = len(subject.Chapters)
	if m.list.Index() >= m.size && m.size > 0 {
		m.list.Select(m.size - 1)
	}
}

// SubjectName returns the display name of the subject under edit.
func (m Model) SubjectName() string {
	if m.subject == "" {
		return "(unnamed subject)"
	}
	return m.subject
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddChapterMsg{} }
		case key.Matches(msg, m.keys.Edit):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return EditChapterMsg{Index: i.Index} }
			}
		case key.Matches(msg, m.keys.Delete):
			// The subject's only remaining chapter cannot be removed.
			if i, ok := m.list.SelectedItem().(Item); ok && m.size > 1 {
				return m, func() tea.Msg { return DeleteChapterMsg{Index: i.Index} }
			}
		case key.Matches(msg, m.keys.Back):
			return m, func() tea.Msg { return BackMsg{} }
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
