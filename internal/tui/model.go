package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/studyplanhq/studyplan-cli/internal/constants"
	"github.com/studyplanhq/studyplan-cli/internal/planner"
	"github.com/studyplanhq/studyplan-cli/internal/tui/components/chapterlist"
	"github.com/studyplanhq/studyplan-cli/internal/tui/components/plancal"
	"github.com/studyplanhq/studyplan-cli/internal/tui/components/plantable"
	"github.com/studyplanhq/studyplan-cli/internal/tui/components/subjectlist"
)

// SubjectFormModel backs the huh form for a subject's name and exam date.
type SubjectFormModel struct {
	Name     string
	ExamDate string
}

// ChapterFormModel backs the huh form for a single chapter.
type ChapterFormModel struct {
	Text string
}

// HoursFormModel backs the huh form for the daily-hours budget.
type HoursFormModel struct {
	Hours string
}

type Model struct {
	client    planner.PlanService
	builder   *planner.Builder
	lifecycle *planner.Lifecycle

	state    constants.SessionState
	viewMode constants.ViewMode
	keys     KeyMap
	help     help.Model
	spinner  spinner.Model

	subjectList subjectlist.Model
	chapterList chapterlist.Model
	tableModel  plantable.Model
	calModel    plancal.Model

	form        *huh.Form
	subjectForm *SubjectFormModel
	chapterForm *ChapterFormModel
	hoursForm   *HoursFormModel

	// Indexes of the subject/chapter currently under edit. The chapter list
	// state also uses subjectIndex to know whose chapters it shows.
	subjectIndex int
	chapterIndex int

	quitting bool
	width    int
	height   int
}

func NewModel(client planner.PlanService) Model {
	builder := planner.NewBuilder()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = loadingStyle

	return Model{
		client:      client,
		builder:     builder,
		lifecycle:   planner.NewLifecycle(),
		state:       constants.StateForm,
		viewMode:    constants.ViewTable,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		spinner:     sp,
		subjectList: subjectlist.New(builder.Subjects(), 0, 0),
		chapterList: chapterlist.New(0, 0),
		tableModel:  plantable.New(0, 0),
		calModel:    plancal.New(0, 0),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}
