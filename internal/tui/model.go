package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/evanmtb/ticklist/internal/climbs"
	"github.com/evanmtb/ticklist/internal/tui/components/climblist"
)

type SessionState int

const (
	StateList SessionState = iota
	StateClimbForm
	StateAttemptForm
	StateAttempts
	StateConfirmDeleteClimb
	StateConfirmDeleteAttempt
)

// AttemptFormModel holds the attempt entry form's pending values. The
// try count stays free text; it is coerced when the form commits.
type AttemptFormModel struct {
	Date  string
	Count string
	Send  bool
	Notes string
}

func NewAttemptFormModel() AttemptFormModel {
	return AttemptFormModel{
		Date:  time.Now().Format("2006-01-02"),
		Count: "1",
	}
}

type Model struct {
	svc       *climbs.Service
	state     SessionState
	keys      KeyMap
	help      help.Model
	climbList climblist.Model
	filter    climbs.FilterMode

	form        *huh.Form
	climbDraft  *climbs.ClimbDraft
	attemptForm *AttemptFormModel

	editingID         string // climb being edited; empty while creating
	attemptClimbID    string
	attemptsClimbID   string
	attemptCursor     int
	climbToDeleteID   string
	attemptToDeleteID string

	quitting bool
	width    int
	height   int
}

func NewModel(svc *climbs.Service) Model {
	m := Model{
		svc:       svc,
		state:     StateList,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		filter:    climbs.FilterAll,
		climbList: climblist.New(svc.Climbs(), 0, 0),
	}
	return m
}

func (m Model) ShortHelp() []key.Binding {
	return m.keys.ShortHelp()
}

func (m Model) FullHelp() [][]key.Binding {
	return m.keys.FullHelp()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) refreshList() {
	m.climbList.SetClimbs(climbs.Filter(m.svc.Climbs(), m.filter))
}

func (m *Model) cycleFilter() {
	switch m.filter {
	case climbs.FilterAll:
		m.filter = climbs.FilterSent
	case climbs.FilterSent:
		m.filter = climbs.FilterUnsent
	default:
		m.filter = climbs.FilterAll
	}
	m.refreshList()
}
