package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/evanmtb/ticklist/internal/climbs"
	"github.com/evanmtb/ticklist/internal/tui/components/climblist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.climbList.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case climblist.AddClimbMsg:
		d := climbs.NewClimbDraft()
		m.climbDraft = &d
		m.editingID = ""
		m.form = newClimbForm(m.climbDraft)
		m.state = StateClimbForm
		return m, m.form.Init()

	case climblist.EditClimbMsg:
		d := climbs.DraftFrom(msg.Climb)
		m.climbDraft = &d
		m.editingID = msg.Climb.ID
		m.form = newClimbForm(m.climbDraft)
		m.state = StateClimbForm
		return m, m.form.Init()

	case climblist.DeleteClimbMsg:
		m.climbToDeleteID = msg.ID
		m.state = StateConfirmDeleteClimb
		return m, nil

	case climblist.LogAttemptMsg:
		fm := NewAttemptFormModel()
		m.attemptForm = &fm
		m.attemptClimbID = msg.Climb.ID
		m.form = newAttemptForm(m.attemptForm)
		m.state = StateAttemptForm
		return m, m.form.Init()

	case climblist.ViewAttemptsMsg:
		m.attemptsClimbID = msg.Climb.ID
		m.attemptCursor = 0
		m.state = StateAttempts
		return m, nil
	}

	switch m.state {
	case StateList:
		return m.updateList(msg)
	case StateClimbForm, StateAttemptForm:
		return m.updateForm(msg)
	case StateAttempts:
		return m.updateAttempts(msg)
	case StateConfirmDeleteClimb:
		return m.updateConfirmDeleteClimb(msg)
	case StateConfirmDeleteAttempt:
		return m.updateConfirmDeleteAttempt(msg)
	}

	return m, nil
}

func (m Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Filter):
			m.cycleFilter()
			return m, nil
		case key.Matches(keyMsg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.climbList, cmd = m.climbList.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.form = nil
		m.state = StateList
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if m.state == StateClimbForm {
			if m.editingID == "" {
				m.svc.CreateClimb(*m.climbDraft)
			} else {
				m.svc.UpdateClimb(m.editingID, *m.climbDraft)
			}
		} else {
			date, err := time.Parse("2006-01-02", strings.TrimSpace(m.attemptForm.Date))
			if err != nil {
				date = time.Now()
			}
			m.svc.AddAttempt(m.attemptClimbID, date, m.attemptForm.Count, m.attemptForm.Send, m.attemptForm.Notes)
		}
		m.form = nil
		m.state = StateList
		m.refreshList()
	case huh.StateAborted:
		m.form = nil
		m.state = StateList
	}

	return m, cmd
}

func (m Model) updateAttempts(msg tea.Msg) (tea.Model, tea.Cmd) {
	climb, ok := m.svc.Get(m.attemptsClimbID)
	if !ok {
		m.state = StateList
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "up", "k":
			if m.attemptCursor > 0 {
				m.attemptCursor--
			}
		case "down", "j":
			if m.attemptCursor < len(climb.Attempts)-1 {
				m.attemptCursor++
			}
		case "d":
			if m.attemptCursor < len(climb.Attempts) {
				m.attemptToDeleteID = climb.Attempts[m.attemptCursor].ID
				m.state = StateConfirmDeleteAttempt
			}
		case "t":
			fm := NewAttemptFormModel()
			m.attemptForm = &fm
			m.attemptClimbID = climb.ID
			m.form = newAttemptForm(m.attemptForm)
			m.state = StateAttemptForm
			return m, m.form.Init()
		case "esc", "q":
			m.state = StateList
		}
	}

	return m, nil
}

func (m Model) updateConfirmDeleteClimb(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "y", "Y":
			if m.climbToDeleteID != "" {
				m.svc.DeleteClimb(m.climbToDeleteID)
				m.climbToDeleteID = ""
				m.refreshList()
			}
			m.state = StateList
		case "n", "N", "esc":
			m.climbToDeleteID = ""
			m.state = StateList
		}
	}
	return m, nil
}

func (m Model) updateConfirmDeleteAttempt(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "y", "Y":
			if m.attemptToDeleteID != "" {
				m.svc.DeleteAttempt(m.attemptsClimbID, m.attemptToDeleteID)
				m.attemptToDeleteID = ""
				m.refreshList()
			}
			if m.attemptCursor > 0 {
				m.attemptCursor--
			}
			m.state = StateAttempts
		case "n", "N", "esc":
			m.attemptToDeleteID = ""
			m.state = StateAttempts
		}
	}
	return m, nil
}
