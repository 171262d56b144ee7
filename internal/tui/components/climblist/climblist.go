package climblist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/evanmtb/ticklist/internal/climbs"
	"github.com/evanmtb/ticklist/internal/models"
)

type AddClimbMsg struct{}

type EditClimbMsg struct {
	Climb models.Climb
}

type DeleteClimbMsg struct {
	ID string
}

type LogAttemptMsg struct {
	Climb models.Climb
}

type ViewAttemptsMsg struct {
	Climb models.Climb
}

type Item struct {
	Climb models.Climb
}

func (i Item) Title() string {
	marker := "○"
	if climbs.IsSent(i.Climb) {
		marker = "✓"
	}
	return fmt.Sprintf("%s %s (%s)", marker, i.Climb.Name, i.Climb.Grade)
}

func (i Item) Description() string {
	desc := string(i.Climb.Category)
	if i.Climb.Area != "" {
		desc += " @ " + i.Climb.Area
	}
	desc += fmt.Sprintf(" | %d tries, %d sessions", climbs.TotalAttempts(i.Climb), len(i.Climb.Attempts))
	return desc
}

func (i Item) FilterValue() string { return i.Climb.Name }

type KeyMap struct {
	Add      key.Binding
	Edit     key.Binding
	Delete   key.Binding
	Log      key.Binding
	Attempts key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Log: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "log attempt"),
		),
		Attempts: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "attempts"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(climbList []models.Climb, width, height int) Model {
	items := make([]list.Item, len(climbList))
	for i, c := range climbList {
		items[i] = Item{Climb: c}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Climbs"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // We handle help globally in the main model

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Edit, keys.Delete, keys.Log}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Edit, keys.Delete, keys.Log, keys.Attempts}
	}

	return Model{list: l, keys: keys}
}

func (m *Model) SetClimbs(climbList []models.Climb) {
	items := make([]list.Item, len(climbList))
	for i, c := range climbList {
		items[i] = Item{Climb: c}
	}
	m.list.SetItems(items)
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
			return m, func() tea.Msg { return AddClimbMsg{} }
		case key.Matches(msg, m.keys.Edit):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return EditClimbMsg(i) }
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteClimbMsg{ID: i.Climb.ID} }
			}
		case key.Matches(msg, m.keys.Log):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return LogAttemptMsg(i) }
			}
		case key.Matches(msg, m.keys.Attempts):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return ViewAttemptsMsg(i) }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No climbs yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
