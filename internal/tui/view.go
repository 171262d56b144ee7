package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/evanmtb/ticklist/internal/climbs"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case StateList:
		content = docStyle.Render(m.climbList.View())
	case StateClimbForm, StateAttemptForm:
		content = m.form.View()
	case StateAttempts:
		content = docStyle.Render(m.viewAttempts())
	case StateConfirmDeleteClimb:
		content = m.viewConfirm("Are you sure you want to delete this climb?")
	case StateConfirmDeleteAttempt:
		content = m.viewConfirm("Are you sure you want to delete this attempt?")
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewFilterBar(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewFilterBar() string {
	var tabs []string
	for _, mode := range []climbs.FilterMode{climbs.FilterAll, climbs.FilterSent, climbs.FilterUnsent} {
		if m.filter == mode {
			tabs = append(tabs, activeFilterStyle.Render(string(mode)))
		} else {
			tabs = append(tabs, inactiveFilterStyle.Render(string(mode)))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewAttempts() string {
	climb, ok := m.svc.Get(m.attemptsClimbID)
	if !ok {
		return ""
	}

	header := fmt.Sprintf("%s (%s %s)", climb.Name, climb.Grade, climb.Category)
	if climbs.IsSent(climb) {
		header += " " + sentStyle.Render("sent")
	}
	header += fmt.Sprintf(" - %d tries over %d sessions\n", climbs.TotalAttempts(climb), len(climb.Attempts))

	if len(climb.Attempts) == 0 {
		return header + "\n  No attempts yet.\n  Press 't' to log one."
	}

	body := header + "\n"
	for i, a := range climb.Attempts {
		cursor := "  "
		if i == m.attemptCursor {
			cursor = "> "
		}
		marker := "○"
		if a.Send {
			marker = "✓"
		}
		line := fmt.Sprintf("%s%s %s - %d tries", cursor, marker, a.Date.Format("2006-01-02"), a.Attempts)
		if a.Notes != "" {
			line += " - " + a.Notes
		}
		body += line + "\n"
	}
	body += "\n  t: log attempt | d: delete | esc: back"
	return body
}

func (m Model) viewConfirm(question string) string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(question),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
