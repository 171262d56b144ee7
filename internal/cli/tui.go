package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/evanmtb/ticklist/internal/climbs"
	"github.com/evanmtb/ticklist/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	// The TUI runs its own confirmation screens, so the service gets an
	// auto-approving confirmer.
	svc := ctx.ServiceWith(climbs.AutoApprove)

	p := tea.NewProgram(tui.NewModel(svc), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
