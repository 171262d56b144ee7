package cli

import (
	"fmt"

	"github.com/evanmtb/ticklist/internal/climbs"
)

type ListCmd struct {
	Filter string `short:"f" help:"Filter by send status (all|sent|unsent)." default:"all" enum:"all,sent,unsent"`
}

func (c *ListCmd) Run(ctx *Context) error {
	svc := ctx.Service()

	filtered := climbs.Filter(svc.Climbs(), climbs.FilterMode(c.Filter))
	if len(filtered) == 0 {
		fmt.Println("No climbs found")
		return nil
	}

	fmt.Println("Climbs:")
	for _, climb := range filtered {
		fmt.Printf("  %s\n", formatClimbLine(climb))
	}

	return nil
}
