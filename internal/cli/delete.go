package cli

import (
	"fmt"

	"github.com/evanmtb/ticklist/internal/climbs"
)

type DeleteCmd struct {
	Climb string `arg:"" help:"Climb name or ID."`
	Yes   bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *DeleteCmd) Run(ctx *Context) error {
	var svc *climbs.Service
	if c.Yes {
		svc = ctx.ServiceWith(climbs.AutoApprove)
	} else {
		svc = ctx.Service()
	}

	climb, ok := svc.Resolve(c.Climb)
	if !ok {
		return fmt.Errorf("climb not found: %s", c.Climb)
	}

	if !svc.DeleteClimb(climb.ID) {
		fmt.Println("Delete cancelled.")
		return nil
	}

	fmt.Printf("Deleted climb: %s\n", climb.Name)
	return nil
}
