package cli

import (
	"fmt"

	"github.com/evanmtb/ticklist/internal/climbs"
)

type ShowCmd struct {
	Climb string `arg:"" help:"Climb name or ID."`
}

func (c *ShowCmd) Run(ctx *Context) error {
	svc := ctx.Service()

	climb, ok := svc.Resolve(c.Climb)
	if !ok {
		return fmt.Errorf("climb not found: %s", c.Climb)
	}

	fmt.Printf("%s (%s %s)\n", climb.Name, climb.Grade, climb.Category)
	fmt.Printf("  ID: %s\n", climb.ID)
	if climb.Area != "" {
		fmt.Printf("  Area: %s\n", climb.Area)
	}
	if climb.Description != "" {
		fmt.Printf("  Description: %s\n", climb.Description)
	}
	if climb.Image != "" {
		fmt.Printf("  Image: %s\n", climb.Image)
	}
	if climb.Video != "" {
		fmt.Printf("  Video: %s\n", climb.Video)
	}

	status := "not sent"
	if climbs.IsSent(climb) {
		status = "sent"
	}
	fmt.Printf("  Status: %s, %d tries over %d sessions\n",
		status, climbs.TotalAttempts(climb), len(climb.Attempts))

	if len(climb.Attempts) > 0 {
		fmt.Println("  Attempts:")
		for _, a := range climb.Attempts {
			marker := " "
			if a.Send {
				marker = "✓"
			}
			line := fmt.Sprintf("    [%s] %s - %d tries", marker, a.Date.Format("2006-01-02"), a.Attempts)
			if a.Notes != "" {
				line += fmt.Sprintf(" - %s", a.Notes)
			}
			fmt.Printf("%s (ID: %s)\n", line, a.ID)
		}
	}

	return nil
}
