package cli

import (
	"fmt"

	"github.com/evanmtb/ticklist/internal/climbs"
)

type EditCmd struct {
	Climb       string  `arg:"" help:"Climb name or ID."`
	Name        *string `help:"New name."`
	Area        *string `short:"a" help:"New area."`
	Grade       *string `short:"g" help:"New grade."`
	Category    *string `short:"c" help:"New category (boulder|sport|trad)."`
	Description *string `short:"d" help:"New description."`
	Image       *string `help:"New image URL or path (empty clears it)."`
	Video       *string `help:"New video URL or path (empty clears it)."`
}

func (c *EditCmd) Run(ctx *Context) error {
	svc := ctx.Service()

	climb, ok := svc.Resolve(c.Climb)
	if !ok {
		return fmt.Errorf("climb not found: %s", c.Climb)
	}

	draft := climbs.DraftFrom(climb)
	if c.Name != nil {
		draft.Name = *c.Name
	}
	if c.Area != nil {
		draft.Area = *c.Area
	}
	if c.Category != nil {
		cat, err := parseCategory(*c.Category)
		if err != nil {
			return err
		}
		// Switching category resets the grade to the new vocabulary's
		// default unless a grade is given alongside.
		draft.SetCategory(cat)
	}
	if c.Grade != nil {
		draft.Grade = *c.Grade
	}
	if c.Description != nil {
		draft.Description = *c.Description
	}
	if c.Image != nil {
		draft.Image = *c.Image
	}
	if c.Video != nil {
		draft.Video = *c.Video
	}

	if !svc.UpdateClimb(climb.ID, draft) {
		return fmt.Errorf("climb name must not be blank")
	}

	fmt.Printf("Updated climb: %s\n", draft.Name)
	return nil
}
