package cli

import (
	"fmt"

	"github.com/evanmtb/ticklist/internal/climbs"
	"github.com/evanmtb/ticklist/internal/models"
)

type AddCmd struct {
	Name        string `arg:"" help:"Climb name."`
	Area        string `short:"a" help:"Area or crag."`
	Grade       string `short:"g" help:"Grade (defaults to the category's first grade)."`
	Category    string `short:"c" help:"Category (boulder|sport|trad)." default:"boulder"`
	Description string `short:"d" help:"Description."`
	Image       string `help:"Image URL or path."`
	Video       string `help:"Video URL or path."`
}

func (c *AddCmd) Run(ctx *Context) error {
	cat, err := parseCategory(c.Category)
	if err != nil {
		return err
	}

	grade := c.Grade
	if grade == "" {
		grade = models.DefaultGradeFor(cat)
	}

	svc := ctx.Service()
	climb := svc.CreateClimb(climbs.ClimbDraft{
		Name:        c.Name,
		Area:        c.Area,
		Grade:       grade,
		Category:    cat,
		Description: c.Description,
		Image:       c.Image,
		Video:       c.Video,
	})
	if climb == nil {
		return fmt.Errorf("climb name must not be blank")
	}

	fmt.Printf("Added climb: %s (ID: %s)\n", climb.Name, climb.ID)
	return nil
}
