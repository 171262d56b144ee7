package cli

import (
	"fmt"

	"github.com/evanmtb/ticklist/internal/climbs"
)

type AttemptAddCmd struct {
	Climb string `arg:"" help:"Climb name or ID."`
	Date  string `short:"d" help:"Attempt date (YYYY-MM-DD, defaults to today)."`
	Count string `short:"n" help:"Number of tries this session." default:"1"`
	Send  bool   `short:"s" help:"Mark the climb as sent this session."`
	Notes string `help:"Session notes."`
}

func (c *AttemptAddCmd) Run(ctx *Context) error {
	date, err := parseDate(c.Date)
	if err != nil {
		return err
	}

	svc := ctx.Service()
	climb, ok := svc.Resolve(c.Climb)
	if !ok {
		return fmt.Errorf("climb not found: %s", c.Climb)
	}

	attempt := svc.AddAttempt(climb.ID, date, c.Count, c.Send, c.Notes)
	if attempt == nil {
		return fmt.Errorf("climb not found: %s", c.Climb)
	}

	outcome := "no send"
	if attempt.Send {
		outcome = "sent!"
	}
	fmt.Printf("Logged %d tries on %s for %s (%s)\n",
		attempt.Attempts, attempt.Date.Format("2006-01-02"), climb.Name, outcome)
	return nil
}

type AttemptDeleteCmd struct {
	Climb   string `arg:"" help:"Climb name or ID."`
	Attempt string `arg:"" help:"Attempt ID."`
	Yes     bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *AttemptDeleteCmd) Run(ctx *Context) error {
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

	if !svc.DeleteAttempt(climb.ID, c.Attempt) {
		fmt.Println("No attempt deleted.")
		return nil
	}

	fmt.Printf("Deleted attempt %s from %s\n", c.Attempt, climb.Name)
	return nil
}

type AttemptListCmd struct {
	Climb string `arg:"" help:"Climb name or ID."`
}

func (c *AttemptListCmd) Run(ctx *Context) error {
	svc := ctx.Service()

	climb, ok := svc.Resolve(c.Climb)
	if !ok {
		return fmt.Errorf("climb not found: %s", c.Climb)
	}

	if len(climb.Attempts) == 0 {
		fmt.Printf("No attempts logged for %s\n", climb.Name)
		return nil
	}

	fmt.Printf("Attempts for %s:\n", climb.Name)
	for _, a := range climb.Attempts {
		marker := " "
		if a.Send {
			marker = "✓"
		}
		line := fmt.Sprintf("  [%s] %s - %d tries", marker, a.Date.Format("2006-01-02"), a.Attempts)
		if a.Notes != "" {
			line += fmt.Sprintf(" - %s", a.Notes)
		}
		fmt.Printf("%s (ID: %s)\n", line, a.ID)
	}

	return nil
}
