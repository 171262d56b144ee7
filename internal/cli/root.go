package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/evanmtb/ticklist/internal/climbs"
	"github.com/evanmtb/ticklist/internal/models"
	"github.com/evanmtb/ticklist/internal/storage"
)

type Context struct {
	Store   storage.Provider
	Confirm climbs.Confirmer // nil means prompt on the terminal
}

// Service builds a climb service over the context's store with the
// context's confirmer and loads the collection.
func (c *Context) Service() *climbs.Service {
	confirm := c.Confirm
	if confirm == nil {
		confirm = TerminalConfirmer{}
	}
	return c.ServiceWith(confirm)
}

// ServiceWith is Service with an explicit confirmer, for commands that
// carry a --yes flag.
func (c *Context) ServiceWith(confirm climbs.Confirmer) *climbs.Service {
	svc := climbs.NewService(c.Store, confirm)
	svc.Load()
	return svc
}

// TerminalConfirmer asks a y/N question on stdin.
type TerminalConfirmer struct{}

func (TerminalConfirmer) Confirm(title, message string) bool {
	fmt.Printf("%s\n%s [y/N]: ", title, message)

	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}

func parseCategory(s string) (models.Category, error) {
	cat := models.Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range models.Categories {
		if cat == known {
			return cat, nil
		}
	}
	return "", fmt.Errorf("invalid category: %s (expected boulder, sport, or trad)", s)
}

// parseDate accepts YYYY-MM-DD; an empty string means today.
func parseDate(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return time.Now(), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

func sentMarker(c models.Climb) string {
	if climbs.IsSent(c) {
		return "✓"
	}
	return " "
}

func formatClimbLine(c models.Climb) string {
	line := fmt.Sprintf("[%s] %s - %s %s", sentMarker(c), c.Name, c.Grade, c.Category)
	if c.Area != "" {
		line += fmt.Sprintf(" @ %s", c.Area)
	}
	line += fmt.Sprintf(" (%d tries over %d sessions)", climbs.TotalAttempts(c), len(c.Attempts))
	return line
}
