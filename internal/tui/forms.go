package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/evanmtb/ticklist/internal/climbs"
	"github.com/evanmtb/ticklist/internal/models"
)

// newClimbForm builds the create/edit form over a draft. The grade
// options follow the category select: when the category changes, the
// options recompute and the selection falls back to the first entry of
// the new vocabulary.
func newClimbForm(d *climbs.ClimbDraft) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&d.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name must not be blank")
					}
					return nil
				}),
			huh.NewInput().
				Title("Area").
				Value(&d.Area),
			huh.NewSelect[models.Category]().
				Title("Category").
				Options(
					huh.NewOption("Boulder", models.CategoryBoulder),
					huh.NewOption("Sport", models.CategorySport),
					huh.NewOption("Trad", models.CategoryTrad),
				).
				Value(&d.Category),
			huh.NewSelect[string]().
				Title("Grade").
				OptionsFunc(func() []huh.Option[string] {
					return huh.NewOptions(models.GradesFor(d.Category)...)
				}, &d.Category).
				Value(&d.Grade),
			huh.NewText().
				Title("Description").
				Lines(3).
				Value(&d.Description),
			huh.NewInput().
				Title("Image URL").
				Value(&d.Image),
			huh.NewInput().
				Title("Video URL").
				Value(&d.Video),
		),
	)
}

func newAttemptForm(fm *AttemptFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Date").
				Description("YYYY-MM-DD").
				Value(&fm.Date).
				Validate(func(s string) error {
					if _, err := time.Parse("2006-01-02", strings.TrimSpace(s)); err != nil {
						return fmt.Errorf("expected YYYY-MM-DD")
					}
					return nil
				}),
			huh.NewInput().
				Title("Tries").
				Description("Number of tries this session").
				Value(&fm.Count),
			huh.NewConfirm().
				Title("Sent it?").
				Affirmative("Sent!").
				Negative("Not yet").
				Value(&fm.Send),
			huh.NewText().
				Title("Notes").
				Lines(3).
				Value(&fm.Notes),
		),
	)
}
