package climbs

import "github.com/evanmtb/ticklist/internal/models"

// ClimbDraft holds the editable fields of a climb while a create or
// edit form is open. Drafts are UI-side state: nothing here touches
// the collection until the draft is committed through the service.
type ClimbDraft struct {
	Name        string
	Area        string
	Grade       string
	Category    models.Category
	Description string
	Image       string
	Video       string
}

// NewClimbDraft returns a draft with the default category and its
// default grade.
func NewClimbDraft() ClimbDraft {
	return ClimbDraft{
		Category: models.CategoryBoulder,
		Grade:    models.DefaultGradeFor(models.CategoryBoulder),
	}
}

// DraftFrom seeds a draft with an existing climb's fields for editing.
func DraftFrom(c models.Climb) ClimbDraft {
	return ClimbDraft{
		Name:        c.Name,
		Area:        c.Area,
		Grade:       c.Grade,
		Category:    c.Category,
		Description: c.Description,
		Image:       c.Image,
		Video:       c.Video,
	}
}

// SetCategory switches the draft's category and resets the pending
// grade to the first entry of the new category's vocabulary.
func (d *ClimbDraft) SetCategory(cat models.Category) {
	if cat == d.Category {
		return
	}
	d.Category = cat
	d.Grade = models.DefaultGradeFor(cat)
}
