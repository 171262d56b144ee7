package climbs

import (
	"testing"

	"github.com/evanmtb/ticklist/internal/models"
)

func TestNewClimbDraft_Defaults(t *testing.T) {
	d := NewClimbDraft()

	if d.Category != models.CategoryBoulder {
		t.Errorf("expected boulder default, got %s", d.Category)
	}
	if d.Grade != "V0" {
		t.Errorf("expected V0 default, got %s", d.Grade)
	}
}

func TestSetCategory_ResetsGrade(t *testing.T) {
	d := NewClimbDraft()

	d.SetCategory(models.CategorySport)
	if d.Grade != "5.0" {
		t.Errorf("boulder->sport should reset grade to 5.0, got %s", d.Grade)
	}

	d.Grade = "5.11a"
	d.SetCategory(models.CategoryBoulder)
	if d.Grade != "V0" {
		t.Errorf("sport->boulder should reset grade to V0, got %s", d.Grade)
	}
}

func TestSetCategory_SameCategoryKeepsGrade(t *testing.T) {
	d := NewClimbDraft()
	d.Grade = "V8"

	d.SetCategory(models.CategoryBoulder)
	if d.Grade != "V8" {
		t.Errorf("re-selecting the same category should keep the grade, got %s", d.Grade)
	}
}

func TestDraftFrom(t *testing.T) {
	c := models.Climb{
		ID:       "c1",
		Name:     "Midnight Lightning",
		Area:     "Camp 4",
		Grade:    "V8",
		Category: models.CategoryBoulder,
		Attempts: []models.Attempt{{ID: "a1"}},
	}

	d := DraftFrom(c)
	if d.Name != c.Name || d.Area != c.Area || d.Grade != c.Grade || d.Category != c.Category {
		t.Errorf("draft does not match climb: %+v", d)
	}
}
