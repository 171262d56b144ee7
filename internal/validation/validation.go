package validation

import (
	"fmt"
	"time"

	"github.com/evanmtb/ticklist/internal/models"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictDuplicateClimbID   ConflictType = "duplicate_climb_id"
	ConflictDuplicateAttemptID ConflictType = "duplicate_attempt_id"
	ConflictUnknownCategory    ConflictType = "unknown_category"
	ConflictOffVocabularyGrade ConflictType = "off_vocabulary_grade"
	ConflictFutureAttemptDate  ConflictType = "future_attempt_date"
)

// Conflict represents a detected inconsistency in the collection.
// Conflicts are advisory: grades are deliberately never validated at
// mutation time, so an off-vocabulary grade is reported here rather
// than rejected anywhere.
type Conflict struct {
	Type        ConflictType
	Description string
	Items       []string // Climb names involved
	ClimbIDs    []string // IDs of climbs involved
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	report := "Conflicts detected:\n"
	for _, conflict := range vr.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// Validator checks a climb collection for inconsistencies
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateClimbs checks the whole collection for conflicts.
func (v *Validator) ValidateClimbs(climbs []models.Climb) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	seenIDs := make(map[string]string)
	for _, c := range climbs {
		if prev, ok := seenIDs[c.ID]; ok {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateClimbID,
				Description: fmt.Sprintf("Climbs %q and %q share id %s", prev, c.Name, c.ID),
				Items:       []string{prev, c.Name},
				ClimbIDs:    []string{c.ID},
			})
		}
		seenIDs[c.ID] = c.Name

		result.Conflicts = append(result.Conflicts, v.validateClimb(c)...)
	}

	return result
}

func (v *Validator) validateClimb(c models.Climb) []Conflict {
	var conflicts []Conflict

	if !knownCategory(c.Category) {
		conflicts = append(conflicts, Conflict{
			Type:        ConflictUnknownCategory,
			Description: fmt.Sprintf("Climb %q has unknown category %q", c.Name, c.Category),
			Items:       []string{c.Name},
			ClimbIDs:    []string{c.ID},
		})
	} else if !gradeInVocabulary(c.Grade, c.Category) {
		conflicts = append(conflicts, Conflict{
			Type: ConflictOffVocabularyGrade,
			Description: fmt.Sprintf("Climb %q has grade %q outside the %s vocabulary",
				c.Name, c.Grade, c.Category),
			Items:    []string{c.Name},
			ClimbIDs: []string{c.ID},
		})
	}

	seenAttempts := make(map[string]bool)
	// Allow same-day logging anywhere on earth before flagging a date
	// as being in the future.
	horizon := time.Now().Add(48 * time.Hour)
	for _, a := range c.Attempts {
		if seenAttempts[a.ID] {
			conflicts = append(conflicts, Conflict{
				Type:        ConflictDuplicateAttemptID,
				Description: fmt.Sprintf("Climb %q has duplicate attempt id %s", c.Name, a.ID),
				Items:       []string{c.Name},
				ClimbIDs:    []string{c.ID},
			})
		}
		seenAttempts[a.ID] = true

		if a.Date.After(horizon) {
			conflicts = append(conflicts, Conflict{
				Type: ConflictFutureAttemptDate,
				Description: fmt.Sprintf("Climb %q has an attempt dated in the future (%s)",
					c.Name, a.Date.Format("2006-01-02")),
				Items:    []string{c.Name},
				ClimbIDs: []string{c.ID},
			})
		}
	}

	return conflicts
}

func knownCategory(cat models.Category) bool {
	for _, c := range models.Categories {
		if c == cat {
			return true
		}
	}
	return false
}

func gradeInVocabulary(grade string, cat models.Category) bool {
	for _, g := range models.GradesFor(cat) {
		if g == grade {
			return true
		}
	}
	return false
}
