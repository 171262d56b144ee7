package climbs

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/evanmtb/ticklist/internal/models"
	"github.com/evanmtb/ticklist/internal/storage"
)

// Service owns the in-memory climb collection for a session. It is the
// single writer: every mutation goes through here, and every successful
// mutation rewrites the whole collection through the storage provider.
//
// Storage faults never surface to the caller. A failed save leaves the
// durable copy stale; the in-memory collection stays authoritative and
// the next successful save carries the missed change.
type Service struct {
	store   storage.Provider
	confirm Confirmer
	climbs  []models.Climb
}

func NewService(store storage.Provider, confirm Confirmer) *Service {
	if confirm == nil {
		confirm = AutoApprove
	}
	return &Service{
		store:   store,
		confirm: confirm,
		climbs:  []models.Climb{},
	}
}

// Load replaces the in-memory collection with the stored one. A read
// failure is logged and leaves the collection unchanged.
func (s *Service) Load() {
	climbs, err := s.store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load climbs: %v\n", err)
		return
	}
	s.climbs = climbs
}

// Climbs returns the live collection. Callers must treat it as
// read-only; all mutation goes through the service.
func (s *Service) Climbs() []models.Climb {
	return s.climbs
}

// Get returns the climb with the given id.
func (s *Service) Get(id string) (models.Climb, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.climbs[i], true
	}
	return models.Climb{}, false
}

// Resolve finds a climb by exact id or by case-insensitive name.
func (s *Service) Resolve(ref string) (models.Climb, bool) {
	if c, ok := s.Get(ref); ok {
		return c, true
	}
	for _, c := range s.climbs {
		if strings.EqualFold(c.Name, strings.TrimSpace(ref)) {
			return c, true
		}
	}
	return models.Climb{}, false
}

// CreateClimb adds a new climb from the draft and persists. A blank
// name rejects the draft: nil is returned and nothing changes.
func (s *Service) CreateClimb(d ClimbDraft) *models.Climb {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return nil
	}

	c := models.Climb{
		ID:          uuid.New().String(),
		Name:        name,
		Area:        d.Area,
		Grade:       d.Grade,
		Category:    d.Category,
		Description: d.Description,
		Image:       d.Image,
		Video:       d.Video,
		Attempts:    []models.Attempt{},
	}

	s.climbs = append(s.climbs, c)
	s.persist()
	return &c
}

// UpdateClimb replaces the editable fields of an existing climb,
// preserving its id and attempt history. Unknown ids and blank names
// are no-ops.
func (s *Service) UpdateClimb(id string, d ClimbDraft) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return false
	}

	c := &s.climbs[i]
	c.Name = name
	c.Area = d.Area
	c.Grade = d.Grade
	c.Category = d.Category
	c.Description = d.Description
	c.Image = d.Image
	c.Video = d.Video

	s.persist()
	return true
}

// DeleteClimb removes a climb and all its attempts after confirmation.
// Cancelling the prompt or passing an unknown id is a no-op.
func (s *Service) DeleteClimb(id string) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	if !s.confirm.Confirm("Delete Climb", "Are you sure you want to delete this climb?") {
		return false
	}

	s.climbs = append(s.climbs[:i], s.climbs[i+1:]...)
	s.persist()
	return true
}

// AddAttempt appends a logged session to a climb's history. The try
// count comes in as free text and is coerced, never rejected.
func (s *Service) AddAttempt(climbID string, date time.Time, countText string, send bool, notes string) *models.Attempt {
	i := s.indexOf(climbID)
	if i < 0 {
		return nil
	}

	a := models.Attempt{
		ID:       uuid.New().String(),
		Date:     date,
		Attempts: ParseAttemptCount(countText),
		Send:     send,
		Notes:    notes,
	}

	s.climbs[i].Attempts = append(s.climbs[i].Attempts, a)
	s.persist()
	return &a
}

// DeleteAttempt removes one attempt from a climb's history after
// confirmation. Unknown climb or attempt ids are no-ops.
func (s *Service) DeleteAttempt(climbID, attemptID string) bool {
	i := s.indexOf(climbID)
	if i < 0 {
		return false
	}

	attempts := s.climbs[i].Attempts
	for j, a := range attempts {
		if a.ID != attemptID {
			continue
		}
		if !s.confirm.Confirm("Delete Attempt", "Are you sure you want to delete this attempt?") {
			return false
		}
		s.climbs[i].Attempts = append(attempts[:j], attempts[j+1:]...)
		s.persist()
		return true
	}
	return false
}

func (s *Service) indexOf(id string) int {
	for i, c := range s.climbs {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (s *Service) persist() {
	if err := s.store.Save(s.climbs); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to save climbs: %v\n", err)
	}
}

// ParseAttemptCount coerces free-text try-count input into a
// non-negative integer. Empty, unparseable, or negative input becomes
// zero rather than an error.
func ParseAttemptCount(text string) int {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
