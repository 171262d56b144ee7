package climbs

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/evanmtb/ticklist/internal/models"
	"github.com/evanmtb/ticklist/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "ticklist.json"))
	svc := NewService(store, AutoApprove)
	svc.Load()
	return svc
}

func TestCreateClimb(t *testing.T) {
	svc := newTestService(t)

	climb := svc.CreateClimb(ClimbDraft{
		Name:     "  Midnight Lightning  ",
		Area:     "Camp 4",
		Grade:    "V8",
		Category: models.CategoryBoulder,
	})
	if climb == nil {
		t.Fatal("expected climb to be created")
	}

	if climb.Name != "Midnight Lightning" {
		t.Errorf("expected trimmed name, got %q", climb.Name)
	}
	if climb.ID == "" {
		t.Error("expected a fresh id")
	}
	if len(climb.Attempts) != 0 {
		t.Errorf("new climb should have no attempts, got %d", len(climb.Attempts))
	}
	if len(svc.Climbs()) != 1 {
		t.Errorf("expected 1 climb in collection, got %d", len(svc.Climbs()))
	}
}

func TestCreateClimb_BlankNameIsNoOp(t *testing.T) {
	svc := newTestService(t)
	svc.CreateClimb(ClimbDraft{Name: "Existing", Grade: "V1", Category: models.CategoryBoulder})

	if c := svc.CreateClimb(ClimbDraft{Name: "   "}); c != nil {
		t.Fatal("blank name should be rejected")
	}

	if len(svc.Climbs()) != 1 {
		t.Errorf("collection should be unchanged, got %d climbs", len(svc.Climbs()))
	}
	if svc.Climbs()[0].Name != "Existing" {
		t.Errorf("collection content changed: %v", svc.Climbs())
	}
}

func TestUpdateClimb(t *testing.T) {
	svc := newTestService(t)
	created := svc.CreateClimb(ClimbDraft{Name: "Old Name", Grade: "V2", Category: models.CategoryBoulder})
	svc.AddAttempt(created.ID, time.Now(), "3", false, "")

	ok := svc.UpdateClimb(created.ID, ClimbDraft{
		Name:     "New Name",
		Area:     "New Area",
		Grade:    "V3",
		Category: models.CategoryBoulder,
	})
	if !ok {
		t.Fatal("expected update to succeed")
	}

	updated, _ := svc.Get(created.ID)
	if updated.Name != "New Name" || updated.Area != "New Area" || updated.Grade != "V3" {
		t.Errorf("fields not updated: %+v", updated)
	}
	if updated.ID != created.ID {
		t.Error("update must preserve the id")
	}
	if len(updated.Attempts) != 1 {
		t.Errorf("update must preserve attempts, got %d", len(updated.Attempts))
	}
}

func TestUpdateClimb_NoOps(t *testing.T) {
	svc := newTestService(t)
	created := svc.CreateClimb(ClimbDraft{Name: "Keeper", Grade: "V2", Category: models.CategoryBoulder})

	if svc.UpdateClimb("no-such-id", ClimbDraft{Name: "Whatever"}) {
		t.Error("updating an unknown id should be a no-op")
	}
	if svc.UpdateClimb(created.ID, ClimbDraft{Name: "  "}) {
		t.Error("updating to a blank name should be a no-op")
	}

	current, _ := svc.Get(created.ID)
	if current.Name != "Keeper" {
		t.Errorf("no-op update changed the climb: %+v", current)
	}
}

func TestDeleteClimb(t *testing.T) {
	svc := newTestService(t)
	created := svc.CreateClimb(ClimbDraft{Name: "Doomed", Grade: "V2", Category: models.CategoryBoulder})
	svc.AddAttempt(created.ID, time.Now(), "2", false, "")

	if !svc.DeleteClimb(created.ID) {
		t.Fatal("expected delete to succeed")
	}
	if len(svc.Climbs()) != 0 {
		t.Errorf("expected empty collection, got %d climbs", len(svc.Climbs()))
	}

	if svc.DeleteClimb("no-such-id") {
		t.Error("deleting an unknown id should be a no-op")
	}
}

func TestDeleteClimb_CancelledConfirmation(t *testing.T) {
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "ticklist.json"))
	cancel := ConfirmerFunc(func(string, string) bool { return false })
	svc := NewService(store, cancel)
	svc.Load()

	created := svc.CreateClimb(ClimbDraft{Name: "Survivor", Grade: "V2", Category: models.CategoryBoulder})

	if svc.DeleteClimb(created.ID) {
		t.Error("cancelled confirmation should be a no-op")
	}
	if len(svc.Climbs()) != 1 {
		t.Errorf("climb should survive a cancelled delete, got %d climbs", len(svc.Climbs()))
	}
}

func TestAddAttempt_CoercesCount(t *testing.T) {
	svc := newTestService(t)
	created := svc.CreateClimb(ClimbDraft{Name: "Project", Grade: "V5", Category: models.CategoryBoulder})

	cases := []struct {
		in   string
		want int
	}{
		{"4", 4},
		{"abc", 0},
		{"", 0},
		{"-3", 0},
		{" 7 ", 7},
	}
	for _, tc := range cases {
		a := svc.AddAttempt(created.ID, time.Now(), tc.in, false, "")
		if a == nil {
			t.Fatalf("AddAttempt(%q) returned nil", tc.in)
		}
		if a.Attempts != tc.want {
			t.Errorf("count %q: expected %d, got %d", tc.in, tc.want, a.Attempts)
		}
	}
}

func TestAddAttempt_UnknownClimbIsNoOp(t *testing.T) {
	svc := newTestService(t)

	if a := svc.AddAttempt("no-such-id", time.Now(), "1", true, ""); a != nil {
		t.Error("expected no-op for unknown climb")
	}
}

func TestDeleteAttempt(t *testing.T) {
	svc := newTestService(t)
	created := svc.CreateClimb(ClimbDraft{Name: "Project", Grade: "V5", Category: models.CategoryBoulder})
	a1 := svc.AddAttempt(created.ID, time.Now(), "2", false, "first")
	a2 := svc.AddAttempt(created.ID, time.Now(), "1", true, "second")

	if !svc.DeleteAttempt(created.ID, a1.ID) {
		t.Fatal("expected delete to succeed")
	}

	climb, _ := svc.Get(created.ID)
	if len(climb.Attempts) != 1 || climb.Attempts[0].ID != a2.ID {
		t.Errorf("wrong attempt removed: %+v", climb.Attempts)
	}

	if svc.DeleteAttempt(created.ID, "no-such-attempt") {
		t.Error("deleting an unknown attempt should be a no-op")
	}
	if svc.DeleteAttempt("no-such-climb", a2.ID) {
		t.Error("deleting from an unknown climb should be a no-op")
	}
}

func TestServicePersistsAcrossSessions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ticklist.json")
	store := storage.NewJSONStore(path)

	svc := NewService(store, AutoApprove)
	svc.Load()
	created := svc.CreateClimb(ClimbDraft{Name: "Kept", Area: "Somewhere", Grade: "5.10a", Category: models.CategorySport})
	svc.AddAttempt(created.ID, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), "4", true, "sent on 4th try")

	// New session over the same file
	svc2 := NewService(storage.NewJSONStore(path), AutoApprove)
	svc2.Load()

	if len(svc2.Climbs()) != 1 {
		t.Fatalf("expected 1 climb after reload, got %d", len(svc2.Climbs()))
	}
	reloaded := svc2.Climbs()[0]
	if reloaded.Name != "Kept" || !IsSent(reloaded) || TotalAttempts(reloaded) != 4 {
		t.Errorf("reloaded climb does not match: %+v", reloaded)
	}
}

func TestSaveFailureKeepsInMemoryState(t *testing.T) {
	// A directory path makes every write fail
	store := storage.NewJSONStore(t.TempDir())
	svc := NewService(store, AutoApprove)

	climb := svc.CreateClimb(ClimbDraft{Name: "Still Here", Grade: "V1", Category: models.CategoryBoulder})
	if climb == nil {
		t.Fatal("create should succeed despite the failed save")
	}
	if len(svc.Climbs()) != 1 {
		t.Errorf("in-memory collection should hold the climb, got %d", len(svc.Climbs()))
	}
}

func TestEndToEndScenario(t *testing.T) {
	svc := newTestService(t)

	if len(svc.Climbs()) != 0 {
		t.Fatal("expected empty collection to start")
	}

	climb := svc.CreateClimb(ClimbDraft{
		Name:        "Midnight Lightning",
		Area:        "Camp 4",
		Grade:       "V8",
		Category:    models.CategoryBoulder,
		Description: "classic",
	})
	if climb == nil {
		t.Fatal("create failed")
	}
	if IsSent(*climb) || TotalAttempts(*climb) != 0 {
		t.Error("fresh climb should be unsent with 0 tries")
	}

	svc.AddAttempt(climb.ID, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), "4", true, "sent on 4th try")

	current, _ := svc.Get(climb.ID)
	if !IsSent(current) {
		t.Error("expected sent after the sending attempt")
	}
	if TotalAttempts(current) != 4 {
		t.Errorf("expected 4 total tries, got %d", TotalAttempts(current))
	}

	sentOnly := Filter(svc.Climbs(), FilterSent)
	if len(sentOnly) != 1 || sentOnly[0].ID != climb.ID {
		t.Errorf("FilterSent should return the climb, got %v", sentOnly)
	}
	if unsent := Filter(svc.Climbs(), FilterUnsent); len(unsent) != 0 {
		t.Errorf("FilterUnsent should be empty, got %v", unsent)
	}
}

func TestParseAttemptCount(t *testing.T) {
	cases := map[string]int{
		"0":    0,
		"12":   12,
		"":     0,
		"abc":  0,
		"-1":   0,
		"3.5":  0,
		"  9 ": 9,
	}
	for in, want := range cases {
		if got := ParseAttemptCount(in); got != want {
			t.Errorf("ParseAttemptCount(%q) = %d, want %d", in, got, want)
		}
	}
}
