package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/evanmtb/ticklist/internal/models"
)

func sampleClimbs() []models.Climb {
	return []models.Climb{
		{
			ID:          "c1",
			Name:        "Midnight Lightning",
			Area:        "Camp 4",
			Grade:       "V8",
			Category:    models.CategoryBoulder,
			Description: "classic",
			Image:       "https://example.com/ml.jpg",
			Attempts: []models.Attempt{
				{ID: "a1", Date: time.Date(2024, 5, 1, 18, 30, 0, 0, time.UTC), Attempts: 4, Send: true, Notes: "sent on 4th try"},
				{ID: "a2", Date: time.Date(2024, 4, 12, 9, 0, 0, 0, time.UTC), Attempts: 0, Send: false, Notes: ""},
			},
		},
		{
			ID:       "c2",
			Name:     "Moonlight Buttress",
			Area:     "Zion",
			Grade:    "5.12d",
			Category: models.CategoryTrad,
			Attempts: []models.Attempt{},
		},
	}
}

// assertEquivalent compares collections field by field, with attempt
// dates compared by calendar date rather than serialized instant.
func assertEquivalent(t *testing.T, got, want []models.Climb) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("expected %d climbs, got %d", len(want), len(got))
	}
	for i := range want {
		w, g := want[i], got[i]
		if g.ID != w.ID || g.Name != w.Name || g.Area != w.Area || g.Grade != w.Grade ||
			g.Category != w.Category || g.Description != w.Description ||
			g.Image != w.Image || g.Video != w.Video {
			t.Errorf("climb %d fields differ:\n got %+v\nwant %+v", i, g, w)
		}
		if len(g.Attempts) != len(w.Attempts) {
			t.Fatalf("climb %d: expected %d attempts, got %d", i, len(w.Attempts), len(g.Attempts))
		}
		for j := range w.Attempts {
			wa, ga := w.Attempts[j], g.Attempts[j]
			if ga.ID != wa.ID || ga.Attempts != wa.Attempts || ga.Send != wa.Send || ga.Notes != wa.Notes {
				t.Errorf("climb %d attempt %d differs:\n got %+v\nwant %+v", i, j, ga, wa)
			}
			if ga.Date.Format("2006-01-02") != wa.Date.Format("2006-01-02") {
				t.Errorf("climb %d attempt %d date differs: got %s, want %s",
					i, j, ga.Date.Format("2006-01-02"), wa.Date.Format("2006-01-02"))
			}
		}
	}
}

func TestJSONStore_RoundTrip(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "ticklist.json"))

	want := sampleClimbs()
	if err := store.Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	assertEquivalent(t, got, want)

	// Save-load again to confirm stability
	if err := store.Save(got); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}
	again, err := store.Load()
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	assertEquivalent(t, again, want)
}

func TestJSONStore_LoadMissingFile(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "nope.json"))

	climbs, err := store.Load()
	if err != nil {
		t.Fatalf("missing file should not be an error, got: %v", err)
	}
	if len(climbs) != 0 {
		t.Errorf("expected empty collection, got %d climbs", len(climbs))
	}
}

func TestJSONStore_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ticklist.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	store := NewJSONStore(path)
	if _, err := store.Load(); err == nil {
		t.Error("expected an error for corrupt storage")
	}
}

func TestJSONStore_InitRefusesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ticklist.json")
	store := NewJSONStore(path)

	if err := store.Init(); err != nil {
		t.Fatalf("first Init failed: %v", err)
	}
	if err := store.Init(); err == nil {
		t.Error("second Init should refuse an existing store")
	}
}

func TestJSONStore_OmitsUnsetMedia(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ticklist.json")
	store := NewJSONStore(path)

	if err := store.Save([]models.Climb{{ID: "c1", Name: "Plain", Grade: "V0", Category: models.CategoryBoulder}}); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, field := range []string{`"image"`, `"video"`} {
		if strings.Contains(string(data), field) {
			t.Errorf("unset %s should be omitted from serialized form", field)
		}
	}
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "ticklist.db"))
	defer store.Close()

	want := sampleClimbs()
	if err := store.Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	assertEquivalent(t, got, want)
}

func TestSQLiteStore_LoadEmpty(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "ticklist.db"))
	defer store.Close()

	climbs, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(climbs) != 0 {
		t.Errorf("expected empty collection, got %d climbs", len(climbs))
	}
}

func TestSQLiteStore_OverwritesWholeCollection(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "ticklist.db"))
	defer store.Close()

	if err := store.Save(sampleClimbs()); err != nil {
		t.Fatal(err)
	}
	if err := store.Save([]models.Climb{}); err != nil {
		t.Fatal(err)
	}

	climbs, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(climbs) != 0 {
		t.Errorf("save should overwrite the prior blob, got %d climbs", len(climbs))
	}
}
