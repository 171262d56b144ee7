package storage

import "github.com/evanmtb/ticklist/internal/models"

// StorageKey is the single fixed key the climb collection lives under.
// Persistence is always whole-collection: every save rewrites the one
// blob stored under this key, and there is no per-record update.
const StorageKey = "ticklist_climbs"

type Provider interface {
	// Lifecycle
	Init() error
	Close() error

	// Collection
	Load() ([]models.Climb, error)
	Save(climbs []models.Climb) error

	// Utils
	GetConfigPath() string
}
