package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/evanmtb/ticklist/internal/models"
)

// fileBlob is the on-disk layout: the full climb collection stored
// under the fixed storage key. No schema version field exists.
type fileBlob struct {
	Climbs []models.Climb `json:"ticklist_climbs"`
}

type JSONStore struct {
	path string
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.write(nil)
}

// Load reads the whole collection. A missing file is not an error: it
// simply means nothing has been logged yet.
func (s *JSONStore) Load() ([]models.Climb, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Climb{}, nil
		}
		return nil, fmt.Errorf("failed to read storage: %w", err)
	}

	var blob fileBlob
	if err := json.Unmarshal(data, &blob); err != nil {
		return nil, fmt.Errorf("failed to parse storage: %w", err)
	}

	if blob.Climbs == nil {
		blob.Climbs = []models.Climb{}
	}
	return blob.Climbs, nil
}

func (s *JSONStore) Save(climbs []models.Climb) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return s.write(climbs)
}

func (s *JSONStore) write(climbs []models.Climb) error {
	if climbs == nil {
		climbs = []models.Climb{}
	}

	data, err := json.MarshalIndent(fileBlob{Climbs: climbs}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

// GetConfigPath returns the path to the underlying storage file.
//
// Concurrency note:
//   - JSONStore is not safe for concurrent use by multiple goroutines without
//     external synchronization.
//   - Running multiple ticklist processes that share the same storage path at
//     the same time is not supported and may lead to data loss.
func (s *JSONStore) GetConfigPath() string {
	return s.path
}
