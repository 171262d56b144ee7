package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/evanmtb/ticklist/internal/models"
)

// SQLiteStore keeps the collection as a single JSON blob in a
// key/value table, under the same fixed key the JSON store uses.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	if err := s.open(); err != nil {
		return err
	}

	return s.set(StorageKey, "[]")
}

func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return fmt.Errorf("failed to create kv table: %w", err)
	}

	s.db = db
	return nil
}

func (s *SQLiteStore) get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLiteStore) set(key, value string) error {
	_, err := s.db.Exec(`INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Load() ([]models.Climb, error) {
	if err := s.open(); err != nil {
		return nil, err
	}

	value, ok, err := s.get(StorageKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.Climb{}, nil
	}

	var climbs []models.Climb
	if err := json.Unmarshal([]byte(value), &climbs); err != nil {
		return nil, fmt.Errorf("failed to parse storage: %w", err)
	}
	if climbs == nil {
		climbs = []models.Climb{}
	}
	return climbs, nil
}

func (s *SQLiteStore) Save(climbs []models.Climb) error {
	if err := s.open(); err != nil {
		return err
	}

	if climbs == nil {
		climbs = []models.Climb{}
	}
	data, err := json.Marshal(climbs)
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	return s.set(StorageKey, string(data))
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

// GetDB exposes the underlying connection for diagnostics.
func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}
